package game

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// ProbTolerance is the absolute tolerance within which a distribution's
// probabilities must sum to 1.
const ProbTolerance = 1e-9

// Outcome is one entry of a chance distribution: an action and the
// probability that chance plays it.
type Outcome struct {
	Action Action
	Prob   float64
}

// Distribution is the outcome distribution at a chance point. Entries keep
// the game's enumeration order so expectations and seeded sampling are
// reproducible.
type Distribution []Outcome

// Uniform returns a distribution giving each action equal probability.
func Uniform(actions []Action) Distribution {
	dist := make(Distribution, len(actions))
	for i, action := range actions {
		dist[i] = Outcome{Action: action, Prob: 1 / float64(len(actions))}
	}
	return dist
}

// Validate fails with an InvalidDistributionError if the distribution is
// empty, holds a negative probability, or does not sum to 1 within
// ProbTolerance.
func (d Distribution) Validate() error {
	if len(d) == 0 {
		return &InvalidDistributionError{Reason: "empty distribution"}
	}
	sum := 0.0
	for _, outcome := range d {
		if outcome.Prob < 0 {
			return &InvalidDistributionError{Reason: "negative probability", Sum: outcome.Prob}
		}
		sum += outcome.Prob
	}
	if !scalar.EqualWithinAbs(sum, 1, ProbTolerance) {
		return &InvalidDistributionError{Reason: "probabilities do not sum to 1", Sum: sum}
	}
	return nil
}

// Sample draws one outcome action according to the distribution's weights.
// The caller must Validate first; the random source is injected so sampling
// is seedable for reproducible tests.
func (d Distribution) Sample(src rand.Source) Action {
	weights := make([]float64, len(d))
	for i, outcome := range d {
		weights[i] = outcome.Prob
	}
	index, ok := sampleuv.NewWeighted(weights, src).Take()
	if !ok {
		// Validate rules out zero total weight
		panic("sampling from invalid distribution")
	}
	return d[index].Action
}
