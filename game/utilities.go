package game

import "github.com/samber/lo"

// Utilities maps each player to a real-valued payoff. Games define it at
// terminal states; search algorithms also use it for expectations, rollout
// statistics and heuristic estimates.
type Utilities map[PlayerName]float64

// Zero returns a utility vector with a zero payoff for every name.
func Zero(names []PlayerName) Utilities {
	return lo.SliceToMap(names, func(name PlayerName) (PlayerName, float64) {
		return name, 0
	})
}

// Clone returns an independent copy of u.
func (u Utilities) Clone() Utilities {
	return lo.Assign(Utilities{}, u)
}

// Add accumulates other into u component-wise.
func (u Utilities) Add(other Utilities) {
	for name, value := range other {
		u[name] += value
	}
}

// AddScaled accumulates weight*other into u component-wise. Used for
// probability-weighted expectations over chance outcomes.
func (u Utilities) AddScaled(other Utilities, weight float64) {
	for name, value := range other {
		u[name] += weight * value
	}
}

// Scale returns a new vector with every component multiplied by factor.
func (u Utilities) Scale(factor float64) Utilities {
	return lo.MapValues(u, func(value float64, _ PlayerName) float64 {
		return factor * value
	})
}
