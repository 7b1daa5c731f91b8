package agent

import (
	"golang.org/x/exp/rand"

	"gamesai/game"
)

// RandomAgent plays a uniformly random legal action. Useful as a baseline
// opponent and for smoke-testing game implementations.
type RandomAgent struct {
	game game.Game
	rng  *rand.Rand
}

func NewRandom(g game.Game, rng *rand.Rand) *RandomAgent {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Uint64()))
	}
	return &RandomAgent{game: g, rng: rng}
}

func (a *RandomAgent) GetAction(state game.State) (game.Action, error) {
	if a.game.IsTerminal(state) {
		return nil, &game.TerminalStateError{State: state}
	}
	actions := a.game.Actions(state)
	return actions[a.rng.Intn(len(actions))], nil
}
