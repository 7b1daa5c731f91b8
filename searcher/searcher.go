// Package searcher implements the search algorithms that choose actions for
// an arbitrary game: exhaustive n-player minimax, a paranoid alpha-beta
// generalization, and UCT-based Monte Carlo tree search. All searches are
// stateless between calls, single-threaded and synchronous; the game
// abstraction is their only source of domain truth.
package searcher

import (
	"math"

	"gamesai/game"
)

// Searcher chooses an action for the given player at a non-terminal state.
// The returned utilities are the search's evaluation of the state: exact for
// the minimax family, the empirical root mean for MCTS.
type Searcher interface {
	FindAction(state game.State, player game.PlayerName) (game.Action, game.Utilities, error)
}

// DefaultExploration is the UCT exploration constant. It should scale with
// the typical utility spread: a spread of 1 matches a constant of sqrt(2).
const DefaultExploration = math.Sqrt2

// DefaultRollouts is the MCTS iteration budget when none is configured.
const DefaultRollouts = 200

// ucb1 scores a child for selection: exploitation mean plus exploration
// bonus. Unvisited children score infinite so every action is tried once
// before any is revisited.
func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}
