package searcher

import (
	"math"

	"gamesai/game"
)

// PrunedMinimax is minimax with an alpha-beta style bound generalized to n
// players under the paranoid assumption: every other player is treated as
// minimizing the searching player's payoff component. Alpha is the payoff the
// searching player has already secured at an ancestor, beta the ceiling the
// opponents can still concede; once a subtree can only drive the payoff
// outside that window the remaining siblings are skipped. Two-player zero-sum
// games degrade exactly to classical alpha-beta, so pruning changes the work
// performed, never the chosen action. Chance points are evaluated as full
// expectations with a fresh window, without pruning across outcomes.
type PrunedMinimax struct {
	game game.Game
	cfg  minimaxConfig
}

func NewPrunedMinimax(g game.Game, options ...MinimaxOption) *PrunedMinimax {
	p := &PrunedMinimax{game: g}
	for _, option := range options {
		option(&p.cfg)
	}
	return p
}

func (p *PrunedMinimax) FindAction(state game.State, player game.PlayerName) (game.Action, game.Utilities, error) {
	if p.game.IsTerminal(state) {
		return nil, nil, &game.TerminalStateError{State: state}
	}
	return p.maximize(state, player, 0, math.Inf(-1), math.Inf(1))
}

// value evaluates a state for the searching player within the (alpha, beta)
// window on that player's payoff component.
func (p *PrunedMinimax) value(state game.State, player game.PlayerName, depth int, alpha, beta float64) (game.Utilities, error) {
	g := p.game
	if g.IsTerminal(state) {
		return g.Utilities(state), nil
	}
	if p.cfg.maxDepth > 0 && depth >= p.cfg.maxDepth {
		if p.cfg.heuristic == nil {
			return nil, &game.BudgetExceededError{MaxDepth: p.cfg.maxDepth}
		}
		return p.cfg.heuristic(state), nil
	}
	if nd, ok := game.ChanceAt(g, state); ok {
		return p.expectation(nd, state, player, depth)
	}
	if g.ActivePlayer(state) == player {
		_, utilities, err := p.maximize(state, player, depth, alpha, beta)
		return utilities, err
	}
	return p.minimize(state, player, depth, alpha, beta)
}

// maximize picks the searching player's best action, raising alpha as better
// continuations are secured. Strict improvement keeps the first action
// encountered on ties, matching unpruned minimax.
func (p *PrunedMinimax) maximize(state game.State, player game.PlayerName, depth int, alpha, beta float64) (game.Action, game.Utilities, error) {
	g := p.game
	actions := g.Actions(state)
	if len(actions) == 0 {
		return nil, nil, &game.TerminalStateError{State: state}
	}

	var best game.Action
	var bestUtilities game.Utilities
	for _, action := range actions {
		next, err := g.Result(state, action)
		if err != nil {
			return nil, nil, err
		}
		utilities, err := p.value(next, player, depth+1, alpha, beta)
		if err != nil {
			return nil, nil, err
		}
		if bestUtilities == nil || utilities[player] > bestUtilities[player] {
			best = action
			bestUtilities = utilities
		}
		alpha = math.Max(alpha, bestUtilities[player])
		if alpha >= beta { // opponents would deviate earlier
			break
		}
	}
	return best, bestUtilities, nil
}

// minimize plays an opponent move under the paranoid assumption, lowering
// beta as the opponent finds continuations worse for the searching player.
func (p *PrunedMinimax) minimize(state game.State, player game.PlayerName, depth int, alpha, beta float64) (game.Utilities, error) {
	g := p.game
	actions := g.Actions(state)
	if len(actions) == 0 {
		return nil, &game.TerminalStateError{State: state}
	}

	var worstUtilities game.Utilities
	for _, action := range actions {
		next, err := g.Result(state, action)
		if err != nil {
			return nil, err
		}
		utilities, err := p.value(next, player, depth+1, alpha, beta)
		if err != nil {
			return nil, err
		}
		if worstUtilities == nil || utilities[player] < worstUtilities[player] {
			worstUtilities = utilities
		}
		beta = math.Min(beta, worstUtilities[player])
		if alpha >= beta { // the searching player has a better line elsewhere
			break
		}
	}
	return worstUtilities, nil
}

// expectation mirrors Minimax's chance handling. Each outcome gets a fresh
// window: bounds on a weighted average do not transfer to its parts.
func (p *PrunedMinimax) expectation(nd game.NonDeterministic, state game.State, player game.PlayerName, depth int) (game.Utilities, error) {
	dist, err := nd.ChanceDistribution(state)
	if err != nil {
		return nil, err
	}
	if err := dist.Validate(); err != nil {
		return nil, err
	}

	expected := game.Zero(nd.Names())
	for _, outcome := range dist {
		next, err := nd.Result(state, outcome.Action)
		if err != nil {
			return nil, err
		}
		utilities, err := p.value(next, player, depth+1, math.Inf(-1), math.Inf(1))
		if err != nil {
			return nil, err
		}
		expected.AddScaled(utilities, outcome.Prob)
	}
	return expected, nil
}
