package searcher

import (
	"gamesai/game"
)

// minimaxConfig is shared by Minimax and PrunedMinimax.
type minimaxConfig struct {
	maxDepth  int // 0 means unlimited
	heuristic game.Evaluate
}

type MinimaxOption func(cfg *minimaxConfig)

// WithMaxDepth caps the search depth. Without a heuristic the search fails
// with a BudgetExceededError when the cap is reached before a terminal state;
// truncation is never silent.
func WithMaxDepth(depth int) MinimaxOption {
	return func(cfg *minimaxConfig) {
		if depth > 0 {
			cfg.maxDepth = depth
		}
	}
}

// WithHeuristic supplies a position estimate used in place of the exact
// subtree value at the depth cap.
func WithHeuristic(heuristic game.Evaluate) MinimaxOption {
	return func(cfg *minimaxConfig) {
		if heuristic != nil {
			cfg.heuristic = heuristic
		}
	}
}

// Minimax performs exhaustive n-player backward induction. At every decision
// node the active player picks the action whose resulting utility vector
// maximizes that player's own component, and the chosen vector propagates
// upward unchanged. Chance points contribute the probability-weighted
// expectation of their outcomes. Ties break by the game's action enumeration
// order, so results are reproducible.
type Minimax struct {
	game game.Game
	cfg  minimaxConfig
}

func NewMinimax(g game.Game, options ...MinimaxOption) *Minimax {
	m := &Minimax{game: g}
	for _, option := range options {
		option(&m.cfg)
	}
	return m
}

func (m *Minimax) FindAction(state game.State, player game.PlayerName) (game.Action, game.Utilities, error) {
	if m.game.IsTerminal(state) {
		return nil, nil, &game.TerminalStateError{State: state}
	}
	return m.bestAction(state, 0)
}

// value evaluates a state by full backward induction.
func (m *Minimax) value(state game.State, depth int) (game.Utilities, error) {
	g := m.game
	if g.IsTerminal(state) {
		return g.Utilities(state), nil
	}
	if m.cfg.maxDepth > 0 && depth >= m.cfg.maxDepth {
		if m.cfg.heuristic == nil {
			return nil, &game.BudgetExceededError{MaxDepth: m.cfg.maxDepth}
		}
		return m.cfg.heuristic(state), nil
	}
	if nd, ok := game.ChanceAt(g, state); ok {
		return m.expectation(nd, state, depth)
	}
	_, utilities, err := m.bestAction(state, depth)
	return utilities, err
}

// bestAction returns the active player's best action and its propagated
// utility vector. The first action encountered with the maximal own-payoff
// component wins ties.
func (m *Minimax) bestAction(state game.State, depth int) (game.Action, game.Utilities, error) {
	g := m.game
	player := g.ActivePlayer(state)
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
		utilities, err := m.value(next, depth+1)
		if err != nil {
			return nil, nil, err
		}
		if bestUtilities == nil || utilities[player] > bestUtilities[player] {
			best = action
			bestUtilities = utilities
		}
	}
	return best, bestUtilities, nil
}

// expectation evaluates a chance point as the probability-weighted,
// component-wise expectation of its outcomes.
func (m *Minimax) expectation(nd game.NonDeterministic, state game.State, depth int) (game.Utilities, error) {
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
		utilities, err := m.value(next, depth+1)
		if err != nil {
			return nil, err
		}
		expected.AddScaled(utilities, outcome.Prob)
	}
	return expected, nil
}
