// Package agent adapts the search algorithms to the uniform "given a state,
// return an action" contract used by game drivers. The player variants form a
// closed set selected at construction time via Config, never by runtime type
// inspection.
package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gamesai/game"
	"gamesai/searcher"
)

// Agent chooses an action at a non-terminal state. Calls block until the
// underlying search completes; agents share no mutable state, so independent
// agents may run concurrently.
type Agent interface {
	GetAction(state game.State) (game.Action, error)
}

type Algorithm string

const (
	Random        Algorithm = "random"
	Minimax       Algorithm = "minimax"
	PrunedMinimax Algorithm = "pruned-minimax"
	MCTS          Algorithm = "mcts"
)

// Config selects and parameterizes an agent. Zero values fall back to the
// searcher defaults: 200 rollouts, exploration sqrt(2), unlimited depth.
type Config struct {
	Algorithm   Algorithm
	Rollouts    int           // MCTS iteration budget
	Exploration float64       // MCTS exploration constant
	MaxDepth    int           // minimax depth cap, 0 means unlimited
	Heuristic   game.Evaluate // estimate used at the depth cap
	Seed        uint64        // random seed, 0 draws one from the global source
	Metrics     bool          // collect per-search metrics, MCTS only
}

// New builds the configured agent variant for the given game.
func New(g game.Game, cfg Config) (Agent, error) {
	switch cfg.Algorithm {
	case Random:
		return NewRandom(g, cfg.rng()), nil
	case Minimax:
		return NewSearch(g, searcher.NewMinimax(g, cfg.minimaxOptions()...)), nil
	case PrunedMinimax:
		return NewSearch(g, searcher.NewPrunedMinimax(g, cfg.minimaxOptions()...)), nil
	case MCTS:
		options := cfg.mctsOptions()
		a := &Search{game: g}
		if cfg.Metrics {
			a.collector = searcher.NewMetricsCollector()
			options = append(options, searcher.WithCollector(a.collector))
		}
		a.searcher = searcher.NewMCTS(g, options...)
		return a, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", cfg.Algorithm)
	}
}

func (cfg Config) rng() *rand.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewSource(seed))
}

func (cfg Config) minimaxOptions() []searcher.MinimaxOption {
	return []searcher.MinimaxOption{
		searcher.WithMaxDepth(cfg.MaxDepth),
		searcher.WithHeuristic(cfg.Heuristic),
	}
}

func (cfg Config) mctsOptions() []searcher.MCTSOption {
	return []searcher.MCTSOption{
		searcher.WithRollouts(cfg.Rollouts),
		searcher.WithExploration(cfg.Exploration),
		searcher.WithRand(cfg.rng()),
	}
}

// MetricsReporter is implemented by agents that collect per-search metrics.
type MetricsReporter interface {
	// SearchMetrics snapshots the metrics of the most recent search. The
	// second return is false when the agent collects none.
	SearchMetrics() (searcher.SearchMetrics, bool)
}

// Search wraps a searcher behind the Agent contract: it validates that the
// state is non-terminal and passes the acting player's identity into the
// algorithm.
type Search struct {
	game      game.Game
	searcher  searcher.Searcher
	collector searcher.MetricsCollector
}

func NewSearch(g game.Game, s searcher.Searcher) *Search {
	return &Search{game: g, searcher: s}
}

func (a *Search) GetAction(state game.State) (game.Action, error) {
	if a.game.IsTerminal(state) {
		return nil, &game.TerminalStateError{State: state}
	}
	player := a.game.ActivePlayer(state)
	action, _, err := a.searcher.FindAction(state, player)
	if err != nil {
		return nil, err
	}
	return action, nil
}

func (a *Search) SearchMetrics() (searcher.SearchMetrics, bool) {
	if a.collector == nil {
		return searcher.SearchMetrics{}, false
	}
	return a.collector.Complete(), true
}
