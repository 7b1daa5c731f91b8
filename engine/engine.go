// Package engine drives a local synchronous game between configured agents:
// it repeatedly asks the active player's agent for an action, resolves chance
// transitions by sampling the game's distribution, and stops at a terminal
// state. The engine is the only component that touches randomness and logging
// on the game loop; the search core stays pure.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"gamesai/agent"
	"gamesai/game"
	"gamesai/searcher"
)

// DefaultMaxMoves caps runaway games whose implementations never reach a
// terminal state.
const DefaultMaxMoves = 10000

type Option func(e *Engine)

// WithMaxMoves caps the number of moves before the engine gives up.
func WithMaxMoves(moves int) Option {
	return func(e *Engine) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// WithRand injects the source used to resolve chance transitions.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// MoveMetrics is the metrics snapshot of the search behind one move.
type MoveMetrics struct {
	Move   int // 1-based move number
	Player game.PlayerName
	Search searcher.SearchMetrics
}

// Record is the outcome of a completed game. Searches holds one entry per
// move decided by a metrics-collecting agent, in playing order.
type Record struct {
	Final     game.State
	Utilities game.Utilities
	Moves     int
	Searches  []MoveMetrics
}

type Engine struct {
	game     game.Game
	agents   map[game.PlayerName]agent.Agent
	rng      *rand.Rand
	maxMoves int
}

// New validates that every player has an agent and returns a ready engine.
func New(g game.Game, agents map[game.PlayerName]agent.Agent, options ...Option) (*Engine, error) {
	for _, name := range g.Names() {
		if _, ok := agents[name]; !ok {
			return nil, fmt.Errorf("no agent for player %q", name)
		}
	}
	e := &Engine{
		game:     g,
		agents:   agents,
		maxMoves: DefaultMaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(rand.Uint64()))
	}
	return e, nil
}

// Run plays the game from its start state to the end and returns the record.
func (e *Engine) Run() (Record, error) {
	state := e.game.Start()
	log.Info().Str("player", string(e.game.ActivePlayer(state))).Msg("game started")

	var searches []MoveMetrics
	for moves := 0; moves < e.maxMoves; moves++ {
		if e.game.IsTerminal(state) {
			utilities := e.game.Utilities(state)
			log.Info().Int("moves", moves).Msgf("game over, utilities: %v", utilities)
			return Record{Final: state, Utilities: utilities, Moves: moves, Searches: searches}, nil
		}

		player := e.game.ActivePlayer(state)
		action, err := e.nextAction(state)
		if err != nil {
			return Record{}, err
		}
		if metrics, ok := e.searchMetrics(player); ok {
			searches = append(searches, MoveMetrics{Move: moves + 1, Player: player, Search: metrics})
		}
		next, err := e.game.Result(state, action)
		if err != nil {
			return Record{}, err
		}
		log.Debug().
			Str("player", string(player)).
			Msgf("move %v\n%v", action, next)
		state = next
	}
	return Record{}, fmt.Errorf("no terminal state after %d moves", e.maxMoves)
}

func (e *Engine) nextAction(state game.State) (game.Action, error) {
	if nd, ok := game.ChanceAt(e.game, state); ok {
		dist, err := nd.ChanceDistribution(state)
		if err != nil {
			return nil, err
		}
		if err := dist.Validate(); err != nil {
			return nil, err
		}
		return dist.Sample(e.rng), nil
	}
	return e.agents[e.game.ActivePlayer(state)].GetAction(state)
}

// searchMetrics snapshots the metrics of the search the player's agent just
// ran, if the agent collects any. Chance moves have no agent behind them.
func (e *Engine) searchMetrics(player game.PlayerName) (searcher.SearchMetrics, bool) {
	if player == game.Chance {
		return searcher.SearchMetrics{}, false
	}
	reporter, ok := e.agents[player].(agent.MetricsReporter)
	if !ok {
		return searcher.SearchMetrics{}, false
	}
	return reporter.SearchMetrics()
}
