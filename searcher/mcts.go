package searcher

import (
	"golang.org/x/exp/rand"

	"gamesai/game"
)

type MCTSOption func(m *MCTS)

// WithRollouts sets the iteration budget. Tree size, and so memory, grows by
// at most one node per iteration.
func WithRollouts(rollouts int) MCTSOption {
	return func(m *MCTS) {
		if rollouts > 0 {
			m.rollouts = rollouts
		}
	}
}

// WithExploration sets the UCT exploration constant.
func WithExploration(c float64) MCTSOption {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithRand injects the random source used for rollouts and chance sampling.
// Seed it for reproducible searches.
func WithRand(rng *rand.Rand) MCTSOption {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithCollector injects the collector receiving search metrics. Every search
// restarts the collector; the caller snapshots it with Complete after the
// search returns.
func WithCollector(collector MetricsCollector) MCTSOption {
	return func(m *MCTS) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

// MCTS approximates the best action with a fixed budget of UCT iterations:
// select down the tree by upper-confidence scores, expand one new node, play
// a uniformly random rollout to a terminal state, and backpropagate the full
// utility vector. Each call builds a fresh tree rooted at the given state.
type MCTS struct {
	game        game.Game
	rollouts    int
	exploration float64
	rng         *rand.Rand
	metrics     MetricsCollector
}

func NewMCTS(g game.Game, options ...MCTSOption) *MCTS {
	m := &MCTS{ // Default values
		game:        g,
		rollouts:    DefaultRollouts,
		exploration: DefaultExploration,
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(rand.Uint64()))
	}
	return m
}

func (m *MCTS) FindAction(state game.State, player game.PlayerName) (game.Action, game.Utilities, error) {
	root, err := m.search(state)
	if err != nil {
		return nil, nil, err
	}
	return root.bestAction(player), root.meanValues(), nil
}

// search builds a fresh tree at state and runs the configured number of
// iterations against it. The tree is discarded when the caller returns.
func (m *MCTS) search(state game.State) (*node, error) {
	if m.game.IsTerminal(state) {
		return nil, &game.TerminalStateError{State: state}
	}

	m.metrics.Start()
	root, err := newNode(nil, m.game, state)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.rollouts; i++ {
		if err := m.simulate(root); err != nil {
			return nil, err
		}
		m.metrics.AddRollout()
	}

	return root, nil
}

// simulate runs one iteration: selection and expansion, rollout, backup.
func (m *MCTS) simulate(root *node) error {
	leaf, err := m.selectThenExpand(root)
	if err != nil {
		return err
	}
	utilities, err := m.rollout(leaf.state)
	if err != nil {
		return err
	}
	leaf.backup(utilities)
	return nil
}

// selectThenExpand descends from the root by UCB1 at decision nodes and
// distribution sampling at chance nodes, stopping at a terminal node or at
// the first node with an unexpanded action, which it materializes.
func (m *MCTS) selectThenExpand(root *node) (*node, error) {
	cursor := root
	for {
		if cursor.terminal {
			return cursor, nil
		}
		if cursor.chance() {
			child, expanded, err := cursor.sampleChild(m.game, m.rng)
			if err != nil {
				return nil, err
			}
			if expanded {
				m.metrics.AddExpansion()
				return child, nil
			}
			cursor = child
			continue
		}
		if i, ok := cursor.unexpanded(); ok {
			child, err := cursor.expand(i, m.game)
			if err != nil {
				return nil, err
			}
			m.metrics.AddExpansion()
			return child, nil
		}
		cursor = cursor.pickChild(m.exploration)
	}
}

// rollout plays the default policy to a terminal state: uniformly random
// legal actions at decision points, distribution-sampled outcomes at chance
// points. Returns the terminal utility vector.
func (m *MCTS) rollout(state game.State) (game.Utilities, error) {
	g := m.game
	for !g.IsTerminal(state) {
		var action game.Action
		if nd, ok := game.ChanceAt(g, state); ok {
			dist, err := nd.ChanceDistribution(state)
			if err != nil {
				return nil, err
			}
			if err := dist.Validate(); err != nil {
				return nil, err
			}
			action = dist.Sample(m.rng)
		} else {
			actions := g.Actions(state)
			if len(actions) == 0 {
				return nil, &game.TerminalStateError{State: state}
			}
			action = actions[m.rng.Intn(len(actions))]
		}

		next, err := g.Result(state, action)
		if err != nil {
			return nil, err
		}
		state = next
	}
	return g.Utilities(state), nil
}
