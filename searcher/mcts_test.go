package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"gamesai/game"
	"gamesai/game/tictactoe"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestMCTSForcedWin(t *testing.T) {
	g := forcedWinGame()
	m := NewMCTS(g, WithRollouts(1000), WithRand(seeded(1)))

	root, err := m.search(g.Start())

	require.NoError(t, err)
	require.Equal(t, "A", root.bestAction(p1), "the forced win should dominate the visits")
	// Statistical regression bound, not exact equality: the losing action
	// only collects exploration visits.
	winVisits := root.children[0].visits
	require.Greater(t, winVisits, 900, "winning action should absorb almost the whole budget")
}

func TestMCTSRootVisitsSumToRollouts(t *testing.T) {
	g := tictactoe.New()
	rollouts := 500
	m := NewMCTS(g, WithRollouts(rollouts), WithRand(seeded(7)))

	root, err := m.search(g.Start())

	require.NoError(t, err)
	require.Equal(t, rollouts, root.visits)
	childSum := 0
	for _, child := range root.children {
		if child != nil {
			childSum += child.visits
		}
	}
	require.Equal(t, rollouts, childSum, "every iteration passes through exactly one root child")
}

func TestMCTSSingleAction(t *testing.T) {
	g := singleActionGame()
	m := NewMCTS(g, WithRollouts(10), WithRand(seeded(3)))

	action, _, err := m.FindAction(g.Start(), p1)

	require.NoError(t, err)
	require.Equal(t, "only", action)
}

func TestMCTSTerminalState(t *testing.T) {
	g := forcedWinGame()
	m := NewMCTS(g, WithRollouts(10))

	_, _, err := m.FindAction(graphState{id: "a-end"}, p1)

	var terminalErr *game.TerminalStateError
	require.ErrorAs(t, err, &terminalErr)
}

func TestMCTSSameSeedSameAction(t *testing.T) {
	g := tictactoe.New()

	first, _, err := NewMCTS(g, WithRollouts(100), WithRand(seeded(42))).
		FindAction(g.Start(), tictactoe.X)
	require.NoError(t, err)
	second, _, err := NewMCTS(g, WithRollouts(100), WithRand(seeded(42))).
		FindAction(g.Start(), tictactoe.X)
	require.NoError(t, err)

	require.Equal(t, first, second, "seeded searches should be reproducible")
}

func TestMCTSChanceGame(t *testing.T) {
	t.Run("favorable coin gambles", func(t *testing.T) {
		g := coinGame(0.9)
		m := NewMCTS(g, WithRollouts(2000), WithRand(seeded(5)))

		action, _, err := m.FindAction(g.Start(), p1)

		require.NoError(t, err)
		require.Equal(t, "gamble", action)
	})

	t.Run("invalid distribution surfaces", func(t *testing.T) {
		g := badDistGame()
		m := NewMCTS(g, WithRollouts(100), WithRand(seeded(5)))

		_, _, err := m.FindAction(g.Start(), p1)

		var distErr *game.InvalidDistributionError
		require.ErrorAs(t, err, &distErr)
	})

	t.Run("non-deterministic tic-tac-toe stays legal", func(t *testing.T) {
		g := tictactoe.NewWithResets()
		m := NewMCTS(g, WithRollouts(200), WithRand(seeded(11)))

		state := g.Start()
		action, _, err := m.FindAction(state, g.ActivePlayer(state))

		require.NoError(t, err)
		_, err = g.Result(state, action)
		require.NoError(t, err, "chosen action should be legal at the root state")
	})
}

func TestMCTSMetrics(t *testing.T) {
	g := tictactoe.New()
	collector := NewMetricsCollector()
	m := NewMCTS(g, WithRollouts(50), WithRand(seeded(2)), WithCollector(collector))

	_, _, err := m.FindAction(g.Start(), tictactoe.X)

	require.NoError(t, err)
	metrics := collector.Complete()
	require.Equal(t, int64(50), metrics.Rollouts)
	require.LessOrEqual(t, metrics.Expansions, metrics.Rollouts,
		"at most one node is added per iteration")
	require.Positive(t, metrics.Expansions)

	t.Run("collector restarts per search", func(t *testing.T) {
		_, _, err := m.FindAction(g.Start(), tictactoe.X)

		require.NoError(t, err)
		require.Equal(t, int64(50), collector.Complete().Rollouts,
			"counters should not accumulate across searches")
	})
}
