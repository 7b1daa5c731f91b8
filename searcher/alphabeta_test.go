package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gamesai/game"
	"gamesai/game/tictactoe"
)

func TestPrunedMinimaxForcedWin(t *testing.T) {
	g := forcedWinGame()
	p := NewPrunedMinimax(g)

	action, utilities, err := p.FindAction(g.Start(), p1)

	require.NoError(t, err)
	require.Equal(t, "A", action)
	require.InDelta(t, 1, utilities[p1], 1e-9)
	require.InDelta(t, -1, utilities[p2], 1e-9)
}

func TestPrunedMinimaxSingleAction(t *testing.T) {
	g := singleActionGame()
	p := NewPrunedMinimax(g)

	action, _, err := p.FindAction(g.Start(), p1)

	require.NoError(t, err)
	require.Equal(t, "only", action)
}

func TestPrunedMinimaxTerminalState(t *testing.T) {
	g := forcedWinGame()
	p := NewPrunedMinimax(g)

	_, _, err := p.FindAction(graphState{id: "b-end"}, p1)

	var terminalErr *game.TerminalStateError
	require.ErrorAs(t, err, &terminalErr)
}

func TestPrunedMinimaxChanceExpectation(t *testing.T) {
	g := coinGame(0.8)
	p := NewPrunedMinimax(g)

	action, utilities, err := p.FindAction(g.Start(), p1)

	require.NoError(t, err)
	require.Equal(t, "gamble", action)
	require.InDelta(t, 0.6, utilities[p1], 1e-9)
}

func TestPrunedMinimaxParanoidThreePlayer(t *testing.T) {
	// Under the paranoid bound P2 is assumed to minimize P1's payoff, so
	// the left subtree is worth 0 to P1 and the sure 1 on the right wins.
	// Unpruned minimax disagrees here: an individually-rational P2 would
	// hand P1 a 2.
	g := threePlayerGame()
	p := NewPrunedMinimax(g)

	action, utilities, err := p.FindAction(g.Start(), p1)

	require.NoError(t, err)
	require.Equal(t, "R", action)
	require.InDelta(t, 1, utilities[p1], 1e-9)
}

// TestPrunedMinimaxMatchesMinimax checks that for a two-player zero-sum game
// pruning never changes the decision: both searchers agree on the chosen
// action and the evaluated utilities at every reachable non-terminal state.
func TestPrunedMinimaxMatchesMinimax(t *testing.T) {
	if testing.Short() {
		t.Skip("full tic-tac-toe sweep")
	}
	g := tictactoe.New()
	exact := NewMinimax(g)
	pruned := NewPrunedMinimax(g)

	visited := map[game.State]bool{}
	frontier := []game.State{g.Start()}
	for len(frontier) > 0 {
		state := frontier[0]
		frontier = frontier[1:]
		if visited[state] || g.IsTerminal(state) {
			continue
		}
		visited[state] = true

		player := g.ActivePlayer(state)
		wantAction, wantUtilities, err := exact.FindAction(state, player)
		require.NoError(t, err)
		gotAction, gotUtilities, err := pruned.FindAction(state, player)
		require.NoError(t, err)

		require.Equal(t, wantAction, gotAction, "pruning changed the action at\n%v", state)
		for _, name := range g.Names() {
			require.InDelta(t, wantUtilities[name], gotUtilities[name], 1e-9,
				"pruning changed %s's utility at\n%v", name, state)
		}

		for _, action := range g.Actions(state) {
			next, err := g.Result(state, action)
			require.NoError(t, err)
			frontier = append(frontier, next)
		}
	}
	require.Greater(t, len(visited), 1000, "sweep should cover the reachable state space")
}
