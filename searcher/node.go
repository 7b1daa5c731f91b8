package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"gamesai/game"
)

// node is one state in the MCTS tree. It is owned exclusively by the search
// call that created it and is discarded when the call returns. children is
// parallel to actions, nil entries marking not-yet-expanded actions; the
// parallel layout keeps the game's enumeration order for tie-breaking.
type node struct {
	parent   *node
	state    game.State
	player   game.PlayerName
	actions  []game.Action
	children []*node
	dist     game.Distribution // non-nil only at chance points
	values   game.Utilities    // accumulated rollout vectors, all players
	visits   int
	terminal bool
}

func newNode(parent *node, g game.Game, state game.State) (*node, error) {
	n := &node{
		parent: parent,
		state:  state,
		player: g.ActivePlayer(state),
		values: game.Utilities{},
	}
	if g.IsTerminal(state) {
		n.terminal = true
		return n, nil
	}

	if nd, ok := game.ChanceAt(g, state); ok {
		dist, err := nd.ChanceDistribution(state)
		if err != nil {
			return nil, err
		}
		if err := dist.Validate(); err != nil {
			return nil, err
		}
		n.dist = dist
		n.actions = make([]game.Action, len(dist))
		for i, outcome := range dist {
			n.actions[i] = outcome.Action
		}
	} else {
		n.actions = g.Actions(state)
	}
	n.children = make([]*node, len(n.actions))
	return n, nil
}

// chance reports whether the node's transition is resolved by sampling.
func (n *node) chance() bool {
	return n.dist != nil
}

// unexpanded returns the first not-yet-expanded action index, in enumeration
// order. At most one new child is materialized per iteration.
func (n *node) unexpanded() (int, bool) {
	for i, child := range n.children {
		if child == nil {
			return i, true
		}
	}
	return -1, false
}

// expand materializes the child for the ith action.
func (n *node) expand(i int, g game.Game) (*node, error) {
	next, err := g.Result(n.state, n.actions[i])
	if err != nil {
		return nil, err
	}
	child, err := newNode(n, g, next)
	if err != nil {
		return nil, err
	}
	n.children[i] = child
	return child, nil
}

// pickChild selects the fully-expanded node's child maximizing UCB1 for the
// node's active player.
func (n *node) pickChild(exploration float64) *node {
	if n.visits == 0 {
		panic("node has children but no visits")
	}
	c2LnN := exploration * exploration * math.Log(float64(n.visits))

	var best *node
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		score := ucb1(child.values[n.player], child.visits, c2LnN)
		if score == math.Inf(1) {
			return child
		}
		if score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

// sampleChild resolves a chance node by sampling its outcome distribution,
// expanding the sampled outcome on first visit.
func (n *node) sampleChild(g game.Game, rng *rand.Rand) (*node, bool, error) {
	action := n.dist.Sample(rng)
	for i, candidate := range n.actions {
		if candidate == action {
			if n.children[i] == nil {
				child, err := n.expand(i, g)
				return child, true, err
			}
			return n.children[i], false, nil
		}
	}
	panic("sampled outcome not in distribution")
}

// backup walks from n to the root, incrementing visits and accumulating the
// full rollout vector so any player's statistics can be read later.
func (n *node) backup(utilities game.Utilities) {
	for cursor := n; cursor != nil; cursor = cursor.parent {
		cursor.visits++
		cursor.values.Add(utilities)
	}
}

// bestAction picks the root action by robustness: visit count first, mean
// value for the searching player second, enumeration order last.
func (n *node) bestAction(player game.PlayerName) game.Action {
	var best game.Action
	maxVisits := -1
	maxMean := math.Inf(-1)
	for i, child := range n.children {
		if child == nil {
			continue
		}
		mean := math.Inf(-1)
		if child.visits > 0 {
			mean = child.values[player] / float64(child.visits)
		}
		if child.visits > maxVisits || (child.visits == maxVisits && mean > maxMean) {
			maxVisits = child.visits
			maxMean = mean
			best = n.actions[i]
		}
	}
	return best
}

// meanValues is the empirical utility estimate accumulated at the node.
func (n *node) meanValues() game.Utilities {
	if n.visits == 0 {
		return n.values.Clone()
	}
	return n.values.Scale(1 / float64(n.visits))
}
