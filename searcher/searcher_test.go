package searcher

import (
	"hash/fnv"

	"gamesai/game"
)

// graphState identifies a node of a fixture game by label.
type graphState struct {
	id string
}

func (s graphState) Hash() game.StateHash {
	h := fnv.New64a()
	h.Write([]byte(s.id))
	return game.StateHash(h.Sum64())
}

func (s graphState) String() string { return s.id }

type edge struct {
	action string
	to     string
}

// graphGame is an explicit game tree for tests: states are labels, actions
// are labeled edges in enumeration order, utilities attach to terminal
// labels. States with a probs entry are chance points.
type graphGame struct {
	names  []game.PlayerName
	start  string
	active map[string]game.PlayerName
	edges  map[string][]edge
	utils  map[string]game.Utilities
	probs  map[string][]float64
}

func (g graphGame) Names() []game.PlayerName { return g.names }

func (g graphGame) Start() game.State { return graphState{id: g.start} }

func (g graphGame) ActivePlayer(state game.State) game.PlayerName {
	id := state.(graphState).id
	if _, ok := g.probs[id]; ok {
		return game.Chance
	}
	return g.active[id]
}

func (g graphGame) Actions(state game.State) []game.Action {
	edges := g.edges[state.(graphState).id]
	actions := make([]game.Action, len(edges))
	for i, e := range edges {
		actions[i] = e.action
	}
	return actions
}

func (g graphGame) Result(state game.State, action game.Action) (game.State, error) {
	for _, e := range g.edges[state.(graphState).id] {
		if e.action == action {
			return graphState{id: e.to}, nil
		}
	}
	return nil, &game.IllegalActionError{Action: action, State: state}
}

func (g graphGame) IsTerminal(state game.State) bool {
	return len(g.edges[state.(graphState).id]) == 0
}

func (g graphGame) Utilities(state game.State) game.Utilities {
	return g.utils[state.(graphState).id]
}

func (g graphGame) ChanceDistribution(state game.State) (game.Distribution, error) {
	id := state.(graphState).id
	edges := g.edges[id]
	probs := g.probs[id]
	dist := make(game.Distribution, len(edges))
	for i := range edges {
		dist[i] = game.Outcome{Action: edges[i].action, Prob: probs[i]}
	}
	return dist, nil
}

const (
	p1 game.PlayerName = "P1"
	p2 game.PlayerName = "P2"
	p3 game.PlayerName = "P3"
)

// forcedWinGame is a 2-action, depth-2 zero-sum game: action A forces a
// terminal (+1,-1) for P1, action B forces (-1,+1).
func forcedWinGame() graphGame {
	return graphGame{
		names: []game.PlayerName{p1, p2},
		start: "root",
		active: map[string]game.PlayerName{
			"root": p1, "a": p2, "b": p2,
		},
		edges: map[string][]edge{
			"root": {{"A", "a"}, {"B", "b"}},
			"a":    {{"pass", "a-end"}},
			"b":    {{"pass", "b-end"}},
		},
		utils: map[string]game.Utilities{
			"a-end": {p1: 1, p2: -1},
			"b-end": {p1: -1, p2: 1},
		},
	}
}

func singleActionGame() graphGame {
	return graphGame{
		names:  []game.PlayerName{p1, p2},
		start:  "root",
		active: map[string]game.PlayerName{"root": p1},
		edges: map[string][]edge{
			"root": {{"only", "end"}},
		},
		utils: map[string]game.Utilities{
			"end": {p1: 1, p2: -1},
		},
	}
}

// coinGame offers P1 a fold worth 0.4 or a gamble resolved by a coin with
// the given probability of heads (+1 for P1) versus tails (-1).
func coinGame(headsProb float64) graphGame {
	return graphGame{
		names:  []game.PlayerName{p1, p2},
		start:  "root",
		active: map[string]game.PlayerName{"root": p1},
		edges: map[string][]edge{
			"root": {{"gamble", "coin"}, {"fold", "folded"}},
			"coin": {{"heads", "won"}, {"tails", "lost"}},
		},
		utils: map[string]game.Utilities{
			"folded": {p1: 0.4, p2: -0.4},
			"won":    {p1: 1, p2: -1},
			"lost":   {p1: -1, p2: 1},
		},
		probs: map[string][]float64{
			"coin": {headsProb, 1 - headsProb},
		},
	}
}

// threePlayerGame separates individually-rational opponents from paranoid
// ones. At "left" P2's own payoff favors the action that also helps P1; a
// paranoid P2 would pick the other one.
func threePlayerGame() graphGame {
	return graphGame{
		names: []game.PlayerName{p1, p2, p3},
		start: "root",
		active: map[string]game.PlayerName{
			"root": p1, "left": p2,
		},
		edges: map[string][]edge{
			"root": {{"L", "left"}, {"R", "right"}},
			"left": {{"a", "la"}, {"b", "lb"}},
		},
		utils: map[string]game.Utilities{
			"la":    {p1: 2, p2: 6, p3: 0},
			"lb":    {p1: 0, p2: 5, p3: 0},
			"right": {p1: 1, p2: 1, p3: 1},
		},
	}
}

// tieGame has two root actions with equal payoff for P1.
func tieGame() graphGame {
	return graphGame{
		names:  []game.PlayerName{p1, p2},
		start:  "root",
		active: map[string]game.PlayerName{"root": p1},
		edges: map[string][]edge{
			"root": {{"first", "end1"}, {"second", "end2"}},
		},
		utils: map[string]game.Utilities{
			"end1": {p1: 1, p2: 0},
			"end2": {p1: 1, p2: 0},
		},
	}
}

// badDistGame has a chance point whose probabilities sum to 0.9.
func badDistGame() graphGame {
	g := coinGame(0.5)
	g.probs["coin"] = []float64{0.7, 0.2}
	return g
}
