package game

// StateHash identifies a state for memoization and search-tree keying.
type StateHash uint64

// State is a complete, immutable description of a game position.
// Implementations must be comparable values: two game-identical states must
// compare equal with == and return the same Hash. String is for debugging and
// logging only, never for control flow.
type State interface {
	Hash() StateHash
	String() string
}

// Action is a game-defined move. The dynamic type must be comparable so that
// actions can key parent-to-child maps inside a search tree.
type Action any

// PlayerName identifies a player within a game, e.g. "X", "Red", "Player1".
type PlayerName string

// Chance is the pseudo-player returned by ActivePlayer at states whose
// transition is resolved by a probability distribution rather than a decision.
const Chance PlayerName = "chance"

// Evaluate estimates the final utilities of a non-terminal state. Depth-limited
// search substitutes the estimate for the exact subtree value at the cutoff.
type Evaluate func(state State) Utilities

// Game is a stateless descriptor of a deterministic, fully observable,
// turn-taking game. Every method is a pure function of its arguments.
type Game interface {
	// Names returns the set of player names, in a fixed order.
	Names() []PlayerName
	// Start returns the initial state.
	Start() State
	// ActivePlayer returns the player to act at state, or Chance at a chance
	// point of a non-deterministic game.
	ActivePlayer(state State) PlayerName
	// Actions enumerates the legal actions at state, in a fixed order.
	// Non-empty for every non-terminal state; undefined on terminal states.
	Actions(state State) []Action
	// Result returns the state reached by playing action at state. Fails with
	// an IllegalActionError if action is not a member of Actions(state).
	Result(state State, action Action) (State, error)
	// IsTerminal reports whether state ends the game.
	IsTerminal(state State) bool
	// Utilities returns each player's payoff at a terminal state. Undefined on
	// non-terminal states.
	Utilities(state State) Utilities
}

// NonDeterministic is a game where some transitions are resolved by chance.
// ActivePlayer returns Chance at such states and the search resolves the
// transition by the outcome distribution instead of assuming a decision.
type NonDeterministic interface {
	Game
	// ChanceDistribution returns the outcome distribution at a chance point.
	// Undefined on states whose active player is not Chance.
	ChanceDistribution(state State) (Distribution, error)
}

// ChanceAt reports whether the transition out of state is resolved by a
// probability distribution, returning the game's non-deterministic view.
func ChanceAt(g Game, state State) (NonDeterministic, bool) {
	nd, ok := g.(NonDeterministic)
	if !ok {
		return nil, false
	}
	if g.ActivePlayer(state) != Chance {
		return nil, false
	}
	return nd, true
}
