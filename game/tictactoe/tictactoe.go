// Package tictactoe implements standard tic-tac-toe and a non-deterministic
// variant where chance clears a random square after O's move. Both are used
// by the demo binary and as realistic search fixtures.
package tictactoe

import (
	"fmt"
	"hash/fnv"
	"strings"

	"gamesai/game"
)

const (
	X game.PlayerName = "X"
	O game.PlayerName = "O"
)

const empty = byte('.')

// position is the complete board state. It is a comparable value: two
// game-identical positions compare equal with == and hash identically.
type position struct {
	board [9]byte
	next  game.PlayerName
}

func (p position) Hash() game.StateHash {
	h := fnv.New64a()
	h.Write(p.board[:])
	h.Write([]byte(p.next))
	return game.StateHash(h.Sum64())
}

func (p position) String() string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.Write(p.board[3*row : 3*row+3])
		b.WriteByte('\n')
	}
	return b.String()
}

func (p position) winner() (game.PlayerName, bool) {
	lines := [8][3]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
		{0, 4, 8}, {2, 4, 6}, // diagonals
	}
	for _, line := range lines {
		mark := p.board[line[0]]
		if mark != empty && mark == p.board[line[1]] && mark == p.board[line[2]] {
			return game.PlayerName(mark), true
		}
	}
	return "", false
}

func (p position) full() bool {
	for _, mark := range p.board {
		if mark == empty {
			return false
		}
	}
	return true
}

// Game is standard deterministic tic-tac-toe: X and O alternate, three in a
// row wins (+1 winner, -1 loser), a full board with no winner is a 0/0 draw.
type Game struct{}

func New() Game { return Game{} }

func (Game) Names() []game.PlayerName {
	return []game.PlayerName{X, O}
}

func (Game) Start() game.State {
	p := position{next: X}
	for i := range p.board {
		p.board[i] = empty
	}
	return p
}

func (Game) ActivePlayer(state game.State) game.PlayerName {
	return state.(position).next
}

func (Game) Actions(state game.State) []game.Action {
	p := state.(position)
	var actions []game.Action
	for i, mark := range p.board {
		if mark == empty {
			actions = append(actions, i)
		}
	}
	return actions
}

func (Game) Result(state game.State, action game.Action) (game.State, error) {
	p := state.(position)
	square, ok := action.(int)
	if !ok || square < 0 || square > 8 || p.board[square] != empty {
		return nil, &game.IllegalActionError{Action: action, State: state}
	}
	p.board[square] = byte(p.next[0])
	if p.next == X {
		p.next = O
	} else {
		p.next = X
	}
	return p, nil
}

func (g Game) IsTerminal(state game.State) bool {
	p := state.(position)
	if _, won := p.winner(); won {
		return true
	}
	return p.full()
}

func (g Game) Utilities(state game.State) game.Utilities {
	p := state.(position)
	winner, won := p.winner()
	if !won {
		return game.Utilities{X: 0, O: 0}
	}
	utilities := game.Utilities{X: -1, O: -1}
	utilities[winner] = 1
	return utilities
}

// ResetGame is a non-deterministic variant: after O moves, chance clears one
// of the nine squares uniformly at random before X plays again.
type ResetGame struct {
	Game
}

func NewWithResets() ResetGame { return ResetGame{} }

func (g ResetGame) Actions(state game.State) []game.Action {
	p := state.(position)
	if p.next != game.Chance {
		return g.Game.Actions(state)
	}
	actions := make([]game.Action, 9)
	for i := range actions {
		actions[i] = i
	}
	return actions
}

func (g ResetGame) Result(state game.State, action game.Action) (game.State, error) {
	p := state.(position)
	square, ok := action.(int)
	if !ok || square < 0 || square > 8 {
		return nil, &game.IllegalActionError{Action: action, State: state}
	}
	if p.next == game.Chance {
		p.board[square] = empty
		p.next = X
		return p, nil
	}
	if p.board[square] != empty {
		return nil, &game.IllegalActionError{Action: action, State: state}
	}
	p.board[square] = byte(p.next[0])
	switch p.next {
	case X:
		p.next = O
	case O:
		p.next = game.Chance
	}
	return p, nil
}

func (g ResetGame) IsTerminal(state game.State) bool {
	p := state.(position)
	if _, won := p.winner(); won {
		return true
	}
	// A full board at a chance point is not terminal: the reset always plays.
	if p.next == game.Chance {
		return false
	}
	return p.full()
}

func (g ResetGame) ChanceDistribution(state game.State) (game.Distribution, error) {
	p := state.(position)
	if p.next != game.Chance {
		return nil, fmt.Errorf("no chance point at state:\n%v", state)
	}
	return game.Uniform(g.Actions(state)), nil
}
