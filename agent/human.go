package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"gamesai/game"
)

// HumanAgent prompts for one of the enumerated legal actions and reads the
// chosen index. The reader and writer are injected; the agent itself does no
// terminal handling.
type HumanAgent struct {
	game game.Game
	in   *bufio.Scanner
	out  io.Writer
}

func NewHuman(g game.Game, in io.Reader, out io.Writer) *HumanAgent {
	return &HumanAgent{game: g, in: bufio.NewScanner(in), out: out}
}

func (a *HumanAgent) GetAction(state game.State) (game.Action, error) {
	if a.game.IsTerminal(state) {
		return nil, &game.TerminalStateError{State: state}
	}
	actions := a.game.Actions(state)

	fmt.Fprintf(a.out, "%s\n%s to play:\n", state, a.game.ActivePlayer(state))
	for i, action := range actions {
		fmt.Fprintf(a.out, "  [%d] %v\n", i, action)
	}

	for {
		fmt.Fprint(a.out, "enter action number: ")
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		choice, err := strconv.Atoi(a.in.Text())
		if err != nil || choice < 0 || choice >= len(actions) {
			fmt.Fprintln(a.out, "invalid action")
			continue
		}
		return actions[choice], nil
	}
}
