package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gamesai/agent"
	"gamesai/engine"
	"gamesai/game"
	"gamesai/game/tictactoe"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	runMatchup()
}

// runMatchup plays MCTS against pruned minimax on tic-tac-toe for a few
// games and prints each player's cumulative utility.
func runMatchup() {
	numGames := 10
	g := tictactoe.New()

	totals := game.Zero(g.Names())
	fmt.Printf("Running MCTS (X) vs pruned minimax (O) on tic-tac-toe...\n")
	for i := 0; i < numGames; i++ {
		record, err := runGame(g)
		if err != nil {
			log.Fatal().Err(err).Msg("game failed")
		}
		totals.Add(record.Utilities)
		var rollouts int64
		for _, search := range record.Searches {
			rollouts += search.Search.Rollouts
		}
		fmt.Printf("Game %d over in %d moves (%d rollouts): %v\n",
			i+1, record.Moves, rollouts, record.Utilities)
	}
	fmt.Printf("Totals after %d games: %v\n", numGames, totals)
}

func runGame(g game.Game) (engine.Record, error) {
	x, err := agent.New(g, agent.Config{Algorithm: agent.MCTS, Rollouts: 500, Metrics: true})
	if err != nil {
		return engine.Record{}, err
	}
	o, err := agent.New(g, agent.Config{Algorithm: agent.PrunedMinimax})
	if err != nil {
		return engine.Record{}, err
	}

	e, err := engine.New(g, map[game.PlayerName]agent.Agent{
		tictactoe.X: x,
		tictactoe.O: o,
	})
	if err != nil {
		return engine.Record{}, err
	}
	return e.Run()
}
