// Package experiments evaluates agent configurations against each other over
// repeated games and records the outcomes, e.g. to measure how rollout
// budgets or depth caps trade strength for time.
package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"gamesai/agent"
	"gamesai/engine"
	"gamesai/game"
)

// AgentConfig is an agent.Config tagged with an ID for record keeping.
type AgentConfig struct {
	ID int
	agent.Config
}

// GameRecord is the outcome of one evaluated game. Rollouts and
// SearchDuration aggregate the per-move search metrics of the game's
// metrics-collecting agents; both stay zero when no agent collects.
type GameRecord struct {
	ID             int
	Agent1         int // AgentConfig.ID, plays the first name
	Agent2         int // AgentConfig.ID, plays the second name
	Utilities      game.Utilities
	Moves          int
	Duration       time.Duration
	Rollouts       int64
	SearchDuration time.Duration
}

// Evaluation pairs agent configurations on a two-player game.
type Evaluation struct {
	Name     string
	Game     game.Game
	NumGames int // Per matchup
	MatchUps [][2]AgentConfig
}

// Run plays every matchup for the configured number of games and returns the
// records in playing order.
func (e Evaluation) Run() ([]GameRecord, error) {
	names := e.Game.Names()
	records := []GameRecord{}

	log.Info().Msgf("starting %s evaluation...", e.Name)
	for mi, matchup := range e.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(e.MatchUps), matchup[0], matchup[1])

		for i := 0; i < e.NumGames; i++ {
			record, err := e.runGame(names, matchup)
			if err != nil {
				return nil, err
			}
			record.ID = len(records) + 1
			records = append(records, record)

			log.Info().Msgf("completed matchup %d of %d game %d of %d: %v",
				mi+1, len(e.MatchUps), i+1, e.NumGames, record.Utilities)
		}
	}
	log.Info().Msgf("completed %s evaluation", e.Name)

	return records, nil
}

func (e Evaluation) runGame(names []game.PlayerName, matchup [2]AgentConfig) (GameRecord, error) {
	agents := map[game.PlayerName]agent.Agent{}
	for i, config := range matchup {
		a, err := agent.New(e.Game, config.Config)
		if err != nil {
			return GameRecord{}, err
		}
		agents[names[i]] = a
	}

	eng, err := engine.New(e.Game, agents)
	if err != nil {
		return GameRecord{}, err
	}

	start := time.Now()
	result, err := eng.Run()
	if err != nil {
		return GameRecord{}, err
	}
	record := GameRecord{
		Agent1:    matchup[0].ID,
		Agent2:    matchup[1].ID,
		Utilities: result.Utilities,
		Moves:     result.Moves,
		Duration:  time.Since(start),
	}
	for _, search := range result.Searches {
		record.Rollouts += search.Search.Rollouts
		record.SearchDuration += search.Search.Duration
	}
	return record, nil
}

// MeanUtility averages a player's payoff over the records.
func MeanUtility(records []GameRecord, player game.PlayerName) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0.0
	for _, record := range records {
		total += record.Utilities[player]
	}
	return total / float64(len(records))
}
