package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gamesai/game"
)

// Writer stores evaluation records as CSV files under a timestamped folder.
type Writer struct {
	baseDir string
	names   []game.PlayerName
}

func NewWriter(name string, names []game.PlayerName) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("evaluations", name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir, names: names}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	path := filepath.Join(w.baseDir, "agent_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "algorithm", "rollouts", "exploration", "max_depth", "seed", "metrics"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}
	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			string(config.Algorithm),
			strconv.Itoa(config.Rollouts),
			strconv.FormatFloat(config.Exploration, 'g', -1, 64),
			strconv.Itoa(config.MaxDepth),
			strconv.FormatUint(config.Seed, 10),
			strconv.FormatBool(config.Metrics),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent1", "agent2", "moves", "duration_ms", "rollouts", "search_duration_ms"}
	for _, name := range w.names {
		header = append(header, "utility_"+string(name))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.Moves),
			strconv.FormatInt(record.Duration.Milliseconds(), 10),
			strconv.FormatInt(record.Rollouts, 10),
			strconv.FormatInt(record.SearchDuration.Milliseconds(), 10),
		}
		for _, name := range w.names {
			row = append(row, strconv.FormatFloat(record.Utilities[name], 'g', -1, 64))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}
	return nil
}
