package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores experiment results as CSV files in a timestamped directory.
type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("results", name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := [][]string{{"id", "kind", "depth", "pruning"}}
	for _, c := range configs {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Kind,
			strconv.Itoa(c.Depth),
			strconv.FormatBool(c.Pruning),
		})
	}
	return w.writeFile("agent_configs.csv", rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := [][]string{{"id", "agent_x", "agent_o", "winner", "moves", "duration_ms"}}
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.AgentX),
			strconv.Itoa(r.AgentO),
			r.Winner,
			strconv.Itoa(r.Moves),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		})
	}
	return w.writeFile("game_records.csv", rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := [][]string{{"game", "step", "player", "move", "depth", "nodes", "score", "elapsed_us"}}
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player,
			r.Move,
			strconv.Itoa(r.Depth),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.Score),
			strconv.FormatInt(r.Elapsed.Microseconds(), 10),
		})
	}
	return w.writeFile("move_records.csv", rows)
}

func (w *Writer) writeFile(name string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
