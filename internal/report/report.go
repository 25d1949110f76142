// Package report writes an optional YAML artifact describing one compile
// pass: which toolchain ran, what happened to every unit, and the final
// tally. The file is meant for humans and CI log archiving, not as state
// the tool ever reads back.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/vk/coursebuild/internal/executor"
	"gopkg.in/yaml.v3"
)

// UnitResult is the serialized form of one compile outcome.
type UnitResult struct {
	Module   string `yaml:"module"`
	Unit     string `yaml:"unit"`
	Outcome  string `yaml:"outcome"`
	ExitCode int    `yaml:"exit_code"`
}

// Tally mirrors executor.Tally for serialization.
type Tally struct {
	Succeeded int `yaml:"succeeded"`
	Failed    int `yaml:"failed"`
	Skipped   int `yaml:"skipped"`
}

// Report is the full run record.
type Report struct {
	RunID      string       `yaml:"run_id"`
	Course     string       `yaml:"course"`
	Root       string       `yaml:"root"`
	Toolchain  string       `yaml:"toolchain"`
	StartedAt  time.Time    `yaml:"started_at"`
	FinishedAt time.Time    `yaml:"finished_at"`
	Results    []UnitResult `yaml:"results"`
	Tally      Tally        `yaml:"tally"`
}

// New starts a report for a run beginning now.
func New(courseName, root, toolchainName string) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Course:    courseName,
		Root:      root,
		Toolchain: toolchainName,
		StartedAt: time.Now().UTC(),
	}
}

// Finish records the run's results and stamps the finish time.
func (r *Report) Finish(results []executor.UnitResult, tally executor.Tally) {
	r.FinishedAt = time.Now().UTC()
	r.Results = make([]UnitResult, 0, len(results))
	for _, res := range results {
		r.Results = append(r.Results, UnitResult{
			Module:   res.Module,
			Unit:     string(res.Unit),
			Outcome:  string(res.Outcome),
			ExitCode: res.ExitCode,
		})
	}
	r.Tally = Tally{
		Succeeded: tally.Succeeded,
		Failed:    tally.Failed,
		Skipped:   tally.Skipped,
	}
}

// Write serializes the report to path, creating parent directories as
// needed.
func (r *Report) Write(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to serialize run report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write run report %s: %w", path, err)
	}
	return nil
}
