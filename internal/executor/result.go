package executor

import (
	"strings"

	"github.com/vk/coursebuild/internal/course"
)

// Outcome classifies a single unit's compile attempt.
type Outcome string

const (
	// OutcomeSuccess: the compiler exited zero and the artifact was written.
	OutcomeSuccess Outcome = "success"
	// OutcomeFailed: a required unit (example or solution) failed to compile.
	OutcomeFailed Outcome = "failed"
	// OutcomeSkipped: an exercise failed to compile, which is expected, or
	// the whole module was marked skip in the manifest.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeMissing: the source file does not exist in the module directory.
	OutcomeMissing Outcome = "missing"
)

// UnitResult records the outcome of one compile attempt.
type UnitResult struct {
	Module   string
	Unit     course.UnitKind
	Outcome  Outcome
	ExitCode int
	Output   string
}

// Tally holds the running counters for a compile pass. Skipped covers both
// expected exercise failures and units that were absent or opted out; only
// failures of required units increment Failed.
type Tally struct {
	Succeeded int
	Failed    int
	Skipped   int
}

// outputTail returns the last maxLines lines of compiler output, which is
// where the relevant diagnostics usually are.
func outputTail(output []byte, maxLines int) string {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return ""
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, "\n")
}
