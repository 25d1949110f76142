package executor

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vk/coursebuild/internal/course"
	"github.com/vk/coursebuild/internal/ctxlog"
	"github.com/vk/coursebuild/internal/toolchain"
)

// outputTailLines bounds how much compiler output is carried into results
// and logs for a failed unit.
const outputTailLines = 12

// Executor runs the compile pass. It holds no mutable state between units
// beyond the tally it returns; units are independent compilation units and
// are processed strictly one at a time.
type Executor struct {
	tc       *toolchain.Toolchain
	standard string
	flags    []string
	runner   CommandRunner
}

// New creates an executor for the given toolchain and course-wide compile
// settings. A nil runner selects the real os/exec-backed one.
func New(tc *toolchain.Toolchain, standard string, flags []string, runner CommandRunner) *Executor {
	if runner == nil {
		runner = NewExecRunner()
	}
	return &Executor{
		tc:       tc,
		standard: standard,
		flags:    flags,
		runner:   runner,
	}
}

// Run compiles every present unit of every scanned module, in order,
// returning the per-unit results and the final tally. Compile failures
// never abort the loop; only a context cancellation or an inability to
// spawn the compiler at all stops the pass early.
func (e *Executor) Run(ctx context.Context, scans []course.ModuleScan) ([]UnitResult, Tally, error) {
	logger := ctxlog.FromContext(ctx)

	var results []UnitResult
	var tally Tally

	for _, scan := range scans {
		modLogger := logger.With("module", scan.Module.Name)

		if scan.Module.Skip {
			modLogger.Info("⏭️ Module skipped by manifest")
			for _, unit := range scan.PresentUnits() {
				results = append(results, UnitResult{
					Module:  scan.Module.Name,
					Unit:    unit.Kind,
					Outcome: OutcomeSkipped,
				})
				tally.Skipped++
			}
			continue
		}

		for _, unit := range scan.Units {
			if err := ctx.Err(); err != nil {
				return results, tally, err
			}

			result, err := e.runUnit(ctx, scan, unit)
			if err != nil {
				return results, tally, err
			}

			results = append(results, result)
			switch result.Outcome {
			case OutcomeSuccess:
				tally.Succeeded++
			case OutcomeFailed:
				tally.Failed++
			default:
				tally.Skipped++
			}
		}
	}

	return results, tally, nil
}

// runUnit compiles a single unit and classifies the outcome.
func (e *Executor) runUnit(ctx context.Context, scan course.ModuleScan, unit course.Unit) (UnitResult, error) {
	logger := ctxlog.FromContext(ctx).With("module", scan.Module.Name, "unit", string(unit.Kind))

	result := UnitResult{Module: scan.Module.Name, Unit: unit.Kind}

	if !unit.Present {
		logger.Info("⏭️ Skipped (source file missing)")
		result.Outcome = OutcomeMissing
		return result, nil
	}

	flags := append(append([]string{}, e.flags...), scan.Module.ExtraFlags...)
	outPath := filepath.Join(scan.Dir, e.tc.ArtifactName(unit.Kind.Stem()))
	argv := e.tc.CompileArgs(unit.SourcePath, outPath, e.standard, flags)

	logger.Debug("Invoking compiler.", "argv", argv)
	exitCode, output, err := e.runner.Run(ctx, scan.Dir, argv)
	if err != nil {
		// The compiler binary itself could not be run. Unlike a compile
		// failure this affects every remaining unit, so the pass stops.
		return result, err
	}
	result.ExitCode = exitCode
	result.Output = outputTail(output, outputTailLines)

	switch {
	case exitCode == 0:
		e.removeIntermediates(ctx, scan, unit)
		logger.Info("✅ Compiled", "artifact", outPath)
		result.Outcome = OutcomeSuccess
	case unit.Kind == course.UnitExercise:
		// Exercises ship with TODO stubs and are expected not to compile
		// until a learner fills them in.
		logger.Info("⏭️ Skipped (exercise does not compile yet)", "exit_code", exitCode)
		result.Outcome = OutcomeSkipped
	default:
		logger.Error("❌ Compilation failed", "exit_code", exitCode, "output", result.Output)
		result.Outcome = OutcomeFailed
	}

	return result, nil
}

// removeIntermediates deletes the intermediate files a successful compile
// left behind (the MSVC .obj). Removal failures are logged, not fatal.
func (e *Executor) removeIntermediates(ctx context.Context, scan course.ModuleScan, unit course.Unit) {
	logger := ctxlog.FromContext(ctx)
	for _, path := range e.tc.Intermediates(scan.Dir, unit.Kind.Stem()) {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Warn("Failed to remove intermediate file.", "path", path, "error", err)
		}
	}
}
