package app

import (
	"context"
	"fmt"

	"github.com/vk/coursebuild/internal/course"
	"github.com/vk/coursebuild/internal/ctxlog"
	"github.com/vk/coursebuild/internal/executor"
	"github.com/vk/coursebuild/internal/report"
	"github.com/vk/coursebuild/internal/summary"
	"github.com/vk/coursebuild/internal/toolchain"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if cfg.Clean {
		return a.runClean(ctx, cfg)
	}

	// Toolchain detection happens before any file is probed: without a
	// compiler there is nothing to do and nothing may be written.
	candidates := a.course.Toolchains
	if cfg.Toolchain != "" {
		candidates = []string{cfg.Toolchain}
	}
	tc, err := toolchain.Detect(ctx, candidates)
	if err != nil {
		return fmt.Errorf("toolchain detection failed: %w", err)
	}
	a.logger.Info("🔧 Toolchain detected.", "name", tc.Name, "path", tc.Path)

	scans, err := course.Scan(ctx, cfg.CoursePath, a.course.Modules)
	if err != nil {
		return fmt.Errorf("failed to scan course tree: %w", err)
	}

	var rep *report.Report
	if cfg.ReportPath != "" {
		rep = report.New(a.course.Name, cfg.CoursePath, tc.Name)
	}

	a.logger.Info("🚀 Starting compile pass.", "course", a.course.Name, "modules", len(scans))
	exec := executor.New(tc, a.course.Standard, a.course.Flags, nil)
	results, tally, err := exec.Run(ctx, scans)
	if err != nil {
		return fmt.Errorf("compile pass failed: %w", err)
	}
	a.logger.Info("🏁 Compile pass finished.",
		"succeeded", tally.Succeeded,
		"failed", tally.Failed,
		"skipped", tally.Skipped,
	)

	if rep != nil {
		rep.Finish(results, tally)
		if err := rep.Write(cfg.ReportPath); err != nil {
			return err
		}
		a.logger.Info("📄 Run report written.", "path", cfg.ReportPath, "run_id", rep.RunID)
	}

	fmt.Fprintln(a.outW, summary.Render(a.course.Name, tc.Name, tally))

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runClean removes previously built artifacts instead of compiling. It
// needs no toolchain: every dialect's artifact names are tried.
func (a *App) runClean(ctx context.Context, cfg *Config) error {
	scans, err := course.Scan(ctx, cfg.CoursePath, a.course.Modules)
	if err != nil {
		return fmt.Errorf("failed to scan course tree: %w", err)
	}

	removed, err := executor.Clean(ctx, scans)
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	fmt.Fprintf(a.outW, "Removed %d artifact(s).\n", removed)
	return nil
}
