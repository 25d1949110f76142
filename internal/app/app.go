package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/coursebuild/internal/ctxlog"
	"github.com/vk/coursebuild/internal/manifest"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	course *manifest.Course
}

// NewApp is the constructor for the main application. It configures the
// logger and loads the course manifest, returning a fully initialized App.
// A manifest that exists but cannot be loaded is a fatal startup error and
// panics; the entrypoint recovers it into a clean exit.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	crs, err := manifest.Load(ctx, cfg.ManifestPath)
	if err != nil {
		panic(fmt.Errorf("failed to load course manifest: %w", err))
	}
	logger.Debug("Course manifest resolved.", "course", crs.Name, "modules", len(crs.Modules))

	return &App{
		outW:   outW,
		logger: logger,
		course: crs,
	}
}

// Course returns the resolved course manifest. This is primarily for testing.
func (a *App) Course() *manifest.Course {
	return a.course
}
