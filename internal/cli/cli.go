package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/vk/coursebuild/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("coursebuild", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
coursebuild - compiles a C++ curriculum checkout module by module.

Usage:
  coursebuild [options] [COURSE_PATH]

Arguments:
  COURSE_PATH
    Root of the curriculum checkout. Defaults to the current directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	courseFlag := flagSet.String("course", "", "Root of the curriculum checkout.")
	cFlag := flagSet.String("c", "", "Root of the curriculum checkout (shorthand).")
	manifestFlag := flagSet.String("manifest", "", "Path to course.hcl. Defaults to <course>/course.hcl.")
	toolchainFlag := flagSet.String("toolchain", "", "Force a compiler by name instead of probing PATH.")
	reportFlag := flagSet.String("report", "", "Write a YAML run report to this path. Empty disables.")
	cleanFlag := flagSet.Bool("clean", false, "Remove previously built artifacts instead of compiling.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := "."
	if *courseFlag != "" {
		path = *courseFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Course path determined.", "path", path)

	manifestPath := *manifestFlag
	if manifestPath == "" {
		manifestPath = filepath.Join(path, "course.hcl")
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		CoursePath:   path,
		ManifestPath: manifestPath,
		Toolchain:    *toolchainFlag,
		ReportPath:   *reportFlag,
		Clean:        *cleanFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
