package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CoursePath   string // root of the curriculum checkout
	ManifestPath string // course.hcl location, may not exist

	Toolchain  string // forced compiler name; empty means probe
	ReportPath string // YAML run report destination; empty disables
	Clean      bool   // remove built artifacts instead of compiling

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.CoursePath == "" {
		return nil, errors.New("CoursePath is a required configuration field and cannot be empty")
	}
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
