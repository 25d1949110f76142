package toolchain

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/vk/coursebuild/internal/ctxlog"
)

// ErrNoToolchain is returned when none of the candidate compilers can be
// found on PATH. It is fatal: no file is probed and nothing is written
// until detection succeeds.
var ErrNoToolchain = errors.New("no supported C++ compiler found on PATH")

// dialects maps known candidate binary names to the flag dialect they
// speak. Unknown candidates from a manifest default to the GNU dialect.
var dialects = map[string]Dialect{
	"g++":     DialectGNU,
	"clang++": DialectGNU,
	"cl":      DialectMSVC,
}

// DefaultCandidates returns the probe order used when no manifest or flag
// overrides it.
func DefaultCandidates() []string {
	return []string{"g++", "cl"}
}

// Detect probes PATH for each candidate in order and returns the first
// compiler found. An empty candidate list falls back to the defaults.
func Detect(ctx context.Context, candidates []string) (*Toolchain, error) {
	logger := ctxlog.FromContext(ctx)

	if len(candidates) == 0 {
		candidates = DefaultCandidates()
	}

	for _, name := range candidates {
		path, err := exec.LookPath(name)
		if err != nil {
			logger.Debug("Toolchain candidate not found.", "candidate", name)
			continue
		}

		dialect, ok := dialects[name]
		if !ok {
			dialect = DialectGNU
			logger.Debug("Unknown toolchain candidate, assuming GNU dialect.", "candidate", name)
		}

		tc := &Toolchain{Name: name, Path: path, Dialect: dialect}
		logger.Debug("Toolchain detected.", "name", name, "path", path, "dialect", string(dialect))
		return tc, nil
	}

	logger.Debug("No toolchain candidate found.", "candidates", strings.Join(candidates, ", "))
	return nil, ErrNoToolchain
}
