// Package testutil provides shared test fixtures: scaffolding a course
// tree under a temporary directory, stubbing compiler binaries on PATH,
// and a scripted CommandRunner for executor tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteCourse creates a temporary course tree from the given relative
// path -> content map and returns its root. Parent directories are created
// as needed, so entries like "01_references/example.cpp" scaffold the
// module layout directly.
func WriteCourse(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// StubTool places a fake executable with the given name on PATH so that
// exec.LookPath finds it. It returns the stub's full path.
func StubTool(t *testing.T, name string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return path
}

// EmptyPath points PATH at an empty directory so no compiler candidate can
// be found.
func EmptyPath(t *testing.T) {
	t.Helper()
	t.Setenv("PATH", t.TempDir())
}

// ScriptedRunner is a CommandRunner whose exit codes are scripted per
// source file. Keys are "<module dir>/<source name>", e.g.
// "01_references/exercise.cpp"; unscripted files exit zero.
type ScriptedRunner struct {
	ExitCodes map[string]int
	Output    string
	Calls     [][]string
}

// Run implements executor.CommandRunner.
func (r *ScriptedRunner) Run(_ context.Context, dir string, argv []string) (int, []byte, error) {
	r.Calls = append(r.Calls, argv)

	src := sourceArg(argv)
	key := filepath.Base(dir) + "/" + filepath.Base(src)
	return r.ExitCodes[key], []byte(r.Output), nil
}

// sourceArg finds the C++ source file in a compiler argv.
func sourceArg(argv []string) string {
	for _, arg := range argv {
		if strings.HasSuffix(arg, ".cpp") {
			return arg
		}
	}
	return ""
}
