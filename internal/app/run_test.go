package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/coursebuild/internal/app"
	"github.com/vk/coursebuild/internal/report"
	"github.com/vk/coursebuild/internal/testutil"
	"github.com/vk/coursebuild/internal/toolchain"
	"gopkg.in/yaml.v3"
)

// newConfig builds a validated app.Config rooted at the given course tree.
func newConfig(t *testing.T, root string) *app.Config {
	t.Helper()
	cfg, err := app.NewConfig(app.Config{
		CoursePath:   root,
		ManifestPath: filepath.Join(root, "course.hcl"),
		LogFormat:    "text",
		LogLevel:     "debug",
	})
	require.NoError(t, err)
	return cfg
}

func TestRun_CompilesCourseWithDetectedToolchain(t *testing.T) {
	// The stub "g++" exits zero for every invocation, so each present unit
	// counts as a success.
	testutil.EmptyPath(t)
	testutil.StubTool(t, "g++")

	root := testutil.WriteCourse(t, map[string]string{
		"course.hcl": `
module "01_references" {}
module "03_classes_basics" {}
`,
		"01_references/example.cpp":      "int main() {}",
		"01_references/exercise.cpp":     "// TODO",
		"03_classes_basics/solution.cpp": "int main() {}",
	})
	cfg := newConfig(t, root)
	cfg.ReportPath = filepath.Join(root, "run.yaml")

	out := &bytes.Buffer{}
	courseApp := app.NewApp(out, cfg)

	err := courseApp.Run(context.Background(), cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.ReportPath)
	require.NoError(t, err)
	var rep report.Report
	require.NoError(t, yaml.Unmarshal(data, &rep))

	assert.Equal(t, "g++", rep.Toolchain)
	assert.Equal(t, 3, rep.Tally.Succeeded)
	assert.Equal(t, 0, rep.Tally.Failed)
	assert.Equal(t, 3, rep.Tally.Skipped, "three probed units were absent")

	assert.Contains(t, out.String(), "3 succeeded")
}

func TestRun_MissingToolchainIsFatalBeforeAnyWrite(t *testing.T) {
	testutil.EmptyPath(t)

	root := testutil.WriteCourse(t, map[string]string{
		"01_references/example.cpp": "int main() {}",
	})
	cfg := newConfig(t, root)
	cfg.ReportPath = filepath.Join(root, "run.yaml")

	out := &bytes.Buffer{}
	courseApp := app.NewApp(out, cfg)

	err := courseApp.Run(context.Background(), cfg)
	require.ErrorIs(t, err, toolchain.ErrNoToolchain)

	// Nothing may be written when detection fails.
	assert.NoFileExists(t, cfg.ReportPath)
	entries, readErr := os.ReadDir(filepath.Join(root, "01_references"))
	require.NoError(t, readErr)
	require.Len(t, entries, 1)
	assert.Equal(t, "example.cpp", entries[0].Name())
}

func TestRun_ForcedToolchainSkipsProbeOrder(t *testing.T) {
	testutil.EmptyPath(t)
	testutil.StubTool(t, "g++")
	testutil.StubTool(t, "clang++")

	root := testutil.WriteCourse(t, map[string]string{
		"01_references/example.cpp": "int main() {}",
	})
	cfg := newConfig(t, root)
	cfg.Toolchain = "clang++"
	cfg.ReportPath = filepath.Join(root, "run.yaml")

	out := &bytes.Buffer{}
	courseApp := app.NewApp(out, cfg)
	require.NoError(t, courseApp.Run(context.Background(), cfg))

	data, err := os.ReadFile(cfg.ReportPath)
	require.NoError(t, err)
	var rep report.Report
	require.NoError(t, yaml.Unmarshal(data, &rep))
	assert.Equal(t, "clang++", rep.Toolchain)
}

func TestRun_CleanModeRemovesArtifacts(t *testing.T) {
	// Clean needs no compiler at all.
	testutil.EmptyPath(t)

	root := testutil.WriteCourse(t, map[string]string{
		"01_references/example.cpp": "int main() {}",
		"01_references/example":     "\x7fELF",
		"01_references/example.obj": "obj",
	})
	cfg := newConfig(t, root)
	cfg.Clean = true

	out := &bytes.Buffer{}
	courseApp := app.NewApp(out, cfg)
	require.NoError(t, courseApp.Run(context.Background(), cfg))

	assert.Contains(t, out.String(), "Removed 2 artifact(s).")
	assert.FileExists(t, filepath.Join(root, "01_references", "example.cpp"))
	assert.NoFileExists(t, filepath.Join(root, "01_references", "example"))
}

func TestNewApp_UsesManifestModuleList(t *testing.T) {
	root := testutil.WriteCourse(t, map[string]string{
		"course.hcl": `
course {
  name = "tiny"
}

module "01_references" {}
`,
	})
	cfg := newConfig(t, root)

	courseApp := app.NewApp(&bytes.Buffer{}, cfg)

	crs := courseApp.Course()
	assert.Equal(t, "tiny", crs.Name)
	require.Len(t, crs.Modules, 1)
	assert.Equal(t, "01_references", crs.Modules[0].Name)
}
