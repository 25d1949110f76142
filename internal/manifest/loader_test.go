package manifest_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/coursebuild/internal/course"
	"github.com/vk/coursebuild/internal/manifest"
)

// writeManifest drops a course.hcl with the given content into a temp dir
// and returns its path.
func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "course.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingManifestUsesDefaults(t *testing.T) {
	crs, err := manifest.Load(context.Background(), filepath.Join(t.TempDir(), "course.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "cpp-for-c-programmers", crs.Name)
	assert.Equal(t, "c++17", crs.Standard)
	assert.Equal(t, []string{"-Wall", "-Wextra"}, crs.Flags)
	assert.Equal(t, []string{"g++", "cl"}, crs.Toolchains)
	assert.Equal(t, course.DefaultModules(), crs.Modules)
}

func TestLoad_FullManifest(t *testing.T) {
	path := writeManifest(t, `
course {
  name       = "cpp-advanced"
  standard   = "c++20"
  flags      = ["-Wall", "-Werror"]
  toolchains = ["clang++", "g++"]
}

module "01_references" {}

module "10_smart_pointers" {
  flags = ["-fno-rtti"]
}

module "12_lambda_expressions" {
  skip = true
}
`)

	crs, err := manifest.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "cpp-advanced", crs.Name)
	assert.Equal(t, "c++20", crs.Standard)
	assert.Equal(t, []string{"-Wall", "-Werror"}, crs.Flags)
	assert.Equal(t, []string{"clang++", "g++"}, crs.Toolchains)

	require.Len(t, crs.Modules, 3)
	assert.Equal(t, course.Module{Name: "01_references"}, crs.Modules[0])
	assert.Equal(t, []string{"-fno-rtti"}, crs.Modules[1].ExtraFlags)
	assert.True(t, crs.Modules[2].Skip)
}

func TestLoad_PartialCourseBlockKeepsDefaults(t *testing.T) {
	path := writeManifest(t, `
course {
  standard = "c++23"
}
`)

	crs, err := manifest.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "c++23", crs.Standard)
	assert.Equal(t, "cpp-for-c-programmers", crs.Name)
	assert.Equal(t, []string{"-Wall", "-Wextra"}, crs.Flags)
	assert.Equal(t, course.DefaultModules(), crs.Modules)
}

func TestLoad_HostConditionalFlags(t *testing.T) {
	path := writeManifest(t, `
course {
  flags = host.os == "windows" ? ["/W4"] : ["-Wall"]
}
`)

	crs, err := manifest.Load(context.Background(), path)
	require.NoError(t, err)

	if runtime.GOOS == "windows" {
		assert.Equal(t, []string{"/W4"}, crs.Flags)
	} else {
		assert.Equal(t, []string{"-Wall"}, crs.Flags)
	}
}

func TestLoad_DuplicateCourseBlocksRejected(t *testing.T) {
	path := writeManifest(t, `
course {}
course {}
`)

	_, err := manifest.Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only one is allowed")
}

func TestLoad_DuplicateModuleRejected(t *testing.T) {
	path := writeManifest(t, `
module "01_references" {}
module "01_references" {}
`)

	_, err := manifest.Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than once")
}

func TestLoad_InvalidHCLRejected(t *testing.T) {
	path := writeManifest(t, `
course {
  name = "unterminated
`)

	_, err := manifest.Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")
}

func TestLoad_UnknownAttributeRejected(t *testing.T) {
	path := writeManifest(t, `
course {
  optimizer = "llvm"
}
`)

	_, err := manifest.Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode manifest")
}
