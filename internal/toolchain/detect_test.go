package toolchain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/coursebuild/internal/testutil"
	"github.com/vk/coursebuild/internal/toolchain"
)

func TestDetect_FindsFirstCandidate(t *testing.T) {
	path := testutil.StubTool(t, "g++")

	tc, err := toolchain.Detect(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "g++", tc.Name)
	assert.Equal(t, path, tc.Path)
	assert.Equal(t, toolchain.DialectGNU, tc.Dialect)
}

func TestDetect_FallsThroughToLaterCandidate(t *testing.T) {
	testutil.EmptyPath(t)
	testutil.StubTool(t, "cl")

	tc, err := toolchain.Detect(context.Background(), []string{"g++", "cl"})
	require.NoError(t, err)

	assert.Equal(t, "cl", tc.Name)
	assert.Equal(t, toolchain.DialectMSVC, tc.Dialect)
}

func TestDetect_NoCandidateFound(t *testing.T) {
	testutil.EmptyPath(t)

	tc, err := toolchain.Detect(context.Background(), []string{"g++", "cl"})
	require.ErrorIs(t, err, toolchain.ErrNoToolchain)
	assert.Nil(t, tc)
}

func TestDetect_UnknownCandidateAssumesGNUDialect(t *testing.T) {
	testutil.EmptyPath(t)
	testutil.StubTool(t, "mycc")

	tc, err := toolchain.Detect(context.Background(), []string{"mycc"})
	require.NoError(t, err)

	assert.Equal(t, "mycc", tc.Name)
	assert.Equal(t, toolchain.DialectGNU, tc.Dialect)
}

func TestDefaultCandidates(t *testing.T) {
	assert.Equal(t, []string{"g++", "cl"}, toolchain.DefaultCandidates())
}
