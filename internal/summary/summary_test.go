package summary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vk/coursebuild/internal/executor"
	"github.com/vk/coursebuild/internal/summary"
)

func TestRender_ContainsCountsAndNames(t *testing.T) {
	out := summary.Render("cpp-for-c-programmers", "g++", executor.Tally{
		Succeeded: 10,
		Failed:    2,
		Skipped:   3,
	})

	assert.Contains(t, out, "cpp-for-c-programmers")
	assert.Contains(t, out, "toolchain: g++")
	assert.Contains(t, out, "10 succeeded")
	assert.Contains(t, out, "2 failed")
	assert.Contains(t, out, "3 skipped")
}
