package manifest

import (
	"github.com/vk/coursebuild/internal/course"
	"github.com/vk/coursebuild/internal/toolchain"
)

// Course is the fully resolved manifest: compile settings plus the ordered
// module list. Every field is populated, either from course.hcl or from
// the built-in defaults.
type Course struct {
	Name       string
	Standard   string
	Flags      []string
	Toolchains []string
	Modules    []course.Module
}

// DefaultCourse returns the configuration used when no manifest file
// exists: the original curriculum layout with a warning-heavy flag set.
func DefaultCourse() *Course {
	return &Course{
		Name:       "cpp-for-c-programmers",
		Standard:   "c++17",
		Flags:      []string{"-Wall", "-Wextra"},
		Toolchains: toolchain.DefaultCandidates(),
		Modules:    course.DefaultModules(),
	}
}
