package toolchain

import (
	"path/filepath"
	"runtime"
)

// Dialect identifies the command-line interface a compiler speaks.
type Dialect string

const (
	// DialectGNU covers g++ and clang++, which accept the same driver flags.
	DialectGNU Dialect = "gnu"
	// DialectMSVC covers cl.exe.
	DialectMSVC Dialect = "msvc"
)

// Toolchain is a detected host compiler: the candidate name it was probed
// under, its resolved binary path, and the flag dialect it speaks.
type Toolchain struct {
	Name    string
	Path    string
	Dialect Dialect
}

// CompileArgs builds the full argv for compiling src into out with the
// given language standard and extra flags. The first element is the
// compiler binary itself.
func (t *Toolchain) CompileArgs(src, out, standard string, flags []string) []string {
	var argv []string
	switch t.Dialect {
	case DialectMSVC:
		argv = append(argv, t.Path, "/std:"+standard, "/EHsc", "/nologo")
		argv = append(argv, flags...)
		argv = append(argv, "/Fe:"+out, src)
	default:
		argv = append(argv, t.Path, "-std="+standard)
		argv = append(argv, flags...)
		argv = append(argv, "-o", out, src)
	}
	return argv
}

// ArtifactName returns the executable file name produced for the given
// artifact stem, e.g. "example" or "example.exe".
func (t *Toolchain) ArtifactName(stem string) string {
	if t.Dialect == DialectMSVC || runtime.GOOS == "windows" {
		return stem + ".exe"
	}
	return stem
}

// Intermediates returns the paths of intermediate files a compile of the
// given stem leaves behind in dir. Only the MSVC dialect produces any: a
// .obj next to the invocation's working directory.
func (t *Toolchain) Intermediates(dir, stem string) []string {
	if t.Dialect != DialectMSVC {
		return nil
	}
	return []string{filepath.Join(dir, stem+".obj")}
}
