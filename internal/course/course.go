package course

// UnitKind identifies one of the three conventionally named source files a
// module directory may contain.
type UnitKind string

const (
	UnitExample  UnitKind = "example"
	UnitExercise UnitKind = "exercise"
	UnitSolution UnitKind = "solution"
)

// UnitKinds lists all unit kinds in the order they are probed and compiled.
func UnitKinds() []UnitKind {
	return []UnitKind{UnitExample, UnitExercise, UnitSolution}
}

// SourceName returns the conventional file name for this unit kind,
// e.g. "example.cpp".
func (k UnitKind) SourceName() string {
	return string(k) + ".cpp"
}

// Stem returns the artifact base name for this unit kind, without any
// platform- or toolchain-specific extension.
func (k UnitKind) Stem() string {
	return string(k)
}

// Module is one curriculum unit: a numbered directory holding a README and
// up to three source files. ExtraFlags and Skip come from the manifest; a
// module from the built-in default list carries neither.
type Module struct {
	Name       string
	ExtraFlags []string
	Skip       bool
}

// DefaultModules returns the built-in, ordered module list used when no
// manifest overrides it. The list mirrors the curriculum layout: one
// directory per C++-over-C feature.
func DefaultModules() []Module {
	names := []string{
		"00_cpp_syntax",
		"01_references",
		"02_function_overloading",
		"03_classes_basics",
		"04_constructors_destructors",
		"05_operator_overloading",
		"06_inheritance",
		"07_polymorphism",
		"08_templates",
		"09_stl_containers",
		"10_smart_pointers",
		"11_exceptions",
		"12_lambda_expressions",
		"13_move_semantics",
	}

	modules := make([]Module, 0, len(names))
	for _, name := range names {
		modules = append(modules, Module{Name: name})
	}
	return modules
}
