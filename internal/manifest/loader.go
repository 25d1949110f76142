package manifest

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/coursebuild/internal/course"
	"github.com/vk/coursebuild/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// hclRoot is the top-level structure of a course.hcl file for decoding.
type hclRoot struct {
	Courses []*hclCourse `hcl:"course,block"`
	Modules []*hclModule `hcl:"module,block"`
}

// hclCourse holds the course-wide compile settings. Every attribute is
// optional; unset ones fall back to the built-in defaults.
type hclCourse struct {
	Name       string   `hcl:"name,optional"`
	Standard   string   `hcl:"standard,optional"`
	Flags      []string `hcl:"flags,optional"`
	Toolchains []string `hcl:"toolchains,optional"`
}

// hclModule is one ordered module entry. The block label is the module
// directory name.
type hclModule struct {
	Name  string   `hcl:"name,label"`
	Flags []string `hcl:"flags,optional"`
	Skip  bool     `hcl:"skip,optional"`
}

// hostEvalContext builds the evaluation context available to manifest
// expressions. It exposes host.os and host.arch so flag lists can be
// conditional per platform.
func hostEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"host": cty.ObjectVal(map[string]cty.Value{
				"os":   cty.StringVal(runtime.GOOS),
				"arch": cty.StringVal(runtime.GOARCH),
			}),
		},
	}
}

// Load reads and resolves the manifest at path. A missing file is not an
// error: the built-in default course is returned so a bare checkout builds
// with zero configuration.
func Load(ctx context.Context, path string) (*Course, error) {
	logger := ctxlog.FromContext(ctx)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No manifest found, using built-in course defaults.", "path", path)
			return DefaultCourse(), nil
		}
		return nil, fmt.Errorf("error accessing manifest %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
	}

	var root hclRoot
	diags = gohcl.DecodeBody(hclFile.Body, hostEvalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}

	if len(root.Courses) > 1 {
		return nil, fmt.Errorf("manifest %s contains %d course blocks, only one is allowed", path, len(root.Courses))
	}

	resolved := DefaultCourse()
	if len(root.Courses) == 1 {
		c := root.Courses[0]
		if c.Name != "" {
			resolved.Name = c.Name
		}
		if c.Standard != "" {
			resolved.Standard = c.Standard
		}
		if c.Flags != nil {
			resolved.Flags = c.Flags
		}
		if c.Toolchains != nil {
			resolved.Toolchains = c.Toolchains
		}
	}

	// Module blocks, when present, replace the built-in list wholesale so
	// the manifest stays the single source of truth for ordering.
	if len(root.Modules) > 0 {
		modules := make([]course.Module, 0, len(root.Modules))
		seen := make(map[string]struct{}, len(root.Modules))
		for _, m := range root.Modules {
			if _, dup := seen[m.Name]; dup {
				return nil, fmt.Errorf("manifest %s lists module %q more than once", path, m.Name)
			}
			seen[m.Name] = struct{}{}
			modules = append(modules, course.Module{
				Name:       m.Name,
				ExtraFlags: m.Flags,
				Skip:       m.Skip,
			})
		}
		resolved.Modules = modules
	}

	logger.Debug("Manifest loaded.",
		"path", path,
		"course", resolved.Name,
		"standard", resolved.Standard,
		"modules", len(resolved.Modules),
	)
	return resolved, nil
}
