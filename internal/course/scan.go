package course

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/coursebuild/internal/ctxlog"
)

// Unit is one probed source file inside a module directory. Present reports
// whether the file existed at scan time; absent units are recorded rather
// than dropped so the compile loop can report them instead of silently
// omitting them.
type Unit struct {
	Kind       UnitKind
	SourcePath string
	Present    bool
}

// ModuleScan is the on-disk view of one module: its resolved directory and
// the probe result for each conventional unit.
type ModuleScan struct {
	Module Module
	Dir    string
	Units  []Unit
}

// PresentUnits returns only the units whose source file exists.
func (s ModuleScan) PresentUnits() []Unit {
	var present []Unit
	for _, u := range s.Units {
		if u.Present {
			present = append(present, u)
		}
	}
	return present
}

// Scan probes the course tree rooted at root for every module in order. A
// missing module directory or source file is not an error; the unit is
// simply recorded as absent. Only a root that cannot be resolved at all is
// reported as an error.
func Scan(ctx context.Context, root string, modules []Module) ([]ModuleScan, error) {
	logger := ctxlog.FromContext(ctx)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve course root %s: %w", root, err)
	}
	if info, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("failed to access course root %s: %w", absRoot, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("course root %s is not a directory", absRoot)
	}

	scans := make([]ModuleScan, 0, len(modules))
	for _, mod := range modules {
		dir := filepath.Join(absRoot, mod.Name)
		scan := ModuleScan{Module: mod, Dir: dir}

		for _, kind := range UnitKinds() {
			srcPath := filepath.Join(dir, kind.SourceName())
			info, err := os.Stat(srcPath)
			present := err == nil && !info.IsDir()
			scan.Units = append(scan.Units, Unit{
				Kind:       kind,
				SourcePath: srcPath,
				Present:    present,
			})
		}

		logger.Debug("Module scanned.", "module", mod.Name, "present_units", len(scan.PresentUnits()))
		scans = append(scans, scan)
	}

	logger.Debug("Course scan complete.", "modules", len(scans))
	return scans, nil
}
