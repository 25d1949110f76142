package executor

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vk/coursebuild/internal/course"
	"github.com/vk/coursebuild/internal/ctxlog"
)

// artifactNames lists every file name a compile of the given stem may have
// produced, across all supported dialects, so clean works regardless of
// which toolchain built the tree.
func artifactNames(stem string) []string {
	return []string{stem, stem + ".exe", stem + ".obj"}
}

// Clean removes previously built artifacts from every scanned module
// directory and returns how many files were deleted. Missing files are
// ignored; clean is idempotent.
func Clean(ctx context.Context, scans []course.ModuleScan) (int, error) {
	logger := ctxlog.FromContext(ctx)

	removed := 0
	for _, scan := range scans {
		for _, kind := range course.UnitKinds() {
			for _, name := range artifactNames(kind.Stem()) {
				path := filepath.Join(scan.Dir, name)
				err := os.Remove(path)
				if os.IsNotExist(err) {
					continue
				}
				if err != nil {
					return removed, err
				}
				logger.Debug("Removed artifact.", "path", path)
				removed++
			}
		}
	}

	logger.Info("🧹 Clean finished.", "removed", removed)
	return removed, nil
}
