// File: pkg/selection/walker.go
package selection

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Walker enumerates the regular files under Config.Root that survive the
// selection chain, in deterministic lexicographic order per directory.
type Walker struct {
	cfg      *Config
	matcher  *Matcher
	loader   *Loader
	logger   *zap.Logger
	warnings []error
}

// NewWalker returns a Walker for cfg. The logger may be nil.
func NewWalker(cfg *Config, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		cfg:     cfg,
		matcher: NewMatcher(cfg),
		loader:  NewLoader(logger),
		logger:  logger,
	}
}

// Walk traverses the tree depth-first and calls visit for every accepted
// file, passing its root-relative slash path. Each emitted path is a regular
// file at emission time. Per-entry access errors are recorded as warnings and
// the walk continues with siblings; an error returned by visit aborts the
// walk and is returned unchanged. Warnings are one-shot state: the walk
// reflects a single filesystem snapshot and is not restartable.
func (w *Walker) Walk(visit func(rel string) error) error {
	w.warnings = nil
	return w.walkDir(w.cfg.Root, "", RuleSet(nil), true, visit)
}

// Files runs Walk and collects the accepted paths.
func (w *Walker) Files() ([]string, error) {
	var files []string
	err := w.Walk(func(rel string) error {
		files = append(files, rel)
		return nil
	})
	return files, err
}

// Warnings returns the per-entry access errors recovered during the last walk.
func (w *Walker) Warnings() []error {
	return w.warnings
}

// walkDir visits one directory. isRoot distinguishes a fatal unreadable root
// from a recoverable unreadable subdirectory.
func (w *Walker) walkDir(absDir, relDir string, inherited RuleSet, isRoot bool, visit func(rel string) error) error {
	entries, err := os.ReadDir(absDir)
	if err != nil {
		if isRoot {
			return fmt.Errorf("failed to read root directory %s: %w", absDir, err)
		}
		w.warn(fmt.Errorf("read %s: %w", absDir, err))
		return nil
	}

	// The directory's own ignore files extend the inherited set for this
	// branch only; siblings keep the shared inherited prefix untouched.
	rules := w.loader.LoadDir(absDir, relDir, inherited)

	// os.ReadDir returns entries sorted by name, which keeps the emitted
	// sequence reproducible across runs.
	for _, entry := range entries {
		rel := entry.Name()
		if relDir != "" {
			rel = relDir + "/" + entry.Name()
		}

		if entry.IsDir() {
			decision := w.matcher.Evaluate(rel, true, rules)
			if decision == Exclude {
				// Pruning skips the whole subtree, unless an explicit
				// include names a path beneath it: the include overrides
				// exclusion at every level, so traversal must still reach it.
				if !coversDescendant(w.cfg.Includes, rel) {
					w.logger.Debug("Pruning excluded directory", zap.String("dir", rel))
					continue
				}
				w.logger.Debug("Descending into excluded directory for explicit include",
					zap.String("dir", rel))
			}
			if err := w.walkDir(filepath.Join(absDir, entry.Name()), rel, rules, false, visit); err != nil {
				return err
			}
			continue
		}

		if w.matcher.Evaluate(rel, false, rules) == Exclude {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			w.warn(fmt.Errorf("stat %s: %w", rel, err))
			continue
		}
		if !info.Mode().IsRegular() {
			w.logger.Debug("Skipping non-regular file", zap.String("path", rel))
			continue
		}

		if err := visit(rel); err != nil {
			return err
		}
	}

	return nil
}

// warn records one recovered per-entry error and logs it.
func (w *Walker) warn(err error) {
	w.warnings = append(w.warnings, err)
	w.logger.Warn("Error accessing path during traversal", zap.Error(err))
}
