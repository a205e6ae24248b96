// File: pkg/selection/config.go
package selection

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for configuration validation.
var (
	// ErrRootNotFound indicates the configured root does not exist.
	ErrRootNotFound = errors.New("root directory not found")
	// ErrRootNotDirectory indicates the configured root is not a directory.
	ErrRootNotDirectory = errors.New("root is not a directory")
)

// Config holds the immutable selection settings for one run.
// It is constructed once per invocation and read-only thereafter.
type Config struct {
	Root        string   // Absolute path of the directory to walk.
	Includes    []string // Root-relative paths whose matches are always included.
	Excludes    []string // Root-relative paths whose matches are excluded.
	AllowHidden bool     // Whether dot-prefixed entries may be emitted.
}

// NewConfig normalizes the raw inputs into a validated Config.
// Include and exclude patterns may be given relative to root or absolute;
// absolute patterns outside root are kept as non-matching literals rather
// than rejected.
func NewConfig(root string, includes, excludes []string, allowHidden bool) (*Config, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path %q: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, absRoot)
		}
		return nil, fmt.Errorf("failed to stat root %q: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDirectory, absRoot)
	}

	return &Config{
		Root:        absRoot,
		Includes:    normalizePatterns(absRoot, includes),
		Excludes:    normalizePatterns(absRoot, excludes),
		AllowHidden: allowHidden,
	}, nil
}

// normalizePatterns rewrites each pattern as a clean, slash-separated path
// relative to root. Patterns are path fragments, not globs; entries that
// cannot be made root-relative survive as literals that match nothing.
func normalizePatterns(absRoot string, patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if filepath.IsAbs(p) {
			rel, err := filepath.Rel(absRoot, p)
			if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
				// Outside the root: keep as a literal that never matches a
				// root-relative candidate.
				out = append(out, filepath.ToSlash(p))
				continue
			}
			p = rel
		}

		p = filepath.ToSlash(filepath.Clean(p))
		p = strings.TrimPrefix(p, "./")
		p = strings.TrimSuffix(p, "/")
		if p == "" || p == "." {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesEntry reports whether rel equals or is a descendant of any entry.
func matchesEntry(entries []string, rel string) bool {
	for _, e := range entries {
		if rel == e || strings.HasPrefix(rel, e+"/") {
			return true
		}
	}
	return false
}

// coversDescendant reports whether any entry names a path at or below rel.
// The walker uses this to force descent into otherwise pruned directories.
func coversDescendant(entries []string, rel string) bool {
	for _, e := range entries {
		if e == rel || strings.HasPrefix(e, rel+"/") {
			return true
		}
	}
	return false
}
