// File: pkg/selection/loader.go
package selection

import (
	"bytes"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// controlFileNames are the ignore files consulted in every directory, in
// load order. Their rules are appended after inherited rules so a directory's
// own patterns take precedence over its ancestors'.
var controlFileNames = []string{".gitignore", ".ignore"}

// Loader reads the ignore control files of individual directories and turns
// them into rules consumable by the matcher.
type Loader struct {
	logger *zap.Logger
}

// NewLoader returns a Loader logging through the provided logger.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// LoadDir extends inherited with the rules declared by absDir's own ignore
// files. relDir is absDir's root-relative slash path ("" for the root) and is
// recorded on each rule so it only applies beneath its declaring directory.
// Missing ignore files contribute zero rules; unreadable ones are logged and
// skipped; the inherited set is never mutated.
func (l *Loader) LoadDir(absDir, relDir string, inherited RuleSet) RuleSet {
	var loaded []Rule
	for _, name := range controlFileNames {
		path := filepath.Join(absDir, name)
		content, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				l.logger.Warn("Failed to read ignore file",
					zap.String("file", path),
					zap.Error(err))
			}
			continue
		}

		rules := ParseRules(bytes.NewReader(content), relDir, path, func(line string, lineNo int) {
			l.logger.Warn("Skipping malformed ignore pattern",
				zap.String("file", path),
				zap.Int("lineNo", lineNo),
				zap.String("line", line))
		})
		loaded = append(loaded, rules...)

		l.logger.Debug("Loaded ignore file",
			zap.String("file", path),
			zap.Int("rules", len(rules)))
	}
	return inherited.Extend(loaded)
}
