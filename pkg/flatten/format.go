// File: pkg/flatten/format.go
package flatten

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2/lexers"
	"go.uber.org/zap"
)

// nonUTF8Placeholder stands in for file contents that are not valid UTF-8.
const nonUTF8Placeholder = "<non-UTF-8 data>"

// renderFile writes one file as a markdown section: a header with the
// root-relative path followed by a fenced code block tagged with the language
// resolved from the file name. Files that vanished or became unreadable since
// selection are logged and skipped rather than failing the run.
func renderFile(w io.Writer, root, rel string, logger *zap.Logger) error {
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		logger.Warn("Failed to read selected file", zap.String("file", rel), zap.Error(err))
		return nil
	}

	body := string(content)
	if !utf8.ValidString(body) {
		logger.Debug("Replacing non-UTF-8 content", zap.String("file", rel))
		body = nonUTF8Placeholder
	}
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}

	_, err = fmt.Fprintf(w, "## %s\n```%s\n%s```\n\n", rel, languageFor(rel), body)
	return err
}

// languageFor resolves the code-fence language tag for a file name using the
// chroma lexer registry, falling back to a plain text tag.
func languageFor(rel string) string {
	lexer := lexers.Match(filepath.Base(rel))
	if lexer == nil {
		return "text"
	}
	return strings.ToLower(lexer.Config().Name)
}
