// File: pkg/flatten/output.go
package flatten

import (
	"fmt"
	"path/filepath"
	"time"
)

// DefaultOutputName builds the output file name used when no --output flag is
// given: flatten-<rootbase>-<timestamp>.txt in the working directory.
func DefaultOutputName(root string, now time.Time) string {
	base := filepath.Base(root)
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "root"
	}
	return fmt.Sprintf("flatten-%s-%s.txt", base, now.Format("2006-01-02_15-04-05"))
}
