// File: pkg/flatten/size.go
package flatten

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// totalSize sums the on-disk sizes of the selected files. Files that cannot
// be stat'ed are logged and counted as zero.
func totalSize(root string, files []string, logger *zap.Logger) int64 {
	var total int64
	for _, rel := range files {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			logger.Warn("Failed to stat selected file", zap.String("file", rel), zap.Error(err))
			continue
		}
		total += info.Size()
	}
	return total
}

// confirmLargeRun asks the user whether to proceed with an unusually large
// selection. Non-interactive runs (stdin not a terminal) proceed without
// asking so piped invocations never hang.
func confirmLargeRun(totalSize int64) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return true, nil
	}
	return promptUser(fmt.Sprintf(
		"Warning: the selected files total %d bytes. Do you want to continue? (y/n): ", totalSize))
}

// promptUser displays a message and waits for the user to enter 'y' or 'n'.
// Returns true if the user enters 'y' or 'yes' (case-insensitive), false otherwise.
func promptUser(message string) (bool, error) {
	fmt.Print(message)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
