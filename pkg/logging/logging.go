package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// Logger is the global logger instance
var Logger *zap.Logger

// Setup builds the application logger and installs it as the zap global.
// Debug mode selects the development config with human-readable output.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return Logger, err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return Logger, nil
}

// Sync flushes the logger. Syncing stderr fails with "invalid argument" on
// some platforms when stderr is neither a terminal nor a regular file, so
// those destinations are skipped and that specific error is swallowed.
func Sync(logger *zap.Logger) error {
	if logger == nil {
		return nil
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return nil
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			return err
		}
	}
	return nil
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false // Assume not a regular file if we can't get the file info
	}
	return fileInfo.Mode().IsRegular()
}
