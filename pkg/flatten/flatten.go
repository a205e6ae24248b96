// File: pkg/flatten/flatten.go
package flatten

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"flatten/pkg/selection"

	"go.uber.org/zap"
)

// DefaultSizeLimit is the total selected size above which the run asks for
// confirmation before writing.
const DefaultSizeLimit = 10 * 1024 * 1024 // 10 MB

// Arguments holds the options for one flatten run.
type Arguments struct {
	Directory   string   // The directory to flatten.
	Output      string   // Destination file; empty selects a timestamped default name.
	Includes    []string // Paths always included, overriding every exclusion.
	Excludes    []string // Paths excluded from the output.
	AllowHidden bool     // If true, dot-prefixed entries may be emitted.
	AssumeYes   bool     // If true, skip the large-directory confirmation prompt.
}

// Run executes the flatten process: it validates the configuration, selects
// the files, applies the size guard, and writes the combined document.
func Run(args *Arguments, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	startTime := time.Now()
	logger.Info("Starting flatten process", zap.String("directory", args.Directory))

	cfg, err := selection.NewConfig(args.Directory, args.Includes, args.Excludes, args.AllowHidden)
	if err != nil {
		logger.Error("Invalid configuration", zap.Error(err))
		return err
	}

	outputPath := args.Output
	if outputPath == "" {
		outputPath = DefaultOutputName(cfg.Root, time.Now())
		logger.Debug("Using default output name", zap.String("output", outputPath))
	}
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("failed to resolve output path %q: %w", outputPath, err)
	}

	walker := selection.NewWalker(cfg, logger)
	files, err := walker.Files()
	if err != nil {
		logger.Error("Failed to collect files", zap.Error(err))
		return fmt.Errorf("failed to collect files: %w", err)
	}
	files = dropOutputFile(files, cfg.Root, absOutput)

	for _, warn := range walker.Warnings() {
		logger.Warn("Entry skipped during traversal", zap.Error(warn))
	}

	if len(files) == 0 {
		// A tree with no matching files is a valid, empty result.
		logger.Warn("No files matched the selection", zap.String("directory", cfg.Root))
	}

	selectedSize := totalSize(cfg.Root, files, logger)
	if selectedSize > DefaultSizeLimit && !args.AssumeYes {
		proceed, err := confirmLargeRun(selectedSize)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !proceed {
			logger.Info("User aborted the flatten process",
				zap.Int64("totalSizeBytes", selectedSize))
			return nil
		}
	}

	if err := writeCombined(absOutput, cfg.Root, files, logger); err != nil {
		return err
	}

	logger.Info("Successfully flattened directory",
		zap.String("outputFile", absOutput),
		zap.Int("totalFiles", len(files)),
		zap.Int("skippedEntries", len(walker.Warnings())),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// dropOutputFile removes the output file itself from the selection when it
// lives under the root, so the tool never aggregates its own output.
func dropOutputFile(files []string, root, absOutput string) []string {
	rel, err := filepath.Rel(root, absOutput)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return files
	}
	rel = filepath.ToSlash(rel)

	out := files[:0]
	for _, f := range files {
		if f != rel {
			out = append(out, f)
		}
	}
	return out
}

// writeCombined renders every selected file into the output document.
func writeCombined(outputPath, root string, files []string, logger *zap.Logger) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		logger.Error("Failed to create output directory", zap.String("path", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(err))
		}
	}()

	writer := bufio.NewWriter(outFile)
	for _, rel := range files {
		if err := renderFile(writer, root, rel, logger); err != nil {
			return fmt.Errorf("failed to render %s: %w", rel, err)
		}
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
