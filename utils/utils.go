package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CreateResultsDir makes a timestamped results directory under outputDir.
func CreateResultsDir(outputDir string) (string, error) {
	baseDir := filepath.Join(outputDir, "dartRResults")
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return "", fmt.Errorf("creating results directory: %w", err)
	}

	now := time.Now()
	resultsDir := filepath.Join(baseDir, fmt.Sprintf("%02d_%02d_%04d_%02d_%02d_%02d",
		now.Day(), now.Month(), now.Year(), now.Hour(), now.Minute(), now.Second()))
	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		return "", fmt.Errorf("creating results directory: %w", err)
	}
	fmt.Printf("Created results directory at %s ..\n\n", resultsDir)

	return resultsDir, nil
}

// OpenRunLog opens (appending) the JSON run log inside a results directory.
func OpenRunLog(resultsDir string) (*os.File, error) {
	logPath := filepath.Join(resultsDir, "dartr.log")
	logFile, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	return logFile, nil
}
