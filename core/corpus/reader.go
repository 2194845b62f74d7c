// Package corpus reads training text into lines and paired token sequences.
package corpus

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ReadLines reads a UTF-8 text file and splits it into lines. When maxLines
// is positive, at most maxLines lines are returned.
func ReadLines(path string, maxLines int) ([]string, error) {
	slog.Debug("reading file into lines", "path", path, "max_lines", maxLines)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines, nil
}

// ReadPairs loads aligned X and y sequences from two text files, one
// whitespace-tokenized sequence per line. Trailing empty lines are dropped
// from both sides; a remaining line-count mismatch is an error.
func ReadPairs(xPath, yPath string, maxLines int) (x, y [][]string, err error) {
	xLines, err := ReadLines(xPath, maxLines)
	if err != nil {
		return nil, nil, err
	}
	yLines, err := ReadLines(yPath, maxLines)
	if err != nil {
		return nil, nil, err
	}

	xLines = trimTrailingEmpty(xLines)
	yLines = trimTrailingEmpty(yLines)

	if len(xLines) != len(yLines) {
		return nil, nil, fmt.Errorf("line count mismatch: %s has %d lines, %s has %d", xPath, len(xLines), yPath, len(yLines))
	}

	x = make([][]string, len(xLines))
	y = make([][]string, len(yLines))
	for i := range xLines {
		x[i] = strings.Fields(xLines[i])
		y[i] = strings.Fields(yLines[i])
	}
	return x, y, nil
}

func trimTrailingEmpty(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
