package main

import (
	"fmt"
	"os"
	"strings"
)

// writeOutput writes content to path, or to stdout when path is empty.
// File writes are confirmed on stderr so stdout stays clean for
// content.
func writeOutput(path, content string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	return nil
}

// readText reads a whole file as a string with CRLF normalized to LF.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// readLines reads a file and splits it into lines. Line numbers used
// by structure hints are 1-based indices into this slice.
func readLines(path string) ([]string, error) {
	text, err := readText(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(text, "\n"), "\n"), nil
}
