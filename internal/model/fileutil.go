package model

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}

// SourceContext reads a file and returns the target line with up to radius
// lines of context on each side, for display in the inspect view. The target
// line is marked with a leading ">".
func SourceContext(filePath string, lineNumber, radius int) []string {
	file, err := os.Open(ExpandTilde(filePath))
	if err != nil {
		return []string{fmt.Sprintf("Could not read file: %v", err)}
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return []string{fmt.Sprintf("Error reading file: %v", err)}
	}

	if lineNumber < 1 || lineNumber > len(lines) {
		return []string{fmt.Sprintf("Line %d out of range (file has %d lines)", lineNumber, len(lines))}
	}

	start := lineNumber - 1 - radius
	if start < 0 {
		start = 0
	}
	end := lineNumber + radius
	if end > len(lines) {
		end = len(lines)
	}

	var out []string
	for i := start; i < end; i++ {
		marker := "  "
		if i == lineNumber-1 {
			marker = "> "
		}
		out = append(out, fmt.Sprintf("%s%4d  %s", marker, i+1, lines[i]))
	}
	return out
}
