package resolve

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"loadenv/internal/model"
)

// EnvFileName is the default config file name, both for the primary load
// target and for ancestor search.
const EnvFileName = ".env"

// ParseFile reads a .env-style file into entries, preserving file order.
// Blank lines, comments and lines without '=' are skipped.
func ParseFile(path string) ([]model.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	var entries []model.Entry
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		entries = append(entries, model.Entry{
			Key:      key,
			RawValue: value,
			File:     path,
			Line:     lineNum,
		})
	}
	return entries, scanner.Err()
}

// LookupKey scans a file for the first line assigning key and returns its
// value with one quote layer stripped. It never resolves special forms in
// the target file: a reference is exactly one hop.
func LookupKey(path, key string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		k, v, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if k == key {
			return v, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%w: %s in %s", ErrKeyNotFound, key, path)
}

// parseLine normalizes one raw line into a key/value pair. It returns
// ok=false for blank lines, comments, lines without '=' and empty keys.
// An optional leading "export " is dropped.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if rest, found := strings.CutPrefix(line, "export "); found {
		line = strings.TrimSpace(rest)
	}
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	if key == "" {
		return "", "", false
	}
	value = unquote(strings.TrimSpace(line[idx+1:]))
	return key, value, true
}

// unquote strips exactly one matching pair of surrounding single or double
// quotes. A lone trailing quote is left alone: the old loader stripped it,
// which mangled values that legitimately end in a quote.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}
