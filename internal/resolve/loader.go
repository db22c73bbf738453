package resolve

import (
	"errors"
	"fmt"
	"io"
	"os"

	"loadenv/internal/model"
)

// Loader runs the parse → classify → resolve → apply pipeline for one file.
type Loader struct {
	Resolver *Resolver
	Stderr   io.Writer // Per-key diagnostics
}

func NewLoader(r *Resolver) *Loader {
	return &Loader{Resolver: r, Stderr: os.Stderr}
}

// LoadFile resolves every entry in path against snap and returns what
// happened. A missing file is a silent no-op. A failed key is reported to
// Stderr and skipped; it never aborts the rest of the file. When a file
// repeats a key, the last occurrence wins.
func (l *Loader) LoadFile(path string, snap model.Snapshot) model.LoadResult {
	var result model.LoadResult

	entries, err := ParseFile(path)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			return result
		}
		fmt.Fprintf(l.Stderr, "loadenv: %s: %v\n", path, err)
		return result
	}

	lastIdx := make(map[string]int, len(entries))
	for i, entry := range entries {
		lastIdx[entry.Key] = i
	}

	for i, entry := range entries {
		if lastIdx[entry.Key] != i {
			continue // superseded by a later assignment of the same key
		}

		form := Classify(entry.RawValue)
		value, err := l.Resolver.Resolve(entry.Key, form)
		if err != nil {
			rerr := &ResolveError{Key: entry.Key, Err: err}
			fmt.Fprintf(l.Stderr, "loadenv: %s:%d: %v\n", entry.File, entry.Line, rerr)
			result.Skipped = append(result.Skipped, model.SkippedKey{
				Key:    entry.Key,
				Reason: err.Error(),
				File:   entry.File,
				Line:   entry.Line,
			})
			continue
		}

		resolved := model.ResolvedEntry{
			Entry:  entry,
			Form:   form,
			Value:  value,
			Secret: IsSecretKey(entry.Key),
		}
		if record, changed := Apply(snap, entry.Key, value); changed {
			resolved.Changed = true
			result.Changes = append(result.Changes, record)
		}
		result.Entries = append(result.Entries, resolved)
	}
	return result
}
