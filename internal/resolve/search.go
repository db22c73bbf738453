package resolve

import (
	"errors"
	"fmt"
	"path/filepath"
)

// searchAncestors walks parent directories looking for a .env file that
// defines key. The closest file wins. The walk is boundary-based: it stops
// at the filesystem root or at the home directory, and only additionally at
// MaxDepth when a cap is configured (MaxDepth == 0 searches all the way up).
func (r *Resolver) searchAncestors(start, key string) (string, error) {
	dir := filepath.Dir(start)
	depth := 0
	for {
		if dir == r.HomeDir {
			break
		}
		if filepath.Dir(dir) == dir {
			break // filesystem root
		}
		depth++
		if r.MaxDepth > 0 && depth > r.MaxDepth {
			break
		}

		value, err := LookupKey(filepath.Join(dir, EnvFileName), key)
		if err == nil {
			return value, nil
		}
		// No .env at this level, or it doesn't define the key: keep climbing.
		if !errors.Is(err, ErrFileNotFound) && !errors.Is(err, ErrKeyNotFound) {
			return "", err
		}
		dir = filepath.Dir(dir)
	}
	return "", fmt.Errorf("%w: %s", ErrSearchExhausted, key)
}
