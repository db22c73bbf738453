package model

import (
	"os"
	"strings"
)

// Snapshot is an explicit environment mapping. The loader mutates a snapshot
// instead of the process environment directly, so tests can assert against a
// fresh map and callers decide when (or whether) to sync back to the process.
type Snapshot map[string]string

// FromEnviron builds a snapshot of the current process environment.
func FromEnviron() Snapshot {
	snap := make(Snapshot)
	for _, kv := range os.Environ() {
		if i := strings.Index(kv, "="); i > 0 {
			snap[kv[:i]] = kv[i+1:]
		}
	}
	return snap
}

// Get returns the current value of key and whether it exists. An absent key
// is a distinct state from an empty value.
func (s Snapshot) Get(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// Set adds or overwrites an entry. The loader never deletes entries.
func (s Snapshot) Set(key, value string) {
	s[key] = value
}
