package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		key   string
		value string
		ok    bool
	}{
		{"simple", "FOO=bar", "FOO", "bar", true},
		{"blank", "   ", "", "", false},
		{"comment", "# FOO=bar", "", "", false},
		{"indented comment", "   # note", "", "", false},
		{"no equals", "JUSTAWORD", "", "", false},
		{"empty key", "=value", "", "", false},
		{"export prefix", "export FOO=bar", "FOO", "bar", true},
		{"key whitespace", "  FOO  =bar", "FOO", "bar", true},
		{"value whitespace", "FOO=  bar  ", "FOO", "bar", true},
		{"double quotes", `FOO="hello world"`, "FOO", "hello world", true},
		{"single quotes", "FOO='hello world'", "FOO", "hello world", true},
		{"equals in value", "FOO=a=b=c", "FOO", "a=b=c", true},
		{"empty value", "FOO=", "FOO", "", true},
		{"key named export", "export=1", "export", "1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := parseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestUnquote_RequiresMatchedPair(t *testing.T) {
	// The old loader stripped a lone trailing quote; a matched pair is
	// required now.
	assert.Equal(t, `bar"`, unquote(`bar"`))
	assert.Equal(t, `"bar`, unquote(`"bar`))
	assert.Equal(t, `'bar"`, unquote(`'bar"`))
	assert.Equal(t, "bar", unquote(`"bar"`))
	assert.Equal(t, `"`, unquote(`"`))
	// Exactly one layer is stripped.
	assert.Equal(t, `"bar"`, unquote(`""bar""`))
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	writeTestFile(t, path, "# comment\nFOO=1\n\nexport BAR=\"two\"\nbroken line\nBAZ=3\n")

	entries, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "FOO", entries[0].Key)
	assert.Equal(t, "1", entries[0].RawValue)
	assert.Equal(t, 2, entries[0].Line)
	assert.Equal(t, path, entries[0].File)

	assert.Equal(t, "BAR", entries[1].Key)
	assert.Equal(t, "two", entries[1].RawValue)
	assert.Equal(t, 4, entries[1].Line)

	assert.Equal(t, "BAZ", entries[2].Key)
	assert.Equal(t, 6, entries[2].Line)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.env"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLookupKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shared.env")
	writeTestFile(t, path, "TOKEN=\"first\"\nTOKEN=second\nOTHER=x\n")

	value, err := LookupKey(path, "TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "first", value, "first matching line wins")

	_, err = LookupKey(path, "MISSING")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	_, err = LookupKey(filepath.Join(dir, "absent.env"), "TOKEN")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLookupKey_OneHopOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shared.env")
	writeTestFile(t, path, "CHAINED=DEFER_PARENT\n")

	// The target file's value is taken verbatim, even when it is itself a
	// special form.
	value, err := LookupKey(path, "CHAINED")
	require.NoError(t, err)
	assert.Equal(t, "DEFER_PARENT", value)
}
