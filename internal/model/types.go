package model

// Version of the loadenv tool.
const Version = "0.3.0"

// Entry represents a single KEY=value assignment read from a config file.
type Entry struct {
	Key      string // Assignment key, trimmed, never empty
	RawValue string // Value before resolution, one quote layer stripped
	File     string // Source file (for diagnostics)
	Line     int    // Line number in the source file
}

// FormKind tags how a raw value should be resolved.
type FormKind int

const (
	FormPlain     FormKind = iota // Used verbatim
	FormLiteral                   // Backslash escape, remainder used verbatim
	FormReference                 // Cross-file reference to <path>:<key>
	FormDeferred                  // Resolved by searching ancestor .env files
	FormCommand                   // Resolved by running an external command
)

func (k FormKind) String() string {
	switch k {
	case FormPlain:
		return "plain"
	case FormLiteral:
		return "literal"
	case FormReference:
		return "reference"
	case FormDeferred:
		return "deferred"
	case FormCommand:
		return "command"
	}
	return "unknown"
}

// ValueForm is the classified shape of a raw value. Only the fields relevant
// to Kind are populated.
type ValueForm struct {
	Kind    FormKind
	Value   string // FormPlain / FormLiteral payload
	RefPath string // FormReference target file
	RefKey  string // FormReference target key
	Command string // FormCommand text (split into argv by the invoker)
}

// ResolvedEntry pairs an entry with its resolution outcome.
type ResolvedEntry struct {
	Entry
	Form    ValueForm
	Value   string // Final resolved value
	Secret  bool   // Key looks like it holds a credential
	Changed bool   // Value differed from the prior snapshot entry
}

// ChangeRecord reports one key whose value actually changed during a load.
// For secret keys DisplayValue is already masked.
type ChangeRecord struct {
	Key          string
	DisplayValue string
	Secret       bool
}

// SkippedKey records a per-key resolution failure. Failures never abort the
// rest of the file; they are collected here for reporting.
type SkippedKey struct {
	Key    string
	Reason string
	File   string
	Line   int
}

// LoadResult contains everything a single load pass produced.
type LoadResult struct {
	Entries []ResolvedEntry
	Changes []ChangeRecord
	Skipped []SkippedKey
}
