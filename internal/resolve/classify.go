package resolve

import (
	"strings"

	"loadenv/internal/model"
)

const (
	// deferToken marks a value that should be looked up in ancestor .env files.
	deferToken = "DEFER_PARENT"
	// refPrefix is the explicit cross-file reference syntax. The ${path:key}
	// syntax is accepted as an alias; REF: is the canonical form.
	refPrefix = "REF:"
)

// Classify tags a raw value with its resolution form. Patterns are tested in
// precedence order, first match wins:
//
//  1. Leading backslash: literal escape, remainder used verbatim.
//  2. REF:<path>:<key> or ${<abs-path>:<key>}: cross-file reference.
//  3. DEFER_PARENT: ancestor search.
//  4. ${<command and args>}: command substitution.
//  5. Anything else: plain.
//
// Classification is a pure function of the raw value; validation of
// reference paths happens at resolution time.
func Classify(raw string) model.ValueForm {
	if strings.HasPrefix(raw, `\`) {
		return model.ValueForm{Kind: model.FormLiteral, Value: raw[1:]}
	}
	if rest, found := strings.CutPrefix(raw, refPrefix); found {
		path, key := splitRef(rest)
		return model.ValueForm{Kind: model.FormReference, RefPath: path, RefKey: key}
	}
	if raw == deferToken {
		return model.ValueForm{Kind: model.FormDeferred}
	}
	if inner, ok := braced(raw); ok {
		// ${...} is a reference only when the inner text splits into an
		// absolute-path prefix and a trailing key; everything else, including
		// the fixed "skate get <name>" secret-store form, is a command.
		if path, key := splitRef(inner); strings.HasPrefix(path, "/") && key != "" {
			return model.ValueForm{Kind: model.FormReference, RefPath: path, RefKey: key}
		}
		return model.ValueForm{Kind: model.FormCommand, Command: inner}
	}
	return model.ValueForm{Kind: model.FormPlain, Value: raw}
}

// braced returns the inner text of a non-empty ${...} wrapper.
func braced(s string) (string, bool) {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") && len(s) > 3 {
		return s[2 : len(s)-1], true
	}
	return "", false
}

// splitRef splits "<path>:<key>" at the last colon, so paths containing
// colons still work. A key containing spaces, slashes or '=' disqualifies
// the split (key stays empty).
func splitRef(s string) (path, key string) {
	i := strings.LastIndex(s, ":")
	if i <= 0 || i == len(s)-1 {
		return s, ""
	}
	path, key = s[:i], s[i+1:]
	if strings.ContainsAny(key, "/ =") {
		return s, ""
	}
	return path, key
}
