package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconSecret    = "◆" // Diamond for secret-classified keys
	IconChanged   = "+" // Value changed during this load
	IconUnchanged = " " // Space (unchanged - no icon to reduce noise)
	IconSkipped   = "✗" // Thin X (resolution failed, key skipped)
	IconReference = "→" // Right arrow (cross-file reference)
	IconDeferred  = "↑" // Up arrow (resolved from an ancestor .env)
	IconCommand   = "$" // Command substitution
)

// FormIcon returns the marker glyph for a value form.
func FormIcon(kind FormKind) string {
	switch kind {
	case FormReference:
		return IconReference
	case FormDeferred:
		return IconDeferred
	case FormCommand:
		return IconCommand
	}
	return IconUnchanged
}
