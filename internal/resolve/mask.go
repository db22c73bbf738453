package resolve

import "strings"

// Mask redacts a value for display. Short values keep one character on each
// side, longer ones keep a little more so the owner can still recognise
// their own secret without it being readable.
func Mask(s string) string {
	n := len(s)
	switch {
	case n == 0:
		return ""
	case n <= 3:
		return s[:1] + "..." + s[n-1:]
	case n <= 6:
		return s[:2] + "..." + s[n-1:]
	default:
		return s[:4] + "..." + s[n-2:]
	}
}

// secretMarkers follow the SCREAMING_SNAKE convention of .env keys, so the
// substring match is deliberately case-sensitive.
var secretMarkers = []string{"PRIVATE", "API_KEY", "APIKEY"}

// IsSecretKey reports whether a key name looks like it holds a credential.
func IsSecretKey(key string) bool {
	for _, marker := range secretMarkers {
		if strings.Contains(key, marker) {
			return true
		}
	}
	return false
}
