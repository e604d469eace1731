package settings

import (
	"strings"
)

// Slugify derives a machine key from a display name: lowercased, spaces
// become underscores, everything outside [a-z0-9_] is stripped.
func Slugify(name string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	return b.String()
}
