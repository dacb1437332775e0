package domain

import "strings"

// Slugify derives a URL-safe slug from a startup name: lowercase, every
// run of non-alphanumerics collapsed to a single '-', no leading or
// trailing separator. Falls back to a prefix of id when nothing is left.
func Slugify(name, id string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		if len(id) > 8 {
			return id[:8]
		}
		return id
	}
	return slug
}
