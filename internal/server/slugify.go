package server

import "strings"

const maxSlugLen = 120

// slugify derives a URL-safe slug from a title: lowercase, runs of anything
// that is not a letter or digit collapse to a single hyphen, leading and
// trailing hyphens are trimmed. An empty result falls back to "resume".
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if len(slug) > maxSlugLen {
		slug = strings.TrimRight(slug[:maxSlugLen], "-")
	}
	if slug == "" {
		return "resume"
	}
	return slug
}
