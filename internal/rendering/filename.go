package rendering

import (
	"fmt"
	"time"
)

// Filename derives the download filename for a rendered document from the
// owner's name and the given date. Every non-alphanumeric rune becomes an
// underscore so the result is safe on any filesystem.
func Filename(name string, now time.Time) string {
	if name == "" {
		name = "resume"
	}
	base := sanitize(name) + "_" + now.Format("2006-01-02")
	return fmt.Sprintf("%s.pdf", sanitize(base))
}

func sanitize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
