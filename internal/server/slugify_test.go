package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Jane Doe", "jane-doe"},
		{"Senior Engineer (Platform)", "senior-engineer-platform"},
		{"  spaced   out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"C++ Developer 2026", "c-developer-2026"},
		{"Jürgen", "j-rgen"},
		{"???", "resume"},
		{"", "resume"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.title), "title %q", tt.title)
	}
}

func TestSlugify_Truncates(t *testing.T) {
	slug := slugify(strings.Repeat("word ", 60))
	assert.LessOrEqual(t, len(slug), maxSlugLen)
	assert.False(t, strings.HasSuffix(slug, "-"))
}
