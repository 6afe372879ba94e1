package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestResumePatch_Empty(t *testing.T) {
	assert.True(t, ResumePatch{}.Empty())
	assert.False(t, ResumePatch{Title: strPtr("x")}.Empty())
	assert.False(t, ResumePatch{Document: json.RawMessage(`{}`)}.Empty())
}

func TestBuildResumeUpdate_SingleField(t *testing.T) {
	set, args := buildResumeUpdate(ResumePatch{Title: strPtr("New Title")})

	assert.Equal(t, "updated_at = NOW(), title = $3", set)
	assert.Equal(t, []any{"New Title"}, args)
}

func TestBuildResumeUpdate_AllFields(t *testing.T) {
	doc := json.RawMessage(`{"basics":{"name":"Jane"}}`)
	set, args := buildResumeUpdate(ResumePatch{
		Title:    strPtr("Title"),
		Slug:     strPtr("title"),
		Public:   boolPtr(true),
		Document: doc,
	})

	assert.Equal(t, "updated_at = NOW(), title = $3, slug = $4, public = $5, document = $6", set)
	assert.Equal(t, []any{"Title", "title", true, doc}, args)
}

// Placeholder numbering must stay contiguous when leading fields are absent.
func TestBuildResumeUpdate_SkipsNilFields(t *testing.T) {
	set, args := buildResumeUpdate(ResumePatch{
		Public:   boolPtr(false),
		Document: json.RawMessage(`{}`),
	})

	assert.Equal(t, "updated_at = NOW(), public = $3, document = $4", set)
	assert.Len(t, args, 2)
	assert.Equal(t, false, args[0])
}

func TestBuildResumeUpdate_EmptyPatchTouchesTimestampOnly(t *testing.T) {
	set, args := buildResumeUpdate(ResumePatch{})
	assert.Equal(t, "updated_at = NOW()", set)
	assert.Empty(t, args)
}
