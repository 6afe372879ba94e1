package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// CreateResumeRequest represents the request to create a new resume record.
// The document starts as a bare basics.name; Name defaults to the title when
// omitted. Slug is optional and derived from the title when empty.
type CreateResumeRequest struct {
	Title string `json:"title" validate:"required,min=1"`
	Slug  string `json:"slug,omitempty" validate:"omitempty,min=1,max=120"`
	Name  string `json:"name,omitempty"`
}

// UpdateResumeRequest represents a partial (autosave) update. Every field is
// optional; nil means "leave unchanged". Applying the same request twice
// yields the same record state.
type UpdateResumeRequest struct {
	Title    *string          `json:"title,omitempty"`
	Slug     *string          `json:"slug,omitempty"`
	Public   *bool            `json:"public,omitempty"`
	Document *json.RawMessage `json:"document,omitempty"`
}

// Empty reports whether the update carries no changes at all.
func (r *UpdateResumeRequest) Empty() bool {
	return r.Title == nil && r.Slug == nil && r.Public == nil && r.Document == nil
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
