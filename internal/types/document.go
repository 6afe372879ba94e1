// Package types provides type definitions for structured data used throughout the cv-studio system.
package types

import (
	"encoding/json"
	"fmt"
)

// PlaceholderName is rendered whenever a document has no basics.name yet.
const PlaceholderName = "Your Name"

// Location represents a physical location attached to basics or an entry.
// All fields are optional; absent values are omitted from the serialized form.
type Location struct {
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Address     string `json:"address,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
}

// Profile represents a social/professional network profile link.
type Profile struct {
	Network  string `json:"network,omitempty"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Basics holds the contact block of a resume document.
type Basics struct {
	Name     string    `json:"name,omitempty"`
	Label    string    `json:"label,omitempty"`
	Image    string    `json:"image,omitempty"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	URL      string    `json:"url,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Location Location  `json:"location,omitempty"`
	Profiles []Profile `json:"profiles,omitempty"`
}

// WorkEntry represents one employment position.
// EndDate absent together with IsCurrentRole true means the role is ongoing.
type WorkEntry struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name,omitempty"` // employer
	Position      string   `json:"position,omitempty"`
	URL           string   `json:"url,omitempty"`
	StartDate     string   `json:"startDate,omitempty"`
	EndDate       string   `json:"endDate,omitempty"`
	Summary       string   `json:"summary,omitempty"`
	Description   string   `json:"description,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
	Location      string   `json:"location,omitempty"`
	IsCurrentRole bool     `json:"isCurrentRole,omitempty"`
}

// EducationEntry represents one education record.
type EducationEntry struct {
	ID          string   `json:"id,omitempty"`
	Institution string   `json:"institution,omitempty"`
	Area        string   `json:"area,omitempty"`
	StudyType   string   `json:"studyType,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Score       string   `json:"score,omitempty"`
	Courses     []string `json:"courses,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	Location    string   `json:"location,omitempty"`
}

// SkillGroup represents a named skill category with its keywords.
type SkillGroup struct {
	Name     string   `json:"name,omitempty"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// ProjectEntry represents one project record.
type ProjectEntry struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	URL         string   `json:"url,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	Entity      string   `json:"entity,omitempty"`
	Type        string   `json:"type,omitempty"`
}

// Certificate represents one certificate record.
type Certificate struct {
	Name   string `json:"name,omitempty"`
	Date   string `json:"date,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Language represents one spoken language with its fluency level.
type Language struct {
	Language string `json:"language,omitempty"`
	Fluency  string `json:"fluency,omitempty"`
}

// VolunteerEntry has the same shape as WorkEntry but with an organization
// instead of an employer name, and no current-role flag.
type VolunteerEntry struct {
	ID           string   `json:"id,omitempty"`
	Organization string   `json:"organization,omitempty"`
	Position     string   `json:"position,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
	Location     string   `json:"location,omitempty"`
}

// ResumeDocument is the canonical structured representation of a resume.
// All lists preserve user-specified order; order carries display sequencing
// meaning. Every entry tolerates partially filled fields since the editor
// produces entries incrementally.
type ResumeDocument struct {
	Basics       Basics           `json:"basics"`
	Work         []WorkEntry      `json:"work,omitempty"`
	Education    []EducationEntry `json:"education,omitempty"`
	Skills       []SkillGroup     `json:"skills,omitempty"`
	Projects     []ProjectEntry   `json:"projects,omitempty"`
	Certificates []Certificate    `json:"certificates,omitempty"`
	Languages    []Language       `json:"languages,omitempty"`
	Volunteer    []VolunteerEntry `json:"volunteer,omitempty"`
}

// documentFields is the set of top-level field names accepted by Set.
var documentFields = map[string]bool{
	"basics":       true,
	"work":         true,
	"education":    true,
	"skills":       true,
	"projects":     true,
	"certificates": true,
	"languages":    true,
	"volunteer":    true,
}

// Valid reports whether the document is valid for public display
// (basics.name must be non-empty).
func (d ResumeDocument) Valid() bool {
	return d.Basics.Name != ""
}

// DisplayName returns the owner name, or the placeholder for an empty document.
func (d ResumeDocument) DisplayName() string {
	if d.Basics.Name == "" {
		return PlaceholderName
	}
	return d.Basics.Name
}

// Set returns a copy of the document with exactly one top-level field replaced
// by the given JSON value. The receiver is never mutated, so snapshots held by
// concurrent readers (scorer, renderers) stay valid. Unknown field names and
// malformed values are rejected before any change is applied.
func (d ResumeDocument) Set(field string, value json.RawMessage) (ResumeDocument, error) {
	if !documentFields[field] {
		return d, fmt.Errorf("unknown document field: %q", field)
	}

	updated := d
	switch field {
	case "basics":
		var v Basics
		if err := json.Unmarshal(value, &v); err != nil {
			return d, fmt.Errorf("invalid value for field %q: %w", field, err)
		}
		updated.Basics = v
	case "work":
		var v []WorkEntry
		if err := json.Unmarshal(value, &v); err != nil {
			return d, fmt.Errorf("invalid value for field %q: %w", field, err)
		}
		updated.Work = v
	case "education":
		var v []EducationEntry
		if err := json.Unmarshal(value, &v); err != nil {
			return d, fmt.Errorf("invalid value for field %q: %w", field, err)
		}
		updated.Education = v
	case "skills":
		var v []SkillGroup
		if err := json.Unmarshal(value, &v); err != nil {
			return d, fmt.Errorf("invalid value for field %q: %w", field, err)
		}
		updated.Skills = v
	case "projects":
		var v []ProjectEntry
		if err := json.Unmarshal(value, &v); err != nil {
			return d, fmt.Errorf("invalid value for field %q: %w", field, err)
		}
		updated.Projects = v
	case "certificates":
		var v []Certificate
		if err := json.Unmarshal(value, &v); err != nil {
			return d, fmt.Errorf("invalid value for field %q: %w", field, err)
		}
		updated.Certificates = v
	case "languages":
		var v []Language
		if err := json.Unmarshal(value, &v); err != nil {
			return d, fmt.Errorf("invalid value for field %q: %w", field, err)
		}
		updated.Languages = v
	case "volunteer":
		var v []VolunteerEntry
		if err := json.Unmarshal(value, &v); err != nil {
			return d, fmt.Errorf("invalid value for field %q: %w", field, err)
		}
		updated.Volunteer = v
	}

	return updated, nil
}

// NewDocument creates a document with only basics.name set, the shape a
// freshly created resume record starts from.
func NewDocument(name string) ResumeDocument {
	return ResumeDocument{Basics: Basics{Name: name}}
}
