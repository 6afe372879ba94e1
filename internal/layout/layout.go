// Package layout defines the single declarative section layout both renderer
// backends consume. Keeping section identity, ordering, column assignment and
// visibility in one place is what guarantees the on-screen preview and the
// printable document can never drift apart structurally.
package layout

import "github.com/jonathan/cv-studio/internal/types"

// Column identifies which page column a section belongs to. The narrow side
// column carries contact-style facts; the wide main column carries prose.
type Column int

const (
	// Side is the narrower column: Contact, Education, Skills, Languages, Certificates.
	Side Column = iota
	// Main is the wider column: Summary, Work, Projects, Volunteering.
	Main
)

// Section IDs, stable across both renderers and their tests.
const (
	SectionContact      = "contact"
	SectionEducation    = "education"
	SectionSkills       = "skills"
	SectionLanguages    = "languages"
	SectionCertificates = "certificates"
	SectionSummary      = "summary"
	SectionWork         = "work"
	SectionProjects     = "projects"
	SectionVolunteer    = "volunteer"
)

// Section describes one renderable section: its identity, heading, column and
// the predicate deciding whether it appears for a given document. A section
// whose predicate returns false is omitted entirely, heading included.
type Section struct {
	ID      string
	Title   string
	Column  Column
	Visible func(doc types.ResumeDocument) bool
}

// Spec returns the fixed section layout in display order. The order within
// each column is a design convention both renderers must match.
func Spec() []Section {
	return []Section{
		// Side column
		{ID: SectionContact, Title: "Contact", Column: Side, Visible: hasContact},
		{ID: SectionEducation, Title: "Education", Column: Side, Visible: func(d types.ResumeDocument) bool { return len(d.Education) > 0 }},
		{ID: SectionSkills, Title: "Skills", Column: Side, Visible: func(d types.ResumeDocument) bool { return len(d.Skills) > 0 }},
		{ID: SectionLanguages, Title: "Languages", Column: Side, Visible: func(d types.ResumeDocument) bool { return len(d.Languages) > 0 }},
		{ID: SectionCertificates, Title: "Certificates", Column: Side, Visible: func(d types.ResumeDocument) bool { return len(d.Certificates) > 0 }},

		// Main column
		{ID: SectionSummary, Title: "Summary", Column: Main, Visible: func(d types.ResumeDocument) bool { return d.Basics.Summary != "" }},
		{ID: SectionWork, Title: "Experience", Column: Main, Visible: func(d types.ResumeDocument) bool { return len(d.Work) > 0 }},
		{ID: SectionProjects, Title: "Projects", Column: Main, Visible: func(d types.ResumeDocument) bool { return len(d.Projects) > 0 }},
		{ID: SectionVolunteer, Title: "Volunteering", Column: Main, Visible: func(d types.ResumeDocument) bool { return len(d.Volunteer) > 0 }},
	}
}

// Visible returns the sections of one column that apply to the document,
// preserving spec order.
func Visible(doc types.ResumeDocument, col Column) []Section {
	var out []Section
	for _, s := range Spec() {
		if s.Column == col && s.Visible(doc) {
			out = append(out, s)
		}
	}
	return out
}

// hasContact reports whether any contact detail is worth rendering. The
// contact block is always present on a non-empty document; a fully empty
// basics still shows the placeholder name in the header, not a section.
func hasContact(d types.ResumeDocument) bool {
	b := d.Basics
	return b.Email != "" || b.Phone != "" || b.URL != "" ||
		b.Location.City != "" || b.Location.Region != "" || len(b.Profiles) > 0
}
