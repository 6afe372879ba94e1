package layout

import (
	"testing"

	"github.com/jonathan/cv-studio/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSpec_OrderAndColumns(t *testing.T) {
	var side, main []string
	for _, s := range Spec() {
		if s.Column == Side {
			side = append(side, s.ID)
		} else {
			main = append(main, s.ID)
		}
	}

	assert.Equal(t, []string{SectionContact, SectionEducation, SectionSkills, SectionLanguages, SectionCertificates}, side)
	assert.Equal(t, []string{SectionSummary, SectionWork, SectionProjects, SectionVolunteer}, main)
}

func TestVisible_EmptyDocumentHidesEverything(t *testing.T) {
	doc := types.ResumeDocument{}
	assert.Empty(t, Visible(doc, Side))
	assert.Empty(t, Visible(doc, Main))
}

func TestVisible_SectionsAppearWithContent(t *testing.T) {
	doc := types.ResumeDocument{
		Basics: types.Basics{
			Name:    "Jane",
			Email:   "jane@example.com",
			Summary: "Engineer.",
		},
		Work:      []types.WorkEntry{{Name: "Acme"}},
		Languages: []types.Language{{Language: "German", Fluency: "Native"}},
	}

	sideIDs := ids(Visible(doc, Side))
	mainIDs := ids(Visible(doc, Main))

	assert.Equal(t, []string{SectionContact, SectionLanguages}, sideIDs)
	assert.Equal(t, []string{SectionSummary, SectionWork}, mainIDs)
}

func TestVisible_NameAloneIsNotAContactSection(t *testing.T) {
	doc := types.NewDocument("Jane")
	assert.Empty(t, Visible(doc, Side))
}

func ids(sections []Section) []string {
	var out []string
	for _, s := range sections {
		out = append(out, s.ID)
	}
	return out
}
