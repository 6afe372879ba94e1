package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/cv-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func sampleDocument() types.ResumeDocument {
	return types.ResumeDocument{
		Basics: types.Basics{
			Name:    "Jane Doe",
			Label:   "Staff Engineer",
			Email:   "jane@example.com",
			Summary: "Engineer who ships.",
			Location: types.Location{
				City:   "Berlin",
				Region: "BE",
			},
		},
		Work: []types.WorkEntry{
			{Name: "Acme", Position: "Staff Engineer", StartDate: "2021-03",
				EndDate: "2025-01", IsCurrentRole: true,
				Highlights: []string{"Cut costs", "", "Led team"}},
		},
		Skills: []types.SkillGroup{
			{Name: "Languages", Keywords: []string{"Go", "", "SQL"}},
		},
		Languages: []types.Language{{Language: "German", Fluency: "Native"}},
	}
}

// Rendering is total: a maximally empty document still renders with the
// placeholder name and no section headings.
func TestRenderPreview_EmptyDocument(t *testing.T) {
	html, err := RenderPreview(types.ResumeDocument{}, PreviewOptions{})
	require.NoError(t, err)

	page := parseHTML(t, html)
	assert.Equal(t, "Your Name", strings.TrimSpace(page.Find("h1").Text()))
	assert.Zero(t, page.Find("section").Length(), "no section should render for an empty document")
	assert.Zero(t, page.Find("h2").Length(), "no heading should render for an empty document")
}

func TestRenderPrint_EmptyDocument(t *testing.T) {
	html, err := RenderPrint(types.ResumeDocument{})
	require.NoError(t, err)

	page := parseHTML(t, html)
	assert.Equal(t, "Your Name", strings.TrimSpace(page.Find("h1").Text()))
	assert.Zero(t, page.Find("section").Length())
}

func TestRenderPreview_SectionOrderAndVisibility(t *testing.T) {
	html, err := RenderPreview(sampleDocument(), PreviewOptions{})
	require.NoError(t, err)
	page := parseHTML(t, html)

	side := sectionIDs(page, ".side section")
	main := sectionIDs(page, ".main section")

	assert.Equal(t, []string{"contact", "skills", "languages"}, side)
	assert.Equal(t, []string{"summary", "work"}, main)

	// Empty sections never render a heading.
	assert.Zero(t, page.Find(`section[data-section="education"]`).Length())
	assert.Zero(t, page.Find(`section[data-section="projects"]`).Length())
}

// A current role renders "Present" even when a stale endDate value exists.
func TestRenderPreview_CurrentRoleRendersPresent(t *testing.T) {
	html, err := RenderPreview(sampleDocument(), PreviewOptions{})
	require.NoError(t, err)
	page := parseHTML(t, html)

	dates := page.Find(`section[data-section="work"] .dates`).First().Text()
	assert.Contains(t, dates, "Present")
	assert.NotContains(t, dates, "2025-01")
}

func TestRenderPreview_FiltersBlankSlots(t *testing.T) {
	html, err := RenderPreview(sampleDocument(), PreviewOptions{})
	require.NoError(t, err)
	page := parseHTML(t, html)

	highlights := page.Find(`section[data-section="work"] .highlights li`)
	assert.Equal(t, 2, highlights.Length())

	keywords := page.Find(`section[data-section="skills"] .tags li`)
	assert.Equal(t, 2, keywords.Length())
}

func TestRenderPreview_ZoomScale(t *testing.T) {
	html, err := RenderPreview(sampleDocument(), PreviewOptions{Zoom: 0.75})
	require.NoError(t, err)
	page := parseHTML(t, html)

	zoom, ok := page.Find(".page-canvas").Attr("data-zoom")
	require.True(t, ok)
	assert.Equal(t, "0.75", zoom)

	// Zero or negative zoom falls back to 1.0 rather than producing an
	// invisible canvas.
	html, err = RenderPreview(sampleDocument(), PreviewOptions{Zoom: -2})
	require.NoError(t, err)
	zoom, _ = parseHTML(t, html).Find(".page-canvas").Attr("data-zoom")
	assert.Equal(t, "1.00", zoom)
}

// A malformed image reference is dropped instead of aborting the render.
func TestRender_MalformedImageOmitted(t *testing.T) {
	doc := sampleDocument()
	doc.Basics.Image = "javascript:alert(1)"

	html, err := RenderPrint(doc)
	require.NoError(t, err)
	page := parseHTML(t, html)
	assert.Zero(t, page.Find("img.photo").Length())

	doc.Basics.Image = "https://example.com/photo.jpg"
	html, err = RenderPrint(doc)
	require.NoError(t, err)
	page = parseHTML(t, html)
	assert.Equal(t, 1, page.Find("img.photo").Length())
}

// Both backends must agree on which sections render and in what order.
func TestRenderBoth_StructuralConsistency(t *testing.T) {
	docs := []types.ResumeDocument{
		{},
		types.NewDocument("Jane"),
		sampleDocument(),
		{
			Basics:       types.Basics{Name: "A", Summary: "S"},
			Projects:     []types.ProjectEntry{{Name: "cv-studio"}},
			Certificates: []types.Certificate{{Name: "CKA", Issuer: "CNCF"}},
			Volunteer:    []types.VolunteerEntry{{Organization: "Food Bank", Position: "Driver"}},
		},
	}

	for _, doc := range docs {
		out, err := RenderBoth(doc, PreviewOptions{})
		require.NoError(t, err)

		preview := parseHTML(t, out.Preview)
		print := parseHTML(t, out.Print)

		assert.Equal(t, sectionIDs(preview, ".side section"), sectionIDs(print, ".side section"))
		assert.Equal(t, sectionIDs(preview, ".main section"), sectionIDs(print, ".main section"))
	}
}

func sectionIDs(page *goquery.Document, selector string) []string {
	var out []string
	page.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("data-section")
		out = append(out, id)
	})
	return out
}
