package rendering

import (
	"net/url"
	"strings"

	"github.com/jonathan/cv-studio/internal/layout"
	"github.com/jonathan/cv-studio/internal/types"
)

// View is the template data shared by the preview and print backends. Both
// templates consume the same visible-section lists, so structure and ordering
// are decided here exactly once.
type View struct {
	Name     string
	Label    string
	ImageURL string
	Doc      types.ResumeDocument
	Side     []layout.Section
	Main     []layout.Section

	// Zoom applies to the preview backend only; the print backend ignores it.
	Zoom float64
}

func buildView(doc types.ResumeDocument, zoom float64) View {
	if zoom <= 0 {
		zoom = 1.0
	}
	return View{
		Name:     doc.DisplayName(),
		Label:    doc.Basics.Label,
		ImageURL: safeImageURL(doc.Basics.Image),
		Doc:      doc,
		Side:     layout.Visible(doc, layout.Side),
		Main:     layout.Visible(doc, layout.Main),
		Zoom:     zoom,
	}
}

// safeImageURL returns the image reference only when it parses as an http(s)
// or data URL. A malformed reference is silently omitted so one bad field
// never aborts the rest of the render.
func safeImageURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "http", "https", "data":
		return u.String()
	default:
		return ""
	}
}
