package rendering

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/cv-studio/internal/layout"
	"github.com/jonathan/cv-studio/internal/types"
)

// shellData is what the backend shell templates receive: the view plus the
// pre-rendered section fragments for each column.
type shellData struct {
	View
	SideHTML []template.HTML
	MainHTML []template.HTML
}

// renderSections executes the shared section templates for every visible
// section of a column, in layout order.
func renderSections(tmpl *template.Template, v View, sections []layout.Section) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(sections))
	for _, s := range sections {
		var buf strings.Builder
		if err := tmpl.ExecuteTemplate(&buf, "section-"+s.ID, v); err != nil {
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to render section %s", s.ID),
				Cause:   err,
			}
		}
		out = append(out, template.HTML(buf.String()))
	}
	return out, nil
}

func buildShellData(tmpl *template.Template, doc types.ResumeDocument, zoom float64) (*shellData, error) {
	v := buildView(doc, zoom)
	side, err := renderSections(tmpl, v, v.Side)
	if err != nil {
		return nil, err
	}
	main, err := renderSections(tmpl, v, v.Main)
	if err != nil {
		return nil, err
	}
	return &shellData{View: v, SideHTML: side, MainHTML: main}, nil
}

// previewTmpl is the interactive on-screen backend: a fixed-size virtual page
// canvas with a CSS zoom transform. It re-renders from scratch on every call,
// so output is never stale relative to the document it was given.
const previewTmpl = sectionsTmpl + `
{{define "preview"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}} — Preview</title>
<style>
  .page-canvas { width: 794px; min-height: 1123px; background: #fff; margin: 0 auto;
                 transform: scale({{printf "%.2f" .Zoom}}); transform-origin: top center;
                 box-shadow: 0 2px 12px rgba(0,0,0,.25); padding: 40px; box-sizing: border-box; }
  .columns { display: flex; gap: 32px; }
  .side { flex: 1; }
  .main { flex: 2; }
  h1 { margin: 0 0 4px; font-size: 28px; }
  .label { color: #555; margin: 0 0 24px; }
  h2 { font-size: 14px; text-transform: uppercase; letter-spacing: .08em;
       border-bottom: 1px solid #ddd; padding-bottom: 4px; }
  .tags { list-style: none; padding: 0; display: flex; flex-wrap: wrap; gap: 6px; }
  .tags li { background: #eef; border-radius: 4px; padding: 2px 8px; font-size: 12px; }
  .dates { color: #777; font-size: 13px; }
</style>
</head>
<body>
<div class="page-canvas" data-zoom="{{printf "%.2f" .Zoom}}">
  <header class="identity">
    {{if .ImageURL}}<img class="photo" src="{{.ImageURL}}" alt="">{{end}}
    <h1>{{.Name}}</h1>
    {{with .Label}}<p class="label">{{.}}</p>{{end}}
  </header>
  <div class="columns">
    <aside class="side">{{range .SideHTML}}{{.}}{{end}}</aside>
    <div class="main">{{range .MainHTML}}{{.}}{{end}}</div>
  </div>
</div>
</body>
</html>
{{end}}`

var previewTemplate = template.Must(
	template.New("preview").Funcs(templateFuncs).Parse(previewTmpl))

// PreviewOptions controls the interactive preview backend.
type PreviewOptions struct {
	// Zoom scales the virtual page canvas. Values at or below zero fall back
	// to 1.0.
	Zoom float64
}

// RenderPreview renders the interactive HTML preview. Rendering is total: an
// entirely empty document still produces a valid page with placeholder text.
func RenderPreview(doc types.ResumeDocument, opts PreviewOptions) (string, error) {
	data, err := buildShellData(previewTemplate, doc, opts.Zoom)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := previewTemplate.ExecuteTemplate(&buf, "preview", data); err != nil {
		return "", &TemplateError{Message: "failed to execute preview template", Cause: err}
	}
	return buf.String(), nil
}
