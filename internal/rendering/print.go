package rendering

import (
	"html/template"
	"strings"

	"github.com/jonathan/cv-studio/internal/types"
)

// printTmpl is the paginated backend: fixed A4 page geometry with print CSS.
// It shares every section template with the preview, so the two outputs can
// only differ in medium, never in structure or ordering.
const printTmpl = sectionsTmpl + `
{{define "print"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<style>
  @page { size: A4; margin: 14mm; }
  body { font-family: Georgia, serif; font-size: 10.5pt; color: #111; margin: 0; }
  .columns { display: flex; gap: 10mm; }
  .side { flex: 1; }
  .main { flex: 2; }
  h1 { margin: 0 0 2mm; font-size: 20pt; }
  .label { color: #444; margin: 0 0 8mm; }
  h2 { font-size: 11pt; text-transform: uppercase; letter-spacing: .06em;
       border-bottom: .4pt solid #999; padding-bottom: 1mm; }
  article { break-inside: avoid; }
  .photo { width: 28mm; height: 28mm; object-fit: cover; border-radius: 2mm; float: right; }
  .tags { list-style: none; padding: 0; }
  .tags li { display: inline; }
  .tags li + li::before { content: " · "; }
  .dates { color: #555; }
</style>
</head>
<body>
  <header class="identity">
    {{if .ImageURL}}<img class="photo" src="{{.ImageURL}}" alt="">{{end}}
    <h1>{{.Name}}</h1>
    {{with .Label}}<p class="label">{{.}}</p>{{end}}
  </header>
  <div class="columns">
    <aside class="side">{{range .SideHTML}}{{.}}{{end}}</aside>
    <div class="main">{{range .MainHTML}}{{.}}{{end}}</div>
  </div>
</body>
</html>
{{end}}`

var printTemplate = template.Must(
	template.New("print").Funcs(templateFuncs).Parse(printTmpl))

// RenderPrint renders the paginated document HTML that the PDF step feeds to
// the headless browser. Like the preview, it is total over valid document
// shapes.
func RenderPrint(doc types.ResumeDocument) (string, error) {
	data, err := buildShellData(printTemplate, doc, 1.0)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := printTemplate.ExecuteTemplate(&buf, "print", data); err != nil {
		return "", &TemplateError{Message: "failed to execute print template", Cause: err}
	}
	return buf.String(), nil
}
