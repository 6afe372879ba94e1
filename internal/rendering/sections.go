package rendering

import (
	"html/template"

	"github.com/jonathan/cv-studio/internal/types"
)

// templateFuncs are shared by both backends so date ranges and blank-slot
// filtering behave identically on screen and on paper.
var templateFuncs = template.FuncMap{
	"workDates": func(w types.WorkEntry) string {
		return FormatDateRange(w.StartDate, w.EndDate, w.IsCurrentRole)
	},
	"volDates": func(v types.VolunteerEntry) string {
		return FormatDateRange(v.StartDate, v.EndDate, false)
	},
	"dates":    FormatDateRange,
	"nonblank": FilterBlank,
}

// sectionsTmpl holds one named template per section. Both backends parse this
// exact text, so the markup inside a section is written once and the shells
// only differ in page chrome and CSS.
const sectionsTmpl = `
{{define "section-contact"}}
<section class="contact" data-section="contact">
  <h2>Contact</h2>
  <ul>
    {{with .Doc.Basics.Email}}<li class="email">{{.}}</li>{{end}}
    {{with .Doc.Basics.Phone}}<li class="phone">{{.}}</li>{{end}}
    {{with .Doc.Basics.URL}}<li class="url">{{.}}</li>{{end}}
    {{if .Doc.Basics.Location.City}}<li class="location">{{.Doc.Basics.Location.City}}{{with .Doc.Basics.Location.Region}}, {{.}}{{end}}</li>{{end}}
    {{range .Doc.Basics.Profiles}}<li class="profile">{{.Network}}{{if .Username}}: {{.Username}}{{end}}</li>{{end}}
  </ul>
</section>
{{end}}

{{define "section-education"}}
<section class="education" data-section="education">
  <h2>Education</h2>
  {{range .Doc.Education}}
  <article>
    <h3>{{.Institution}}</h3>
    {{if or .StudyType .Area}}<p class="degree">{{.StudyType}}{{if and .StudyType .Area}}, {{end}}{{.Area}}</p>{{end}}
    {{with dates .StartDate .EndDate false}}<p class="dates">{{.}}</p>{{end}}
    {{with .Score}}<p class="score">{{.}}</p>{{end}}
  </article>
  {{end}}
</section>
{{end}}

{{define "section-skills"}}
<section class="skills" data-section="skills">
  <h2>Skills</h2>
  {{range .Doc.Skills}}
  <div class="skill-group">
    <h3>{{.Name}}</h3>
    <ul class="tags">{{range nonblank .Keywords}}<li>{{.}}</li>{{end}}</ul>
  </div>
  {{end}}
</section>
{{end}}

{{define "section-languages"}}
<section class="languages" data-section="languages">
  <h2>Languages</h2>
  <ul>
    {{range .Doc.Languages}}<li>{{.Language}}{{with .Fluency}} — {{.}}{{end}}</li>{{end}}
  </ul>
</section>
{{end}}

{{define "section-certificates"}}
<section class="certificates" data-section="certificates">
  <h2>Certificates</h2>
  <ul>
    {{range .Doc.Certificates}}<li>{{.Name}}{{with .Issuer}} ({{.}}){{end}}{{with .Date}} — {{.}}{{end}}</li>{{end}}
  </ul>
</section>
{{end}}

{{define "section-summary"}}
<section class="summary" data-section="summary">
  <h2>Summary</h2>
  <p>{{.Doc.Basics.Summary}}</p>
</section>
{{end}}

{{define "section-work"}}
<section class="work" data-section="work">
  <h2>Experience</h2>
  {{range .Doc.Work}}
  <article>
    <header>
      <h3>{{.Position}}{{if and .Position .Name}} · {{end}}{{.Name}}</h3>
      {{with workDates .}}<span class="dates">{{.}}</span>{{end}}
    </header>
    {{with .Location}}<p class="location">{{.}}</p>{{end}}
    {{with .Summary}}<p>{{.}}</p>{{end}}
    {{with nonblank .Highlights}}<ul class="highlights">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </article>
  {{end}}
</section>
{{end}}

{{define "section-projects"}}
<section class="projects" data-section="projects">
  <h2>Projects</h2>
  {{range .Doc.Projects}}
  <article>
    <header>
      <h3>{{.Name}}</h3>
      {{with dates .StartDate .EndDate false}}<span class="dates">{{.}}</span>{{end}}
    </header>
    {{with .Description}}<p>{{.}}</p>{{end}}
    {{with nonblank .Highlights}}<ul class="highlights">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{with nonblank .Keywords}}<ul class="tags">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </article>
  {{end}}
</section>
{{end}}

{{define "section-volunteer"}}
<section class="volunteer" data-section="volunteer">
  <h2>Volunteering</h2>
  {{range .Doc.Volunteer}}
  <article>
    <header>
      <h3>{{.Position}}{{if and .Position .Organization}} · {{end}}{{.Organization}}</h3>
      {{with volDates .}}<span class="dates">{{.}}</span>{{end}}
    </header>
    {{with .Summary}}<p>{{.}}</p>{{end}}
    {{with nonblank .Highlights}}<ul class="highlights">{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </article>
  {{end}}
</section>
{{end}}
`
