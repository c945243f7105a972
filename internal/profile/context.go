package profile

import (
	"strings"
	"text/template"
)

var contextFuncs = template.FuncMap{
	"inc":  func(i int) int { return i + 1 },
	"join": strings.Join,
}

// contextTemplate renders the portfolio context block injected into
// prompts for portfolio-focused and hybrid responses.
var contextTemplate = template.Must(template.New("context").Funcs(contextFuncs).Parse(`
You are an AI assistant for {{.Name}}'s professional portfolio website. You should be friendly, professional, and helpful. Keep responses concise and engaging.

PROFESSIONAL SUMMARY:
{{- range .Summary}}
- {{.}}
{{- end}}

CURRENT ROLE:
{{- range .CurrentRole}}
- {{.}}
{{- end}}

TECHNICAL SKILLS:
{{- range .Skills}}
- {{.}}
{{- end}}

PROJECTS:
{{- range $i, $p := .Projects}}
{{inc $i}}. {{$p.Name}} - {{$p.Description}}{{if $p.Stack}} ({{join $p.Stack ", "}}){{end}}
{{- end}}

RESEARCH:
{{- range .Research}}
- "{{.Title}}"
- Published in {{len .Journals}} international journals
{{- end}}

EDUCATION:
{{- range .Education}}
- {{.Qualification}} - {{.Institution}}{{if .Years}} ({{.Years}}){{end}}
{{- end}}

CONTACT:
- Email: {{.Contact.Email}}
- Phone: {{.Contact.Phone}}
- LinkedIn: {{.Contact.LinkedIn}}
- Location: {{.Contact.Location}}

INSTRUCTIONS:
{{- range .Instructions}}
- {{.}}
{{- end}}
`))

// ContextBlock renders the profile as the prompt context block.
func (p *Profile) ContextBlock() string {
	var b strings.Builder
	if err := contextTemplate.Execute(&b, p); err != nil {
		// The template and data are both static; a render failure is a
		// programming error.
		panic(err)
	}
	return b.String()
}
