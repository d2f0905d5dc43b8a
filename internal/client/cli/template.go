package cli

import (
	"fmt"
	"text/template"
)

var templateFuncs = template.FuncMap{
	"hours": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}

const statusTemplate = `Status: {{if .Expired}}Session expired{{else}}Authenticated{{end}}
Email:   {{.Email}}
User ID: {{.UserID}}
Server:  {{.ServerURL}}
{{- if .ExpiresAt}}
Token expires: {{.ExpiresAt}}
{{- if .Expired}}
⚠️  Token has expired. Please login again.
{{- else}}
Time remaining: {{.Remaining}}
{{- end}}
{{- end}}
`

const meTemplate = `=== Current User ===

ID:      {{.ID}}
Email:   {{.Email}}
Created: {{.CreatedAt.Format "2006-01-02 15:04:05 MST"}}
`

const entryTemplate = `ID:      {{.ID}}
Date:    {{.Date}}
Hours:   {{hours .Hours}}
Project: {{.Project}}
{{- if .Notes}}
Notes:   {{.Notes}}
{{- end}}
`

const summaryTemplate = `
Entries: {{.Count}}
Total:   {{hours .Total}}h
Average: {{hours .Average}}h per entry
`

const forecastTemplate = `=== Forecast ({{len .Days}} days, based on {{.HistoryCount}} days of history) ===

{{range .Days -}}
{{.Date}}  {{hours .Hours}}h  [{{hours .Lower}} - {{hours .Upper}}]  {{if .High}}high{{else}}low{{end}}
{{end}}
Predicted total: {{hours .Total}}h
Average per day: {{hours .Average}}h
`

// statusView данные для statusTemplate
type statusView struct {
	Email     string
	UserID    string
	ServerURL string
	ExpiresAt string
	Remaining string
	Expired   bool
}

// render выполняет шаблон и пишет результат в c.io
func (c *Cli) render(text string, data any) error {
	tmpl, err := template.New("output").Funcs(templateFuncs).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}
