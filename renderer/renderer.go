// Package renderer renders address book views to markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

var funcs = template.FuncMap{
	"cell": cell,
	"join": strings.Join,
}

// cell escapes s to fit in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// RenderView renders the feedback of a command followed by the lists it shows.
func RenderView(v *View) string {
	partials := map[string]string{
		"feedback":     "feedback.md",
		"persons":      "persons.md",
		"transactions": "transactions.md",
	}
	return renderTemplate("view", "view.md", partials, v)
}

// RenderPersons renders the persons list of v.
func RenderPersons(v *View) string {
	return renderTemplate("persons", "persons.md", nil, v)
}

// RenderTransactions renders the transactions list of v.
func RenderTransactions(v *View) string {
	return renderTemplate("transactions", "transactions.md", nil, v)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
