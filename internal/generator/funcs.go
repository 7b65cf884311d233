package generator

import (
	"fmt"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"iconforge/internal/model"
)

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"title":      title,
		"exportLine": exportLine,
		"weightDir":  func(w model.Weight) string { return w.Dir() },
	}
}

// title upper-cases the first letter of each word (e.g., "outlined" -> "Outlined").
func title(s string) string {
	return cases.Title(language.Und).String(s)
}

// exportLine renders a default re-export statement.
func exportLine(componentID, importPath string) string {
	return fmt.Sprintf("export { default as %s } from '%s';", componentID, importPath)
}
