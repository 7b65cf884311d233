// Package generator renders the generated TypeScript modules from templates.
package generator

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/viant/afs"

	"iconforge/internal/config"
	"iconforge/internal/model"
)

//go:embed templates/*.tmpl
var templates embed.FS

// ErrTemplate marks a malformed template or a template referencing unknown values.
var ErrTemplate = errors.New("template error")

// Generator executes module templates.
type Generator struct {
	config *config.Config
	icon   *template.Template
	index  *template.Template
	entry  *template.Template
}

// New creates a Generator with the built-in templates.
func New(cfg *config.Config) (*Generator, error) {
	g := &Generator{config: cfg}
	var err error
	if g.icon, err = g.parseEmbedded("icon.tmpl"); err != nil {
		return nil, err
	}
	if g.index, err = g.parseEmbedded("index.tmpl"); err != nil {
		return nil, err
	}
	if g.entry, err = g.parseEmbedded("entry.tmpl"); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Generator) parseEmbedded(name string) (*template.Template, error) {
	tmpl, err := template.New(name).
		Funcs(templateFuncs()).
		ParseFS(templates, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s: %v", ErrTemplate, name, err)
	}
	return tmpl.Option("missingkey=error"), nil
}

// LoadTemplate replaces the entry template with one read from URL.
func (g *Generator) LoadTemplate(ctx context.Context, fs afs.Service, URL string) error {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("reading entry template: %w", err)
	}
	return g.ParseEntry(string(data))
}

// ParseEntry replaces the entry template with text.
func (g *Generator) ParseEntry(text string) error {
	tmpl, err := template.New("entry").Funcs(templateFuncs()).Parse(text)
	if err != nil {
		return fmt.Errorf("%w: parsing entry template: %v", ErrTemplate, err)
	}
	g.entry = tmpl.Option("missingkey=error")
	return nil
}

// IconData is the per-icon module template input.
type IconData struct {
	RawName     string
	ComponentID string
	Geometry    string
	Preview     string
	DemoURL     string
}

// IndexData is the directory aggregator template input.
type IndexData struct {
	Package string
	Style   model.Style
	Weight  model.Weight
	Icons   []model.Name
}

// Icon renders one per-icon module.
func (g *Generator) Icon(w io.Writer, data IconData) error {
	if data.DemoURL == "" {
		data.DemoURL = g.config.DemoURL
	}
	return execute(g.icon, w, data)
}

// Index renders the re-export aggregator of one (style, weight) directory.
func (g *Generator) Index(w io.Writer, style model.Style, weight model.Weight, icons []model.Name) error {
	return execute(g.index, w, IndexData{
		Package: g.config.PackageName,
		Style:   style,
		Weight:  weight,
		Icons:   icons,
	})
}

// Entry renders an entry module.
func (g *Generator) Entry(w io.Writer, data EntryData) error {
	return execute(g.entry, w, data)
}

func execute(tmpl *template.Template, w io.Writer, data any) error {
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("%w: executing %s: %v", ErrTemplate, tmpl.Name(), err)
	}
	return nil
}

// EntryKind selects which entry module is rendered.
type EntryKind int

const (
	// EntryWeight is <style>/w<weight>.ts.
	EntryWeight EntryKind = iota
	// EntryDefault is <style>/index.ts at the default weight.
	EntryDefault
)

// EntryData holds the entry template substitution values.
type EntryData struct {
	StyleTitle  string
	WeightTitle string
	Description string
	Usage       string
	TypeExport  string
	TypePath    string
	CreatorPath string
	IconExports string
}

// EntryData computes the substitution values of an entry module.
func (g *Generator) EntryData(kind EntryKind, style model.Style, weight model.Weight, icons []model.ExportIcon) EntryData {
	styleTitle := title(string(style))
	data := EntryData{
		StyleTitle:  styleTitle,
		TypePath:    "../types",
		CreatorPath: "../createMaterialIcon",
		IconExports: iconExports(weight, icons),
	}
	switch kind {
	case EntryDefault:
		data.WeightTitle = fmt.Sprintf(" (Weight %d)", weight)
		data.Description = fmt.Sprintf("\n * Material Symbols %s icons with default weight %d", style, weight)
		data.Usage = fmt.Sprintf("\n * For other weights, use: import { Home } from '%s/%s/w700'\n * For other styles, use: import { Home } from '%s/%s'",
			g.config.PackageName, style, g.config.PackageName, g.otherStyle(style))
		data.TypeExport = "type { IconProps, IconComponent }"
	default:
		data.WeightTitle = fmt.Sprintf(" %d", weight)
		data.Description = fmt.Sprintf("\n * %s style icons with weight %d", styleTitle, weight)
		data.TypeExport = "*"
	}
	return data
}

func (g *Generator) otherStyle(style model.Style) model.Style {
	for _, candidate := range g.config.StyleList() {
		if candidate != style {
			return candidate
		}
	}
	return style
}

func iconExports(weight model.Weight, icons []model.ExportIcon) string {
	lines := make([]string, len(icons))
	for i, icon := range icons {
		lines[i] = exportLine(icon.ComponentID, "./"+weight.Dir()+"/"+icon.FileSlug)
	}
	return strings.Join(lines, "\n")
}
