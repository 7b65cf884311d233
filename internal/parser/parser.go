// Package parser extracts drawing data from SVG glyph markup.
package parser

import (
	"encoding/base64"
	"regexp"
	"strings"
)

var pathData = regexp.MustCompile(`<path[^>]*\sd="([^"]*)"[^>]*>`)

// Glyph is the parsed form of one SVG source file.
type Glyph struct {
	Geometry string // Value of the primary path "d" attribute; empty if absent
	Preview  string // Base64 encoded preview markup
}

// Parser parses SVG glyph markup.
type Parser struct {
	previewSize string
}

// New creates a new Parser.
func New() *Parser {
	return &Parser{previewSize: "24"}
}

// Parse extracts the geometry and preview of a glyph.
func (p *Parser) Parse(markup []byte) Glyph {
	content := string(markup)
	return Glyph{
		Geometry: ExtractPath(content),
		Preview:  p.preview(content),
	}
}

// ExtractPath returns the first path's "d" attribute, or "" when there is none.
func ExtractPath(markup string) string {
	match := pathData.FindStringSubmatch(markup)
	if match == nil {
		return ""
	}
	return match[1]
}

// preview rewrites the markup for a small, visible documentation thumbnail.
// Each replacement applies to the first occurrence only.
func (p *Parser) preview(markup string) string {
	replacer := []struct{ old, new string }{
		{"<svg", `<svg style="background-color: #fff;"`},
		{`width="48"`, `width="` + p.previewSize + `"`},
		{`height="48"`, `height="` + p.previewSize + `"`},
		{"\n", ""},
		{`fill="currentColor"`, `fill="#000"`},
	}
	for _, r := range replacer {
		markup = strings.Replace(markup, r.old, r.new, 1)
	}
	return base64.StdEncoding.EncodeToString([]byte(markup))
}
