// Package naming maps raw source icon names to public component identifiers,
// output file slugs and variant keys. Every function here is pure.
package naming

import (
	"regexp"
	"strings"
	"unicode"

	"iconforge/internal/model"
)

// DigitPrefix is prepended to identifiers that would otherwise start with a digit.
const DigitPrefix = "Icon"

var boundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// Canonicalize returns the component id and file slug for a raw icon name.
func Canonicalize(rawName string) model.Name {
	id := ComponentID(rawName)
	return model.Name{
		ComponentID: id,
		FileSlug:    fileSlug(rawName, id),
	}
}

// ComponentID converts a raw name (e.g., "account_circle", "3d_rotation")
// into a PascalCase identifier ("AccountCircle", "Icon3DRotation").
func ComponentID(rawName string) string {
	var b strings.Builder
	for _, segment := range splitSegments(rawName) {
		b.WriteString(titleSegment(segment))
	}
	id := b.String()
	if id != "" && unicode.IsDigit([]rune(id)[0]) {
		id = DigitPrefix + id
	}
	return id
}

// FileSlug returns the output file-name stem for a raw name.
func FileSlug(rawName string) string {
	return fileSlug(rawName, ComponentID(rawName))
}

func fileSlug(rawName, componentID string) string {
	if hasSeparator(rawName) {
		return strings.ReplaceAll(rawName, "_", "-")
	}
	return strings.ToLower(boundary.ReplaceAllString(componentID, "$1-$2"))
}

func hasSeparator(s string) bool {
	return strings.ContainsAny(s, "-_")
}

func splitSegments(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})
}

// titleSegment upper-cases the first letter of a segment and lower-cases the rest.
// Leading digits are kept, so "3d" becomes "3D".
func titleSegment(segment string) string {
	runes := []rune(segment)
	titled := false
	for i, r := range runes {
		if !titled && unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			titled = true
			continue
		}
		runes[i] = unicode.ToLower(r)
	}
	return string(runes)
}
