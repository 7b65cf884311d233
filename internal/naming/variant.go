package naming

import (
	"strings"

	"iconforge/internal/model"
)

// FillSuffix marks the filled rendering of a glyph.
const FillSuffix = "-fill"

// Classify splits a raw name into its base name and variant.
// A name equal to FillSuffix is an outline icon named literally "-fill".
// Repeated suffixes are all stripped so that classifying a base name again is a no-op.
func Classify(rawName string) model.VariantKey {
	if !IsFill(rawName) {
		return model.VariantKey{BaseName: rawName, Variant: model.VariantOutline}
	}
	base := rawName
	for IsFill(base) {
		base = strings.TrimSuffix(base, FillSuffix)
	}
	return model.VariantKey{BaseName: base, Variant: model.VariantFill}
}

// IsFill reports whether rawName denotes a fill variant.
func IsFill(rawName string) bool {
	return rawName != FillSuffix && strings.HasSuffix(rawName, FillSuffix)
}

// StripFill removes the fill suffix, if any.
func StripFill(rawName string) string {
	return Classify(rawName).BaseName
}
