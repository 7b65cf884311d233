// Package model defines the intermediate representation shared by the icon pipeline stages.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Style is one visual rendering of the icon corpus.
type Style string

// Weight is a stroke-thickness variant of a style.
type Weight int

// Dir returns the directory stem used for the weight (e.g., "w400").
func (w Weight) Dir() string {
	return "w" + strconv.Itoa(int(w))
}

// ParseWeight parses either "400" or "w400".
func ParseWeight(s string) (Weight, error) {
	v, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "w"))
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q: %w", s, err)
	}
	return Weight(v), nil
}

// Variant distinguishes the outline and filled renderings of a glyph.
type Variant string

const (
	VariantOutline Variant = "outline"
	VariantFill    Variant = "fill"
)

// Outcome tags the result of a pipeline stage.
type Outcome int

const (
	// OutcomeOK means the stage produced its full result.
	OutcomeOK Outcome = iota
	// OutcomeEmpty means the stage recovered locally and produced a degraded (possibly empty) result.
	OutcomeEmpty
	// OutcomeFatal means the run must abort.
	OutcomeFatal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFatal:
		return "fatal"
	}
	return "unknown"
}

// RawIcon is one glyph read from the source store.
type RawIcon struct {
	RawName  string
	Style    Style
	Weight   Weight
	Geometry string
}

// Name is the canonical naming of a raw icon name.
type Name struct {
	ComponentID string // Public component identifier (e.g., "AccountCircle")
	FileSlug    string // Output file-name stem (e.g., "account-circle")
}

// VariantKey is the base glyph name and variant derived from a raw name.
type VariantKey struct {
	BaseName string
	Variant  Variant
}

// Bucket addresses one (style, weight) pair.
type Bucket struct {
	Style  Style
	Weight Weight
}

func (b Bucket) String() string {
	return string(b.Style) + "/" + b.Weight.Dir()
}

// BucketMetadata is what the synthesizer produced for one bucket.
type BucketMetadata struct {
	Bucket       Bucket
	ComponentIDs []string          // In processing order
	RawNames     []string          // In processing order
	Components   map[string]string // rawName -> componentId
	Geometry     map[string]string // rawName -> geometry
}

// NewBucketMetadata creates an empty result for a bucket.
func NewBucketMetadata(bucket Bucket) *BucketMetadata {
	return &BucketMetadata{
		Bucket:     bucket,
		Components: make(map[string]string),
		Geometry:   make(map[string]string),
	}
}

// Len returns the number of icons produced.
func (m *BucketMetadata) Len() int {
	return len(m.RawNames)
}

// Collection accumulates bucket results in the fixed style x weight processing order.
type Collection struct {
	Buckets []*BucketMetadata
}

// Add appends a bucket result.
func (c *Collection) Add(m *BucketMetadata) {
	if m == nil {
		return
	}
	c.Buckets = append(c.Buckets, m)
}

// Merge appends other's buckets after c's.
func (c *Collection) Merge(other *Collection) {
	if other == nil {
		return
	}
	c.Buckets = append(c.Buckets, other.Buckets...)
}

// IndexEntry is the public lookup record of one non-fill icon.
type IndexEntry struct {
	Name      string             `json:"name"`
	Component string             `json:"iconName"`
	Category  string             `json:"category"`
	Styles    []Style            `json:"styles"`
	Weights   map[Style][]Weight `json:"weights"`
}

// HasStyle reports whether the style was recorded.
func (e *IndexEntry) HasStyle(style Style) bool {
	for _, s := range e.Styles {
		if s == style {
			return true
		}
	}
	return false
}

// HasWeight reports whether the weight was recorded for style.
func (e *IndexEntry) HasWeight(style Style, weight Weight) bool {
	for _, w := range e.Weights[style] {
		if w == weight {
			return true
		}
	}
	return false
}

// IconPaths holds geometry by style, variant and weight directory (e.g., "w400").
type IconPaths map[Style]map[Variant]map[string]string

// Set stores geometry, creating nested maps as needed.
func (p IconPaths) Set(style Style, variant Variant, weight Weight, geometry string) {
	variants, ok := p[style]
	if !ok {
		variants = make(map[Variant]map[string]string)
		p[style] = variants
	}
	weights, ok := variants[variant]
	if !ok {
		weights = make(map[string]string)
		variants[variant] = weights
	}
	weights[weight.Dir()] = geometry
}

// ExportIcon is a candidate for the export aggregators.
type ExportIcon struct {
	RawName string
	Name
}
