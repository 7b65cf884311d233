package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"iconforge/internal/model"
)

func TestCanonicalize(t *testing.T) {
	testCases := []struct {
		description string
		rawName     string
		expect      model.Name
	}{
		{
			description: "underscore separated",
			rawName:     "account_circle",
			expect:      model.Name{ComponentID: "AccountCircle", FileSlug: "account-circle"},
		},
		{
			description: "digit leading",
			rawName:     "3d_rotation",
			expect:      model.Name{ComponentID: "Icon3DRotation", FileSlug: "3d-rotation"},
		},
		{
			description: "fill variant keeps hyphens",
			rawName:     "home-fill",
			expect:      model.Name{ComponentID: "HomeFill", FileSlug: "home-fill"},
		},
		{
			description: "single word",
			rawName:     "home",
			expect:      model.Name{ComponentID: "Home", FileSlug: "home"},
		},
		{
			description: "mixed case without separators",
			rawName:     "wifiOff",
			expect:      model.Name{ComponentID: "Wifioff", FileSlug: "wifioff"},
		},
		{
			description: "digit only",
			rawName:     "123",
			expect:      model.Name{ComponentID: "Icon123", FileSlug: "icon123"},
		},
		{
			description: "mixed separators",
			rawName:     "arrow_back-fill",
			expect:      model.Name{ComponentID: "ArrowBackFill", FileSlug: "arrow-back-fill"},
		},
		{
			description: "upper case segments are lowered",
			rawName:     "SD_CARD",
			expect:      model.Name{ComponentID: "SdCard", FileSlug: "SD-CARD"},
		},
	}

	for _, testCase := range testCases {
		actual := Canonicalize(testCase.rawName)
		assert.Equal(t, testCase.expect, actual, testCase.description)
		assert.Equal(t, testCase.expect.FileSlug, FileSlug(testCase.rawName), testCase.description)
	}
}

func TestCanonicalize_Deterministic(t *testing.T) {
	names := []string{"account_circle", "3d_rotation", "home-fill", "10k", "a__b", "-", ""}
	for _, name := range names {
		first := Canonicalize(name)
		for i := 0; i < 21; i++ { // once per style x weight
			assert.Equal(t, first, Canonicalize(name), name)
		}
	}
}

func TestFileSlug_Idempotent(t *testing.T) {
	names := []string{"account_circle", "3d_rotation", "home-fill", "home", "10k", "123", "wifiOff"}
	for _, name := range names {
		slug := FileSlug(name)
		assert.Equal(t, slug, FileSlug(slug), name)
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		description string
		rawName     string
		expect      model.VariantKey
	}{
		{
			description: "fill variant",
			rawName:     "home-fill",
			expect:      model.VariantKey{BaseName: "home", Variant: model.VariantFill},
		},
		{
			description: "outline",
			rawName:     "home",
			expect:      model.VariantKey{BaseName: "home", Variant: model.VariantOutline},
		},
		{
			description: "suffix token alone",
			rawName:     "-fill",
			expect:      model.VariantKey{BaseName: "-fill", Variant: model.VariantOutline},
		},
		{
			description: "fill inside the name",
			rawName:     "format_color_fill",
			expect:      model.VariantKey{BaseName: "format_color_fill", Variant: model.VariantOutline},
		},
		{
			description: "repeated suffix",
			rawName:     "home-fill-fill",
			expect:      model.VariantKey{BaseName: "home", Variant: model.VariantFill},
		},
		{
			description: "repeated suffix down to the token",
			rawName:     "-fill-fill",
			expect:      model.VariantKey{BaseName: "-fill", Variant: model.VariantFill},
		},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Classify(testCase.rawName), testCase.description)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	names := []string{"home", "home-fill", "-fill", "-fill-fill", "x-fill-fill", "fill", "a_b-fill"}
	for _, name := range names {
		base := Classify(name).BaseName
		assert.NotEmpty(t, base, name)
		assert.Equal(t, base, Classify(base).BaseName, name)
	}
}

func TestClaims_Claim(t *testing.T) {
	testCases := []struct {
		description string
		rawNames    []string
		expectErr   map[string]error
	}{
		{
			description: "distinct names",
			rawNames:    []string{"home", "home-fill", "account_circle"},
			expectErr:   map[string]error{},
		},
		{
			description: "separator variants collide, first wins",
			rawNames:    []string{"a-b", "a_b"},
			expectErr:   map[string]error{"a_b": ErrCollision},
		},
		{
			description: "case variants collide",
			rawNames:    []string{"a-b", "A-b"},
			expectErr:   map[string]error{"A-b": ErrCollision},
		},
		{
			description: "separator only names",
			rawNames:    []string{"-", "__", "home"},
			expectErr:   map[string]error{"-": ErrEmptyName, "__": ErrEmptyName},
		},
		{
			description: "same raw name claimed twice",
			rawNames:    []string{"home", "home"},
			expectErr:   map[string]error{},
		},
	}

	for _, testCase := range testCases {
		claims := NewClaims(len(testCase.rawNames))
		for _, rawName := range testCase.rawNames {
			err := claims.Claim(rawName, Canonicalize(rawName))
			expect, ok := testCase.expectErr[rawName]
			if !ok {
				assert.NoError(t, err, testCase.description+": "+rawName)
				continue
			}
			assert.True(t, errors.Is(err, expect), testCase.description+": "+rawName)
		}
	}
}
