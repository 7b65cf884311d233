// Package exports builds the per-weight and default entry aggregators from
// what is actually present in the generated module tree.
package exports

import (
	"context"

	"iconforge/internal/model"
	"iconforge/internal/naming"
	"iconforge/internal/source"
)

// ArtifactIndex answers whether a per-icon module exists.
type ArtifactIndex interface {
	IconExists(ctx context.Context, style model.Style, weight model.Weight, slug string) (bool, error)
}

// Set is the validated export set.
type Set struct {
	// Validated holds candidates present in every style for at least one weight.
	Validated []model.ExportIcon
	// Buckets holds, per (style, weight), the validated icons whose module exists there.
	Buckets map[model.Bucket][]model.ExportIcon
}

// Len returns the number of validated icons.
func (s *Set) Len() int {
	return len(s.Validated)
}

// Candidates derives export candidates straight from raw source names.
// With an allow list only listed component ids are kept. Raw names whose
// canonical name is empty or already claimed are returned in skipped.
func Candidates(rawNames []string, allow *source.AllowList) (candidates []model.ExportIcon, skipped map[string]error) {
	candidates = make([]model.ExportIcon, 0, len(rawNames))
	skipped = make(map[string]error)
	claims := naming.NewClaims(len(rawNames))
	for _, rawName := range rawNames {
		name := naming.Canonicalize(rawName)
		if !allow.AllowsComponent(name.ComponentID) {
			continue
		}
		if err := claims.Claim(rawName, name); err != nil {
			skipped[rawName] = err
			continue
		}
		candidates = append(candidates, model.ExportIcon{RawName: rawName, Name: name})
	}
	return candidates, skipped
}

// Validate computes the export set from the artifact index. Candidate order is kept.
func Validate(ctx context.Context, index ArtifactIndex, candidates []model.ExportIcon, styles []model.Style, weights []model.Weight) (*Set, error) {
	lookup := &existence{index: index, known: make(map[existenceKey]bool)}
	set := &Set{Buckets: make(map[model.Bucket][]model.ExportIcon)}

	for _, candidate := range candidates {
		covered := false
		for _, weight := range weights {
			all, err := lookup.allStyles(ctx, styles, weight, candidate.FileSlug)
			if err != nil {
				return nil, err
			}
			if all {
				covered = true
				break
			}
		}
		if covered {
			set.Validated = append(set.Validated, candidate)
		}
	}

	for _, style := range styles {
		for _, weight := range weights {
			bucket := model.Bucket{Style: style, Weight: weight}
			for _, candidate := range set.Validated {
				ok, err := lookup.exists(ctx, style, weight, candidate.FileSlug)
				if err != nil {
					return nil, err
				}
				if ok {
					set.Buckets[bucket] = append(set.Buckets[bucket], candidate)
				}
			}
		}
	}
	return set, nil
}

type existenceKey struct {
	bucket model.Bucket
	slug   string
}

// existence memoizes artifact lookups for one validation.
type existence struct {
	index ArtifactIndex
	known map[existenceKey]bool
}

func (e *existence) exists(ctx context.Context, style model.Style, weight model.Weight, slug string) (bool, error) {
	key := existenceKey{bucket: model.Bucket{Style: style, Weight: weight}, slug: slug}
	if ok, found := e.known[key]; found {
		return ok, nil
	}
	ok, err := e.index.IconExists(ctx, style, weight, slug)
	if err != nil {
		return false, err
	}
	e.known[key] = ok
	return ok, nil
}

func (e *existence) allStyles(ctx context.Context, styles []model.Style, weight model.Weight, slug string) (bool, error) {
	for _, style := range styles {
		ok, err := e.exists(ctx, style, weight, slug)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}
