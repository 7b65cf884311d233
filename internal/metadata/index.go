// Package metadata merges per-bucket synthesis results into the lookup
// metadata shipped with the generated package.
package metadata

import (
	"sort"

	"iconforge/internal/model"
	"iconforge/internal/naming"
)

// Resolver classifies a raw icon name.
type Resolver interface {
	Resolve(rawName string) string
}

// Index is the merged lookup metadata.
type Index struct {
	Entries        map[string]*model.IndexEntry // Keyed by non-fill raw name
	IconNames      []string                     // Sorted, excludes fill variants
	ComponentNames []string                     // Sorted, includes fill variants
}

// Builder builds an Index from bucket results.
type Builder struct {
	resolver   Resolver
	categories map[string]string
}

// NewBuilder creates a Builder. Each distinct raw name is resolved at most once.
func NewBuilder(resolver Resolver) *Builder {
	return &Builder{
		resolver:   resolver,
		categories: make(map[string]string),
	}
}

// Build merges the collection. The first pass gathers every raw name to
// component id mapping so the second pass sees the complete picture.
func (b *Builder) Build(collection *model.Collection) *Index {
	components := make(map[string]string)
	for _, bucket := range collection.Buckets {
		for _, rawName := range bucket.RawNames {
			components[rawName] = bucket.Components[rawName]
		}
	}

	index := &Index{Entries: make(map[string]*model.IndexEntry)}
	for _, bucket := range collection.Buckets {
		style, weight := bucket.Bucket.Style, bucket.Bucket.Weight
		for _, rawName := range bucket.RawNames {
			if naming.IsFill(rawName) {
				continue
			}
			entry, ok := index.Entries[rawName]
			if !ok {
				entry = &model.IndexEntry{
					Name:      rawName,
					Component: components[rawName],
					Category:  b.category(rawName),
					Weights:   make(map[model.Style][]model.Weight),
				}
				index.Entries[rawName] = entry
			}
			if !entry.HasStyle(style) {
				entry.Styles = append(entry.Styles, style)
			}
			if !entry.HasWeight(style, weight) {
				entry.Weights[style] = append(entry.Weights[style], weight)
			}
		}
	}

	index.IconNames = make([]string, 0, len(index.Entries))
	uniqueComponents := make(map[string]bool)
	for rawName, entry := range index.Entries {
		index.IconNames = append(index.IconNames, rawName)
		uniqueComponents[entry.Component] = true
	}
	for rawName, componentID := range components {
		if naming.IsFill(rawName) {
			uniqueComponents[componentID] = true
		}
	}
	for componentID := range uniqueComponents {
		if componentID != "" {
			index.ComponentNames = append(index.ComponentNames, componentID)
		}
	}
	sort.Strings(index.IconNames)
	sort.Strings(index.ComponentNames)
	return index
}

func (b *Builder) category(rawName string) string {
	if category, ok := b.categories[rawName]; ok {
		return category
	}
	category := b.resolver.Resolve(rawName)
	b.categories[rawName] = category
	return category
}

// Paths re-keys bucket geometry by base name, style, variant and weight.
func Paths(collection *model.Collection) map[string]model.IconPaths {
	result := make(map[string]model.IconPaths)
	for _, bucket := range collection.Buckets {
		for _, rawName := range bucket.RawNames {
			key := naming.Classify(rawName)
			paths, ok := result[key.BaseName]
			if !ok {
				paths = make(model.IconPaths)
				result[key.BaseName] = paths
			}
			paths.Set(bucket.Bucket.Style, key.Variant, bucket.Bucket.Weight, bucket.Geometry[rawName])
		}
	}
	return result
}
