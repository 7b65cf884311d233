package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"iconforge/internal/model"
	"iconforge/internal/output"
)

const (
	IndexFile          = "icon-index.json"
	IconNamesFile      = "icon-names.json"
	ComponentNamesFile = "component-names.json"
	PathsDir           = "paths"
)

// Writer persists metadata files.
type Writer interface {
	Write(ctx context.Context, data []byte, elements ...string) error
}

// WriteIndex writes the index, the icon-name list and the component-name list.
func WriteIndex(ctx context.Context, w Writer, index *Index) error {
	files := []struct {
		name  string
		value any
	}{
		{IndexFile, index.Entries},
		{IconNamesFile, nonNil(index.IconNames)},
		{ComponentNamesFile, nonNil(index.ComponentNames)},
	}
	for _, f := range files {
		if err := writeJSON(ctx, w, f.value, output.MetadataDir, f.name); err != nil {
			return err
		}
	}
	return nil
}

// WritePaths writes one geometry file per base icon name and returns how many were written.
func WritePaths(ctx context.Context, w Writer, paths map[string]model.IconPaths) (int, error) {
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writeJSON(ctx, w, paths[name], output.MetadataDir, PathsDir, name+".json"); err != nil {
			return 0, err
		}
	}
	return len(names), nil
}

func writeJSON(ctx context.Context, w Writer, value any, elements ...string) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %v: %w", elements, err)
	}
	return w.Write(ctx, data, elements...)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
