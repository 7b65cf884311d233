package source

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"iconforge/internal/naming"
)

// AllowList restricts the working set in development mode.
// It holds the same list in raw-name and component-id form.
type AllowList struct {
	raw        map[string]bool
	components map[string]bool
}

// NewAllowList builds both projections from raw names.
func NewAllowList(rawNames []string) *AllowList {
	a := &AllowList{
		raw:        make(map[string]bool, len(rawNames)),
		components: make(map[string]bool, len(rawNames)),
	}
	for _, name := range rawNames {
		a.raw[name] = true
		a.components[naming.ComponentID(name)] = true
	}
	return a
}

// LoadAllowList reads a YAML or JSON list of raw icon names.
func LoadAllowList(ctx context.Context, fs afs.Service, URL string) (*AllowList, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("reading allow-list: %w", err)
	}
	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("parsing allow-list %s: %w", URL, err)
	}
	return NewAllowList(names), nil
}

// AllowsRaw reports whether a raw name is allowed. A nil list allows everything.
func (a *AllowList) AllowsRaw(rawName string) bool {
	if a == nil {
		return true
	}
	return a.raw[rawName]
}

// AllowsComponent reports whether a component id is allowed. A nil list allows everything.
func (a *AllowList) AllowsComponent(componentID string) bool {
	if a == nil {
		return true
	}
	return a.components[componentID]
}

// FilterRaw keeps the allowed raw names, preserving order.
func (a *AllowList) FilterRaw(rawNames []string) []string {
	if a == nil {
		return rawNames
	}
	result := make([]string, 0, len(rawNames))
	for _, name := range rawNames {
		if a.raw[name] {
			result = append(result, name)
		}
	}
	return result
}

// Len returns the number of allowed names.
func (a *AllowList) Len() int {
	if a == nil {
		return 0
	}
	return len(a.raw)
}
