// Package category classifies icons using an external "category::name" table.
package category

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/viant/afs"

	"iconforge/internal/naming"
)

// Uncategorized is returned when no table key matches.
const Uncategorized = "uncategorized"

const keySeparator = "::"

// Entry is one parsed table key.
type Entry struct {
	Category string
	Name     string
}

// Table is the category table in file order.
type Table struct {
	Entries []Entry
}

// Load reads a JSON object whose keys are "category::name". Values are ignored.
func Load(ctx context.Context, fs afs.Service, URL string) (*Table, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("reading category table: %w", err)
	}
	return Parse(data)
}

// Parse decodes a category table, keeping key order.
func Parse(data []byte) (*Table, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing category table: %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parsing category table: expected object")
	}
	table := &Table{}
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing category table: %w", err)
		}
		key, _ := token.(string)
		var skip json.RawMessage
		if err := decoder.Decode(&skip); err != nil {
			return nil, fmt.Errorf("parsing category table value %q: %w", key, err)
		}
		parts := strings.Split(key, keySeparator)
		if len(parts) < 2 {
			continue
		}
		table.Entries = append(table.Entries, Entry{Category: parts[0], Name: parts[1]})
	}
	return table, nil
}

// Resolver answers category lookups against a table.
// Matching order: exact name, name with underscores as hyphens, then the
// same two against the name without its fill suffix. Within each rule the
// first table entry wins.
type Resolver struct {
	exact      map[string]string
	normalized map[string]string
}

// NewResolver indexes a table. A nil table resolves everything to Uncategorized.
func NewResolver(table *Table) *Resolver {
	r := &Resolver{
		exact:      make(map[string]string),
		normalized: make(map[string]string),
	}
	if table == nil {
		return r
	}
	for _, entry := range table.Entries {
		if _, ok := r.exact[entry.Name]; !ok {
			r.exact[entry.Name] = entry.Category
		}
		key := normalize(entry.Name)
		if _, ok := r.normalized[key]; !ok {
			r.normalized[key] = entry.Category
		}
	}
	return r
}

// Resolve returns the category of rawName, or Uncategorized.
func (r *Resolver) Resolve(rawName string) string {
	for _, name := range []string{rawName, naming.StripFill(rawName)} {
		if category, ok := r.exact[name]; ok {
			return category
		}
		if category, ok := r.normalized[name]; ok {
			return category
		}
	}
	return Uncategorized
}

func normalize(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}
