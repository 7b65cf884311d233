// Package output writes and inspects the generated module tree.
package output

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"iconforge/internal/model"
)

// Ext is the generated module extension.
const Ext = ".ts"

// MetadataDir holds the lookup metadata.
const MetadataDir = "metadata"

var weightDir = regexp.MustCompile(`^w\d+$`)

// Tree is the generated module tree rooted at baseURL.
type Tree struct {
	fs      afs.Service
	baseURL string
}

// New creates a Tree.
func New(fs afs.Service, baseURL string) *Tree {
	return &Tree{fs: fs, baseURL: baseURL}
}

// URL returns the location of a path inside the tree.
func (t *Tree) URL(elements ...string) string {
	return url.Join(t.baseURL, elements...)
}

// Write stores data at the given path, creating parents as needed.
func (t *Tree) Write(ctx context.Context, data []byte, elements ...string) error {
	URL := t.URL(elements...)
	if err := t.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", URL, err)
	}
	return nil
}

// IconPath returns the path elements of a per-icon module.
func IconPath(style model.Style, weight model.Weight, slug string) []string {
	return []string{string(style), weight.Dir(), slug + Ext}
}

// IndexPath returns the path elements of a directory aggregator.
func IndexPath(style model.Style, weight model.Weight) []string {
	return []string{string(style), weight.Dir(), "index" + Ext}
}

// WeightEntryPath returns the path elements of a per-weight entry module.
func WeightEntryPath(style model.Style, weight model.Weight) []string {
	return []string{string(style), weight.Dir() + Ext}
}

// DefaultEntryPath returns the path elements of a style's default entry module.
func DefaultEntryPath(style model.Style) []string {
	return []string{string(style), "index" + Ext}
}

// IconExists reports whether the per-icon module was written.
func (t *Tree) IconExists(ctx context.Context, style model.Style, weight model.Weight, slug string) (bool, error) {
	URL := t.URL(IconPath(style, weight, slug)...)
	ok, err := t.fs.Exists(ctx, URL)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", URL, err)
	}
	return ok, nil
}

// Clean removes the output of previous runs: legacy data/ and icons/
// directories and every <style>/w<N> directory. Style directories stay.
// It returns the removed locations.
func (t *Tree) Clean(ctx context.Context, styles []model.Style) ([]string, error) {
	var removed []string
	for _, legacy := range []string{"data", "icons"} {
		URL := t.URL(legacy)
		ok, err := t.remove(ctx, URL)
		if err != nil {
			return removed, err
		}
		if ok {
			removed = append(removed, URL)
		}
	}
	for _, style := range styles {
		styleURL := t.URL(string(style))
		exists, err := t.fs.Exists(ctx, styleURL)
		if err != nil {
			return removed, fmt.Errorf("checking %s: %w", styleURL, err)
		}
		if !exists {
			continue
		}
		objects, err := t.fs.List(ctx, styleURL)
		if err != nil {
			return removed, fmt.Errorf("listing %s: %w", styleURL, err)
		}
		for _, object := range objects {
			if !object.IsDir() || !weightDir.MatchString(object.Name()) || url.Equals(object.URL(), styleURL) {
				continue
			}
			if err := t.fs.Delete(ctx, object.URL()); err != nil {
				return removed, fmt.Errorf("removing %s: %w", object.URL(), err)
			}
			removed = append(removed, object.URL())
		}
	}
	return removed, nil
}

func (t *Tree) remove(ctx context.Context, URL string) (bool, error) {
	exists, err := t.fs.Exists(ctx, URL)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", URL, err)
	}
	if !exists {
		return false, nil
	}
	if err := t.fs.Delete(ctx, URL); err != nil {
		return false, fmt.Errorf("removing %s: %w", URL, err)
	}
	return true, nil
}
