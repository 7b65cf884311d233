// Package source reads raw SVG glyphs addressed by (style, weight).
package source

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"

	"iconforge/internal/model"
)

// Ext is the glyph file extension.
const Ext = ".svg"

// ErrMissingBucket is returned when a (style, weight) source directory does not exist.
var ErrMissingBucket = errors.New("source bucket not found")

// Store reads glyphs laid out as <baseURL>/svg-<weight>/<style>/<rawName>.svg.
type Store struct {
	fs      afs.Service
	baseURL string
}

// New creates a Store rooted at baseURL.
func New(fs afs.Service, baseURL string) *Store {
	return &Store{fs: fs, baseURL: baseURL}
}

// BucketURL returns the directory URL of a bucket.
func (s *Store) BucketURL(bucket model.Bucket) string {
	return url.Join(s.baseURL, "svg-"+strconv.Itoa(int(bucket.Weight)), string(bucket.Style))
}

// Names lists the raw glyph names of a bucket, sorted by file name.
func (s *Store) Names(ctx context.Context, bucket model.Bucket) ([]string, error) {
	dirURL := s.BucketURL(bucket)
	exists, err := s.fs.Exists(ctx, dirURL)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", dirURL, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrMissingBucket, dirURL)
	}
	objects, err := s.fs.List(ctx, dirURL)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dirURL, err)
	}
	var names []string
	for _, object := range objects {
		if object.IsDir() || path.Ext(object.Name()) != Ext {
			continue
		}
		names = append(names, strings.TrimSuffix(object.Name(), Ext))
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the markup of one glyph.
func (s *Store) Read(ctx context.Context, bucket model.Bucket, rawName string) ([]byte, error) {
	fileURL := url.Join(s.BucketURL(bucket), rawName+Ext)
	data, err := s.fs.DownloadWithURL(ctx, fileURL)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fileURL, err)
	}
	return data, nil
}
