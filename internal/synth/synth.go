// Package synth turns the glyphs of one (style, weight) bucket into
// per-icon modules plus a directory aggregator.
package synth

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"iconforge/internal/generator"
	"iconforge/internal/model"
	"iconforge/internal/naming"
	"iconforge/internal/output"
	"iconforge/internal/parser"
	"iconforge/internal/source"
)

// ErrEmptyGeometry marks a glyph without drawable path data.
var ErrEmptyGeometry = errors.New("empty geometry")

// Store reads source glyphs.
type Store interface {
	Names(ctx context.Context, bucket model.Bucket) ([]string, error)
	Read(ctx context.Context, bucket model.Bucket, rawName string) ([]byte, error)
}

// Writer persists generated files.
type Writer interface {
	Write(ctx context.Context, data []byte, elements ...string) error
}

// Result is the tagged outcome of one bucket.
type Result struct {
	Outcome  model.Outcome
	Metadata *model.BucketMetadata
	Skipped  map[string]error // rawName -> reason
	Err      error
}

// Synthesizer generates the modules of a bucket.
type Synthesizer struct {
	store  Store
	writer Writer
	gen    *generator.Generator
	parser *parser.Parser
	allow  *source.AllowList
	logger *slog.Logger
}

// New creates a Synthesizer. A nil allow list processes every glyph.
func New(store Store, writer Writer, gen *generator.Generator, allow *source.AllowList, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{
		store:  store,
		writer: writer,
		gen:    gen,
		parser: parser.New(),
		allow:  allow,
		logger: logger,
	}
}

// Synthesize processes one bucket. Icons are handled in listing order and the
// aggregator lists them in that same order.
func (s *Synthesizer) Synthesize(ctx context.Context, bucket model.Bucket) Result {
	logger := s.logger.With("style", bucket.Style, "weight", int(bucket.Weight))
	result := Result{
		Outcome:  model.OutcomeOK,
		Metadata: model.NewBucketMetadata(bucket),
		Skipped:  make(map[string]error),
	}

	names, err := s.store.Names(ctx, bucket)
	if err != nil {
		if errors.Is(err, source.ErrMissingBucket) {
			logger.Warn("source directory not found", "error", err)
			result.Outcome = model.OutcomeEmpty
			return result
		}
		return fatal(result, err)
	}
	if s.allow != nil {
		total := len(names)
		names = s.allow.FilterRaw(names)
		logger.Info("development mode", "icons", len(names), "total", total)
	}
	logger.Debug("processing bucket", "icons", len(names))

	meta := result.Metadata
	produced := make([]model.Name, 0, len(names))
	claims := naming.NewClaims(len(names))
	for _, rawName := range names {
		markup, err := s.store.Read(ctx, bucket, rawName)
		if err != nil {
			return fatal(result, err)
		}
		glyph := s.parser.Parse(markup)
		if glyph.Geometry == "" {
			result.Skipped[rawName] = ErrEmptyGeometry
			logger.Warn("could not extract path", "icon", rawName)
			continue
		}
		name := naming.Canonicalize(rawName)
		if err := claims.Claim(rawName, name); err != nil {
			result.Skipped[rawName] = err
			logger.Warn("skipping icon", "icon", rawName, "error", err)
			continue
		}

		buf := &bytes.Buffer{}
		if err := s.gen.Icon(buf, generator.IconData{
			RawName:     rawName,
			ComponentID: name.ComponentID,
			Geometry:    glyph.Geometry,
			Preview:     glyph.Preview,
		}); err != nil {
			return fatal(result, err)
		}
		if err := s.writer.Write(ctx, buf.Bytes(), output.IconPath(bucket.Style, bucket.Weight, name.FileSlug)...); err != nil {
			return fatal(result, err)
		}

		meta.ComponentIDs = append(meta.ComponentIDs, name.ComponentID)
		meta.RawNames = append(meta.RawNames, rawName)
		meta.Components[rawName] = name.ComponentID
		meta.Geometry[rawName] = glyph.Geometry
		produced = append(produced, name)
	}

	buf := &bytes.Buffer{}
	if err := s.gen.Index(buf, bucket.Style, bucket.Weight, produced); err != nil {
		return fatal(result, err)
	}
	if err := s.writer.Write(ctx, buf.Bytes(), output.IndexPath(bucket.Style, bucket.Weight)...); err != nil {
		return fatal(result, err)
	}
	logger.Info("processed bucket", "icons", meta.Len(), "skipped", len(result.Skipped))
	return result
}

func fatal(result Result, err error) Result {
	result.Outcome = model.OutcomeFatal
	result.Err = err
	return result
}

// SynthesizeAll processes buckets in order, stopping at the first fatal outcome.
func (s *Synthesizer) SynthesizeAll(ctx context.Context, buckets []model.Bucket) (*model.Collection, error) {
	collection := &model.Collection{}
	for _, bucket := range buckets {
		result := s.Synthesize(ctx, bucket)
		if result.Outcome == model.OutcomeFatal {
			return collection, fmt.Errorf("synthesizing %s: %w", bucket, result.Err)
		}
		collection.Add(result.Metadata)
	}
	return collection, nil
}
