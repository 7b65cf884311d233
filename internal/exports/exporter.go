package exports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"iconforge/internal/generator"
	"iconforge/internal/model"
	"iconforge/internal/output"
	"iconforge/internal/source"
)

// ErrNoIcons is returned when no export candidates are found.
var ErrNoIcons = errors.New("no icons found")

// NameSource lists raw glyph names of a bucket.
type NameSource interface {
	Names(ctx context.Context, bucket model.Bucket) ([]string, error)
}

// Tree is the generated module tree.
type Tree interface {
	ArtifactIndex
	Write(ctx context.Context, data []byte, elements ...string) error
}

// Options configures an Exporter.
type Options struct {
	Styles        []model.Style
	Weights       []model.Weight
	DefaultWeight model.Weight
	// Reference is the source bucket whose names form the candidate set.
	Reference model.Bucket
	Allow     *source.AllowList
}

// Exporter writes <style>/w<weight> and <style>/index entry modules.
type Exporter struct {
	source  NameSource
	tree    Tree
	gen     *generator.Generator
	options Options
	logger  *slog.Logger
}

// New creates an Exporter.
func New(src NameSource, tree Tree, gen *generator.Generator, options Options, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{source: src, tree: tree, gen: gen, options: options, logger: logger}
}

// Run validates the generated tree and writes the entry modules.
func (e *Exporter) Run(ctx context.Context) (*Set, error) {
	rawNames, err := e.source.Names(ctx, e.options.Reference)
	if err != nil && !errors.Is(err, source.ErrMissingBucket) {
		return nil, err
	}
	candidates, skipped := Candidates(rawNames, e.options.Allow)
	for _, rawName := range rawNames {
		if reason, ok := skipped[rawName]; ok {
			e.logger.Warn("skipping export candidate", "icon", rawName, "error", reason)
		}
	}
	e.logger.Info("export candidates", "found", len(rawNames), "kept", len(candidates), "skipped", len(skipped))
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoIcons, e.options.Reference)
	}

	set, err := Validate(ctx, e.tree, candidates, e.options.Styles, e.options.Weights)
	if err != nil {
		return nil, fmt.Errorf("validating exports: %w", err)
	}
	e.logger.Info("validated exports", "icons", set.Len())

	for _, style := range e.options.Styles {
		for _, weight := range e.options.Weights {
			icons := set.Buckets[model.Bucket{Style: style, Weight: weight}]
			if len(icons) == 0 {
				continue
			}
			data := e.gen.EntryData(generator.EntryWeight, style, weight, icons)
			if err := e.write(ctx, data, output.WeightEntryPath(style, weight)); err != nil {
				return nil, err
			}
			e.logger.Debug("wrote weight entry", "style", style, "weight", int(weight), "icons", len(icons))
		}
	}

	if set.Len() == 0 {
		return set, nil
	}
	for _, style := range e.options.Styles {
		icons := set.Buckets[model.Bucket{Style: style, Weight: e.options.DefaultWeight}]
		if len(icons) == 0 {
			e.logger.Warn("default entry has no icons", "style", style, "weight", int(e.options.DefaultWeight))
		}
		data := e.gen.EntryData(generator.EntryDefault, style, e.options.DefaultWeight, icons)
		if err := e.write(ctx, data, output.DefaultEntryPath(style)); err != nil {
			return nil, err
		}
		e.logger.Info("wrote default entry", "style", style, "weight", int(e.options.DefaultWeight), "icons", len(icons))
	}
	return set, nil
}

func (e *Exporter) write(ctx context.Context, data generator.EntryData, path []string) error {
	buf := &bytes.Buffer{}
	if err := e.gen.Entry(buf, data); err != nil {
		return err
	}
	return e.tree.Write(ctx, buf.Bytes(), path...)
}
