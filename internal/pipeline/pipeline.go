// Package pipeline drives the generation stages and decides, from each
// stage's outcome, whether the run continues or aborts.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/viant/afs"

	"iconforge/internal/category"
	"iconforge/internal/config"
	"iconforge/internal/exports"
	"iconforge/internal/generator"
	"iconforge/internal/metadata"
	"iconforge/internal/model"
	"iconforge/internal/output"
	"iconforge/internal/pool"
	"iconforge/internal/source"
	"iconforge/internal/synth"
)

// Pipeline wires the stages for one run.
type Pipeline struct {
	config *config.Config
	fs     afs.Service
	logger *slog.Logger
	store  *source.Store
	tree   *output.Tree
	gen    *generator.Generator
	allow  *source.AllowList
	runner pool.Runner
}

// Summary describes a generation run.
type Summary struct {
	UniqueIcons int
	Components  int
	Modules     int
	PathFiles   int
}

// New prepares a pipeline. In development mode the allow list must load.
func New(ctx context.Context, cfg *config.Config, fs afs.Service, logger *slog.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = slog.Default()
	}
	gen, err := generator.New(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.TemplateURL != "" {
		if err := gen.LoadTemplate(ctx, fs, cfg.TemplateURL); err != nil {
			return nil, err
		}
	}
	p := &Pipeline{
		config: cfg,
		fs:     fs,
		logger: logger,
		store:  source.New(fs, cfg.SourceURL),
		tree:   output.New(fs, cfg.OutputURL),
		gen:    gen,
		runner: &pool.Command{
			Name: cfg.Declarations.Command,
			Args: cfg.Declarations.Args,
			Dir:  cfg.Root,
		},
	}
	if cfg.Options.Dev {
		if p.allow, err = source.LoadAllowList(ctx, fs, cfg.DevIconsURL); err != nil {
			return nil, fmt.Errorf("development mode: %w", err)
		}
		logger.Info("development mode", "icons", p.allow.Len())
	}
	return p, nil
}

// WithRunner replaces the declaration job runner.
func (p *Pipeline) WithRunner(runner pool.Runner) *Pipeline {
	p.runner = runner
	return p
}

// Generate cleans previous output, synthesizes every bucket and writes the metadata.
func (p *Pipeline) Generate(ctx context.Context) (*Summary, error) {
	removed, err := p.tree.Clean(ctx, p.config.StyleList())
	if err != nil {
		return nil, fmt.Errorf("cleaning output: %w", err)
	}
	for _, URL := range removed {
		p.logger.Debug("removed stale output", "url", URL)
	}

	synthesizer := synth.New(p.store, p.tree, p.gen, p.allow, p.logger)
	collection, err := synthesizer.SynthesizeAll(ctx, p.config.Buckets())
	if err != nil {
		return nil, err
	}

	index := metadata.NewBuilder(category.NewResolver(p.categories(ctx))).Build(collection)
	if err := metadata.WriteIndex(ctx, p.tree, index); err != nil {
		return nil, fmt.Errorf("writing metadata: %w", err)
	}
	pathFiles, err := metadata.WritePaths(ctx, p.tree, metadata.Paths(collection))
	if err != nil {
		return nil, fmt.Errorf("writing path data: %w", err)
	}

	summary := &Summary{
		UniqueIcons: len(index.Entries),
		Components:  len(index.ComponentNames),
		PathFiles:   pathFiles,
	}
	for _, bucket := range collection.Buckets {
		summary.Modules += bucket.Len()
	}
	p.logger.Info("generated icon data",
		"uniqueIcons", summary.UniqueIcons,
		"components", summary.Components,
		"modules", summary.Modules,
		"pathFiles", summary.PathFiles)
	return summary, nil
}

// categories loads the category table; any failure degrades to uncategorized.
func (p *Pipeline) categories(ctx context.Context) *category.Table {
	if p.config.CategoryURL == "" {
		p.logger.Warn("no category data configured, icons will be uncategorized")
		return nil
	}
	table, err := category.Load(ctx, p.fs, p.config.CategoryURL)
	if err != nil {
		p.logger.Warn("could not load category data, icons will be uncategorized", "error", err)
		return nil
	}
	p.logger.Info("loaded category data", "url", p.config.CategoryURL, "entries", len(table.Entries))
	return table
}

// Exports writes the per-weight and default entry modules from the generated tree.
func (p *Pipeline) Exports(ctx context.Context) (*exports.Set, error) {
	styles := p.config.StyleList()
	exporter := exports.New(p.store, p.tree, p.gen, exports.Options{
		Styles:        styles,
		Weights:       p.config.WeightList(),
		DefaultWeight: model.Weight(p.config.DefaultWeight),
		Reference:     model.Bucket{Style: styles[0], Weight: model.Weight(p.config.DefaultWeight)},
		Allow:         p.allow,
	}, p.logger)
	set, err := exporter.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("generating exports: %w", err)
	}
	return set, nil
}

// Declarations extracts type declarations for every entry module.
func (p *Pipeline) Declarations(ctx context.Context) (*pool.Report, error) {
	decl := p.config.Declarations
	tasks := pool.DeclarationTasks(decl.SrcDir, decl.DistDir, p.config.StyleList(), p.config.WeightList())
	p.logger.Info("building declarations", "tasks", len(tasks), "workers", decl.Workers)
	report, err := pool.New(decl.Workers, p.runner).Run(ctx, tasks)
	if err != nil {
		p.logger.Error("declaration build failed", "error", err,
			"succeeded", report.Count(pool.Succeeded), "failed", report.Count(pool.Failed))
		return report, err
	}
	p.logger.Info("built declarations", "succeeded", report.Count(pool.Succeeded))
	return report, nil
}

// All runs generation, exports and declarations in sequence.
func (p *Pipeline) All(ctx context.Context) error {
	if _, err := p.Generate(ctx); err != nil {
		return err
	}
	if _, err := p.Exports(ctx); err != nil {
		return err
	}
	_, err := p.Declarations(ctx)
	return err
}
