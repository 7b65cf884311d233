// iconforge turns per-style, per-weight SVG glyph trees into tree-shakable
// icon modules, metadata files and entry aggregators.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"

	"iconforge/internal/config"
	"iconforge/internal/logging"
	"iconforge/internal/pipeline"
)

// Options are the command line options.
type Options struct {
	Config  string `short:"c" long:"config" description:"config file (YAML/JSON)"`
	Verbose bool   `short:"v" long:"verbose" description:"debug logging"`
	Dev     bool   `long:"dev" description:"limit the run to the development icon list"`
	JSON    bool   `long:"json" description:"log as JSON"`

	Generate     struct{} `command:"generate" description:"synthesize icon modules and metadata"`
	Exports      struct{} `command:"exports" description:"write per-weight and default entry modules"`
	Declarations struct{} `command:"declarations" description:"build type declarations for every entry module"`
	All          struct{} `command:"all" description:"generate, exports and declarations in sequence"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	ctx := context.Background()
	fs := afs.New()
	cfg, err := loadConfig(ctx, fs, options)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Options.LogLevel, cfg.Options.JSONLogs, os.Stderr)
	logger.Debug("resolved configuration", "root", cfg.Root, "source", cfg.SourceURL, "output", cfg.OutputURL)

	p, err := pipeline.New(ctx, cfg, fs, logger)
	if err != nil {
		return err
	}

	switch parser.Active.Name {
	case "generate":
		_, err = p.Generate(ctx)
	case "exports":
		_, err = p.Exports(ctx)
	case "declarations":
		_, err = p.Declarations(ctx)
	case "all":
		err = p.All(ctx)
	default:
		err = fmt.Errorf("unknown command %q", parser.Active.Name)
	}
	return err
}

// loadConfig layers defaults, the config file, the environment and flags.
func loadConfig(ctx context.Context, fs afs.Service, options *Options) (*config.Config, error) {
	cfg := config.New()
	if options.Config != "" {
		if err := cfg.LoadFile(ctx, fs, options.Config); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	e, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(e)

	if options.Dev {
		cfg.Options.Dev = true
	}
	if options.Verbose {
		cfg.Options.LogLevel = "debug"
	}
	if options.JSON {
		cfg.Options.JSONLogs = true
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
