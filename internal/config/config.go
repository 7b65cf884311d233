package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"

	"iconforge/internal/model"
)

// Config represents the complete configuration.
type Config struct {
	Root          string       `yaml:"root" json:"root"`
	SourceURL     string       `yaml:"sourceURL" json:"sourceURL"`
	OutputURL     string       `yaml:"outputURL" json:"outputURL"`
	CategoryURL   string       `yaml:"categoryURL" json:"categoryURL"`
	TemplateURL   string       `yaml:"templateURL" json:"templateURL"`
	DevIconsURL   string       `yaml:"devIconsURL" json:"devIconsURL"`
	PackageName   string       `yaml:"packageName" json:"packageName"`
	DemoURL       string       `yaml:"demoURL" json:"demoURL"`
	Styles        []string     `yaml:"styles" json:"styles"`
	Weights       []int        `yaml:"weights" json:"weights"`
	DefaultWeight int          `yaml:"defaultWeight" json:"defaultWeight"`
	Declarations  Declarations `yaml:"declarations" json:"declarations"`
	Options       Options      `yaml:"options" json:"options"`
}

// Declarations configures the type declaration extraction stage.
type Declarations struct {
	Workers int      `yaml:"workers" json:"workers"`
	Command string   `yaml:"command" json:"command"`
	Args    []string `yaml:"args" json:"args"`
	SrcDir  string   `yaml:"srcDir" json:"srcDir"`
	DistDir string   `yaml:"distDir" json:"distDir"`
}

// Options represents run options.
type Options struct {
	Dev      bool   `yaml:"dev" json:"dev"`
	LogLevel string `yaml:"logLevel" json:"logLevel"`
	JSONLogs bool   `yaml:"jsonLogs" json:"jsonLogs"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		SourceURL:     DefaultSourceURL,
		OutputURL:     DefaultOutputURL,
		CategoryURL:   DefaultCategoryURL,
		DevIconsURL:   DefaultDevIconsURL,
		PackageName:   DefaultPackageName,
		DemoURL:       DefaultDemoURL,
		Styles:        DefaultStyles(),
		Weights:       DefaultWeights(),
		DefaultWeight: DefaultWeight,
		Declarations:  DefaultDeclarations(),
		Options:       DefaultOptions(),
	}
}

// LoadFile loads configuration from a local path or any afs URL (e.g., mem://, file://).
// The format follows the extension: YAML, JSON, or YAML then JSON for anything else.
func (c *Config) LoadFile(ctx context.Context, fs afs.Service, location string) error {
	URL, err := locationURL(location)
	if err != nil {
		return err
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", URL, err)
	}

	ext := strings.ToLower(path.Ext(URL))

	var loaded Config
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			if err := json.Unmarshal(data, &loaded); err != nil {
				return fmt.Errorf("unable to parse config %s as YAML or JSON", URL)
			}
		}
	}

	c.merge(&loaded)
	return nil
}

// locationURL turns a local path into a file URL; URLs pass through.
func locationURL(location string) (string, error) {
	if strings.Contains(location, "://") {
		return location, nil
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", fmt.Errorf("resolving config path %s: %w", location, err)
	}
	return file.Scheme + "://localhost" + filepath.ToSlash(abs), nil
}

// merge overlays the non-zero loaded values onto the current config.
func (c *Config) merge(loaded *Config) {
	setString(&c.Root, loaded.Root)
	setString(&c.SourceURL, loaded.SourceURL)
	setString(&c.OutputURL, loaded.OutputURL)
	setString(&c.CategoryURL, loaded.CategoryURL)
	setString(&c.TemplateURL, loaded.TemplateURL)
	setString(&c.DevIconsURL, loaded.DevIconsURL)
	setString(&c.PackageName, loaded.PackageName)
	setString(&c.DemoURL, loaded.DemoURL)
	if len(loaded.Styles) > 0 {
		c.Styles = loaded.Styles
	}
	if len(loaded.Weights) > 0 {
		c.Weights = loaded.Weights
	}
	if loaded.DefaultWeight != 0 {
		c.DefaultWeight = loaded.DefaultWeight
	}

	if loaded.Declarations.Workers > 0 {
		c.Declarations.Workers = loaded.Declarations.Workers
	}
	if loaded.Declarations.Command != "" {
		// Args belong to the command they were written for
		c.Declarations.Command = loaded.Declarations.Command
		c.Declarations.Args = loaded.Declarations.Args
	}
	setString(&c.Declarations.SrcDir, loaded.Declarations.SrcDir)
	setString(&c.Declarations.DistDir, loaded.Declarations.DistDir)

	if loaded.Options.Dev {
		c.Options.Dev = true
	}
	if loaded.Options.JSONLogs {
		c.Options.JSONLogs = true
	}
	setString(&c.Options.LogLevel, loaded.Options.LogLevel)
}

func setString(dest *string, value string) {
	if value != "" {
		*dest = value
	}
}

// Normalize resolves relative locations against Root (the working directory when empty).
func (c *Config) Normalize() error {
	if c.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		c.Root = wd
	}
	baseURL := c.Root
	if !strings.Contains(baseURL, "://") {
		abs, err := filepath.Abs(baseURL)
		if err != nil {
			return fmt.Errorf("resolving root %s: %w", c.Root, err)
		}
		c.Root = abs
		baseURL = file.Scheme + "://localhost" + filepath.ToSlash(abs)
	}
	for _, location := range []*string{&c.SourceURL, &c.OutputURL, &c.CategoryURL, &c.TemplateURL, &c.DevIconsURL} {
		if *location != "" && url.IsRelative(*location) {
			*location = url.Join(baseURL, *location)
		}
	}
	return nil
}

// Validate checks the config for inconsistencies.
func (c *Config) Validate() error {
	if len(c.Styles) == 0 {
		return fmt.Errorf("at least one style is required")
	}
	if len(c.Weights) == 0 {
		return fmt.Errorf("at least one weight is required")
	}
	found := false
	for _, w := range c.Weights {
		if w == c.DefaultWeight {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("default weight %d is not one of %v", c.DefaultWeight, c.Weights)
	}
	if c.Declarations.Workers < 1 {
		return fmt.Errorf("declarations.workers must be at least 1, got %d", c.Declarations.Workers)
	}
	if c.OutputURL == "" {
		return fmt.Errorf("outputURL is required")
	}
	return nil
}

// StyleList returns the configured styles in processing order.
func (c *Config) StyleList() []model.Style {
	result := make([]model.Style, len(c.Styles))
	for i, s := range c.Styles {
		result[i] = model.Style(s)
	}
	return result
}

// WeightList returns the configured weights in processing order.
func (c *Config) WeightList() []model.Weight {
	result := make([]model.Weight, len(c.Weights))
	for i, w := range c.Weights {
		result[i] = model.Weight(w)
	}
	return result
}

// Buckets returns every (style, weight) pair, styles outermost.
func (c *Config) Buckets() []model.Bucket {
	var result []model.Bucket
	for _, style := range c.StyleList() {
		for _, weight := range c.WeightList() {
			result = append(result, model.Bucket{Style: style, Weight: weight})
		}
	}
	return result
}
