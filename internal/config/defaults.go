// Package config provides configuration handling for iconforge.
package config

const (
	DefaultSourceURL   = "node_modules/@material-symbols"
	DefaultOutputURL   = "src"
	DefaultCategoryURL = "data/current_versions.json"
	DefaultDevIconsURL = "scripts/dev-icons.yaml"
	DefaultPackageName = "material-symbols-react"
	DefaultDemoURL     = "https://marella.github.io/material-symbols/demo/"
	DefaultWeight      = 400
)

// DefaultStyles returns the Material Symbols styles.
func DefaultStyles() []string {
	return []string{"outlined", "rounded", "sharp"}
}

// DefaultWeights returns the Material Symbols weights.
func DefaultWeights() []int {
	return []int{100, 200, 300, 400, 500, 600, 700}
}

// DefaultDeclarations returns the rollup based declaration build.
func DefaultDeclarations() Declarations {
	return Declarations{
		Workers: 4,
		Command: "rollup",
		Args:    []string{"-c", "scripts/dts.single.config.mjs", "--environment", "INPUT:{input},OUTPUT:{output}"},
		SrcDir:  "src",
		DistDir: "dist",
	}
}

// DefaultOptions returns default run options.
func DefaultOptions() Options {
	return Options{
		LogLevel: "info",
	}
}
