package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "iconforge.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("root: "+dir+"\nstyles: [rounded]\nweights: [300, 400]\n"), 0o644))

	testCases := []struct {
		description string
		options     Options
		expectLevel string
		expectDev   bool
		expectJSON  bool
	}{
		{description: "file only", options: Options{Config: configFile}, expectLevel: "info"},
		{description: "flags override", options: Options{Config: configFile, Verbose: true, Dev: true, JSON: true}, expectLevel: "debug", expectDev: true, expectJSON: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			t.Setenv("NODE_ENV", "production")
			t.Setenv("ICON_LIMIT", "false")
			t.Setenv("ICONFORGE_LOG_LEVEL", "")
			cfg, err := loadConfig(context.Background(), afs.New(), &testCase.options)
			require.NoError(t, err)
			assert.Equal(t, []string{"rounded"}, cfg.Styles)
			assert.Equal(t, []int{300, 400}, cfg.Weights)
			assert.Equal(t, "file://localhost"+filepath.ToSlash(filepath.Join(dir, "src")), cfg.OutputURL)
			assert.Equal(t, testCase.expectLevel, cfg.Options.LogLevel)
			assert.Equal(t, testCase.expectDev, cfg.Options.Dev)
			assert.Equal(t, testCase.expectJSON, cfg.Options.JSONLogs)
		})
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "iconforge.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("root: "+dir+"\ndefaultWeight: 450\n"), 0o644))

	_, err := loadConfig(context.Background(), afs.New(), &Options{Config: configFile})
	assert.Error(t, err)
}

func TestRun_Help(t *testing.T) {
	assert.NoError(t, run([]string{"--help"}))
}
