package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"iconforge/internal/config"
	"iconforge/internal/exports"
	"iconforge/internal/model"
	"iconforge/internal/pool"
	"iconforge/internal/source"
)

const categories = `{"action::home": 1, "toggle::star": 2}`

type fixture struct {
	fs     afs.Service
	config *config.Config
}

func newFixture(t *testing.T, name string, glyphs map[model.Bucket][]string) *fixture {
	ctx := context.Background()
	fs := afs.New()
	baseURL := "mem://localhost/pipeline/" + name
	cfg := config.New()
	cfg.Root = "/"
	cfg.SourceURL = url.Join(baseURL, "src")
	cfg.OutputURL = url.Join(baseURL, "out")
	cfg.CategoryURL = url.Join(baseURL, "categories.json")
	cfg.DevIconsURL = url.Join(baseURL, "dev-icons.yaml")
	cfg.Styles = []string{"outlined", "rounded"}
	cfg.Weights = []int{400}
	cfg.Declarations.Workers = 2

	store := source.New(fs, cfg.SourceURL)
	for bucket, rawNames := range glyphs {
		for _, rawName := range rawNames {
			svg := `<svg><path d="M0 0h` + rawName + `"/></svg>`
			err := fs.Upload(ctx, url.Join(store.BucketURL(bucket), rawName+source.Ext), file.DefaultFileOsMode, strings.NewReader(svg))
			require.NoError(t, err)
		}
	}
	require.NoError(t, fs.Upload(ctx, cfg.CategoryURL, file.DefaultFileOsMode, strings.NewReader(categories)))
	return &fixture{fs: fs, config: cfg}
}

func (f *fixture) exists(t *testing.T, elements ...string) bool {
	ok, err := f.fs.Exists(context.Background(), url.Join(f.config.OutputURL, elements...))
	require.NoError(t, err)
	return ok
}

func (f *fixture) read(t *testing.T, elements ...string) string {
	data, err := f.fs.DownloadWithURL(context.Background(), url.Join(f.config.OutputURL, elements...))
	require.NoError(t, err)
	return string(data)
}

var outlined = model.Bucket{Style: "outlined", Weight: 400}
var rounded = model.Bucket{Style: "rounded", Weight: 400}

func TestPipeline_Generate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "generate", map[model.Bucket][]string{
		outlined: {"home", "home-fill", "star"},
		rounded:  {"home", "home-fill"},
	})
	p, err := New(ctx, f.config, f.fs, nil)
	require.NoError(t, err)

	summary, err := p.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Summary{UniqueIcons: 2, Components: 3, Modules: 5, PathFiles: 2}, summary)

	assert.True(t, f.exists(t, "outlined", "w400", "home-fill.ts"))
	assert.True(t, f.exists(t, "rounded", "w400", "index.ts"))
	assert.False(t, f.exists(t, "rounded", "w400", "star.ts"))

	var entries map[string]model.IndexEntry
	require.NoError(t, json.Unmarshal([]byte(f.read(t, "metadata", "icon-index.json")), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Home", entries["home"].Component)
	assert.Equal(t, "action", entries["home"].Category)
	assert.Equal(t, []model.Style{"outlined", "rounded"}, entries["home"].Styles)
	assert.Equal(t, "toggle", entries["star"].Category)
	assert.True(t, f.exists(t, "metadata", "paths", "home.json"))
}

func TestPipeline_Generate_MissingCategories(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "no-categories", map[model.Bucket][]string{outlined: {"home"}})
	f.config.CategoryURL = strings.Replace(f.config.CategoryURL, "categories.json", "missing.json", 1)
	p, err := New(ctx, f.config, f.fs, nil)
	require.NoError(t, err)

	_, err = p.Generate(ctx)
	require.NoError(t, err)
	assert.Contains(t, f.read(t, "metadata", "icon-index.json"), `"category": "uncategorized"`)
}

func TestPipeline_Generate_CleansStaleOutput(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "clean", map[model.Bucket][]string{outlined: {"home"}})
	stale := url.Join(f.config.OutputURL, "outlined", "w400", "removed.ts")
	require.NoError(t, f.fs.Upload(ctx, stale, file.DefaultFileOsMode, strings.NewReader("export {};")))
	p, err := New(ctx, f.config, f.fs, nil)
	require.NoError(t, err)

	_, err = p.Generate(ctx)
	require.NoError(t, err)
	assert.False(t, f.exists(t, "outlined", "w400", "removed.ts"))
	assert.True(t, f.exists(t, "outlined", "w400", "home.ts"))
}

func TestPipeline_Exports(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "exports", map[model.Bucket][]string{
		outlined: {"home", "home-fill", "star"},
		rounded:  {"home", "home-fill"},
	})
	p, err := New(ctx, f.config, f.fs, nil)
	require.NoError(t, err)
	_, err = p.Generate(ctx)
	require.NoError(t, err)

	set, err := p.Exports(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	entry := f.read(t, "outlined", "w400.ts")
	assert.Contains(t, entry, "./w400/home-fill")
	assert.NotContains(t, entry, "./w400/star")
	assert.True(t, f.exists(t, "rounded", "index.ts"))
}

func TestPipeline_Exports_NoCandidates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "no-candidates", nil)
	p, err := New(ctx, f.config, f.fs, nil)
	require.NoError(t, err)

	_, err = p.Exports(ctx)
	assert.True(t, errors.Is(err, exports.ErrNoIcons))
}

func TestPipeline_DevAllowList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "dev", map[model.Bucket][]string{
		outlined: {"home", "star"},
		rounded:  {"home", "star"},
	})
	f.config.Options.Dev = true

	_, err := New(ctx, f.config, f.fs, nil)
	require.Error(t, err)

	require.NoError(t, f.fs.Upload(ctx, f.config.DevIconsURL, file.DefaultFileOsMode, strings.NewReader("- star\n")))
	p, err := New(ctx, f.config, f.fs, nil)
	require.NoError(t, err)
	summary, err := p.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.UniqueIcons)
	assert.False(t, f.exists(t, "outlined", "w400", "home.ts"))

	set, err := p.Exports(ctx)
	require.NoError(t, err)
	require.Len(t, set.Validated, 1)
	assert.Equal(t, "Star", set.Validated[0].ComponentID)
}

func TestPipeline_Declarations(t *testing.T) {
	testCases := []struct {
		description string
		failOn      string
		expectErr   bool
	}{
		{description: "every task succeeds"},
		{description: "failing task stops the run", failOn: "src/outlined/index.ts", expectErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t, "declarations", nil)
			p, err := New(ctx, f.config, f.fs, nil)
			require.NoError(t, err)

			var mux sync.Mutex
			var ran []string
			p.WithRunner(pool.RunnerFunc(func(ctx context.Context, task pool.Task) error {
				mux.Lock()
				ran = append(ran, task.Input)
				mux.Unlock()
				if task.Input == testCase.failOn {
					return errors.New("rollup exited with 1")
				}
				return nil
			}))

			report, err := p.Declarations(ctx)
			if testCase.expectErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, pool.ErrJobFailed))
				assert.Equal(t, 1, report.Count(pool.Failed))
				return
			}
			require.NoError(t, err)
			assert.Len(t, ran, 5)
			assert.Equal(t, 5, report.Count(pool.Succeeded))
		})
	}
}
