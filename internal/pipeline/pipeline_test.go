package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/iconsmith/internal/catalog"
	"github.com/alexisbeaulieu97/iconsmith/internal/config"
	"github.com/alexisbeaulieu97/iconsmith/internal/history"
	iconsmitherrors "github.com/alexisbeaulieu97/iconsmith/pkg/errors"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Name:       "Acme",
		Platforms:  []string{"web"},
		Categories: []string{"favicon", "icon"},
		Output:     t.TempDir(),
		Background: config.BackgroundSpec{
			Type:  config.BackgroundColor,
			Color: &config.ColorBackground{Hex: "#336699"},
		},
		Foreground: config.ForegroundSpec{
			Type: config.ForegroundText,
			Text: &config.TextForeground{Value: "A", Color: "#FFFFFF"},
		},
	}
	require.NoError(t, config.ValidateConfig(cfg))
	return cfg
}

func TestRunGeneratesWebAssets(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	p := New(cfg, nil, nil)

	result := p.Run(context.Background())
	require.True(t, result.Success, "errors: %v", result.Errors)
	require.Empty(t, result.Errors)
	require.NotEmpty(t, result.Assets)

	// Primary assets on disk.
	for _, name := range []string{
		"web/favicon-32x32.png",
		"web/icons/icon-512.png",
		"web/icons/maskable-512.png",
		"web/icons/monochrome-512.png",
		"web/apple-touch-icon.png",
	} {
		_, err := os.Stat(filepath.Join(cfg.Output, name))
		require.NoError(t, err, name)
	}

	// Auxiliary artifacts and instructions.
	_, err := os.Stat(filepath.Join(cfg.Output, "web", "favicon.ico"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfg.Output, "web", "site.webmanifest"))
	require.NoError(t, err)
	require.FileExists(t, result.InstructionsPath)
}

type flakyComposer struct {
	failName string
	inner    composer
}

func (f *flakyComposer) Compose(spec catalog.AssetSpec) ([]byte, error) {
	if spec.Name == f.failName {
		return nil, iconsmitherrors.NewAssetError(spec.Name, os.ErrNotExist)
	}
	return f.inner.Compose(spec)
}

func TestRunIsolatesSingleAssetFailure(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	p := New(cfg, nil, nil)

	specs, err := catalog.Resolve(cfg.PlatformList(), cfg.CategoryList())
	require.NoError(t, err)
	total := len(specs)
	require.Greater(t, total, 2)

	p.engine = &flakyComposer{failName: specs[1].Name, inner: p.engine}

	result := p.Run(context.Background())
	require.False(t, result.Success)
	require.Len(t, result.Assets, total-1)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0], specs[1].Name)
}

func TestRunAbortsOnConfigError(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Foreground.Text.FontSource = config.FontSourceFile
	// No font path: resolving fails with a ConfigError for every text asset.

	p := New(cfg, nil, nil)
	result := p.Run(context.Background())

	require.False(t, result.Success)
	require.Empty(t, result.Assets)
	require.NotEmpty(t, result.Errors)
}

func TestRunAbortsOnMissingFontFile(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Foreground.Text.FontSource = config.FontSourceFile
	cfg.Foreground.Text.FontPath = filepath.Join(t.TempDir(), "absent.ttf")

	p := New(cfg, nil, nil)
	result := p.Run(context.Background())

	// A declared font file that cannot be read is fatal, not a placeholder.
	require.False(t, result.Success)
	require.Empty(t, result.Assets)
	require.NotEmpty(t, result.Errors)
}

func TestRunRecordsHistory(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	store, err := history.NewStore(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)

	p := New(cfg, nil, store)
	result := p.Run(context.Background())
	require.True(t, result.Success)

	entries := store.List()
	require.Len(t, entries, 1)
	require.Equal(t, "Acme", entries[0].Name)
	require.Equal(t, len(result.Assets), entries[0].AssetCount)
	require.True(t, entries[0].Success)
	require.Equal(t, []string{"web"}, entries[0].Platforms)
}

func TestRunRespectsCancelledContext(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	p := New(cfg, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := p.Run(ctx)
	require.False(t, result.Success)
	require.Empty(t, result.Assets)
}
