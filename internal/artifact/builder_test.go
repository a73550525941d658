package artifact

import (
	"bytes"
	"encoding/json"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/iconsmith/internal/catalog"
	"github.com/alexisbeaulieu97/iconsmith/internal/compose"
	"github.com/alexisbeaulieu97/iconsmith/internal/config"
	"github.com/alexisbeaulieu97/iconsmith/internal/fonts"
	"github.com/alexisbeaulieu97/iconsmith/internal/render"
)

func newTestBuilder(t *testing.T, bgSpec *config.BackgroundSpec) *Builder {
	t.Helper()

	bg := render.NewBackground(bgSpec)
	fg := render.NewForeground(&config.ForegroundSpec{
		Type: config.ForegroundText,
		Text: &config.TextForeground{Value: "A", Color: "#000000"},
	}, fonts.BundledResolver{})
	engine := compose.NewEngine(bg, fg, config.ScaleOverrides{})

	return NewBuilder(engine, bg, "Acme", nil)
}

func solidBackground(hex string) *config.BackgroundSpec {
	return &config.BackgroundSpec{
		Type:  config.BackgroundColor,
		Color: &config.ColorBackground{Hex: hex},
	}
}

func allPlatformsCategories() ([]catalog.Platform, []catalog.Category) {
	return catalog.Platforms(), catalog.Categories()
}

func TestFrameForegroundSizes(t *testing.T) {
	t.Parallel()

	require.Equal(t, []int{11, 22, 33}, FrameForegroundSizes(0.7))
	require.Equal(t, []int{13, 27, 40}, FrameForegroundSizes(0.85))
}

func TestBuildFaviconPackHasThreeFrames(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, solidBackground("#336699"))
	data, err := b.buildFavicon()
	require.NoError(t, err)

	frames, err := ico.DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, frames, 3)

	for i, size := range FrameSizes {
		require.Equal(t, size, frames[i].Bounds().Dx())
		require.Equal(t, size, frames[i].Bounds().Dy())
	}
}

func TestBuildManifest(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, solidBackground("#336699"))
	data, err := b.buildManifest()
	require.NoError(t, err)

	var doc struct {
		Name       string `json:"name"`
		ThemeColor string `json:"theme_color"`
		Background string `json:"background_color"`
		Icons      []struct {
			Src     string `json:"src"`
			Purpose string `json:"purpose"`
		} `json:"icons"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Equal(t, "Acme", doc.Name)
	require.Equal(t, "#336699", doc.ThemeColor)
	require.Equal(t, "#336699", doc.Background)

	purposes := map[string]int{}
	for _, icon := range doc.Icons {
		purposes[icon.Purpose]++
	}
	require.Equal(t, 2, purposes["any"])
	require.Equal(t, 2, purposes["maskable"])
	require.Equal(t, 1, purposes["monochrome"])
}

func TestBuildManifestDefaultsToWhite(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, &config.BackgroundSpec{
		Type: config.BackgroundGradient,
		Gradient: &config.GradientBackground{
			Kind:   "linear",
			Colors: []string{"#000000", "#FFFFFF"},
		},
	})
	data, err := b.buildManifest()
	require.NoError(t, err)

	var doc struct {
		ThemeColor string `json:"theme_color"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, "#FFFFFF", doc.ThemeColor)
}

func TestBuildContentsReplicatesAppearances(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, solidBackground("#336699"))
	data, err := b.buildContents()
	require.NoError(t, err)

	var doc struct {
		Images []struct {
			Filename    string `json:"filename"`
			Idiom       string `json:"idiom"`
			Appearances []struct {
				Value string `json:"value"`
			} `json:"appearances"`
		} `json:"images"`
		Info struct {
			Version int `json:"version"`
		} `json:"info"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Len(t, doc.Images, len(iosIdiomTable)*3)
	require.Equal(t, 1, doc.Info.Version)

	variants := map[string]int{}
	for _, img := range doc.Images {
		if len(img.Appearances) == 0 {
			variants["default"]++
			continue
		}
		variants[img.Appearances[0].Value]++
	}
	require.Equal(t, len(iosIdiomTable), variants["default"])
	require.Equal(t, len(iosIdiomTable), variants["dark"])
	require.Equal(t, len(iosIdiomTable), variants["tinted"])
}

func TestBuildAdaptiveXML(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, solidBackground("#336699"))
	data, err := b.buildAdaptiveXML()
	require.NoError(t, err)

	xml := string(data)
	require.Contains(t, xml, "@mipmap/ic_launcher_background")
	require.Contains(t, xml, "@mipmap/ic_launcher_foreground")
	require.Contains(t, xml, "@mipmap/ic_launcher_monochrome")
	require.Contains(t, xml, "http://schemas.android.com/apk/res/android")
}

func TestBuildColorsXMLOnlyForSolidBackground(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, solidBackground("#336699"))
	data, err := b.buildColorsXML()
	require.NoError(t, err)
	require.Contains(t, string(data), "#336699")
	require.Contains(t, string(data), "ic_launcher_background")

	gradient := newTestBuilder(t, &config.BackgroundSpec{
		Type: config.BackgroundGradient,
		Gradient: &config.GradientBackground{
			Kind:   "linear",
			Colors: []string{"#000000", "#FFFFFF"},
		},
	})
	data, err = gradient.buildColorsXML()
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestBuildGatesOnPlatformsAndCategories(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, solidBackground("#336699"))

	artifacts, errs := b.Build([]catalog.Platform{catalog.PlatformWeb}, []catalog.Category{catalog.CategoryFavicon})
	require.Empty(t, errs)
	require.Len(t, artifacts, 1)
	require.Equal(t, "web/favicon.ico", artifacts[0].Path)

	platforms, categories := allPlatformsCategories()
	artifacts, errs = b.Build(platforms, categories)
	require.Empty(t, errs)

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		paths = append(paths, a.Path)
	}
	require.ElementsMatch(t, []string{
		"web/favicon.ico",
		"web/site.webmanifest",
		"ios/AppIcon.appiconset/Contents.json",
		"android/mipmap-anydpi-v26/ic_launcher.xml",
		"android/values/colors.xml",
	}, paths)
}

func TestBuildIsolatesArtifactFailures(t *testing.T) {
	t.Parallel()

	// An unreadable image background fails the favicon pack but not the
	// descriptor artifacts.
	b := newTestBuilder(t, &config.BackgroundSpec{
		Type:  config.BackgroundImage,
		Image: &config.ImageBackground{Path: "/nonexistent/bg.png"},
	})

	platforms, categories := allPlatformsCategories()
	artifacts, errs := b.Build(platforms, categories)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Error(), "favicon")

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		paths = append(paths, a.Path)
	}
	require.Contains(t, paths, "web/site.webmanifest")
	require.Contains(t, paths, "ios/AppIcon.appiconset/Contents.json")
	require.Contains(t, paths, "android/mipmap-anydpi-v26/ic_launcher.xml")
	require.NotContains(t, paths, "android/values/colors.xml")
	require.NotContains(t, paths, "web/favicon.ico")
}
