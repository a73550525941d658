package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/sfnt"

	"github.com/alexisbeaulieu97/iconsmith/internal/config"
	"github.com/alexisbeaulieu97/iconsmith/internal/fonts"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <rect x="0" y="0" width="100" height="100" fill="#FF0000"/>
</svg>`

func writeTestSVG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icon.svg")
	require.NoError(t, os.WriteFile(path, []byte(testSVG), 0o644))
	return path
}

func countOpaque(pix []uint8) int {
	n := 0
	for i := 3; i < len(pix); i += 4 {
		if pix[i] > 0 {
			n++
		}
	}
	return n
}

func TestForegroundSVG(t *testing.T) {
	t.Parallel()

	fg := NewForeground(&config.ForegroundSpec{
		Type: config.ForegroundSVG,
		SVG:  &config.SVGForeground{Path: writeTestSVG(t)},
	}, nil)

	out, err := fg.Render(ForegroundOptions{CanvasW: 100, CanvasH: 100, BoxW: 50, BoxH: 50})
	require.NoError(t, err)
	require.Equal(t, 100, out.Bounds().Dx())

	// The square fills the 50x50 box centered on the canvas.
	r, _, _, a := out.At(50, 50).RGBA()
	require.Equal(t, uint32(0xFF), a>>8)
	require.Equal(t, uint32(0xFF), r>>8)

	// Corners outside the box stay transparent.
	_, _, _, a = out.At(5, 5).RGBA()
	require.Zero(t, a)
}

func TestForegroundSVGColorOverride(t *testing.T) {
	t.Parallel()

	white := White
	fg := NewForeground(&config.ForegroundSpec{
		Type: config.ForegroundSVG,
		SVG:  &config.SVGForeground{Path: writeTestSVG(t)},
	}, nil)

	out, err := fg.Render(ForegroundOptions{CanvasW: 40, CanvasH: 40, BoxW: 40, BoxH: 40, Color: &white})
	require.NoError(t, err)

	r, g, b, _ := out.At(20, 20).RGBA()
	require.Equal(t, uint32(0xFF), r>>8)
	require.Equal(t, uint32(0xFF), g>>8)
	require.Equal(t, uint32(0xFF), b>>8)
}

func TestRecolorSVG(t *testing.T) {
	t.Parallel()

	in := []byte(`<rect fill="#00FF00"/><path fill="none"/><circle style="fill:#123456"/>`)
	out := string(recolorSVG(in, "FFFFFF"))

	require.Contains(t, out, `fill="#FFFFFF"`)
	require.Contains(t, out, `fill="none"`)
	require.Contains(t, out, "fill:#FFFFFF")
	require.NotContains(t, out, "#00FF00")
	require.NotContains(t, out, "#123456")
}

func TestForegroundText(t *testing.T) {
	t.Parallel()

	fg := NewForeground(&config.ForegroundSpec{
		Type: config.ForegroundText,
		Text: &config.TextForeground{Value: "A", Color: "#000000"},
	}, fonts.BundledResolver{})

	out, err := fg.Render(ForegroundOptions{CanvasW: 64, CanvasH: 64, BoxW: 44, BoxH: 44})
	require.NoError(t, err)
	require.Positive(t, countOpaque(out.Pix))
}

func TestForegroundTextColorOverride(t *testing.T) {
	t.Parallel()

	white := White
	fg := NewForeground(&config.ForegroundSpec{
		Type: config.ForegroundText,
		Text: &config.TextForeground{Value: "A", Color: "#000000"},
	}, fonts.BundledResolver{})

	out, err := fg.Render(ForegroundOptions{CanvasW: 64, CanvasH: 64, BoxW: 44, BoxH: 44, Color: &white})
	require.NoError(t, err)

	// Every painted pixel carries the override color.
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i+3] == 255 {
			require.Equal(t, uint8(255), out.Pix[i])
			require.Equal(t, uint8(255), out.Pix[i+1])
			require.Equal(t, uint8(255), out.Pix[i+2])
		}
	}
}

type unavailableResolver struct{}

func (unavailableResolver) Resolve(*config.TextForeground) (*sfnt.Font, error) {
	return nil, fonts.ErrUnavailable
}

func TestForegroundTextPlaceholder(t *testing.T) {
	t.Parallel()

	fg := NewForeground(&config.ForegroundSpec{
		Type: config.ForegroundText,
		Text: &config.TextForeground{Value: "A", Color: "#FF0000"},
	}, unavailableResolver{})

	out, err := fg.Render(ForegroundOptions{CanvasW: 40, CanvasH: 40, BoxW: 40, BoxH: 40})
	require.NoError(t, err)

	// Half-size centered rectangle at 30% opacity.
	require.Equal(t, uint8(76), out.NRGBAAt(20, 20).A)

	_, _, _, aCorner := out.At(2, 2).RGBA()
	require.Zero(t, aCorner)
}

func TestForegroundImageContain(t *testing.T) {
	t.Parallel()

	src := imaging.New(20, 10, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	path := filepath.Join(t.TempDir(), "fg.png")
	require.NoError(t, imaging.Save(src, path))

	fg := NewForeground(&config.ForegroundSpec{
		Type:  config.ForegroundImage,
		Image: &config.ImageForeground{Path: path},
	}, nil)

	out, err := fg.Render(ForegroundOptions{CanvasW: 100, CanvasH: 100, BoxW: 40, BoxH: 40})
	require.NoError(t, err)
	require.Equal(t, 100, out.Bounds().Dx())

	// A 2:1 source contained in a 40x40 box is 40x20 centered.
	_, _, _, a := out.At(50, 50).RGBA()
	require.NotZero(t, a)
	_, _, _, a = out.At(50, 35).RGBA()
	require.Zero(t, a)
}

func TestForegroundImageTint(t *testing.T) {
	t.Parallel()

	src := imaging.New(10, 10, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	path := filepath.Join(t.TempDir(), "fg.png")
	require.NoError(t, imaging.Save(src, path))

	white := White
	fg := NewForeground(&config.ForegroundSpec{
		Type:  config.ForegroundImage,
		Image: &config.ImageForeground{Path: path},
	}, nil)

	out, err := fg.Render(ForegroundOptions{CanvasW: 20, CanvasH: 20, BoxW: 20, BoxH: 20, Color: &white})
	require.NoError(t, err)

	r, g, b, _ := out.At(10, 10).RGBA()
	require.Equal(t, uint32(0xFF), r>>8)
	require.Equal(t, uint32(0xFF), g>>8)
	require.Equal(t, uint32(0xFF), b>>8)
}

func TestContainSize(t *testing.T) {
	t.Parallel()

	w, h := containSize(200, 100, 50, 50)
	require.Equal(t, 50, w)
	require.Equal(t, 25, h)

	// Small sources upscale.
	w, h = containSize(10, 10, 40, 40)
	require.Equal(t, 40, w)
	require.Equal(t, 40, h)

	w, h = containSize(0, 10, 40, 40)
	require.Zero(t, w)
	require.Zero(t, h)
}
