package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"regexp"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/alexisbeaulieu97/iconsmith/internal/config"
	"github.com/alexisbeaulieu97/iconsmith/internal/fonts"
	iconsmitherrors "github.com/alexisbeaulieu97/iconsmith/pkg/errors"
)

// DefaultFontSize is the text height as a fraction of the canvas when the
// config leaves font_size unset.
const DefaultFontSize = 0.6

// placeholderOpacity is the alpha of the fallback rectangle drawn when no
// font could be resolved.
const placeholderOpacity = 0.3

var (
	svgFillAttr  = regexp.MustCompile(`fill="[^"]*"`)
	svgFillStyle = regexp.MustCompile(`fill:\s*#[0-9a-fA-F]{3,6}`)
)

// ForegroundOptions positions one foreground rendering: the glyph or image
// is scaled to fit inside BoxW×BoxH and centered on a transparent
// CanvasW×CanvasH canvas. Color, when non-nil, overrides the configured
// foreground color (tinted and monochrome branches force white).
type ForegroundOptions struct {
	CanvasW int
	CanvasH int
	BoxW    int
	BoxH    int
	Color   *color.NRGBA
}

// Foreground renders the subject layer of every composition. Safe for
// concurrent use; source files are read once per run.
type Foreground struct {
	spec  *config.ForegroundSpec
	fonts fonts.Resolver

	svgOnce sync.Once
	svgData []byte
	svgErr  error

	imgOnce sync.Once
	img     image.Image
	imgErr  error
}

// NewForeground wraps a validated foreground spec. The resolver is used
// only for text foregrounds and may be nil otherwise.
func NewForeground(spec *config.ForegroundSpec, resolver fonts.Resolver) *Foreground {
	return &Foreground{spec: spec, fonts: resolver}
}

// Render produces a transparent canvas with the foreground centered in the
// scale box.
func (f *Foreground) Render(opts ForegroundOptions) (*image.NRGBA, error) {
	switch f.spec.Type {
	case config.ForegroundSVG:
		return f.renderSVG(opts)
	case config.ForegroundText:
		return f.renderText(opts)
	case config.ForegroundImage:
		return f.renderImage(opts)
	}
	return nil, iconsmitherrors.NewConfigError("foreground.type", "unknown foreground type "+f.spec.Type, nil)
}

func (f *Foreground) renderSVG(opts ForegroundOptions) (*image.NRGBA, error) {
	if f.spec.SVG == nil {
		return nil, iconsmitherrors.NewConfigError("foreground.svg", "no svg path configured", nil)
	}

	f.svgOnce.Do(func() {
		f.svgData, f.svgErr = os.ReadFile(f.spec.SVG.Path)
	})
	if f.svgErr != nil {
		return nil, fmt.Errorf("read svg %s: %w", f.spec.SVG.Path, f.svgErr)
	}

	data := f.svgData
	if hex := f.overrideHex(opts); hex != "" {
		data = recolorSVG(data, hex)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg %s: %w", f.spec.SVG.Path, err)
	}

	srcW, srcH := icon.ViewBox.W, icon.ViewBox.H
	if srcW <= 0 || srcH <= 0 {
		srcW, srcH = 1, 1
	}
	w, h := containSize(int(srcW), int(srcH), opts.BoxW, opts.BoxH)
	offX := (opts.CanvasW - w) / 2
	offY := (opts.CanvasH - h) / 2

	canvas := image.NewNRGBA(image.Rect(0, 0, opts.CanvasW, opts.CanvasH))
	scanner := rasterx.NewScannerGV(opts.CanvasW, opts.CanvasH, canvas, canvas.Bounds())
	raster := rasterx.NewDasher(opts.CanvasW, opts.CanvasH, scanner)

	icon.SetTarget(float64(offX), float64(offY), float64(w), float64(h))
	icon.Draw(raster, 1.0)
	return canvas, nil
}

// overrideHex picks the effective recolor for an SVG: an appearance-forced
// color wins over the configured one.
func (f *Foreground) overrideHex(opts ForegroundOptions) string {
	if opts.Color != nil {
		return FormatHex(*opts.Color)
	}
	if f.spec.SVG != nil && f.spec.SVG.Color != "" {
		return f.spec.SVG.Color
	}
	return ""
}

// recolorSVG rewrites every literal fill in the markup to the given hex
// color. Gradient and url() references are left alone.
func recolorSVG(data []byte, hex string) []byte {
	normalized := hex
	if normalized[0] != '#' {
		normalized = "#" + normalized
	}
	out := svgFillAttr.ReplaceAllFunc(data, func(m []byte) []byte {
		if bytes.Contains(m, []byte("url(")) || bytes.Contains(m, []byte("none")) {
			return m
		}
		return []byte(`fill="` + normalized + `"`)
	})
	return svgFillStyle.ReplaceAll(out, []byte("fill:"+normalized))
}

func (f *Foreground) renderText(opts ForegroundOptions) (*image.NRGBA, error) {
	spec := f.spec.Text
	if spec == nil {
		return nil, iconsmitherrors.NewConfigError("foreground.text", "no text configured", nil)
	}

	fill, err := ParseHex(spec.Color)
	if err != nil {
		return nil, iconsmitherrors.NewConfigError("foreground.text.color", "invalid hex color", err)
	}
	if opts.Color != nil {
		fill = *opts.Color
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, opts.CanvasW, opts.CanvasH))

	resolver := f.fonts
	if resolver == nil {
		resolver = fonts.ForSource(spec.FontSource)
	}
	parsed, err := resolver.Resolve(spec)
	if err != nil {
		if errors.Is(err, fonts.ErrUnavailable) {
			drawPlaceholder(canvas, fill)
			return canvas, nil
		}
		return nil, err
	}

	sizeFraction := spec.FontSize
	if sizeFraction == 0 {
		sizeFraction = DefaultFontSize
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sizeFraction * float64(opts.CanvasH),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()

	// Center the glyph bounding box, not the baseline advance.
	bounds, _ := font.BoundString(face, spec.Value)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	height := (bounds.Max.Y - bounds.Min.Y).Ceil()

	dot := fixed.Point26_6{
		X: fixed.I((opts.CanvasW-width)/2) - bounds.Min.X,
		Y: fixed.I((opts.CanvasH-height)/2) - bounds.Min.Y,
	}

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(fill),
		Face: face,
		Dot:  dot,
	}
	drawer.DrawString(spec.Value)
	return canvas, nil
}

// drawPlaceholder fills a centered rectangle spanning half the canvas at
// reduced opacity. Used when text is requested but no font resolves.
func drawPlaceholder(canvas *image.NRGBA, fill color.NRGBA) {
	b := canvas.Bounds()
	w, h := b.Dx()/2, b.Dy()/2
	x0, y0 := b.Min.X+(b.Dx()-w)/2, b.Min.Y+(b.Dy()-h)/2

	alpha := placeholderOpacity * 255
	fill.A = uint8(alpha)
	rect := image.Rect(x0, y0, x0+w, y0+h)
	draw.Draw(canvas, rect, image.NewUniform(fill), image.Point{}, draw.Over)
}

func (f *Foreground) renderImage(opts ForegroundOptions) (*image.NRGBA, error) {
	if f.spec.Image == nil || f.spec.Image.Path == "" {
		return nil, iconsmitherrors.NewConfigError("foreground.image", "no image path configured", nil)
	}

	f.imgOnce.Do(func() {
		f.img, f.imgErr = loadImage(f.spec.Image.Path)
	})
	if f.imgErr != nil {
		return nil, f.imgErr
	}

	out := containOnTransparent(f.img, opts.CanvasW, opts.CanvasH, opts.BoxW, opts.BoxH)
	if opts.Color != nil {
		tint(out, *opts.Color)
	}
	return out, nil
}

// tint replaces every pixel's color with the given one, preserving the
// alpha channel. Turns an image foreground into a silhouette for tinted
// and monochrome variants.
func tint(img *image.NRGBA, c color.NRGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] == 0 {
			continue
		}
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
	}
}
