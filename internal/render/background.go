package render

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/fogleman/gg"

	"github.com/alexisbeaulieu97/iconsmith/internal/config"
	iconsmitherrors "github.com/alexisbeaulieu97/iconsmith/pkg/errors"
)

// Background renders the opaque base layer of every composition from a
// single configured spec. A Background is safe for concurrent use.
type Background struct {
	spec *config.BackgroundSpec

	// Decoded source image, loaded once across all specs of a run.
	imgOnce sync.Once
	img     image.Image
	imgErr  error
}

// NewBackground wraps a validated background spec.
func NewBackground(spec *config.BackgroundSpec) *Background {
	return &Background{spec: spec}
}

// Render produces an opaque w×h raster of the configured background.
func (b *Background) Render(w, h int) (image.Image, error) {
	return b.render(w, h, false)
}

// RenderDark produces the dark-mode variant: solid and gradient colors are
// darkened by DarkFactor, image backgrounds pass through unmodified.
func (b *Background) RenderDark(w, h int) (image.Image, error) {
	return b.render(w, h, true)
}

func (b *Background) render(w, h int, dark bool) (image.Image, error) {
	switch b.spec.Type {
	case config.BackgroundColor:
		return b.renderColor(w, h, dark)
	case config.BackgroundGradient:
		return b.renderGradient(w, h, dark)
	case config.BackgroundImage:
		return b.renderImage(w, h)
	}
	return nil, iconsmitherrors.NewConfigError("background.type", "unknown background type "+b.spec.Type, nil)
}

func (b *Background) renderColor(w, h int, dark bool) (image.Image, error) {
	if b.spec.Color == nil {
		return nil, iconsmitherrors.NewConfigError("background.color", "no color configured", nil)
	}
	fill, err := ParseHex(b.spec.Color.Hex)
	if err != nil {
		return nil, iconsmitherrors.NewConfigError("background.color", "invalid hex color", err)
	}
	if dark {
		fill = Darken(fill, DarkFactor)
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(fill)
	dc.Clear()
	return dc.Image(), nil
}

func (b *Background) renderGradient(w, h int, dark bool) (image.Image, error) {
	g := b.spec.Gradient
	if g == nil || len(g.Colors) < 2 {
		return nil, iconsmitherrors.NewConfigError("background.gradient", "gradient requires at least two color stops", nil)
	}

	stops := make([]color.NRGBA, len(g.Colors))
	for i, hex := range g.Colors {
		parsed, err := ParseHex(hex)
		if err != nil {
			return nil, iconsmitherrors.NewConfigError("background.gradient", "invalid hex color", err)
		}
		if dark {
			parsed = Darken(parsed, DarkFactor)
		}
		stops[i] = parsed
	}

	var pattern gg.Gradient
	if g.Kind == "radial" {
		cx, cy := float64(w)/2, float64(h)/2
		radius := math.Min(float64(w), float64(h)) / 2
		pattern = gg.NewRadialGradient(cx, cy, 0, cx, cy, radius)
	} else {
		x0, y0, x1, y1 := LinearEndpoints(g.Angle)
		pattern = gg.NewLinearGradient(
			x0/100*float64(w), y0/100*float64(h),
			x1/100*float64(w), y1/100*float64(h),
		)
	}

	for i, offset := range GradientStops(len(stops)) {
		pattern.AddColorStop(offset, stops[i])
	}

	dc := gg.NewContext(w, h)
	dc.SetFillStyle(pattern)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	return dc.Image(), nil
}

func (b *Background) renderImage(w, h int) (image.Image, error) {
	if b.spec.Image == nil || b.spec.Image.Path == "" {
		return nil, iconsmitherrors.NewConfigError("background.image", "no image path configured", nil)
	}

	b.imgOnce.Do(func() {
		b.img, b.imgErr = loadImage(b.spec.Image.Path)
	})
	if b.imgErr != nil {
		return nil, b.imgErr
	}

	return cover(b.img, w, h), nil
}

// SolidColor reports the configured solid background color, if the
// background is a solid fill. Artifact builders use it for theme and
// resource colors.
func (b *Background) SolidColor() (color.NRGBA, bool) {
	if b.spec.Type != config.BackgroundColor || b.spec.Color == nil {
		return color.NRGBA{}, false
	}
	parsed, err := ParseHex(b.spec.Color.Hex)
	if err != nil {
		return color.NRGBA{}, false
	}
	return parsed, true
}

// LinearEndpoints converts a CSS-style gradient angle (0° points top to
// bottom, growing clockwise) into start and end coordinates expressed as
// percentages of the canvas: the start point is
// (50 + sin(θ)·50, 50 − cos(θ)·50) and the end point is the same formula
// at θ+180°.
func LinearEndpoints(angleDeg float64) (x0, y0, x1, y1 float64) {
	rad := angleDeg * math.Pi / 180
	x0 = 50 + math.Sin(rad)*50
	y0 = 50 - math.Cos(rad)*50

	opposite := rad + math.Pi
	x1 = 50 + math.Sin(opposite)*50
	y1 = 50 - math.Cos(opposite)*50
	return x0, y0, x1, y1
}

// GradientStops distributes n stops evenly: stop i sits at i/(n−1).
func GradientStops(n int) []float64 {
	if n < 2 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}
