// Package compose merges rendered background and foreground layers into
// final raster assets. Each spec is dispatched through a closed branch
// table; there is no conditional fallthrough between strategies.
package compose

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/alexisbeaulieu97/iconsmith/internal/catalog"
	"github.com/alexisbeaulieu97/iconsmith/internal/config"
	"github.com/alexisbeaulieu97/iconsmith/internal/render"
	iconsmitherrors "github.com/alexisbeaulieu97/iconsmith/pkg/errors"
)

// Translucency of clear-variant background fills.
const clearAlpha = 128

type handler func(e *Engine, spec catalog.AssetSpec) (*image.NRGBA, error)

// Engine composes assets from a background, a foreground and the configured
// scale overrides. Safe for concurrent use by multiple workers.
type Engine struct {
	background *render.Background
	foreground *render.Foreground
	scales     config.ScaleOverrides

	handlers map[Branch]handler
}

// NewEngine builds an engine with one handler per composition branch.
// Panics if the handler table does not cover every branch; that is a
// programmer error, not a runtime condition.
func NewEngine(background *render.Background, foreground *render.Foreground, scales config.ScaleOverrides) *Engine {
	e := &Engine{
		background: background,
		foreground: foreground,
		scales:     scales,
	}
	e.handlers = map[Branch]handler{
		BranchStandard:           (*Engine).composeStandard,
		BranchDark:               (*Engine).composeDark,
		BranchTinted:             (*Engine).composeTinted,
		BranchClearLight:         (*Engine).composeClearLight,
		BranchClearDark:          (*Engine).composeClearDark,
		BranchAdaptiveBackground: (*Engine).composeBackgroundOnly,
		BranchAdaptiveForeground: (*Engine).composeForegroundOnly,
		BranchMonochrome:         (*Engine).composeMonochrome,
		BranchMaskable:           (*Engine).composeMaskable,
		BranchLayeredBack:        (*Engine).composeBackgroundOnly,
		BranchLayeredFront:       (*Engine).composeForegroundOnly,
	}
	for _, b := range Branches {
		if _, ok := e.handlers[b]; !ok {
			panic(fmt.Sprintf("compose: no handler for branch %s", b))
		}
	}
	return e
}

// Compose renders one spec through its branch and returns PNG-encoded
// bytes.
func (e *Engine) Compose(spec catalog.AssetSpec) ([]byte, error) {
	img, err := e.ComposeImage(spec)
	if err != nil {
		return nil, err
	}
	return encodePNG(img)
}

// ComposeImage renders one spec through its branch without encoding.
func (e *Engine) ComposeImage(spec catalog.AssetSpec) (*image.NRGBA, error) {
	branch := BranchFor(spec)
	h, ok := e.handlers[branch]
	if !ok {
		return nil, iconsmitherrors.NewAssetError(spec.Name, fmt.Errorf("no handler for branch %s", branch))
	}

	img, err := h(e, spec)
	if err != nil {
		return nil, iconsmitherrors.NewAssetError(spec.Name, err)
	}
	return img, nil
}

func (e *Engine) foregroundOptions(spec catalog.AssetSpec, branch Branch, forced *color.NRGBA) render.ForegroundOptions {
	box := ForegroundBox(spec.Width, spec.Height, EffectiveScale(branch, spec, e.scales))
	return render.ForegroundOptions{
		CanvasW: spec.Width,
		CanvasH: spec.Height,
		BoxW:    box,
		BoxH:    box,
		Color:   forced,
	}
}

func (e *Engine) composeStandard(spec catalog.AssetSpec) (*image.NRGBA, error) {
	bg, err := e.background.Render(spec.Width, spec.Height)
	if err != nil {
		return nil, err
	}
	return e.overlay(bg, spec, BranchStandard, nil)
}

func (e *Engine) composeDark(spec catalog.AssetSpec) (*image.NRGBA, error) {
	bg, err := e.background.RenderDark(spec.Width, spec.Height)
	if err != nil {
		return nil, err
	}
	return e.overlay(bg, spec, BranchDark, nil)
}

func (e *Engine) composeTinted(spec catalog.AssetSpec) (*image.NRGBA, error) {
	white := render.White
	return e.foreground.Render(e.foregroundOptions(spec, BranchTinted, &white))
}

func (e *Engine) composeClearLight(spec catalog.AssetSpec) (*image.NRGBA, error) {
	fill := color.NRGBA{R: 255, G: 255, B: 255, A: clearAlpha}
	return e.overlay(image.NewUniform(fill), spec, BranchClearLight, nil)
}

func (e *Engine) composeClearDark(spec catalog.AssetSpec) (*image.NRGBA, error) {
	fill := color.NRGBA{A: clearAlpha}
	return e.overlay(image.NewUniform(fill), spec, BranchClearDark, nil)
}

func (e *Engine) composeBackgroundOnly(spec catalog.AssetSpec) (*image.NRGBA, error) {
	bg, err := e.background.Render(spec.Width, spec.Height)
	if err != nil {
		return nil, err
	}
	return toNRGBA(bg, spec.Width, spec.Height), nil
}

func (e *Engine) composeForegroundOnly(spec catalog.AssetSpec) (*image.NRGBA, error) {
	return e.foreground.Render(e.foregroundOptions(spec, BranchFor(spec), nil))
}

func (e *Engine) composeMonochrome(spec catalog.AssetSpec) (*image.NRGBA, error) {
	white := render.White
	return e.foreground.Render(e.foregroundOptions(spec, BranchMonochrome, &white))
}

func (e *Engine) composeMaskable(spec catalog.AssetSpec) (*image.NRGBA, error) {
	bg, err := e.background.Render(spec.Width, spec.Height)
	if err != nil {
		return nil, err
	}
	return e.overlay(bg, spec, BranchMaskable, nil)
}

// overlay paints the background onto a fresh canvas and composites the
// foreground over it.
func (e *Engine) overlay(bg image.Image, spec catalog.AssetSpec, branch Branch, forced *color.NRGBA) (*image.NRGBA, error) {
	canvas := toNRGBA(bg, spec.Width, spec.Height)

	fg, err := e.foreground.Render(e.foregroundOptions(spec, branch, forced))
	if err != nil {
		return nil, err
	}

	draw.Draw(canvas, canvas.Bounds(), fg, image.Point{}, draw.Over)
	return canvas, nil
}

func toNRGBA(src image.Image, w, h int) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), src, image.Point{}, draw.Src)
	return canvas
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
