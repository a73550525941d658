package config

import (
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/iconsmith/internal/catalog"
)

// Config represents the full iconsmith configuration document.
type Config struct {
	Name       string         `yaml:"name" validate:"required,min=1,max=100"`
	Platforms  []string       `yaml:"platforms" validate:"required,min=1,dive,platform"`
	Categories []string       `yaml:"categories" validate:"required,min=1,dive,category"`
	Output     string         `yaml:"output" validate:"required"`
	Background BackgroundSpec `yaml:"background"`
	Foreground ForegroundSpec `yaml:"foreground"`
	Scales     ScaleOverrides `yaml:"scales,omitempty"`
	Settings   Settings       `yaml:"settings,omitempty"`
}

// Settings holds global execution parameters.
type Settings struct {
	Parallel int    `yaml:"parallel,omitempty" validate:"omitempty,min=1,max=16"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// ScaleOverrides carries optional per-category foreground scale overrides.
// Nil means the category default applies. Platform hard caps are applied
// after overrides, never instead of them.
type ScaleOverrides struct {
	Icon    *float64 `yaml:"icon,omitempty" validate:"omitempty,gt=0,lte=1"`
	Splash  *float64 `yaml:"splash,omitempty" validate:"omitempty,gt=0,lte=1"`
	Favicon *float64 `yaml:"favicon,omitempty" validate:"omitempty,gt=0,lte=1"`
	Store   *float64 `yaml:"store,omitempty" validate:"omitempty,gt=0,lte=1"`
}

// Background type discriminators.
const (
	BackgroundColor    = "color"
	BackgroundGradient = "gradient"
	BackgroundImage    = "image"
)

// BackgroundSpec is the tagged union describing the background layer.
// Exactly one of Color, Gradient, Image is set, matching Type.
type BackgroundSpec struct {
	Type string `yaml:"type" validate:"required,oneof=color gradient image"`

	Color    *ColorBackground    `yaml:"-"`
	Gradient *GradientBackground `yaml:"-"`
	Image    *ImageBackground    `yaml:"-"`
}

// ColorBackground is an opaque solid fill.
type ColorBackground struct {
	Hex string `yaml:"color" validate:"required,hex_color"`
}

// GradientBackground is a linear or radial multi-stop gradient.
type GradientBackground struct {
	Kind   string   `yaml:"kind" validate:"required,oneof=linear radial"`
	Colors []string `yaml:"colors" validate:"required,min=2,dive,hex_color"`
	// Angle is the CSS-style direction of a linear gradient in degrees:
	// 0 points top to bottom, values grow clockwise.
	Angle float64 `yaml:"angle,omitempty"`
}

// ImageBackground fills the canvas with a source image, cropped to cover.
type ImageBackground struct {
	Path string `yaml:"image" validate:"required"`
}

// UnmarshalYAML decodes the background union without key conflicts between
// the variant payloads.
func (b *BackgroundSpec) UnmarshalYAML(value *yaml.Node) error {
	type base struct {
		Type string `yaml:"type"`
	}

	var head base
	if err := value.Decode(&head); err != nil {
		return err
	}
	b.Type = head.Type
	b.Color = nil
	b.Gradient = nil
	b.Image = nil

	switch head.Type {
	case BackgroundColor:
		var c ColorBackground
		if err := value.Decode(&c); err != nil {
			return err
		}
		b.Color = &c
	case BackgroundGradient:
		var g struct {
			Gradient GradientBackground `yaml:"gradient"`
		}
		if err := value.Decode(&g); err != nil {
			return err
		}
		b.Gradient = &g.Gradient
	case BackgroundImage:
		var i ImageBackground
		if err := value.Decode(&i); err != nil {
			return err
		}
		b.Image = &i
	}

	return nil
}

// Foreground type discriminators.
const (
	ForegroundSVG   = "svg"
	ForegroundText  = "text"
	ForegroundImage = "image"
)

// Font source discriminators for text foregrounds.
const (
	FontSourceBundled = "bundled"
	FontSourceFile    = "file"
)

// ForegroundSpec is the tagged union describing the foreground layer.
type ForegroundSpec struct {
	Type string `yaml:"type" validate:"required,oneof=svg text image"`

	SVG   *SVGForeground   `yaml:"-"`
	Text  *TextForeground  `yaml:"-"`
	Image *ImageForeground `yaml:"-"`
}

// SVGForeground rasterizes vector markup, optionally recoloring solid fills.
type SVGForeground struct {
	Path string `yaml:"svg" validate:"required"`
	// Color, when set, replaces every literal fill color in the markup.
	Color string `yaml:"color,omitempty" validate:"omitempty,hex_color"`
}

// TextForeground rasterizes a glyph run centered on the canvas.
type TextForeground struct {
	Value      string `yaml:"value" validate:"required,min=1,max=16"`
	FontFamily string `yaml:"font_family,omitempty"`
	FontSource string `yaml:"font_source,omitempty" validate:"omitempty,oneof=bundled file"`
	FontPath   string `yaml:"font_path,omitempty"`
	// FontSize is a fraction of the canvas height. Zero means the 0.6
	// default.
	FontSize float64 `yaml:"font_size,omitempty" validate:"omitempty,gt=0,lte=1"`
	Color    string  `yaml:"color" validate:"required,hex_color"`
}

// ImageForeground centers a source image with transparent padding.
type ImageForeground struct {
	Path string `yaml:"image" validate:"required"`
}

// UnmarshalYAML decodes the foreground union.
func (f *ForegroundSpec) UnmarshalYAML(value *yaml.Node) error {
	type base struct {
		Type string `yaml:"type"`
	}

	var head base
	if err := value.Decode(&head); err != nil {
		return err
	}
	f.Type = head.Type
	f.SVG = nil
	f.Text = nil
	f.Image = nil

	switch head.Type {
	case ForegroundSVG:
		var s SVGForeground
		if err := value.Decode(&s); err != nil {
			return err
		}
		f.SVG = &s
	case ForegroundText:
		var t struct {
			Text TextForeground `yaml:"text"`
		}
		if err := value.Decode(&t); err != nil {
			return err
		}
		f.Text = &t.Text
	case ForegroundImage:
		var i ImageForeground
		if err := value.Decode(&i); err != nil {
			return err
		}
		f.Image = &i
	}

	return nil
}

// PlatformList converts the validated platform strings into catalog enums.
func (c *Config) PlatformList() []catalog.Platform {
	out := make([]catalog.Platform, 0, len(c.Platforms))
	for _, p := range c.Platforms {
		out = append(out, catalog.Platform(p))
	}
	return out
}

// CategoryList converts the validated category strings into catalog enums.
func (c *Config) CategoryList() []catalog.Category {
	out := make([]catalog.Category, 0, len(c.Categories))
	for _, cat := range c.Categories {
		out = append(out, catalog.Category(cat))
	}
	return out
}
