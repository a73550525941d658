package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	iconsmitherrors "github.com/alexisbeaulieu97/iconsmith/pkg/errors"
)

// ValidateConfig checks structural and semantic validity of a parsed
// configuration. Violations surface as ConfigError values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return iconsmitherrors.NewConfigError("", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return iconsmitherrors.NewConfigError(first.Namespace(), tagMessage(first.Tag()), err)
		}
		return iconsmitherrors.NewConfigError("", "validation failed", err)
	}

	if err := validateBackground(&cfg.Background); err != nil {
		return err
	}
	return validateForeground(&cfg.Foreground)
}

// tagMessage maps validation tags to user-facing messages. Color failures
// keep the wording the rest of the pipeline uses for bad hex values.
func tagMessage(tag string) string {
	switch tag {
	case "hex_color":
		return "invalid hex color"
	case "platform":
		return "unknown platform"
	case "category":
		return "unknown category"
	}
	return fmt.Sprintf("failed %q validation", tag)
}

// validateBackground enforces that the payload matching the declared type
// is present. The renderers re-check at use time; catching the mismatch at
// load time gives the error a config-file context.
func validateBackground(b *BackgroundSpec) error {
	switch b.Type {
	case BackgroundColor:
		if b.Color == nil {
			return iconsmitherrors.NewConfigError("background.color", "color background requires a color value", nil)
		}
		if err := validatorInstance().Struct(b.Color); err != nil {
			return iconsmitherrors.NewConfigError("background.color", "invalid hex color", err)
		}
	case BackgroundGradient:
		if b.Gradient == nil {
			return iconsmitherrors.NewConfigError("background.gradient", "gradient background requires a gradient section", nil)
		}
		if err := validatorInstance().Struct(b.Gradient); err != nil {
			return iconsmitherrors.NewConfigError("background.gradient", "invalid gradient", err)
		}
	case BackgroundImage:
		if b.Image == nil {
			return iconsmitherrors.NewConfigError("background.image", "image background requires an image path", nil)
		}
	default:
		return iconsmitherrors.NewConfigError("background.type", fmt.Sprintf("unknown background type %q", b.Type), nil)
	}
	return nil
}

func validateForeground(f *ForegroundSpec) error {
	switch f.Type {
	case ForegroundSVG:
		if f.SVG == nil {
			return iconsmitherrors.NewConfigError("foreground.svg", "svg foreground requires a markup path", nil)
		}
		if err := validatorInstance().Struct(f.SVG); err != nil {
			return iconsmitherrors.NewConfigError("foreground.svg", "invalid svg foreground", err)
		}
	case ForegroundText:
		if f.Text == nil {
			return iconsmitherrors.NewConfigError("foreground.text", "text foreground requires a text section", nil)
		}
		if err := validatorInstance().Struct(f.Text); err != nil {
			return iconsmitherrors.NewConfigError("foreground.text", "invalid text foreground", err)
		}
		if f.Text.FontSource == FontSourceFile && f.Text.FontPath == "" {
			return iconsmitherrors.NewConfigError("foreground.text.font_path", "font path required for file font source", nil)
		}
	case ForegroundImage:
		if f.Image == nil {
			return iconsmitherrors.NewConfigError("foreground.image", "image foreground requires an image path", nil)
		}
	default:
		return iconsmitherrors.NewConfigError("foreground.type", fmt.Sprintf("unknown foreground type %q", f.Type), nil)
	}
	return nil
}
