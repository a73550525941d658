package fonts

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/alexisbeaulieu97/iconsmith/internal/config"
	iconsmitherrors "github.com/alexisbeaulieu97/iconsmith/pkg/errors"
)

// ErrUnavailable signals that no usable font could be resolved. Text
// rendering falls back to a placeholder glyph box instead of failing the
// asset. A declared file font that fails to load is a ConfigError, never
// ErrUnavailable.
var ErrUnavailable = errors.New("font unavailable")

// Resolver turns a text foreground's font settings into a parsed font.
type Resolver interface {
	Resolve(spec *config.TextForeground) (*sfnt.Font, error)
}

// FileResolver loads fonts from explicit file paths.
type FileResolver struct{}

// Resolve reads and parses the font file referenced by the spec.
func (FileResolver) Resolve(spec *config.TextForeground) (*sfnt.Font, error) {
	if spec.FontPath == "" {
		return nil, iconsmitherrors.NewConfigError("foreground.text.font_path", "font path required for file font source", nil)
	}

	data, err := os.ReadFile(spec.FontPath)
	if err != nil {
		return nil, iconsmitherrors.NewConfigError("foreground.text.font_path", fmt.Sprintf("cannot read font file %s", spec.FontPath), err)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, iconsmitherrors.NewConfigError("foreground.text.font_path", fmt.Sprintf("invalid font file %s", spec.FontPath), err)
	}
	return parsed, nil
}

// BundledResolver serves the Go Regular typeface shipped with the binary.
type BundledResolver struct{}

// Resolve parses the embedded typeface. The font family setting is ignored;
// only one bundled face exists.
func (BundledResolver) Resolve(_ *config.TextForeground) (*sfnt.Font, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bundled font: %w", err)
	}
	return parsed, nil
}

// ForSource returns the resolver matching a font source discriminator.
// The empty source defaults to the bundled face.
func ForSource(source string) Resolver {
	if source == config.FontSourceFile {
		return FileResolver{}
	}
	return BundledResolver{}
}
