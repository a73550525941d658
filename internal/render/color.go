package render

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

// White is the forced foreground color of tinted and monochrome branches.
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Exactly six hex digits; shorthand notation is rejected on purpose.
var hexPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// ParseHex parses a 6-digit hex color with an optional leading '#',
// case-insensitive. Anything else, including 3-digit shorthand, fails with
// an "invalid hex color" error; callers never substitute a default.
func ParseHex(s string) (color.NRGBA, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !hexPattern.MatchString(trimmed) {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	value, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	return color.NRGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 255,
	}, nil
}

// FormatHex renders a color as an uppercase "#RRGGBB" string.
func FormatHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Darken scales every RGB channel by factor, leaving alpha untouched.
// The dark-variant derivation uses factor 0.3.
func Darken(c color.NRGBA, factor float64) color.NRGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return color.NRGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// DarkFactor is the channel multiplier applied when deriving dark-mode
// backgrounds from the configured light background.
const DarkFactor = 0.3
