package compose

import (
	"math"

	"github.com/alexisbeaulieu97/iconsmith/internal/catalog"
	"github.com/alexisbeaulieu97/iconsmith/internal/config"
)

// Per-category default foreground scales.
const (
	DefaultIconScale    = 0.70
	DefaultSplashScale  = 0.25
	DefaultFaviconScale = 0.85
	DefaultStoreScale   = 0.50
)

// Platform safe-zone caps, applied after user overrides as a min() clamp.
const (
	adaptiveCap = 0.66
	maskableCap = 0.8
	layeredCap  = 0.8
)

// categoryScale resolves the category default, then the user override.
// Adaptive layers size like icons before their platform cap lands.
func categoryScale(category catalog.Category, overrides config.ScaleOverrides) float64 {
	switch category {
	case catalog.CategorySplash:
		if overrides.Splash != nil {
			return *overrides.Splash
		}
		return DefaultSplashScale
	case catalog.CategoryFavicon:
		if overrides.Favicon != nil {
			return *overrides.Favicon
		}
		return DefaultFaviconScale
	case catalog.CategoryStore:
		if overrides.Store != nil {
			return *overrides.Store
		}
		return DefaultStoreScale
	default:
		if overrides.Icon != nil {
			return *overrides.Icon
		}
		return DefaultIconScale
	}
}

// EffectiveScale resolves the foreground scale for a spec on a given
// branch: category default, then user override, then the platform hard cap
// applied last as min().
func EffectiveScale(branch Branch, spec catalog.AssetSpec, overrides config.ScaleOverrides) float64 {
	scale := categoryScale(spec.Category, overrides)

	switch branch {
	case BranchAdaptiveForeground:
		return math.Min(scale, adaptiveCap)
	case BranchMonochrome:
		if spec.Category == catalog.CategoryAdaptive {
			return math.Min(scale, adaptiveCap)
		}
		return scale
	case BranchMaskable:
		return math.Min(scale*maskableCap, maskableCap)
	case BranchLayeredFront:
		return math.Min(scale, layeredCap)
	}
	return scale
}

// ForegroundBox converts an effective scale into the pixel size of the
// square box the foreground is contained in: floor(min(w,h)·scale).
func ForegroundBox(w, h int, scale float64) int {
	side := w
	if h < side {
		side = h
	}
	return int(math.Floor(float64(side) * scale))
}
