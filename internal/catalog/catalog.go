// Package catalog holds the fixed table of every output artifact iconsmith
// can produce: relative path, pixel dimensions, platform, category, and
// appearance variant. The tables are data, not logic; the resolver selects
// from them.
package catalog

import (
	"fmt"
)

// Platform identifies the target operating system of an asset.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
	PlatformTVOS    Platform = "tvos"
)

// Platforms returns every supported platform in catalog order.
func Platforms() []Platform {
	return []Platform{PlatformIOS, PlatformAndroid, PlatformWeb, PlatformTVOS}
}

// ParsePlatform converts a string into a Platform.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformIOS, PlatformAndroid, PlatformWeb, PlatformTVOS:
		return Platform(s), nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

// Category identifies the kind of asset a spec produces.
type Category string

const (
	CategoryIcon     Category = "icon"
	CategorySplash   Category = "splash"
	CategoryAdaptive Category = "adaptive"
	CategoryFavicon  Category = "favicon"
	CategoryStore    Category = "store"
)

// Categories returns every supported category in catalog order.
func Categories() []Category {
	return []Category{CategoryIcon, CategorySplash, CategoryAdaptive, CategoryFavicon, CategoryStore}
}

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryIcon, CategorySplash, CategoryAdaptive, CategoryFavicon, CategoryStore:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// AppearanceMode tags a spec with the platform appearance variant it serves.
// The zero value means light.
type AppearanceMode string

const (
	AppearanceLight      AppearanceMode = "light"
	AppearanceDark       AppearanceMode = "dark"
	AppearanceTinted     AppearanceMode = "tinted"
	AppearanceClearLight AppearanceMode = "clear-light"
	AppearanceClearDark  AppearanceMode = "clear-dark"
	AppearanceAny        AppearanceMode = "any"
)

// AssetSpec describes one output artifact. Specs are immutable; the catalog
// constructs each exactly once.
type AssetSpec struct {
	// Name is the platform-prefixed relative output path and the unique key
	// of the spec within any resolved set.
	Name string

	Width  int
	Height int

	Platform Platform
	Category Category

	// Scale is the density multiplier the platform associates with the
	// asset (@2x, xxhdpi). Purely informational; dimensions are absolute.
	Scale float64

	// Appearance is the variant tag. Empty means light.
	Appearance AppearanceMode
}

// Mode returns the effective appearance mode, normalizing the empty tag to
// light.
func (s AssetSpec) Mode() AppearanceMode {
	if s.Appearance == "" {
		return AppearanceLight
	}
	return s.Appearance
}

// All returns the base catalog: every light-mode spec across all platforms.
func All() []AssetSpec {
	out := make([]AssetSpec, 0, len(iosSpecs)+len(androidSpecs)+len(webSpecs)+len(tvosSpecs))
	out = append(out, iosSpecs...)
	out = append(out, androidSpecs...)
	out = append(out, webSpecs...)
	out = append(out, tvosSpecs...)
	return out
}

// Variants returns the appearance-variant sub-catalog (dark, tinted, clear,
// monochrome). Variants are always produced alongside their base specs.
func Variants() []AssetSpec {
	out := make([]AssetSpec, 0, len(iosVariantSpecs)+len(androidVariantSpecs)+len(webVariantSpecs))
	out = append(out, iosVariantSpecs...)
	out = append(out, androidVariantSpecs...)
	out = append(out, webVariantSpecs...)
	return out
}
