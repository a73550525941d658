package compose

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/iconsmith/internal/catalog"
)

func TestBranchFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec catalog.AssetSpec
		want Branch
	}{
		{
			"standard icon",
			catalog.AssetSpec{Name: "ios/icon-1024.png", Platform: catalog.PlatformIOS, Category: catalog.CategoryIcon},
			BranchStandard,
		},
		{
			"dark variant",
			catalog.AssetSpec{Name: "ios/dark/icon-1024.png", Platform: catalog.PlatformIOS, Category: catalog.CategoryIcon, Appearance: catalog.AppearanceDark},
			BranchDark,
		},
		{
			"tinted variant",
			catalog.AssetSpec{Name: "ios/tinted/icon-1024.png", Platform: catalog.PlatformIOS, Category: catalog.CategoryIcon, Appearance: catalog.AppearanceTinted},
			BranchTinted,
		},
		{
			"clear light",
			catalog.AssetSpec{Name: "ios/clear-light/icon-1024.png", Platform: catalog.PlatformIOS, Category: catalog.CategoryIcon, Appearance: catalog.AppearanceClearLight},
			BranchClearLight,
		},
		{
			"clear dark",
			catalog.AssetSpec{Name: "ios/clear-dark/icon-1024.png", Platform: catalog.PlatformIOS, Category: catalog.CategoryIcon, Appearance: catalog.AppearanceClearDark},
			BranchClearDark,
		},
		{
			"adaptive background",
			catalog.AssetSpec{Name: "android/mipmap-xxxhdpi/ic_launcher_background.png", Platform: catalog.PlatformAndroid, Category: catalog.CategoryAdaptive},
			BranchAdaptiveBackground,
		},
		{
			"adaptive foreground",
			catalog.AssetSpec{Name: "android/mipmap-xxxhdpi/ic_launcher_foreground.png", Platform: catalog.PlatformAndroid, Category: catalog.CategoryAdaptive},
			BranchAdaptiveForeground,
		},
		{
			"adaptive monochrome",
			catalog.AssetSpec{Name: "android/mipmap-xxxhdpi/ic_launcher_monochrome.png", Platform: catalog.PlatformAndroid, Category: catalog.CategoryAdaptive, Appearance: catalog.AppearanceAny},
			BranchMonochrome,
		},
		{
			"web monochrome",
			catalog.AssetSpec{Name: "web/icons/monochrome-512.png", Platform: catalog.PlatformWeb, Category: catalog.CategoryIcon, Appearance: catalog.AppearanceAny},
			BranchMonochrome,
		},
		{
			"maskable",
			catalog.AssetSpec{Name: "web/icons/maskable-512.png", Platform: catalog.PlatformWeb, Category: catalog.CategoryIcon},
			BranchMaskable,
		},
		{
			"layered back",
			catalog.AssetSpec{Name: "tvos/icon-back-1280x768.png", Platform: catalog.PlatformTVOS, Category: catalog.CategoryIcon},
			BranchLayeredBack,
		},
		{
			"layered front",
			catalog.AssetSpec{Name: "tvos/icon-front-1280x768.png", Platform: catalog.PlatformTVOS, Category: catalog.CategoryIcon},
			BranchLayeredFront,
		},
		{
			"splash",
			catalog.AssetSpec{Name: "ios/splash-2732x2732.png", Platform: catalog.PlatformIOS, Category: catalog.CategorySplash},
			BranchStandard,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, BranchFor(tt.spec))
		})
	}
}

func TestBranchForCatalogIsTotal(t *testing.T) {
	t.Parallel()

	known := make(map[Branch]bool, len(Branches))
	for _, b := range Branches {
		known[b] = true
	}

	for _, spec := range append(catalog.All(), catalog.Variants()...) {
		require.True(t, known[BranchFor(spec)], "spec %s resolved to unknown branch", spec.Name)
	}
}
