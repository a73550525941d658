package catalog

// iOS home-screen icon sizes follow the AppIcon.appiconset idiom table:
// point size × scale for iphone, ipad, and the marketing icon.
var iosSpecs = []AssetSpec{
	{Name: "ios/icon-20.png", Width: 20, Height: 20, Platform: PlatformIOS, Category: CategoryIcon, Scale: 1},
	{Name: "ios/icon-20@2x.png", Width: 40, Height: 40, Platform: PlatformIOS, Category: CategoryIcon, Scale: 2},
	{Name: "ios/icon-20@3x.png", Width: 60, Height: 60, Platform: PlatformIOS, Category: CategoryIcon, Scale: 3},
	{Name: "ios/icon-29.png", Width: 29, Height: 29, Platform: PlatformIOS, Category: CategoryIcon, Scale: 1},
	{Name: "ios/icon-29@2x.png", Width: 58, Height: 58, Platform: PlatformIOS, Category: CategoryIcon, Scale: 2},
	{Name: "ios/icon-29@3x.png", Width: 87, Height: 87, Platform: PlatformIOS, Category: CategoryIcon, Scale: 3},
	{Name: "ios/icon-40.png", Width: 40, Height: 40, Platform: PlatformIOS, Category: CategoryIcon, Scale: 1},
	{Name: "ios/icon-40@2x.png", Width: 80, Height: 80, Platform: PlatformIOS, Category: CategoryIcon, Scale: 2},
	{Name: "ios/icon-40@3x.png", Width: 120, Height: 120, Platform: PlatformIOS, Category: CategoryIcon, Scale: 3},
	{Name: "ios/icon-60@2x.png", Width: 120, Height: 120, Platform: PlatformIOS, Category: CategoryIcon, Scale: 2},
	{Name: "ios/icon-60@3x.png", Width: 180, Height: 180, Platform: PlatformIOS, Category: CategoryIcon, Scale: 3},
	{Name: "ios/icon-76.png", Width: 76, Height: 76, Platform: PlatformIOS, Category: CategoryIcon, Scale: 1},
	{Name: "ios/icon-76@2x.png", Width: 152, Height: 152, Platform: PlatformIOS, Category: CategoryIcon, Scale: 2},
	{Name: "ios/icon-83.5@2x.png", Width: 167, Height: 167, Platform: PlatformIOS, Category: CategoryIcon, Scale: 2},
	{Name: "ios/icon-1024.png", Width: 1024, Height: 1024, Platform: PlatformIOS, Category: CategoryIcon, Scale: 1},

	// Universal splash: one oversized square, cropped by the system.
	{Name: "ios/splash-2732x2732.png", Width: 2732, Height: 2732, Platform: PlatformIOS, Category: CategorySplash, Scale: 1},

	// App Store marketing artwork.
	{Name: "ios/store-1024.png", Width: 1024, Height: 1024, Platform: PlatformIOS, Category: CategoryStore, Scale: 1},
}

// Appearance variants: dark and tinted home-screen icons (iOS 18+) and the
// clear translucent pair (iOS 26), plus the dark splash.
var iosVariantSpecs = []AssetSpec{
	{Name: "ios/dark/icon-60@2x.png", Width: 120, Height: 120, Platform: PlatformIOS, Category: CategoryIcon, Scale: 2, Appearance: AppearanceDark},
	{Name: "ios/dark/icon-60@3x.png", Width: 180, Height: 180, Platform: PlatformIOS, Category: CategoryIcon, Scale: 3, Appearance: AppearanceDark},
	{Name: "ios/dark/icon-1024.png", Width: 1024, Height: 1024, Platform: PlatformIOS, Category: CategoryIcon, Scale: 1, Appearance: AppearanceDark},
	{Name: "ios/tinted/icon-60@2x.png", Width: 120, Height: 120, Platform: PlatformIOS, Category: CategoryIcon, Scale: 2, Appearance: AppearanceTinted},
	{Name: "ios/tinted/icon-60@3x.png", Width: 180, Height: 180, Platform: PlatformIOS, Category: CategoryIcon, Scale: 3, Appearance: AppearanceTinted},
	{Name: "ios/tinted/icon-1024.png", Width: 1024, Height: 1024, Platform: PlatformIOS, Category: CategoryIcon, Scale: 1, Appearance: AppearanceTinted},
	{Name: "ios/clear-light/icon-1024.png", Width: 1024, Height: 1024, Platform: PlatformIOS, Category: CategoryIcon, Scale: 1, Appearance: AppearanceClearLight},
	{Name: "ios/clear-dark/icon-1024.png", Width: 1024, Height: 1024, Platform: PlatformIOS, Category: CategoryIcon, Scale: 1, Appearance: AppearanceClearDark},
	{Name: "ios/splash-2732x2732-dark.png", Width: 2732, Height: 2732, Platform: PlatformIOS, Category: CategorySplash, Scale: 1, Appearance: AppearanceDark},
}
