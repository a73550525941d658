package catalog

// Legacy launcher icons per density bucket, adaptive-icon layers at
// 108dp × density, splash drawables, and the Play Store listing icon.
var androidSpecs = []AssetSpec{
	{Name: "android/mipmap-mdpi/ic_launcher.png", Width: 48, Height: 48, Platform: PlatformAndroid, Category: CategoryIcon, Scale: 1},
	{Name: "android/mipmap-hdpi/ic_launcher.png", Width: 72, Height: 72, Platform: PlatformAndroid, Category: CategoryIcon, Scale: 1.5},
	{Name: "android/mipmap-xhdpi/ic_launcher.png", Width: 96, Height: 96, Platform: PlatformAndroid, Category: CategoryIcon, Scale: 2},
	{Name: "android/mipmap-xxhdpi/ic_launcher.png", Width: 144, Height: 144, Platform: PlatformAndroid, Category: CategoryIcon, Scale: 3},
	{Name: "android/mipmap-xxxhdpi/ic_launcher.png", Width: 192, Height: 192, Platform: PlatformAndroid, Category: CategoryIcon, Scale: 4},

	{Name: "android/mipmap-mdpi/ic_launcher_background.png", Width: 108, Height: 108, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 1},
	{Name: "android/mipmap-hdpi/ic_launcher_background.png", Width: 162, Height: 162, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 1.5},
	{Name: "android/mipmap-xhdpi/ic_launcher_background.png", Width: 216, Height: 216, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 2},
	{Name: "android/mipmap-xxhdpi/ic_launcher_background.png", Width: 324, Height: 324, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 3},
	{Name: "android/mipmap-xxxhdpi/ic_launcher_background.png", Width: 432, Height: 432, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 4},

	{Name: "android/mipmap-mdpi/ic_launcher_foreground.png", Width: 108, Height: 108, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 1},
	{Name: "android/mipmap-hdpi/ic_launcher_foreground.png", Width: 162, Height: 162, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 1.5},
	{Name: "android/mipmap-xhdpi/ic_launcher_foreground.png", Width: 216, Height: 216, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 2},
	{Name: "android/mipmap-xxhdpi/ic_launcher_foreground.png", Width: 324, Height: 324, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 3},
	{Name: "android/mipmap-xxxhdpi/ic_launcher_foreground.png", Width: 432, Height: 432, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 4},

	{Name: "android/drawable-port-mdpi/splash.png", Width: 320, Height: 480, Platform: PlatformAndroid, Category: CategorySplash, Scale: 1},
	{Name: "android/drawable-port-xhdpi/splash.png", Width: 720, Height: 1280, Platform: PlatformAndroid, Category: CategorySplash, Scale: 2},
	{Name: "android/drawable-port-xxxhdpi/splash.png", Width: 1280, Height: 1920, Platform: PlatformAndroid, Category: CategorySplash, Scale: 4},
	{Name: "android/drawable-land-mdpi/splash.png", Width: 480, Height: 320, Platform: PlatformAndroid, Category: CategorySplash, Scale: 1},
	{Name: "android/drawable-land-xhdpi/splash.png", Width: 1280, Height: 720, Platform: PlatformAndroid, Category: CategorySplash, Scale: 2},
	{Name: "android/drawable-land-xxxhdpi/splash.png", Width: 1920, Height: 1280, Platform: PlatformAndroid, Category: CategorySplash, Scale: 4},

	{Name: "android/playstore-512.png", Width: 512, Height: 512, Platform: PlatformAndroid, Category: CategoryStore, Scale: 1},
}

// The monochrome adaptive layer serves any appearance; Android recolors it.
var androidVariantSpecs = []AssetSpec{
	{Name: "android/mipmap-mdpi/ic_launcher_monochrome.png", Width: 108, Height: 108, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 1, Appearance: AppearanceAny},
	{Name: "android/mipmap-hdpi/ic_launcher_monochrome.png", Width: 162, Height: 162, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 1.5, Appearance: AppearanceAny},
	{Name: "android/mipmap-xhdpi/ic_launcher_monochrome.png", Width: 216, Height: 216, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 2, Appearance: AppearanceAny},
	{Name: "android/mipmap-xxhdpi/ic_launcher_monochrome.png", Width: 324, Height: 324, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 3, Appearance: AppearanceAny},
	{Name: "android/mipmap-xxxhdpi/ic_launcher_monochrome.png", Width: 432, Height: 432, Platform: PlatformAndroid, Category: CategoryAdaptive, Scale: 4, Appearance: AppearanceAny},
}
