package catalog

// Apple TV icons are layered: the system parallaxes independently rendered
// back and front layers. Back layers carry only the background, front
// layers only the foreground.
var tvosSpecs = []AssetSpec{
	{Name: "tvos/icon-back-400x240.png", Width: 400, Height: 240, Platform: PlatformTVOS, Category: CategoryIcon, Scale: 1},
	{Name: "tvos/icon-front-400x240.png", Width: 400, Height: 240, Platform: PlatformTVOS, Category: CategoryIcon, Scale: 1},
	{Name: "tvos/icon-back-400x240@2x.png", Width: 800, Height: 480, Platform: PlatformTVOS, Category: CategoryIcon, Scale: 2},
	{Name: "tvos/icon-front-400x240@2x.png", Width: 800, Height: 480, Platform: PlatformTVOS, Category: CategoryIcon, Scale: 2},
	{Name: "tvos/icon-back-1280x768.png", Width: 1280, Height: 768, Platform: PlatformTVOS, Category: CategoryIcon, Scale: 1},
	{Name: "tvos/icon-front-1280x768.png", Width: 1280, Height: 768, Platform: PlatformTVOS, Category: CategoryIcon, Scale: 1},

	{Name: "tvos/splash-1920x1080.png", Width: 1920, Height: 1080, Platform: PlatformTVOS, Category: CategorySplash, Scale: 1},
	{Name: "tvos/splash-1920x1080@2x.png", Width: 3840, Height: 2160, Platform: PlatformTVOS, Category: CategorySplash, Scale: 2},
}
