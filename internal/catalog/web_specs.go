package catalog

// Favicon PNG trio (the .ico pack is an auxiliary artifact), PWA icons with
// maskable variants, and the apple-touch icon served from the web root.
var webSpecs = []AssetSpec{
	{Name: "web/favicon-16x16.png", Width: 16, Height: 16, Platform: PlatformWeb, Category: CategoryFavicon, Scale: 1},
	{Name: "web/favicon-32x32.png", Width: 32, Height: 32, Platform: PlatformWeb, Category: CategoryFavicon, Scale: 1},
	{Name: "web/favicon-48x48.png", Width: 48, Height: 48, Platform: PlatformWeb, Category: CategoryFavicon, Scale: 1},

	{Name: "web/icons/icon-192.png", Width: 192, Height: 192, Platform: PlatformWeb, Category: CategoryIcon, Scale: 1},
	{Name: "web/icons/icon-512.png", Width: 512, Height: 512, Platform: PlatformWeb, Category: CategoryIcon, Scale: 1},
	{Name: "web/icons/maskable-192.png", Width: 192, Height: 192, Platform: PlatformWeb, Category: CategoryIcon, Scale: 1},
	{Name: "web/icons/maskable-512.png", Width: 512, Height: 512, Platform: PlatformWeb, Category: CategoryIcon, Scale: 1},
	{Name: "web/apple-touch-icon.png", Width: 180, Height: 180, Platform: PlatformWeb, Category: CategoryIcon, Scale: 1},

	{Name: "web/splash-1920x1080.png", Width: 1920, Height: 1080, Platform: PlatformWeb, Category: CategorySplash, Scale: 1},
}

// The monochrome icon backs the manifest's "monochrome" purpose entry.
var webVariantSpecs = []AssetSpec{
	{Name: "web/icons/monochrome-512.png", Width: 512, Height: 512, Platform: PlatformWeb, Category: CategoryIcon, Scale: 1, Appearance: AppearanceAny},
}
