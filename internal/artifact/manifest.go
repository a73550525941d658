package artifact

import (
	"encoding/json"
	"fmt"

	"github.com/alexisbeaulieu97/iconsmith/internal/render"
)

// defaultManifestColor is used for theme and background when the configured
// background is not a solid color.
const defaultManifestColor = "#FFFFFF"

type manifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose"`
}

type webManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Icons           []manifestIcon `json:"icons"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Display         string         `json:"display"`
}

// buildManifest emits site.webmanifest listing the standard, maskable and
// monochrome web icons with their purpose tags.
func (b *Builder) buildManifest() ([]byte, error) {
	themeColor := defaultManifestColor
	if c, ok := b.background.SolidColor(); ok {
		themeColor = render.FormatHex(c)
	}

	icons := make([]manifestIcon, 0, 6)
	for _, size := range []int{192, 512} {
		icons = append(icons, manifestIcon{
			Src:     fmt.Sprintf("icons/icon-%d.png", size),
			Sizes:   fmt.Sprintf("%dx%d", size, size),
			Type:    "image/png",
			Purpose: "any",
		})
	}
	for _, size := range []int{192, 512} {
		icons = append(icons, manifestIcon{
			Src:     fmt.Sprintf("icons/maskable-%d.png", size),
			Sizes:   fmt.Sprintf("%dx%d", size, size),
			Type:    "image/png",
			Purpose: "maskable",
		})
	}
	icons = append(icons, manifestIcon{
		Src:     "icons/monochrome-512.png",
		Sizes:   "512x512",
		Type:    "image/png",
		Purpose: "monochrome",
	})

	doc := webManifest{
		Name:            b.appName,
		ShortName:       b.appName,
		Icons:           icons,
		ThemeColor:      themeColor,
		BackgroundColor: themeColor,
		Display:         "standalone",
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return append(data, '\n'), nil
}
