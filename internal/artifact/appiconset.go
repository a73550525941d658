package artifact

import (
	"encoding/json"
	"fmt"
)

// The fixed iOS idiom table: point size, scale and device idiom per entry.
// Filenames match the icon catalog.
type idiomEntry struct {
	filename string
	idiom    string
	size     string
	scale    string
}

var iosIdiomTable = []idiomEntry{
	{"icon-20@2x.png", "iphone", "20x20", "2x"},
	{"icon-20@3x.png", "iphone", "20x20", "3x"},
	{"icon-29@2x.png", "iphone", "29x29", "2x"},
	{"icon-29@3x.png", "iphone", "29x29", "3x"},
	{"icon-40@2x.png", "iphone", "40x40", "2x"},
	{"icon-40@3x.png", "iphone", "40x40", "3x"},
	{"icon-60@2x.png", "iphone", "60x60", "2x"},
	{"icon-60@3x.png", "iphone", "60x60", "3x"},
	{"icon-20.png", "ipad", "20x20", "1x"},
	{"icon-20@2x.png", "ipad", "20x20", "2x"},
	{"icon-29.png", "ipad", "29x29", "1x"},
	{"icon-29@2x.png", "ipad", "29x29", "2x"},
	{"icon-40.png", "ipad", "40x40", "1x"},
	{"icon-40@2x.png", "ipad", "40x40", "2x"},
	{"icon-76.png", "ipad", "76x76", "1x"},
	{"icon-76@2x.png", "ipad", "76x76", "2x"},
	{"icon-83.5@2x.png", "ipad", "83.5x83.5", "2x"},
	{"icon-1024.png", "ios-marketing", "1024x1024", "1x"},
}

type contentsAppearance struct {
	Appearance string `json:"appearance"`
	Value      string `json:"value"`
}

type contentsImage struct {
	Appearances []contentsAppearance `json:"appearances,omitempty"`
	Filename    string               `json:"filename"`
	Idiom       string               `json:"idiom"`
	Scale       string               `json:"scale"`
	Size        string               `json:"size"`
}

type contentsInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

type contentsDoc struct {
	Images []contentsImage `json:"images"`
	Info   contentsInfo    `json:"info"`
}

// buildContents emits the AppIcon.appiconset Contents.json: the idiom table
// replicated for the default, dark and tinted appearances.
func (b *Builder) buildContents() ([]byte, error) {
	appearances := []struct {
		prefix string
		tags   []contentsAppearance
	}{
		{"", nil},
		{"dark/", []contentsAppearance{{Appearance: "luminosity", Value: "dark"}}},
		{"tinted/", []contentsAppearance{{Appearance: "luminosity", Value: "tinted"}}},
	}

	images := make([]contentsImage, 0, len(iosIdiomTable)*len(appearances))
	for _, a := range appearances {
		for _, entry := range iosIdiomTable {
			images = append(images, contentsImage{
				Appearances: a.tags,
				Filename:    a.prefix + entry.filename,
				Idiom:       entry.idiom,
				Scale:       entry.scale,
				Size:        entry.size,
			})
		}
	}

	doc := contentsDoc{
		Images: images,
		Info:   contentsInfo{Author: "iconsmith", Version: 1},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode contents: %w", err)
	}
	return append(data, '\n'), nil
}
