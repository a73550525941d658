package artifact

import (
	"encoding/xml"
	"fmt"

	"github.com/alexisbeaulieu97/iconsmith/internal/render"
)

type drawableRef struct {
	Drawable string `xml:"android:drawable,attr"`
}

type adaptiveIcon struct {
	XMLName    xml.Name    `xml:"adaptive-icon"`
	XMLNS      string      `xml:"xmlns:android,attr"`
	Background drawableRef `xml:"background"`
	Foreground drawableRef `xml:"foreground"`
	Monochrome drawableRef `xml:"monochrome"`
}

// buildAdaptiveXML emits the three-layer adaptive icon descriptor
// referencing the conventionally named mipmap layers.
func (b *Builder) buildAdaptiveXML() ([]byte, error) {
	doc := adaptiveIcon{
		XMLNS:      "http://schemas.android.com/apk/res/android",
		Background: drawableRef{Drawable: "@mipmap/ic_launcher_background"},
		Foreground: drawableRef{Drawable: "@mipmap/ic_launcher_foreground"},
		Monochrome: drawableRef{Drawable: "@mipmap/ic_launcher_monochrome"},
	}

	data, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode adaptive icon: %w", err)
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}

type colorResource struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type colorResources struct {
	XMLName xml.Name        `xml:"resources"`
	Colors  []colorResource `xml:"color"`
}

// buildColorsXML emits the launcher background color resource. Only called
// when the background is a solid color.
func (b *Builder) buildColorsXML() ([]byte, error) {
	c, ok := b.background.SolidColor()
	if !ok {
		return nil, nil
	}

	doc := colorResources{
		Colors: []colorResource{{Name: "ic_launcher_background", Value: render.FormatHex(c)}},
	}

	data, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode colors: %w", err)
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}
