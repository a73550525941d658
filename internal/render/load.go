package render

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// loadImage decodes a raster source file (PNG or JPEG).
func loadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return img, nil
}
