package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// containSize returns the dimensions of src scaled to fit inside
// maxW×maxH while preserving aspect ratio. Unlike imaging.Fit it also
// upscales small sources.
func containSize(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0
	}

	scaleW := float64(maxW) / float64(srcW)
	scaleH := float64(maxH) / float64(srcH)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	w := int(float64(srcW) * scale)
	h := int(float64(srcH) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// containOnTransparent scales src to fit inside a boxW×boxH region and
// centers it on a transparent canvasW×canvasH canvas.
func containOnTransparent(src image.Image, canvasW, canvasH, boxW, boxH int) *image.NRGBA {
	b := src.Bounds()
	w, h := containSize(b.Dx(), b.Dy(), boxW, boxH)
	scaled := imaging.Resize(src, w, h, imaging.Lanczos)

	canvas := imaging.New(canvasW, canvasH, color.NRGBA{})
	return imaging.PasteCenter(canvas, scaled)
}

// cover scales src so it completely fills w×h, cropping the overflow
// around the center. No letterboxing.
func cover(src image.Image, w, h int) *image.NRGBA {
	return imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos)
}
