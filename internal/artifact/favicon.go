package artifact

import (
	"bytes"
	"fmt"
	"image"
	"math"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/alexisbeaulieu97/iconsmith/internal/catalog"
)

// FrameSizes are the canvas sizes of the multi-frame favicon pack, in
// ascending order.
var FrameSizes = []int{16, 32, 48}

// FrameForegroundSizes reports the foreground box of each pack frame for a
// given favicon scale: floor(size·scale) per frame.
func FrameForegroundSizes(scale float64) []int {
	out := make([]int, len(FrameSizes))
	for i, size := range FrameSizes {
		out[i] = int(math.Floor(float64(size) * scale))
	}
	return out
}

// buildFavicon composes the standard favicon branch at every frame size and
// packs the frames into one ICO container, smallest first.
func (b *Builder) buildFavicon() ([]byte, error) {
	frames := make([]image.Image, 0, len(FrameSizes))
	for _, size := range FrameSizes {
		spec := catalog.AssetSpec{
			Name:     fmt.Sprintf("web/favicon-%d.png", size),
			Width:    size,
			Height:   size,
			Platform: catalog.PlatformWeb,
			Category: catalog.CategoryFavicon,
		}
		frame, err := b.engine.ComposeImage(spec)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, frames); err != nil {
		return nil, fmt.Errorf("encode ico: %w", err)
	}
	return buf.Bytes(), nil
}
