package sdf

import (
	"image"
	"image/color"

	"github.com/disintegration/gift"

	"github.com/MeKo-Tech/sdfgen/internal/raster"
)

// Downsample shrinks a quantized output raster computed at factor times the
// target resolution back down to (out.Width/factor, out.Height/factor)
// using a Lanczos filter. This is the second half of supersampling: the
// caller decodes and runs the full threshold/seed/EDT/combine/quantize
// pipeline at factor times the requested size, then calls Downsample once
// at the very end so the high-resolution distance estimate is preserved
// through quantization instead of being averaged away beforehand.
func Downsample(out *raster.Out8, factor int) *raster.Out8 {
	if factor <= 1 {
		return out
	}

	targetW := out.Width / factor
	targetH := out.Height / factor
	if targetW < 1 {
		targetW = 1
	}
	if targetH < 1 {
		targetH = 1
	}

	src := image.NewGray(image.Rect(0, 0, out.Width, out.Height))
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			src.SetGray(x, y, color.Gray{Y: out.At(x, y)})
		}
	}

	g := gift.New(gift.Resize(targetW, targetH, gift.LanczosResampling))
	dst := image.NewGray(g.Bounds(src.Bounds()))
	g.Draw(dst, src)

	resized := raster.NewOut8(targetW, targetH)
	for y := 0; y < targetH; y++ {
		for x := 0; x < targetW; x++ {
			resized.Set(x, y, dst.GrayAt(x, y).Y)
		}
	}
	return resized
}
