// Package sdfio is the pipeline's only collaborator with the filesystem: it
// decodes an arbitrary source image into the 2-channel raster.Image8 the
// core consumes, and encodes the quantizer's raster.Out8 into one of the
// supported output formats.
package sdfio

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"io"
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoding

	"github.com/MeKo-Tech/sdfgen/internal/raster"
	"github.com/MeKo-Tech/sdfgen/internal/sdferr"
)

// Decode reads path (or stdin if path is "-"), decodes it with the standard
// library's format-sniffing image.Decode, and normalizes the result to a
// 2-channel raster.Image8: channel 0 is luminance, channel 1 is alpha.
//
// Channel-ordering note: luminance is derived per ITU-R BT.601 the way
// image/color.GrayModel does, from the decoded image's RGBA() values; alpha
// is read from the same call and synthesized to 0xFF when the source image
// reports full opacity (most decoders, including this one's JPEG path,
// never report partial alpha for alpha-less formats).
func Decode(path string) (*raster.Image8, error) {
	r, closer, err := openInput(path)
	if err != nil {
		return nil, fmt.Errorf("sdfio: open %s: %w", path, err)
	}
	if closer != nil {
		defer closer.Close()
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("sdfio: decode %s: %w", path, sdferr.ErrDecode)
	}

	return fromImage(src), nil
}

func openInput(path string) (io.Reader, io.Closer, error) {
	if path == "-" || path == "" {
		return os.Stdin, nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

// fromImage collapses any image.Image into a 2-channel Image8.
func fromImage(src image.Image) *raster.Image8 {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := raster.NewImage8(w, h, 2)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray := color16ToLuminance(src.At(bounds.Min.X+x, bounds.Min.Y+y))
			out.Pix[(y*w+x)*2+0] = gray.y
			out.Pix[(y*w+x)*2+1] = gray.a
		}
	}

	return out
}

type luminanceAlpha struct {
	y uint8
	a uint8
}

// color16ToLuminance converts a color.Color's 16-bit RGBA channels into an
// 8-bit luminance/alpha pair using the standard NTSC/BT.601 luma weights.
func color16ToLuminance(c interface{ RGBA() (r, g, b, a uint32) }) luminanceAlpha {
	r, g, b, a := c.RGBA()
	// r, g, b, a are alpha-premultiplied and in [0, 0xFFFF]; un-premultiply
	// so partially transparent pixels don't bias toward black. Fully
	// transparent pixels (a == 0) carry no color and keep luminance 0.
	if a > 0 && a < 0xFFFF {
		r = r * 0xFFFF / a
		g = g * 0xFFFF / a
		b = b * 0xFFFF / a
	}
	y16 := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return luminanceAlpha{
		y: uint8(y16 >> 8),
		a: uint8(a >> 8),
	}
}
