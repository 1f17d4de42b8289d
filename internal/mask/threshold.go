package mask

import "github.com/MeKo-Tech/sdfgen/internal/raster"

// ChannelSelector picks which channel of a 2-channel (luminance, alpha)
// Image8 the thresholder reads.
type ChannelSelector int

const (
	// Luminance reads channel 0.
	Luminance ChannelSelector = iota
	// Alpha reads channel 1.
	Alpha
)

// thresholdValue is half of 255, rounded down. Never make this configurable:
// reference outputs depend on the cutoff being bit-exact.
const thresholdValue = 127

// Threshold reads the selected channel of img and returns a Mask where
// mask[p] = (byte(p) > 127) XOR invert.
func Threshold(img *raster.Image8, selector ChannelSelector, invert bool) *raster.Mask {
	out := raster.NewMask(img.Width, img.Height)
	channel := int(selector)

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			v := img.At(x, y, channel) > thresholdValue
			out.Set(x, y, v != invert)
		}
	}

	return out
}
