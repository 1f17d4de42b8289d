package sdf

import (
	"math"

	"github.com/MeKo-Tech/sdfgen/internal/raster"
)

// Quantize clamps every cell of signed into a source range and linearly
// remaps it onto [0, 255]:
//
//   - asymmetric: source range is [0, spread]
//   - symmetric (default): source range is [-spread, spread]
//
// Rounding is ties-to-even; +Inf saturates to 255. spread must be > 0.
func Quantize(signed *raster.SignedField, spread int, asymmetric bool) *raster.Out8 {
	lo, hi := -float64(spread), float64(spread)
	if asymmetric {
		lo = 0
	}
	span := hi - lo

	out := raster.NewOut8(signed.Width, signed.Height)
	for y := 0; y < signed.Height; y++ {
		for x := 0; x < signed.Width; x++ {
			v := signed.At(x, y)
			out.Set(x, y, quantizeOne(v, lo, hi, span))
		}
	}
	return out
}

func quantizeOne(v, lo, hi, span float64) uint8 {
	switch {
	case math.IsInf(v, 1) || v >= hi:
		return 255
	case math.IsInf(v, -1) || v <= lo:
		return 0
	}

	normalized := (v - lo) / span * 255
	return uint8(math.RoundToEven(normalized))
}
