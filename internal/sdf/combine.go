// Package sdf orchestrates the thresholder, seed builder, EDT engine,
// combiner, and quantizer into the end-to-end image -> signed distance
// field -> byte raster pipeline.
package sdf

import "github.com/MeKo-Tech/sdfgen/internal/raster"

// Combine collapses the two one-sided Euclidean distance fields fIn and
// fOut (already square-rooted by the EDT engine) into a single signed
// field:
//
//	s[p] = d_in - max(0, d_out - 1)
//
// The 1-pixel bias applies only to the positive-d_out branch. An inside
// pixel has d_in == 0 (it is itself an F_in seed) so s[p] == -max(0, d_out-1)
// <= 0; an outside pixel has d_out == 0 (an F_out seed) so s[p] == d_in >= 0.
// Positive values lie outside the shape, negative inside.
func Combine(fIn, fOut *raster.FloatField) *raster.SignedField {
	out := raster.NewSignedField(fIn.Width, fIn.Height)

	for y := 0; y < fIn.Height; y++ {
		for x := 0; x < fIn.Width; x++ {
			dIn := fIn.At(x, y)
			dOut := fOut.At(x, y)

			bias := dOut - 1
			if bias < 0 {
				bias = 0
			}
			out.Set(x, y, dIn-bias)
		}
	}

	return out
}
