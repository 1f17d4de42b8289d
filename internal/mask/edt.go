package mask

import (
	"math"

	"github.com/MeKo-Tech/sdfgen/internal/raster"
	"github.com/MeKo-Tech/sdfgen/internal/workerpool"
)

// EDT2D runs the Felzenszwalb & Huttenlocher (2004) exact 2-D Euclidean
// distance transform over f and returns a new field of the same dimensions
// holding, at every cell, the true (non-squared) Euclidean distance to the
// nearest seed (the cells that held 0 in f).
//
// Pipeline:
//  1. 1-D transform on every row of f, in place (squared distances along rows).
//  2. Transpose into a second buffer of shape H x W.
//  3. 1-D transform on every row of the transposed buffer — i.e. the columns
//     of the original field.
//  4. Transpose back while taking the element-wise square root, restoring
//     the original W x H layout with true Euclidean distances.
//
// Row passes in step 1 and 3 are distributed across workers goroutines with
// a static partition. The two transposes are not parallelized: each runs as
// a single loop on the calling goroutine. Each stage completes before the
// next one starts.
func EDT2D(f *raster.FloatField, workers int) *raster.FloatField {
	rows1D(f, workers)

	transposed := f.Transpose(identity)
	rows1D(transposed, workers)

	return transposed.Transpose(math.Sqrt)
}

func identity(v float64) float64 { return v }

// rows1D runs the 1-D routine over every row of f in place, partitioning
// rows across workers goroutines. Each goroutine owns one Envelope for the
// lifetime of its chunk.
func rows1D(f *raster.FloatField, workers int) {
	workerpool.Parallel(f.Height, workers, func(lo, hi int) {
		env := raster.NewEnvelope(f.Width)
		for y := lo; y < hi; y++ {
			edt1D(f.Row(y), env)
		}
	})
}

// edt1D replaces every f[q] with min over k of (q-k)^2 + f_orig[k], the
// lower envelope of unit parabolas rooted at every finite entry of f. env
// must have Cap >= len(f); it is entirely overwritten by this call and may
// be reused for the next row.
func edt1D(f []float64, env *raster.Envelope) {
	n := len(f)
	if n <= 1 {
		return
	}

	offset := -1
	for q := 0; q < n; q++ {
		if !math.IsInf(f[q], 1) {
			offset = q
			break
		}
	}
	if offset < 0 {
		// No finite seed anywhere in this row: output stays all +Inf.
		return
	}

	v, z, h := env.V, env.Z, env.H

	v[0] = offset
	h[0] = f[offset]
	k := 0

	for q := offset + 1; q < n; q++ {
		if math.IsInf(f[q], 1) {
			continue
		}

		s := parabolaIntersect(f[q], q, h[k], v[k])
		for k > 0 && s <= z[k-1] {
			k--
			s = parabolaIntersect(f[q], q, h[k], v[k])
		}

		z[k] = s
		k++
		v[k] = q
		h[k] = f[q]
	}

	j := 0
	for q := 0; q < n; q++ {
		for j < k && z[j] < float64(q) {
			j++
		}
		dq := float64(q - v[j])
		f[q] = dq*dq + h[j]
	}
}

// parabolaIntersect returns the x-coordinate at which the unit parabola
// rooted at q with height fq intersects the one rooted at vk with height
// fk: s = ((fq - fk) + (q^2 - vk^2)) / (2*(q - vk)).
//
// Called only between finite vertices; the 1-D driver skips +Inf entries
// before reaching here, so q != vk always holds and the denominator is
// never zero.
func parabolaIntersect(fq float64, q int, fk float64, vk int) float64 {
	qf, vkf := float64(q), float64(vk)
	return ((fq - fk) + (qf*qf - vkf*vkf)) / (2 * (qf - vkf))
}
