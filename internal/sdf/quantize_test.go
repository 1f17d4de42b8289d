package sdf

import (
	"math"
	"testing"

	"github.com/MeKo-Tech/sdfgen/internal/raster"
)

func quantizeScalar(t *testing.T, v float64, spread int, asymmetric bool) uint8 {
	t.Helper()
	signed := raster.NewSignedField(1, 1)
	signed.Set(0, 0, v)
	return Quantize(signed, spread, asymmetric).At(0, 0)
}

func TestQuantizeSymmetricZeroIsMidpoint(t *testing.T) {
	got := quantizeScalar(t, 0, 2, false)
	if got != 128 {
		t.Errorf("Quantize(0, spread=2, symmetric) = %d, want 128 (ties-to-even)", got)
	}
}

func TestQuantizeSymmetricNegativeHalfSpread(t *testing.T) {
	got := quantizeScalar(t, -0.5, 4, false)
	if got != 112 {
		t.Errorf("Quantize(-0.5, spread=4, symmetric) = %d, want 112", got)
	}
}

func TestQuantizeAsymmetricClampsNegativeToZero(t *testing.T) {
	got := quantizeScalar(t, -0.5, 4, true)
	if got != 0 {
		t.Errorf("Quantize(-0.5, spread=4, asymmetric) = %d, want 0", got)
	}
}

func TestQuantizeSaturatesAtBounds(t *testing.T) {
	if got := quantizeScalar(t, math.Inf(1), 4, false); got != 255 {
		t.Errorf("Quantize(+Inf) = %d, want 255", got)
	}
	if got := quantizeScalar(t, math.Inf(-1), 4, false); got != 0 {
		t.Errorf("Quantize(-Inf) = %d, want 0", got)
	}
	if got := quantizeScalar(t, 100, 4, false); got != 255 {
		t.Errorf("Quantize(100, spread=4) = %d, want 255 (saturate)", got)
	}
	if got := quantizeScalar(t, -100, 4, false); got != 0 {
		t.Errorf("Quantize(-100, spread=4) = %d, want 0 (saturate)", got)
	}
}

func TestQuantizeMonotonic(t *testing.T) {
	var prev uint8
	first := true
	for v := -4.0; v <= 4.0; v += 0.25 {
		got := quantizeScalar(t, v, 4, false)
		if !first && got < prev {
			t.Errorf("non-monotonic at v=%v: got %d < prev %d", v, got, prev)
		}
		prev = got
		first = false
	}
}
