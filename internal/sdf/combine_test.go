package sdf

import (
	"math"
	"testing"

	"github.com/MeKo-Tech/sdfgen/internal/raster"
)

func TestCombineInsidePixelIsNonPositive(t *testing.T) {
	fIn := raster.NewFloatField(1, 1)
	fOut := raster.NewFloatField(1, 1)
	fIn.Set(0, 0, 0) // this pixel is itself an F_in seed
	fOut.Set(0, 0, 5)

	signed := Combine(fIn, fOut)
	if signed.At(0, 0) > 0 {
		t.Errorf("inside pixel s = %v, want <= 0", signed.At(0, 0))
	}
}

func TestCombineOutsidePixelIsNonNegative(t *testing.T) {
	fIn := raster.NewFloatField(1, 1)
	fOut := raster.NewFloatField(1, 1)
	fIn.Set(0, 0, 5)
	fOut.Set(0, 0, 0) // this pixel is itself an F_out seed

	signed := Combine(fIn, fOut)
	if signed.At(0, 0) < 0 {
		t.Errorf("outside pixel s = %v, want >= 0", signed.At(0, 0))
	}
}

func TestCombineFormula(t *testing.T) {
	cases := []struct {
		dIn, dOut, want float64
	}{
		{0, 0, 0},
		{0, 5, -4}, // -(max(0, 5-1))
		{3, 0, 3},
		{3, 5, -1}, // 3 - max(0,4)
		{3, 0.5, 3},
	}
	for _, c := range cases {
		fIn := raster.NewFloatField(1, 1)
		fOut := raster.NewFloatField(1, 1)
		fIn.Set(0, 0, c.dIn)
		fOut.Set(0, 0, c.dOut)

		got := Combine(fIn, fOut).At(0, 0)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Combine(dIn=%v,dOut=%v) = %v, want %v", c.dIn, c.dOut, got, c.want)
		}
	}
}

func TestCombineDimensions(t *testing.T) {
	fIn := raster.NewFloatField(3, 2)
	fOut := raster.NewFloatField(3, 2)
	out := Combine(fIn, fOut)
	if out.Width != 3 || out.Height != 2 {
		t.Errorf("dims = %dx%d, want 3x2", out.Width, out.Height)
	}
}
