package mask

import "github.com/MeKo-Tech/sdfgen/internal/raster"

// Polarity selects which side of a Mask becomes the seed set for Seed.
type Polarity int

const (
	// SeedsAreTrue marks mask==true cells as seeds (distance 0).
	SeedsAreTrue Polarity = iota
	// SeedsAreFalse marks mask==false cells as seeds (distance 0).
	SeedsAreFalse
)

// Seed builds a FloatField from mask: seed cells (selected by polarity) get
// 0, every other cell gets +Inf. The orchestrator calls this twice per
// image — once per polarity — to build F_in and F_out.
func Seed(m *raster.Mask, polarity Polarity) *raster.FloatField {
	f := raster.NewFloatField(m.Width, m.Height)

	want := polarity == SeedsAreTrue
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) == want {
				f.Set(x, y, 0)
			}
		}
	}

	return f
}
