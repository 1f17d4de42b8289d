package sdfio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/sdfgen/internal/raster"
)

func TestParseFormatKnownTags(t *testing.T) {
	cases := map[string]Format{
		"png":  PNG,
		"PNG":  PNG,
		"bmp":  BMP,
		"jpg":  JPEG,
		"jpeg": JPEG,
		"tga":  TGA,
	}
	for tag, want := range cases {
		got, err := ParseFormat(tag)
		require.NoError(t, err)
		require.Equal(t, want, got, "tag %q", tag)
	}
}

func TestParseFormatUnknown(t *testing.T) {
	_, err := ParseFormat("webp")
	require.Error(t, err)
}

func TestFormatFromExt(t *testing.T) {
	cases := map[string]Format{
		"out.png":     PNG,
		"out.PNG":     PNG,
		"out.bmp":     BMP,
		"out.jpg":     JPEG,
		"out.jpeg":    JPEG,
		"out.tga":     TGA,
		"out.unknown": PNG,
		"out":         PNG,
	}
	for path, want := range cases {
		require.Equal(t, want, FormatFromExt(path), "path %q", path)
	}
}

func TestEncodeDecodeRoundTripPNG(t *testing.T) {
	out := raster.NewOut8(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			out.Set(x, y, uint8((x+y)*20))
		}
	}

	var buf bytes.Buffer
	img := toGray(out)
	require.NoError(t, png.Encode(&buf, img))

	decoded, _, err := image.Decode(&buf)
	require.NoError(t, err)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			r, g, b, _ := decoded.At(x, y).RGBA()
			_ = g
			_ = b
			got := uint8(r >> 8)
			require.Equal(t, out.At(x, y), got, "(%d,%d)", x, y)
		}
	}
}

func TestFromImageFullyOpaqueGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.SetGray(0, 0, color.Gray{Y: 0})
	src.SetGray(1, 0, color.Gray{Y: 255})

	img := fromImage(src)

	require.Equal(t, uint8(0), img.At(0, 0, 0))
	require.Equal(t, uint8(255), img.At(1, 0, 0))
	require.Equal(t, uint8(255), img.At(0, 0, 1), "gray source has no alpha channel, should synthesize opaque")
	require.Equal(t, uint8(255), img.At(1, 0, 1))
}

func TestFromImageTransparentPixelHasZeroAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 200, B: 200, A: 0})

	img := fromImage(src)

	require.Equal(t, uint8(0), img.At(0, 0, 1), "fully transparent pixel should have alpha 0")
}
