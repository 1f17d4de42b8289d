package sdfio

import (
	"encoding/binary"
	"image"
	"io"
)

// encodeTGA writes img as an uncompressed, 8-bit grayscale TGA (image type
// 3: "uncompressed, black-and-white image").
//
// No library anywhere in the retrieved reference corpus implements or
// depends on a TGA codec (see DESIGN.md); this is the one format where no
// ecosystem choice could be grounded, so it's written directly against the
// format's 18-byte header, the smallest faithful option.
func encodeTGA(w io.Writer, img *image.Gray) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	header := make([]byte, 18)
	header[2] = 3 // image type: uncompressed grayscale
	binary.LittleEndian.PutUint16(header[12:14], uint16(width))
	binary.LittleEndian.PutUint16(header[14:16], uint16(height))
	header[16] = 8      // bits per pixel
	header[17] = 1 << 5 // image descriptor: top-left origin
	if _, err := w.Write(header); err != nil {
		return err
	}

	// TGA rows run bottom-to-top by default; descriptor bit 5 above flips
	// that to top-to-bottom so the row order matches every other codec here.
	row := make([]byte, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			row[x] = img.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}
