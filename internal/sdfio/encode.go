package sdfio

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/MeKo-Tech/sdfgen/internal/raster"
	"github.com/MeKo-Tech/sdfgen/internal/sdferr"
)

// Format is an output image format tag.
type Format int

const (
	PNG Format = iota
	BMP
	JPEG
	TGA
)

// ParseFormat maps a CLI format tag (case-insensitive) to a Format.
func ParseFormat(tag string) (Format, error) {
	switch strings.ToLower(tag) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "tga":
		return TGA, nil
	default:
		return 0, fmt.Errorf("sdfio: unknown format %q: %w", tag, sdferr.ErrInvalidArguments)
	}
}

// FormatFromExt infers a Format from an output path's extension, falling
// back to PNG when the extension is unrecognized.
func FormatFromExt(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return BMP
	case ".jpg", ".jpeg":
		return JPEG
	case ".tga":
		return TGA
	default:
		return PNG
	}
}

// Encode writes out to path (or stdout if path is "-") in the given format.
// quality is used only for JPEG and must be in [1, 100]. The encoder is
// invoked only after the caller has a complete Out8 buffer — the pipeline
// never writes a partial output on failure.
func Encode(path string, format Format, out *raster.Out8, quality int) error {
	w, closer, err := openOutput(path)
	if err != nil {
		return fmt.Errorf("sdfio: open %s: %w", path, err)
	}
	if closer != nil {
		defer closer.Close()
	}

	img := toGray(out)

	switch format {
	case PNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("sdfio: encode png: %w", sdferr.ErrEncode)
		}
	case BMP:
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("sdfio: encode bmp: %w", sdferr.ErrEncode)
		}
	case JPEG:
		if quality < 1 || quality > 100 {
			return fmt.Errorf("sdfio: quality %d out of range [1,100]: %w", quality, sdferr.ErrInvalidArguments)
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("sdfio: encode jpeg: %w", sdferr.ErrEncode)
		}
	case TGA:
		if err := encodeTGA(w, img); err != nil {
			return fmt.Errorf("sdfio: encode tga: %w", sdferr.ErrEncode)
		}
	default:
		return fmt.Errorf("sdfio: unknown format %v: %w", format, sdferr.ErrInvalidArguments)
	}

	return nil
}

func openOutput(path string) (io.Writer, io.Closer, error) {
	if path == "-" || path == "" {
		return os.Stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func toGray(out *raster.Out8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, out.Width, out.Height))
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			img.SetGray(x, y, color.Gray{Y: out.At(x, y)})
		}
	}
	return img
}
