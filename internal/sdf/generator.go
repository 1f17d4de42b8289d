package sdf

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/MeKo-Tech/sdfgen/internal/mask"
	"github.com/MeKo-Tech/sdfgen/internal/raster"
	"github.com/MeKo-Tech/sdfgen/internal/sdferr"
	"github.com/MeKo-Tech/sdfgen/internal/sdfio"
	"github.com/MeKo-Tech/sdfgen/internal/workerpool"
)

// Options controls one end-to-end run of the pipeline.
type Options struct {
	InputPath  string
	OutputPath string
	Format     sdfio.Format

	Spread      int
	Quality     int
	Invert      bool
	Luminance   bool // select mask.Luminance instead of the default mask.Alpha
	Asymmetric  bool
	Supersample int // 1 = off
	Workers     int // 0 = runtime.NumCPU()

	Logger *slog.Logger
}

func (o Options) selector() mask.ChannelSelector {
	if o.Luminance {
		return mask.Luminance
	}
	return mask.Alpha
}

func (o Options) workerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Generate runs the full pipeline: decode, threshold, seed, 2-D EDT
// (inside and outside run concurrently), combine, quantize, optional
// supersample downscale, encode. ctx is checked between stages so a
// cancelled run stops before starting its next (possibly expensive) step;
// the EDT's own row/column passes are not individually cancellable.
func Generate(ctx context.Context, opts Options) error {
	if err := validate(opts); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	log := opts.logger()
	workers := opts.workerCount()

	img, err := sdfio.Decode(opts.InputPath)
	if err != nil {
		return err
	}
	log.Debug("decoded", "width", img.Width, "height", img.Height)

	if opts.Supersample > 1 {
		img = resizeInputForSupersample(img, opts.Supersample)
		log.Debug("upsampled for supersampling", "factor", opts.Supersample, "width", img.Width, "height", img.Height)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	m := mask.Threshold(img, opts.selector(), opts.Invert)
	log.Debug("thresholded")

	fIn := mask.Seed(m, mask.SeedsAreTrue)
	fOut := mask.Seed(m, mask.SeedsAreFalse)
	log.Debug("seeded")

	if err := ctx.Err(); err != nil {
		return err
	}
	workerpool.Branches(
		func() { fIn = mask.EDT2D(fIn, workers) },
		func() { fOut = mask.EDT2D(fOut, workers) },
	)
	log.Debug("edt complete", "workers", workers)

	signed := Combine(fIn, fOut)
	log.Debug("combined")

	out := Quantize(signed, opts.Spread, opts.Asymmetric)
	log.Debug("quantized", "spread", opts.Spread, "asymmetric", opts.Asymmetric)

	if opts.Supersample > 1 {
		out = Downsample(out, opts.Supersample)
		log.Debug("downsampled", "factor", opts.Supersample)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := sdfio.Encode(opts.OutputPath, opts.Format, out, opts.Quality); err != nil {
		return err
	}

	log.Info("sdf generated",
		"input", opts.InputPath,
		"output", opts.OutputPath,
		"width", out.Width,
		"height", out.Height,
		"spread", opts.Spread,
	)
	return nil
}

func validate(opts Options) error {
	if opts.InputPath == "" {
		return fmt.Errorf("sdf: input path required: %w", sdferr.ErrInvalidArguments)
	}
	if opts.OutputPath == "" {
		return fmt.Errorf("sdf: output path required: %w", sdferr.ErrInvalidArguments)
	}
	if opts.Spread <= 0 {
		return fmt.Errorf("sdf: spread must be > 0, got %d: %w", opts.Spread, sdferr.ErrInvalidArguments)
	}
	if opts.Quality < 1 || opts.Quality > 100 {
		return fmt.Errorf("sdf: quality must be in [1,100], got %d: %w", opts.Quality, sdferr.ErrInvalidArguments)
	}
	if opts.Supersample < 0 {
		return fmt.Errorf("sdf: supersample must be >= 0, got %d: %w", opts.Supersample, sdferr.ErrInvalidArguments)
	}
	return nil
}

// resizeInputForSupersample upsamples a decoded image by factor before the
// rest of the pipeline runs, so threshold/seed/EDT/combine/quantize all
// operate at factor times the output resolution; Downsample then shrinks
// the quantized result back down at the very end.
func resizeInputForSupersample(img *raster.Image8, factor int) *raster.Image8 {
	if factor <= 1 {
		return img
	}
	out := raster.NewImage8(img.Width*factor, img.Height*factor, img.Channels)
	for y := 0; y < out.Height; y++ {
		sy := y / factor
		for x := 0; x < out.Width; x++ {
			sx := x / factor
			for c := 0; c < img.Channels; c++ {
				out.Pix[(y*out.Width+x)*img.Channels+c] = img.At(sx, sy, c)
			}
		}
	}
	return out
}
