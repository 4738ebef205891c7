// mandelbrot renders a region of the Mandelbrot set to a grayscale PNG.
//
//	mandelbrot [flags] [left_x upper_y right_x lower_y pixels_w pixels_h]
//
// Without positional arguments it renders -1+1i .. 1-1i at 1000x1000.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"time"

	mandel "github.com/gabesaba/mandelbrot"
	"github.com/gabesaba/mandelbrot/internal/params"
	"github.com/gabesaba/mandelbrot/internal/termview"
)

const defaultFilename = "mandelbrot.png"

func main() {
	err := run(os.Args[1:], os.Stdout)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, params.ErrArgCount):
		os.Exit(2)
	default:
		log.Fatalf("run: %+v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	fs.SetOutput(stdout)
	filename := fs.String("o", defaultFilename, "output file")
	workers := fs.Int("workers", 1, "render goroutines; 1 renders sequentially, 0 uses every CPU")
	region := fs.String("region", "", fmt.Sprintf("named region replacing the corners, one of %v", mandel.RegionNames()))
	preview := fs.Bool("preview", false, "print a braille preview of the result")
	progress := fs.Bool("progress", false, "log progress while rendering in parallel")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%s\n\nFlags:\n", params.Usage)
		fs.PrintDefaults()
	}

	positional, err := params.Parse(fs, args)
	if err != nil {
		return err
	}

	p, usedDefaults, err := params.FromArgs(positional)
	if err != nil {
		if errors.Is(err, params.ErrArgCount) {
			fmt.Fprintln(stdout, params.Usage)
		}
		return err
	}
	if usedDefaults {
		fmt.Fprintln(stdout, `Using defaults. Run with "-h" for more options`)
	}
	if *region != "" {
		if p, err = p.WithRegion(*region); err != nil {
			return err
		}
	}
	if p.Region.Inverted() {
		log.Printf("region %s is inverted, the image will be mirrored", p.Region)
	}

	fmt.Fprintln(stdout, "Running..")
	start := time.Now()

	pixels, err := render(p, *workers, *progress)
	if err != nil {
		return err
	}
	if err := mandel.WritePNG(*filename, pixels, p.Bounds); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if *preview {
		cols, rows := termview.FitPreview(p.Bounds, 60)
		fmt.Fprintln(stdout, termview.PreviewBox(p.Region.String(), termview.Preview(pixels, p.Bounds, cols, rows)))
	}
	fmt.Fprintln(stdout, termview.Summary(
		fmt.Sprintf("Done in %s. Find output in %s", elapsed, *filename),
		"region: "+p.Region.String(),
		"size: "+p.Bounds.String(),
	))
	return nil
}

// render keeps the single-worker case on the plain sequential loop.
func render(p params.Params, workers int, progress bool) ([]byte, error) {
	if workers == 1 {
		return mandel.Render(p.Bounds, p.Region.UpperLeft, p.Region.LowerRight), nil
	}

	s := mandel.NewScheduler(p.Bounds, p.Region, mandel.DefaultBandHeight)
	if progress {
		s.OnBand = func(band image.Rectangle) {
			log.Printf("rows %d-%d done, finished: %.0f%%", band.Min.Y, band.Max.Y-1, 100*s.Progress())
		}
	}
	return s.Run(context.Background(), workers)
}
