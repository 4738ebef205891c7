// cliclient is a CLI client for the Mandelbrot render server.
// It connects to the server, requests one rendered region, and saves it as a PNG file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	mandel "github.com/gabesaba/mandelbrot"
	"github.com/gabesaba/mandelbrot/internal/params"
	"github.com/gabesaba/mandelbrot/internal/termview"
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors. -h is not an error.
func main() {
	log.Printf("Starting CLI client...")
	err := run(os.Args[1:], os.Stdout)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, params.ErrArgCount):
		os.Exit(2)
	default:
		log.Fatalf("FATAL: %v", err)
	}
}

// run connects to the Mandelbrot server, requests the rendered image, and saves it as a PNG file.
// Returns an error if any step fails.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("cliclient", flag.ContinueOnError)
	fs.SetOutput(stdout)
	addr := fs.String("addr", ":8081", "tcp address of the render server")
	wsURL := fs.String("ws", "", "websocket url of the render server, e.g. ws://localhost:8080/ws; overrides -addr")
	filename := fs.String("o", "mandel.png", "output file")
	region := fs.String("region", "", fmt.Sprintf("named region, one of %v", mandel.RegionNames()))
	preview := fs.Bool("preview", false, "print a braille preview of the result")
	timeout := fs.Duration("timeout", time.Minute, "give up on the server after this long")
	positional, err := params.Parse(fs, args)
	if err != nil {
		return err
	}

	p, _, err := params.FromArgs(positional)
	if err != nil {
		if errors.Is(err, params.ErrArgCount) {
			fmt.Fprintln(stdout, params.Usage)
		}
		return err
	}
	if *region != "" {
		if p, err = p.WithRegion(*region); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// Step 1: Connect to Mandelbrot server
	log.Printf("Connecting to Mandelbrot server...")
	conn, err := dial(ctx, *addr, *wsURL)
	if err != nil {
		return err
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	// Step 2: Request the rendered image from the server
	log.Printf("Requesting %s of %s from server...", p.Bounds, p.Region)
	start := time.Now()
	pixels, err := fetch(ctx, conn, p)
	if err != nil {
		return err
	}

	// Step 3: Save the rendered image to a PNG file
	log.Printf("Saving rendered image to %q...", *filename)
	if err := mandel.WritePNG(*filename, pixels, p.Bounds); err != nil {
		return err
	}

	if *preview {
		cols, rows := termview.FitPreview(p.Bounds, 60)
		fmt.Fprintln(stdout, termview.PreviewBox(p.Region.String(), termview.Preview(pixels, p.Bounds, cols, rows)))
	}
	fmt.Fprintln(stdout, termview.Summary("Fully rendered image saved",
		"file: "+*filename,
		"size: "+p.Bounds.String(),
		"took: "+time.Since(start).String(),
	))
	return nil
}
