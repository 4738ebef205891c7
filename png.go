package mandel

import (
	"fmt"
	"image/png"
	"io"
	"os"
)

// EncodePNG writes buf as an 8-bit grayscale PNG.
func EncodePNG(w io.Writer, buf []byte, b Bounds) error {
	if len(buf) != b.Pixels() {
		return fmt.Errorf("buffer holds %d pixels, bounds %s need %d", len(buf), b, b.Pixels())
	}
	return png.Encode(w, Gray(buf, b))
}

// WritePNG saves buf to filename, replacing any existing file.
func WritePNG(filename string, buf []byte, b Bounds) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %q: %w", filename, cerr)
		}
	}()

	if err := EncodePNG(f, buf, b); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
