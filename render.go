package mandel

import (
	"context"
	"image"
)

// Shade converts an escape result to a gray level: the set itself is black, points
// escaping on the first iteration are white.
func Shade(i int, escaped bool) byte {
	if !escaped {
		return 0
	}
	v := 255 - i
	if v < 0 {
		v = 0
	}
	return byte(v)
}

// Render samples every pixel of b in row-major order and returns one gray byte per pixel.
func Render(b Bounds, upperLeft, lowerRight complex128) []byte {
	pixels := make([]byte, b.Pixels())
	RenderRows(pixels, b, Region{UpperLeft: upperLeft, LowerRight: lowerRight}, b.Rect())
	return pixels
}

// RenderRows fills rows [rows.Min.Y, rows.Max.Y) of dst, a full b-sized buffer.
// The horizontal extent of rows is ignored; whole rows are always rendered.
// Calls on disjoint row ranges may run concurrently.
func RenderRows(dst []byte, b Bounds, r Region, rows image.Rectangle) {
	for row := rows.Min.Y; row < rows.Max.Y; row++ {
		line := dst[row*b.W : (row+1)*b.W]
		for col := range line {
			line[col] = Shade(Escape(PixelToPoint(b, col, row, r)))
		}
	}
}

// Gray wraps buf as an image without copying it.
func Gray(buf []byte, b Bounds) *image.Gray {
	return &image.Gray{Pix: buf, Stride: b.W, Rect: b.Rect()}
}

// SequentialRenderer renders on the calling goroutine.
type SequentialRenderer struct{}

func (SequentialRenderer) Render(ctx context.Context, r Region, b Bounds) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Render(b, r.UpperLeft, r.LowerRight), nil
}

// ParallelRenderer splits the raster into row bands shared by Workers goroutines.
type ParallelRenderer struct {
	Workers    int // <= 0 means runtime.NumCPU()
	BandHeight int // <= 0 means DefaultBandHeight
}

func (p ParallelRenderer) Render(ctx context.Context, r Region, b Bounds) ([]byte, error) {
	return NewScheduler(b, r, p.BandHeight).Run(ctx, p.Workers)
}

var (
	_ RenderService = SequentialRenderer{}
	_ RenderService = ParallelRenderer{}
)
