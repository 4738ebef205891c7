package mandel

import (
	"errors"
	"fmt"
	"image"
	"math/cmplx"
	"slices"
)

// MaxPixels caps the size of a single render accepted from outside the core.
const MaxPixels = 1 << 28

var (
	ErrEmptyBounds = errors.New("bounds must be at least 1x1")
	ErrTooLarge    = errors.New("bounds exceed pixel limit")
	ErrNonFinite   = errors.New("region corner is not finite")
)

// Bounds of the output raster in pixels
type Bounds struct {
	W, H int
}

func (b Bounds) Pixels() int {
	return b.W * b.H
}

func (b Bounds) Rect() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}

func (b Bounds) String() string {
	return fmt.Sprintf("%dx%d", b.W, b.H)
}

// Validate is meant for callers sourcing bounds from users.
// The render functions themselves never check.
func (b Bounds) Validate() error {
	if b.W < 1 || b.H < 1 {
		return fmt.Errorf("%w: got %s", ErrEmptyBounds, b)
	}
	if b.W > MaxPixels/b.H {
		return fmt.Errorf("%w: %s > %d pixels", ErrTooLarge, b, MaxPixels)
	}
	return nil
}

// Region of the complex plane, given by its upper-left and lower-right corners
type Region struct {
	UpperLeft, LowerRight complex128
}

func (r Region) Width() float64 {
	return real(r.LowerRight) - real(r.UpperLeft)
}

func (r Region) Height() float64 {
	return imag(r.UpperLeft) - imag(r.LowerRight)
}

// Inverted reports whether the region has non-positive width or height.
// Such regions still render, mirrored or collapsed.
func (r Region) Inverted() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

func (r Region) Validate() error {
	for _, c := range []complex128{r.UpperLeft, r.LowerRight} {
		if cmplx.IsNaN(c) || cmplx.IsInf(c) {
			return fmt.Errorf("%w: %v", ErrNonFinite, c)
		}
	}
	return nil
}

func (r Region) String() string {
	return fmt.Sprintf("[%v .. %v]", r.UpperLeft, r.LowerRight)
}

// span builds a region from the axis ranges
func span(xmin, xmax, ymin, ymax float64) Region {
	return Region{
		UpperLeft:  complex(xmin, ymax),
		LowerRight: complex(xmax, ymin),
	}
}

var (
	DefaultBounds = Bounds{W: 1000, H: 1000}
	DefaultRegion = Region{UpperLeft: complex(-1, 1), LowerRight: complex(1, -1)}
)

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = span(-0.8, -0.7, 0.05, 0.15)

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = span(-1.85, -1.75, -0.10, -0.02)

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = span(-0.7435, -0.7420, 0.1310, 0.1325)

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = span(-0.7480, -0.7450, 0.0950, 0.0980)

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = span(-0.7400, -0.7350, 0.1800, 0.1850)

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = span(-1.7390, -1.7375, -0.0235, -0.0220)
)

var landmarks = map[string]Region{
	"default":                 DefaultRegion,
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
}

// LookupRegion returns the landmark registered under name.
func LookupRegion(name string) (Region, bool) {
	r, ok := landmarks[name]
	return r, ok
}

// RegionNames lists landmark names in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(landmarks))
	for n := range landmarks {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

