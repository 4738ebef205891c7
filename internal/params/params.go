// Package params turns command-line arguments and query strings into render requests.
package params

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	mandel "github.com/gabesaba/mandelbrot"
)

const Usage = "Program requires 6 args: left_x upper_y right_x lower_y pixels_w pixels_h\n" +
	"Default run is -1.0 1.0 1.0 -1.0 1000 1000"

var ErrArgCount = errors.New("wrong number of arguments")

// Params of a single render
type Params struct {
	Region mandel.Region
	Bounds mandel.Bounds
}

// Defaults is used when a command is run without positional arguments.
var Defaults = Params{Region: mandel.DefaultRegion, Bounds: mandel.DefaultBounds}

var argNames = [6]string{"left_x", "upper_y", "right_x", "lower_y", "pixels_w", "pixels_h"}

// FromArgs parses either no arguments (Defaults, usedDefaults=true) or exactly six.
func FromArgs(args []string) (p Params, usedDefaults bool, err error) {
	switch len(args) {
	case 0:
		return Defaults, true, nil
	case 6:
	default:
		return Params{}, false, fmt.Errorf("%w: got %d, want 0 or 6", ErrArgCount, len(args))
	}

	var f [4]float64
	for i := range f {
		if f[i], err = strconv.ParseFloat(args[i], 64); err != nil {
			return Params{}, false, fmt.Errorf("%s: %w", argNames[i], err)
		}
	}
	var n [2]int
	for i := range n {
		if n[i], err = strconv.Atoi(args[4+i]); err != nil {
			return Params{}, false, fmt.Errorf("%s: %w", argNames[4+i], err)
		}
	}

	p = Params{
		Region: mandel.Region{UpperLeft: complex(f[0], f[1]), LowerRight: complex(f[2], f[3])},
		Bounds: mandel.Bounds{W: n[0], H: n[1]},
	}
	return p, false, p.Validate()
}

// FromQuery reads re1, im1, re2, im2, w, h and region from a query string.
// Missing values fall back to Defaults; a named region replaces the corners.
func FromQuery(q url.Values) (Params, error) {
	p := Defaults

	if name := q.Get("region"); name != "" {
		r, ok := mandel.LookupRegion(name)
		if !ok {
			return Params{}, fmt.Errorf("unknown region %q", name)
		}
		p.Region = r
	}

	ul, lr := p.Region.UpperLeft, p.Region.LowerRight
	var f [4]float64
	for i, c := range []struct {
		key string
		def float64
	}{{"re1", real(ul)}, {"im1", imag(ul)}, {"re2", real(lr)}, {"im2", imag(lr)}} {
		f[i] = c.def
		if v := q.Get(c.key); v != "" {
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return Params{}, fmt.Errorf("%s: %w", c.key, err)
			}
			f[i] = x
		}
	}
	p.Region = mandel.Region{UpperLeft: complex(f[0], f[1]), LowerRight: complex(f[2], f[3])}

	for _, d := range []struct {
		key string
		dst *int
	}{{"w", &p.Bounds.W}, {"h", &p.Bounds.H}} {
		if v := q.Get(d.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Params{}, fmt.Errorf("%s: %w", d.key, err)
			}
			*d.dst = n
		}
	}

	return p, p.Validate()
}

// WithRegion swaps in the landmark called name, keeping the bounds.
func (p Params) WithRegion(name string) (Params, error) {
	r, ok := mandel.LookupRegion(name)
	if !ok {
		return Params{}, fmt.Errorf("unknown region %q (known: %v)", name, mandel.RegionNames())
	}
	p.Region = r
	return p, nil
}

func (p Params) Validate() error {
	if err := p.Bounds.Validate(); err != nil {
		return err
	}
	return p.Region.Validate()
}
