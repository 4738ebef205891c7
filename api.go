package mandel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/marben/irpc/irpcgen"
)

//go:generate go run github.com/marben/irpc/cmd/irpc@v0.0.0-20260109104542-2d3fde99869b

// RenderService produces the row-major grayscale buffer for region r sampled at bounds b.
type RenderService interface {
	Render(ctx context.Context, r Region, b Bounds) ([]byte, error)
}

// MarshalBinary lets Region cross an irpc connection.
// The corners go out as re1, im1, re2, im2.
func (r Region) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	enc := irpcgen.NewEncoder(&buf)
	for _, f := range [4]float64{real(r.UpperLeft), imag(r.UpperLeft), real(r.LowerRight), imag(r.LowerRight)} {
		if err := irpcgen.EncFloat64(enc, f); err != nil {
			return nil, fmt.Errorf("encode region: %w", err)
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("encode region: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Region) UnmarshalBinary(data []byte) error {
	dec := irpcgen.NewDecoder(bytes.NewReader(data))
	var f [4]float64
	for i := range f {
		if err := irpcgen.DecFloat64(dec, &f[i]); err != nil {
			return fmt.Errorf("decode region corner %d: %w", i, err)
		}
	}
	*r = Region{UpperLeft: complex(f[0], f[1]), LowerRight: complex(f[2], f[3])}
	return nil
}
