package mandel

import "testing"

func TestPixelToPoint(t *testing.T) {
	tests := []struct {
		name     string
		bounds   Bounds
		col, row int
		region   Region
		want     complex128
	}{
		{"lower-left quadrant", Bounds{100, 100}, 25, 75, Region{complex(-1, 1), complex(1, -1)}, complex(-0.5, -0.5)},
		{"center", Bounds{100, 100}, 50, 50, Region{complex(-1, 1), complex(1, -1)}, complex(0, 0)},
		{"center of unit square", Bounds{100, 100}, 50, 50, Region{complex(0, 1), complex(1, 0)}, complex(0.5, 0.5)},
		{"pixel past the grid", Bounds{50, 50}, 50, 50, Region{complex(0, 1), complex(1, 0)}, complex(1, 0)},
		{"origin pixel", Bounds{640, 480}, 0, 0, SeahorseValley, SeahorseValley.UpperLeft},
		{"inverted region mirrors", Bounds{4, 4}, 2, 2, Region{complex(1, -1), complex(-1, 1)}, complex(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PixelToPoint(tt.bounds, tt.col, tt.row, tt.region)
			if got != tt.want {
				t.Errorf("PixelToPoint(%v, %d, %d, %v) = %v, want %v", tt.bounds, tt.col, tt.row, tt.region, got, tt.want)
			}
		})
	}
}

func TestPixelToPointAffine(t *testing.T) {
	b := Bounds{8, 8}
	r := Region{complex(-2, 1), complex(2, -1)}
	dx := PixelToPoint(b, 1, 0, r) - PixelToPoint(b, 0, 0, r)
	dy := PixelToPoint(b, 0, 1, r) - PixelToPoint(b, 0, 0, r)

	for row := range b.H {
		for col := range b.W {
			got := PixelToPoint(b, col, row, r)
			want := r.UpperLeft + complex(float64(col), 0)*dx + complex(float64(row), 0)*dy
			if got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", col, row, got, want)
			}
		}
	}
}
