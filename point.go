package mandel

// PixelToPoint maps pixel (col, row) of a b.W x b.H grid onto region r.
// Column 0 lands on the left edge and row 0 on the top edge; the last column and row
// stop one pixel short of the right and bottom edges. Nothing is clamped.
func PixelToPoint(b Bounds, col, row int, r Region) complex128 {
	width, height := r.Width(), r.Height()
	return complex(
		real(r.UpperLeft)+float64(col)*width/float64(b.W),
		imag(r.UpperLeft)-float64(row)*height/float64(b.H),
	)
}
