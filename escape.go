package mandel

const (
	// MaxIterations bounds the orbit of every point.
	MaxIterations = 256

	// Breakout is the squared escape radius (2²).
	Breakout = 4.0
)

// Escape iterates z = z² + c from z = 0 and reports the 0-based iteration at which
// |z|² first exceeded Breakout. The flag is false when the orbit stayed bounded for
// MaxIterations steps.
func Escape(c complex128) (int, bool) {
	z := complex(0, 0)
	for i := range MaxIterations {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > Breakout {
			return i, true
		}
	}
	return 0, false
}
