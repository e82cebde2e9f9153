// pkg/geom/math.go
package geom

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Gcd computes the greatest common divisor of a and b.
func Gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp performs standard linear interpolation between two scalars.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
