// Package intmath provides small integer helpers shared by the numeric value types.
// No external dependencies - uses only standard library.
package intmath

import "math/bits"

// Abs returns |x| as an unsigned magnitude, so Abs(math.MinInt64) is 1<<63.
func Abs(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(0, b) is |b|; GCD(0, 0) is 0.
func GCD(a, b int64) uint64 {
	x, y := Abs(a), Abs(b)
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// MulChecked returns a*b and whether the product fits in int64.
func MulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(Abs(a), Abs(b))
	if hi != 0 {
		return 0, false
	}
	negative := (a < 0) != (b < 0)
	switch {
	case negative && lo == 1<<63:
		return -1 << 63, true
	case lo > 1<<63-1:
		return 0, false
	case negative:
		return -int64(lo), true
	default:
		return int64(lo), true
	}
}
