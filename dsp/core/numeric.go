package core

import (
	"math"
	"math/bits"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
// eps is used as an absolute bound near zero and as a relative bound otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOf2 returns the smallest power of two >= n.
// Values <= 1 return 1.
func NextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Log2 returns log2(n) for a power of two n, or -1 otherwise.
func Log2(n int) int {
	if !IsPowerOf2(n) {
		return -1
	}
	return bits.TrailingZeros(uint(n))
}

// TransformLen returns the power-of-two transform length used for a signal
// axis of length n together with its order. The packed real layout needs at
// least one pair, so the result is never below 2.
func TransformLen(n int) (length, order int) {
	length = NextPowerOf2(n)
	if length < 2 {
		length = 2
	}
	return length, Log2(length)
}

// CheckedMul returns a*b and whether the product fits in an int.
// Both operands must be non-negative.
func CheckedMul(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	hi, lo := bits.Mul(uint(a), uint(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}
