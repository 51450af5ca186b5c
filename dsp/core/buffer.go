package core

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	return copy(dst, src)
}

// Deinterleave writes src[2i] to even[i] and src[2i+1] to odd[i] for as
// many whole pairs as all three slices allow, and returns that count.
// A trailing unpaired sample of src is not copied.
func Deinterleave(even, odd, src []float64) int {
	n := min(len(even), len(odd), len(src)/2)
	for i := 0; i < n; i++ {
		even[i] = src[2*i]
		odd[i] = src[2*i+1]
	}
	return n
}

// Interleave is the inverse of Deinterleave: dst[2i] = even[i] and
// dst[2i+1] = odd[i]. It returns the number of pairs written.
func Interleave(dst, even, odd []float64) int {
	n := min(len(even), len(odd), len(dst)/2)
	for i := 0; i < n; i++ {
		dst[2*i] = even[i]
		dst[2*i+1] = odd[i]
	}
	return n
}
