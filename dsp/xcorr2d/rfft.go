package xcorr2d

import (
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// fft runs a forward complex transform in place. A nil plan is the
// length-1 identity.
func fft(p *algofft.Plan[complex128], data []complex128) error {
	if p == nil {
		return nil
	}
	return p.Forward(data, data)
}

// ifft runs an unnormalized inverse complex transform in place.
// algo-fft's Inverse divides by n; conj(FFT(conj(x))) does not.
func ifft(p *algofft.Plan[complex128], data []complex128) error {
	if p == nil {
		return nil
	}
	conjugate(data)
	if err := p.Forward(data, data); err != nil {
		return err
	}
	conjugate(data)
	return nil
}

func conjugate(data []complex128) {
	for i, v := range data {
		data[i] = cmplx.Conj(v)
	}
}

// packReal turns z, the length-h DFT of a real sequence x of length 2h read
// as z[m] = x[2m] + i·x[2m+1], into the packed half spectrum of x, in place:
// z[0] = (X[0], X[h]) and z[k] = X[k] for k in [1, h).
//
// tw must satisfy tw[k*stride] = exp(-2πik/2h). With scale 1 every value
// comes out doubled; scale 0.5 yields the plain DFT.
func packReal(z, tw []complex128, stride int, scale float64) {
	h := len(z)
	s := complex(scale, 0)

	z0 := z[0]
	z[0] = s * complex(2*(real(z0)+imag(z0)), 2*(real(z0)-imag(z0)))

	for k := 1; k <= h/2; k++ {
		j := h - k
		a, b := z[k], z[j]
		z[k] = s * splitForward(a, b, tw[k*stride])
		if j != k {
			z[j] = s * splitForward(b, a, tw[j*stride])
		}
	}
}

// splitForward returns 2·X[k] = (Z[k] + conj Z[h-k]) - i·W^k·(Z[k] - conj Z[h-k]).
func splitForward(zk, zj, w complex128) complex128 {
	c := cmplx.Conj(zj)
	return (zk + c) - 1i*w*(zk-c)
}

// unpackReal is the inverse of packReal with scale 0.5: given the packed
// half spectrum X of a real sequence of length 2h, it rebuilds 2·Z in place,
// so that an unnormalized inverse transform of length h yields 2h·x in
// even/odd interleaved form.
func unpackReal(x, tw []complex128, stride int) {
	h := len(x)

	x0 := x[0]
	x[0] = complex(real(x0)+imag(x0), real(x0)-imag(x0))

	for k := 1; k <= h/2; k++ {
		j := h - k
		a, b := x[k], x[j]
		x[k] = splitInverse(a, b, tw[k*stride])
		if j != k {
			x[j] = splitInverse(b, a, tw[j*stride])
		}
	}
}

// splitInverse returns 2·Z[k] = (X[k] + conj X[h-k]) + i·conj(W^k)·(X[k] - conj X[h-k]).
func splitInverse(xk, xj, w complex128) complex128 {
	c := cmplx.Conj(xj)
	return (xk + c) + 1i*cmplx.Conj(w)*(xk-c)
}
