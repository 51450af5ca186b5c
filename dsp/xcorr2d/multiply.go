package xcorr2d

// correlateSpectra overwrites img with the correlation product of the
// normalized spectra img and ker, conj(img)·ker. Its inverse is the
// correlation surface with both axes index-reversed, which reassemble undoes.
//
// tempRe and tempIm must each hold img.Rows samples; they stage the
// degenerate column while the bulk product runs in place.
func correlateSpectra(img, ker *Spectrum, tempRe, tempIm []float64) {
	h := img.half()

	// Degenerate column: each stream is a packed real sequence along the
	// rows, so rows 2m and 2m+1 form one complex value.
	degenerateProduct(tempRe, img.Re, ker.Re, img.Rows, h)
	degenerateProduct(tempIm, img.Im, ker.Im, img.Rows, h)

	// Frequencies 0 and Rows/2 of both real columns are plain reals.
	tempRe[0] = img.Re[0] * ker.Re[0]
	tempIm[0] = img.Im[0] * ker.Im[0]
	tempRe[1] = img.Re[h] * ker.Re[h]
	tempIm[1] = img.Im[h] * ker.Im[h]

	conjProduct(img.Re, img.Im, ker.Re, ker.Im)

	for r := 0; r < img.Rows; r++ {
		img.Re[r*h] = tempRe[r]
		img.Im[r*h] = tempIm[r]
	}
}

// conjProduct computes conj(a)·b elementwise into a.
func conjProduct(aRe, aIm, bRe, bIm []float64) {
	bRe = bRe[:len(aRe)]
	bIm = bIm[:len(aRe)]
	aIm = aIm[:len(aRe)]
	for i := range aRe {
		ar, ai := aRe[i], aIm[i]
		br, bi := bRe[i], bIm[i]
		aRe[i] = ar*br + ai*bi
		aIm[i] = ar*bi - ai*br
	}
}

// degenerateProduct multiplies the interleaved complex sequences
// (a[2m·h], a[(2m+1)·h]) and (b[2m·h], b[(2m+1)·h]) as conj(a)·b, writing
// the real and imaginary parts to dst[2m] and dst[2m+1]. The pair at m = 0
// is two reals and is wrong here; the caller overwrites it.
func degenerateProduct(dst, a, b []float64, rows, h int) {
	for m := 0; m < rows/2; m++ {
		even, odd := 2*m*h, (2*m+1)*h
		ar, ai := a[even], a[odd]
		br, bi := b[even], b[odd]
		dst[2*m] = ar*br + ai*bi
		dst[2*m+1] = ar*bi - ai*br
	}
}
