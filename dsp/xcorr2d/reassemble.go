package xcorr2d

// flipVertical maps packed row r to row (Rows - r) mod Rows.
// Rows 0 and Rows/2 map to themselves.
func flipVertical(s *Spectrum) {
	h := s.half()
	for i := 1; i < s.Rows/2; i++ {
		j, k := i*h, (s.Rows-i)*h
		swapBlock(s.Re[j:j+h], s.Re[k:k+h])
		swapBlock(s.Im[j:j+h], s.Im[k:k+h])
	}
}

// flipHorizontal maps sample column c to (Cols - c) mod Cols within every
// row. Odd samples live in Im, so Im column j pairs with h-1-j. Even samples
// live in Re, so Re column j pairs with h-j and column 0 stays put.
func flipHorizontal(s *Spectrum) {
	h := s.half()
	for idx := 0; idx < h/2; idx++ {
		k := h - idx - 1
		swapStrided(s.Im, idx, k, h, s.Rows)
		if idx > 0 {
			swapStrided(s.Re, idx, k+1, h, s.Rows)
		}
	}
}

func swapBlock(a, b []float64) {
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}

// swapStrided swaps data[i+r*stride] with data[j+r*stride] for r < count.
func swapStrided(data []float64, i, j, stride, count int) {
	for r := 0; r < count; r++ {
		base := r * stride
		data[base+i], data[base+j] = data[base+j], data[base+i]
	}
}

// reassemble undoes the index reversal of the correlation product's inverse
// and returns the top-left rows×cols window in raster order.
func reassemble(s *Spectrum, rows, cols int) Grid {
	flipVertical(s)
	flipHorizontal(s)
	return s.unpack(rows, cols)
}
