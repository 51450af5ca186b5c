package xcorr2d

import vecmath "github.com/cwbudde/algo-vecmath"

// Direct computes the same valid cross-correlation as Correlate by sliding
// kernel over image. This is an O(R·C·Kr·Kc) algorithm; it needs no Weights
// and serves as the reference for Correlate.
func Direct(image, kernel Grid) (Grid, error) {
	if err := validateInputs(image, kernel); err != nil {
		return Grid{}, err
	}

	out := NewGrid(image.Rows-kernel.Rows+1, image.Cols-kernel.Cols+1)
	for i := 0; i < out.Rows; i++ {
		for j := 0; j < out.Cols; j++ {
			var sum float64
			for a := 0; a < kernel.Rows; a++ {
				sum += vecmath.DotProduct(image.Row(i + a)[j:j+kernel.Cols], kernel.Row(a))
			}
			out.Set(i, j, sum)
		}
	}
	return out, nil
}
