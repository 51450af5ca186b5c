package testutil

import "math/rand"

// DeterministicNoise generates uniform noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicMatrix returns a rows×cols matrix of seeded uniform noise.
func DeterministicMatrix(seed int64, rows, cols int, amplitude float64) [][]float64 {
	flat := DeterministicNoise(seed, amplitude, rows*cols)
	out := make([][]float64, rows)
	for i := range out {
		out[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return out
}

// Impulse2D returns a rows×cols matrix that is zero except for a 1 at (r, c).
func Impulse2D(rows, cols, r, c int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}
	if r >= 0 && r < rows && c >= 0 && c < cols {
		out[r][c] = 1
	}
	return out
}

// Constant2D returns a rows×cols matrix filled with value.
func Constant2D(rows, cols int, value float64) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = value
		}
	}
	return out
}

// Flatten concatenates the rows of m.
func Flatten(m [][]float64) []float64 {
	var out []float64
	for _, row := range m {
		out = append(out, row...)
	}
	return out
}
