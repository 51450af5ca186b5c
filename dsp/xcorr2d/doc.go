// Package xcorr2d computes 2D cross-correlation of a real image with a
// smaller real kernel in O(n log n) using a packed real 2D FFT.
//
// Only the valid window is produced: positions where the kernel lies
// entirely inside the image. For an R×C image and Kr×Kc kernel the result is
// (R-Kr+1)×(C-Kc+1).
//
// # Usage
//
// Build the transform tables once and share them:
//
//	w, err := xcorr2d.NewWeights(11) // lengths up to 2048 per axis
//	defer w.Close()
//
//	corr, err := w.Correlate(image, kernel)
//	row, col, score := corr.Peak()
//
// Weights are immutable and safe for concurrent use. Each Correlate call owns
// its scratch; pass WithScratchPool to recycle it between calls of the same
// size.
//
// # Packed layout
//
// A real rows×cols signal is stored as two arrays of rows·cols/2 values,
// Re and Im, one row of cols/2 packed slots after another; see [Spectrum].
// The forward transform's raw output is twice the DFT and is halved; the
// inverse is divided by rows·cols. The first packed column folds the DC and
// Nyquist columns together, so the correlation product treats it separately.
//
// # Reference
//
// [Direct] computes the same window by sliding the kernel. It is O(R·C·Kr·Kc)
// and is the oracle the FFT path is tested against.
package xcorr2d
