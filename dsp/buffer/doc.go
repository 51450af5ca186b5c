// Package buffer provides a reusable float64 arena and pool for
// allocation-friendly transform scratch. A Buffer is carved into named
// regions with bounds-checked views; a Pool recycles Buffers between calls
// that share a transform size.
package buffer
