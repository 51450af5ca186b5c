package xcorr2d

import "errors"

// Errors returned by correlation functions.
var (
	// ErrInvalidDimension is returned when an image or kernel has a
	// non-positive or inconsistent size, or the kernel exceeds the image.
	ErrInvalidDimension = errors.New("xcorr2d: invalid dimension")

	// ErrUnsupportedSize is returned when a transform order exceeds what the
	// Weights were created for, or a requested maximum order is out of range.
	ErrUnsupportedSize = errors.New("xcorr2d: unsupported transform size")

	// ErrAllocationFailure is returned when scratch or spectrum storage
	// cannot be obtained.
	ErrAllocationFailure = errors.New("xcorr2d: allocation failure")

	// ErrWeightsClosed is returned when Weights are used after Close.
	ErrWeightsClosed = errors.New("xcorr2d: weights closed")
)
