package raster

import "errors"

var (
	// ErrOpen indicates a raster file could not be opened or read.
	ErrOpen = errors.New("raster: cannot open dataset")
	// ErrOutOfRange indicates a pixel index outside [0,rows) x [0,cols).
	ErrOutOfRange = errors.New("raster: pixel index out of range")
	// ErrMissingCounterpart indicates a file present in one comparison
	// directory has no same-named file in the other.
	ErrMissingCounterpart = errors.New("raster: no counterpart file")
)
