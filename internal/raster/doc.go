// Package raster provides read-only access to multi-band georeferenced
// raster files for the MCP server and the rastercmp command.
//
// All file access goes through the GDAL library (via github.com/airbusgeo/godal),
// so any raster format GDAL can read works here; GeoTIFF is the primary target.
// Every operation is self-contained: it opens its input, reads what it needs,
// and releases the dataset handle before returning. There is deliberately no
// caching layer and no package-level mutable state beyond one-time GDAL driver
// registration.
//
// # Coordinate System
//
// Pixel indices are 0-based (row, col) with row 0 at the top of the grid.
// Geographic coordinates map to pixel indices through the six-parameter affine
// geotransform in GDAL element order:
//
//	[0] origin X      [1] pixel width   [2] row rotation
//	[3] origin Y      [4] col rotation  [5] pixel height
//
// For the common north-up raster the pixel height is negative, so row
// increases as latitude decreases. The inverse mapping used for lookups is
//
//	col = floor((lon - originX) / pixelWidth)
//	row = floor((lat - originY) / pixelHeight)
//
// # Error Handling
//
// Failures are classified by the sentinel errors in errors.go (ErrOpen,
// ErrOutOfRange, ErrMissingCounterpart) and can be tested with errors.Is.
// A band-count mismatch between two compared rasters is not an error: it is a
// meaningful "not equal" comparison outcome.
//
// # Comparison Semantics
//
// CompareRasters checks pixel values only. Two rasters with different
// projections or geotransforms still compare equal when every band sample
// matches. Comparisons short-circuit on the first differing sample.
package raster
