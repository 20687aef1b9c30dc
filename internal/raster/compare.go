package raster

import (
	"fmt"
	"math"
)

// CompareResult reports the outcome of a pixel-value comparison between two
// rasters. When the rasters differ, Detail and the Diff* fields locate the
// first difference found.
type CompareResult struct {
	PathA  string `json:"path_a"`
	PathB  string `json:"path_b"`
	Equal  bool   `json:"equal"`
	BandsA int    `json:"bands_a"`
	BandsB int    `json:"bands_b"`
	Detail string `json:"detail,omitempty"`

	// First differing sample, 1-based band index. Only meaningful when
	// Detail reports a band difference.
	DiffBand int     `json:"diff_band,omitempty"`
	DiffRow  int     `json:"diff_row,omitempty"`
	DiffCol  int     `json:"diff_col,omitempty"`
	ValueA   float64 `json:"value_a,omitempty"`
	ValueB   float64 `json:"value_b,omitempty"`
}

// CompareRasters compares the pixel values of two raster files band by band.
//
// The comparison is content-only: projection and geotransform differences are
// ignored. Band counts are checked first, from metadata alone; a mismatch is
// an unequal result without any pixel data being read. Differing grid
// dimensions are likewise an unequal result. Otherwise bands are read and
// compared in file order, short-circuiting on the first differing sample.
//
// An error is returned only when a file cannot be opened or read; "the files
// differ" is never an error.
func CompareRasters(pathA, pathB string) (*CompareResult, error) {
	dsA, err := openDataset(pathA)
	if err != nil {
		return nil, err
	}
	defer dsA.Close()

	dsB, err := openDataset(pathB)
	if err != nil {
		return nil, err
	}
	defer dsB.Close()

	stA, stB := dsA.Structure(), dsB.Structure()
	result := &CompareResult{
		PathA:  pathA,
		PathB:  pathB,
		BandsA: stA.NBands,
		BandsB: stB.NBands,
	}

	if stA.NBands != stB.NBands {
		result.Detail = fmt.Sprintf("band count mismatch: %d vs %d", stA.NBands, stB.NBands)
		return result, nil
	}
	if stA.SizeX != stB.SizeX || stA.SizeY != stB.SizeY {
		result.Detail = fmt.Sprintf("dimension mismatch: %dx%d vs %dx%d",
			stA.SizeY, stA.SizeX, stB.SizeY, stB.SizeX)
		return result, nil
	}

	bandsA, bandsB := dsA.Bands(), dsB.Bands()
	bufA := make([]float64, stA.SizeX*stA.SizeY)
	bufB := make([]float64, stA.SizeX*stA.SizeY)

	for i := range bandsA {
		if err := bandsA[i].Read(0, 0, bufA, stA.SizeX, stA.SizeY); err != nil {
			return nil, fmt.Errorf("read band %d of %q: %w", i+1, pathA, err)
		}
		if err := bandsB[i].Read(0, 0, bufB, stA.SizeX, stA.SizeY); err != nil {
			return nil, fmt.Errorf("read band %d of %q: %w", i+1, pathB, err)
		}

		for j := range bufA {
			if samplesEqual(bufA[j], bufB[j]) {
				continue
			}
			result.Detail = fmt.Sprintf("band %d differs", i+1)
			result.DiffBand = i + 1
			result.DiffRow = j / stA.SizeX
			result.DiffCol = j % stA.SizeX
			result.ValueA = bufA[j]
			result.ValueB = bufB[j]
			return result, nil
		}
	}

	result.Equal = true
	return result, nil
}

// samplesEqual treats a NaN pair as equal so that a raster with NaN nodata
// always compares equal to itself.
func samplesEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
