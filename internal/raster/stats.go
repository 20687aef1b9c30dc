package raster

import "math"

// BandStats holds summary statistics for one band. NaN samples (the usual
// representation of nodata after float conversion) are excluded.
type BandStats struct {
	Band        int     `json:"band"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Mean        float64 `json:"mean"`
	StdDev      float64 `json:"std_dev"`
	NoDataCount int     `json:"nodata_count,omitempty"`
}

// Stats computes min, max, mean, and standard deviation over the band's
// samples in one pass. A band with no valid samples reports all-zero stats
// with NoDataCount equal to the grid size.
func (b Band) Stats() BandStats {
	st := BandStats{Min: math.Inf(1), Max: math.Inf(-1)}

	var sum, sumSq float64
	var n int
	for _, v := range b.Data {
		if math.IsNaN(v) {
			st.NoDataCount++
			continue
		}
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		sum += v
		sumSq += v * v
		n++
	}

	if n == 0 {
		return BandStats{NoDataCount: st.NoDataCount}
	}

	st.Mean = sum / float64(n)
	variance := sumSq/float64(n) - st.Mean*st.Mean
	if variance > 0 {
		st.StdDev = math.Sqrt(variance)
	}
	return st
}
