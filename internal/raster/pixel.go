package raster

import "fmt"

// GeoPoint is a geographic (latitude, longitude) coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PixelSample is one resolved lookup: the requested geographic point, the
// pixel index it mapped to, and the sample value found there.
type PixelSample struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Value float64 `json:"value"`
}

// PixelResult contains the samples for one PixelValueAt call, in input order.
type PixelResult struct {
	Path    string        `json:"path"`
	Band    int           `json:"band"`
	Samples []PixelSample `json:"samples"`
}

// PixelValueAt samples the first band of the raster at path.
//
// Parameters:
//   - path: raster file to read.
//   - points: geographic points to look up. May be empty.
//
// With no points the result is a single sample at pixel (0,0). Otherwise each
// point is converted to a (row, col) index through the inverse geotransform
// and sampled. A point that maps outside the grid fails the whole call with
// an error wrapping ErrOutOfRange; no partial results are returned.
func PixelValueAt(path string, points []GeoPoint) (*PixelResult, error) {
	d, err := ReadDataset(path)
	if err != nil {
		return nil, err
	}
	if len(d.Bands) == 0 {
		return nil, fmt.Errorf("%w %q: no raster bands", ErrOpen, path)
	}
	band := d.Bands[0]

	result := &PixelResult{Path: path, Band: 1}

	if len(points) == 0 {
		v, err := band.At(0, 0)
		if err != nil {
			return nil, err
		}
		lon, lat := d.Transform.PixelToGeo(0, 0)
		result.Samples = []PixelSample{{Lat: lat, Lon: lon, Row: 0, Col: 0, Value: v}}
		return result, nil
	}

	result.Samples = make([]PixelSample, 0, len(points))
	for _, p := range points {
		row, col := d.Transform.GeoToPixel(p.Lat, p.Lon)
		v, err := band.At(row, col)
		if err != nil {
			return nil, fmt.Errorf("point (%g, %g): %w", p.Lat, p.Lon, err)
		}
		result.Samples = append(result.Samples, PixelSample{
			Lat: p.Lat, Lon: p.Lon, Row: row, Col: col, Value: v,
		})
	}
	return result, nil
}
