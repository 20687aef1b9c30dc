package raster

import (
	"fmt"
	"math"
	"sync"

	"github.com/airbusgeo/godal"
)

// registerDrivers makes GDAL driver registration a one-time, race-free side
// effect of the first open.
var registerDrivers sync.Once

// GeoTransform is the six-parameter affine mapping between pixel indices and
// geographic coordinates, in GDAL element order: origin X, pixel width, row
// rotation, origin Y, col rotation, pixel height.
type GeoTransform [6]float64

// OriginX returns the geographic X coordinate of the top-left corner.
func (gt GeoTransform) OriginX() float64 { return gt[0] }

// OriginY returns the geographic Y coordinate of the top-left corner.
func (gt GeoTransform) OriginY() float64 { return gt[3] }

// PixelWidth returns the geographic width of one pixel.
func (gt GeoTransform) PixelWidth() float64 { return gt[1] }

// PixelHeight returns the geographic height of one pixel. Negative for
// north-up rasters.
func (gt GeoTransform) PixelHeight() float64 { return gt[5] }

// PixelToGeo returns the geographic coordinate of the top-left corner of
// pixel (row, col), applying the full affine transform including any
// rotation terms.
func (gt GeoTransform) PixelToGeo(row, col int) (x, y float64) {
	x = gt[0] + float64(col)*gt[1] + float64(row)*gt[2]
	y = gt[3] + float64(col)*gt[4] + float64(row)*gt[5]
	return x, y
}

// GeoToPixel converts a geographic point to the (row, col) index of the pixel
// containing it, using floor division so coordinates inside a pixel's extent
// resolve to that pixel. The result is not bounds-checked; callers sample
// through Band.At which is.
func (gt GeoTransform) GeoToPixel(lat, lon float64) (row, col int) {
	col = int(math.Floor((lon - gt[0]) / gt[1]))
	row = int(math.Floor((lat - gt[3]) / gt[5]))
	return row, col
}

// Band holds one fully materialized raster band as a row-major grid of
// float64 samples. GDAL converts narrower integer types on read, so a single
// sample type covers every input format.
type Band struct {
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	Data []float64 `json:"-"`
}

// At returns the sample at (row, col).
//
// Indices outside [0,rows) x [0,cols) return an error wrapping ErrOutOfRange
// rather than wrapping around into a neighboring row.
func (b Band) At(row, col int) (float64, error) {
	if row < 0 || row >= b.Rows || col < 0 || col >= b.Cols {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfRange, row, col, b.Rows, b.Cols)
	}
	return b.Data[row*b.Cols+col], nil
}

// Dataset is a raster file fully materialized in memory: metadata plus every
// band, in file order. The underlying GDAL handle is released before a
// Dataset is returned to the caller.
type Dataset struct {
	Path       string       `json:"path"`
	Rows       int          `json:"rows"`
	Cols       int          `json:"cols"`
	BandCount  int          `json:"band_count"`
	Transform  GeoTransform `json:"geotransform"`
	Projection string       `json:"projection"`
	Bands      []Band       `json:"bands"`
}

// ReadDataset opens the raster at path read-only and reads every band into
// memory.
//
// Returns an error wrapping ErrOpen if the file cannot be opened or its
// georeferencing cannot be read. A failure while reading a band returns an
// error, never a partially populated Dataset. The GDAL handle is released in
// all cases.
func ReadDataset(path string) (*Dataset, error) {
	ds, err := openDataset(path)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	st := ds.Structure()
	gt, err := ds.GeoTransform()
	if err != nil {
		return nil, fmt.Errorf("%w %q: no geotransform: %v", ErrOpen, path, err)
	}

	out := &Dataset{
		Path:       path,
		Rows:       st.SizeY,
		Cols:       st.SizeX,
		BandCount:  st.NBands,
		Transform:  gt,
		Projection: ds.Projection(),
		Bands:      make([]Band, 0, st.NBands),
	}

	for i, band := range ds.Bands() {
		buf := make([]float64, st.SizeX*st.SizeY)
		if err := band.Read(0, 0, buf, st.SizeX, st.SizeY); err != nil {
			return nil, fmt.Errorf("read band %d of %q: %w", i+1, path, err)
		}
		out.Bands = append(out.Bands, Band{Rows: st.SizeY, Cols: st.SizeX, Data: buf})
	}

	return out, nil
}

// openDataset wraps godal.Open with driver registration and ErrOpen
// classification. Callers own the returned handle and must Close it.
func openDataset(path string) (*godal.Dataset, error) {
	registerDrivers.Do(godal.RegisterAll)

	ds, err := godal.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpen, path, err)
	}
	return ds, nil
}

// DatasetInfo summarizes a raster file for reporting: dimensions,
// georeferencing, and per-band value statistics.
type DatasetInfo struct {
	Path       string       `json:"path"`
	Rows       int          `json:"rows"`
	Cols       int          `json:"cols"`
	BandCount  int          `json:"band_count"`
	Transform  GeoTransform `json:"geotransform"`
	Projection string       `json:"projection,omitempty"`
	BandStats  []BandStats  `json:"band_stats"`
}

// ReadInfo reads the raster at path and returns its metadata together with
// statistics for every band.
func ReadInfo(path string) (*DatasetInfo, error) {
	d, err := ReadDataset(path)
	if err != nil {
		return nil, err
	}

	info := &DatasetInfo{
		Path:       d.Path,
		Rows:       d.Rows,
		Cols:       d.Cols,
		BandCount:  d.BandCount,
		Transform:  d.Transform,
		Projection: d.Projection,
		BandStats:  make([]BandStats, 0, d.BandCount),
	}
	for i, b := range d.Bands {
		st := b.Stats()
		st.Band = i + 1
		info.BandStats = append(info.BandStats, st)
	}
	return info, nil
}
