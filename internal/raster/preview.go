package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Ramp endpoints for band previews, blended in Lab space so the gradient is
// perceptually even (cool blue through warm red).
var (
	rampLow  = colorful.Color{R: 0.230, G: 0.299, B: 0.754}
	rampHigh = colorful.Color{R: 0.706, G: 0.016, B: 0.150}
)

// PreviewResult contains a rendered band as base64-encoded PNG, along with
// the value range the color ramp was stretched over.
type PreviewResult struct {
	Path        string  `json:"path"`
	Band        int     `json:"band"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	ImageBase64 string  `json:"image_base64"`
	MimeType    string  `json:"mime_type"`
}

// BandPreview renders one band of the raster at path as a false-color PNG.
//
// Values are stretched linearly between the band's min and max and mapped
// through a blue-to-red perceptual ramp; NaN samples render transparent.
// When maxDim is positive and the grid is larger, the rendered image is
// downscaled to fit maxDim x maxDim preserving aspect ratio. Band indices
// are 1-based; an index outside [1, band count] returns an error wrapping
// ErrOutOfRange.
func BandPreview(path string, band, maxDim int) (*PreviewResult, error) {
	d, err := ReadDataset(path)
	if err != nil {
		return nil, err
	}
	if band < 1 || band > d.BandCount {
		return nil, fmt.Errorf("%w: band %d of %d", ErrOutOfRange, band, d.BandCount)
	}

	b := d.Bands[band-1]
	st := b.Stats()
	span := st.Max - st.Min
	if span == 0 || math.IsInf(span, 0) {
		span = 1
	}

	img := image.NewNRGBA(image.Rect(0, 0, b.Cols, b.Rows))
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			v := b.Data[row*b.Cols+col]
			if math.IsNaN(v) {
				continue // leave transparent
			}
			t := (v - st.Min) / span
			c := rampLow.BlendLab(rampHigh, t).Clamped()
			r, g, bl := c.RGB255()
			img.SetNRGBA(col, row, color.NRGBA{R: r, G: g, B: bl, A: 255})
		}
	}

	var rendered image.Image = img
	if maxDim > 0 && (b.Cols > maxDim || b.Rows > maxDim) {
		rendered = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	encoded, err := encodePNG(rendered)
	if err != nil {
		return nil, err
	}

	bounds := rendered.Bounds()
	return &PreviewResult{
		Path:        path,
		Band:        band,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Min:         st.Min,
		Max:         st.Max,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// DiffPreviewResult contains a rendered per-pixel difference of one band
// from two rasters, plus the count of differing samples.
type DiffPreviewResult struct {
	PathA       string `json:"path_a"`
	PathB       string `json:"path_b"`
	Band        int    `json:"band"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	DiffPixels  int    `json:"diff_pixels"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// DiffPreview renders the absolute per-pixel difference of one band between
// two rasters of identical dimensions. Both bands are rendered to grayscale
// over their combined value range and combined with a difference blend, so
// identical regions come out black and discrepancies glow.
func DiffPreview(pathA, pathB string, band int) (*DiffPreviewResult, error) {
	dA, err := ReadDataset(pathA)
	if err != nil {
		return nil, err
	}
	dB, err := ReadDataset(pathB)
	if err != nil {
		return nil, err
	}
	if band < 1 || band > dA.BandCount || band > dB.BandCount {
		return nil, fmt.Errorf("%w: band %d (files have %d and %d bands)",
			ErrOutOfRange, band, dA.BandCount, dB.BandCount)
	}

	bA, bB := dA.Bands[band-1], dB.Bands[band-1]
	if bA.Rows != bB.Rows || bA.Cols != bB.Cols {
		return nil, fmt.Errorf("diff preview: dimension mismatch: %dx%d vs %dx%d",
			bA.Rows, bA.Cols, bB.Rows, bB.Cols)
	}

	stA, stB := bA.Stats(), bB.Stats()
	lo, hi := math.Min(stA.Min, stB.Min), math.Max(stA.Max, stB.Max)

	diffPixels := 0
	for i := range bA.Data {
		if !samplesEqual(bA.Data[i], bB.Data[i]) {
			diffPixels++
		}
	}

	diff := blend.Difference(grayImage(bA, lo, hi), grayImage(bB, lo, hi))

	encoded, err := encodePNG(diff)
	if err != nil {
		return nil, err
	}

	return &DiffPreviewResult{
		PathA:       pathA,
		PathB:       pathB,
		Band:        band,
		Width:       bA.Cols,
		Height:      bA.Rows,
		DiffPixels:  diffPixels,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// grayImage renders a band to 8-bit grayscale with values stretched linearly
// over [lo, hi]. NaN samples render black.
func grayImage(b Band, lo, hi float64) *image.Gray {
	span := hi - lo
	if span == 0 || math.IsInf(span, 0) {
		span = 1
	}

	img := image.NewGray(image.Rect(0, 0, b.Cols, b.Rows))
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			v := b.Data[row*b.Cols+col]
			if math.IsNaN(v) {
				continue
			}
			t := (v - lo) / span
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			img.SetGray(col, row, color.Gray{Y: uint8(math.Round(t * 255))})
		}
	}
	return img
}

// encodePNG encodes an image as base64 PNG, the wire format every preview
// result uses.
func encodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode preview: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
