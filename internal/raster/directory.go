package raster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions lists the file extensions CompareDirectory treats as
// rasters. Matching is case-insensitive.
var DefaultExtensions = []string{".tif", ".tiff"}

// FileComparison is the per-file outcome of a directory comparison.
type FileComparison struct {
	Name  string `json:"name"`
	Equal bool   `json:"equal"`
	// Missing is set when the file has no same-named counterpart in the
	// second directory. The batch continues past it.
	Missing bool   `json:"missing,omitempty"`
	Error   string `json:"error,omitempty"`
	// Result carries the full comparison diagnostics when the pair was
	// actually compared.
	Result *CompareResult `json:"result,omitempty"`
}

// CompareDirectory compares every raster file in dirA against the same-named
// file in dirB, in lexical directory order, one pass.
//
// A missing counterpart or a per-pair read failure is recorded on that
// file's entry and the batch continues; only an unreadable dirA aborts the
// whole call. The returned slice holds one entry per raster file found in
// dirA.
func CompareDirectory(dirA, dirB string) ([]FileComparison, error) {
	entries, err := os.ReadDir(dirA)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrOpen, dirA, err)
	}

	var results []FileComparison
	for _, entry := range entries {
		if entry.IsDir() || !hasRasterExt(entry.Name()) {
			continue
		}

		counterpart := filepath.Join(dirB, entry.Name())
		if _, err := os.Stat(counterpart); err != nil {
			results = append(results, FileComparison{
				Name:    entry.Name(),
				Missing: true,
				Error:   fmt.Errorf("%w: %s not in %s", ErrMissingCounterpart, entry.Name(), dirB).Error(),
			})
			continue
		}

		res, err := CompareRasters(filepath.Join(dirA, entry.Name()), counterpart)
		if err != nil {
			results = append(results, FileComparison{Name: entry.Name(), Error: err.Error()})
			continue
		}
		results = append(results, FileComparison{Name: entry.Name(), Equal: res.Equal, Result: res})
	}

	return results, nil
}

func hasRasterExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range DefaultExtensions {
		if ext == want {
			return true
		}
	}
	return false
}
