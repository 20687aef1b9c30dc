package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/raster-tools-mcp/internal/raster"
)

// Version is set by ldflags during build.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "rastercmp",
	Short: "Inspect and compare georeferenced raster files",
	Long: `rastercmp reads multi-band georeferenced rasters (GeoTIFF and any
other format GDAL can open) and answers three questions: what is in this
file, what value sits at a geographic coordinate, and do two files (or two
directories of files) hold identical pixels.

Comparisons check pixel values only; projection and geotransform metadata
may differ between files that still compare equal.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(pixelCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rastercmp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rastercmp v%s\n", Version)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <raster>",
	Short: "Print raster metadata and per-band statistics as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := raster.ReadInfo(args[0])
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

var (
	pixelLat float64
	pixelLon float64
)

var pixelCmd = &cobra.Command{
	Use:   "pixel <raster>",
	Short: "Sample band 1 at a geographic coordinate",
	Long: `Sample the first band of a raster. With --lat and --lon the point is
converted to a pixel index through the raster's geotransform; without them
the value at pixel (0,0) is printed. A point outside the raster extent is
an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		latSet := cmd.Flags().Changed("lat")
		lonSet := cmd.Flags().Changed("lon")
		if latSet != lonSet {
			return fmt.Errorf("--lat and --lon must be given together")
		}

		var points []raster.GeoPoint
		if latSet {
			points = []raster.GeoPoint{{Lat: pixelLat, Lon: pixelLon}}
		}

		res, err := raster.PixelValueAt(args[0], points)
		if err != nil {
			return err
		}
		for _, s := range res.Samples {
			fmt.Printf("band %d row %d col %d: %g\n", res.Band, s.Row, s.Col, s.Value)
		}
		return nil
	},
}

func init() {
	pixelCmd.Flags().Float64Var(&pixelLat, "lat", 0, "latitude / geographic Y of the point to sample")
	pixelCmd.Flags().Float64Var(&pixelLon, "lon", 0, "longitude / geographic X of the point to sample")
}

var compareJSON bool

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Compare two raster files, or two directories of raster files",
	Long: `Compare pixel values band by band. Given two files, reports whether
they are identical and where they first differ. Given two directories,
compares every raster in the first against the same-named file in the
second; files without a counterpart are reported and skipped.

Exits with status 1 when any pair differs or cannot be compared.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dirA, errA := isDir(args[0])
		dirB, errB := isDir(args[1])
		if errA != nil {
			return errA
		}
		if errB != nil {
			return errB
		}
		if dirA != dirB {
			return fmt.Errorf("cannot compare a directory with a file: %s vs %s", args[0], args[1])
		}

		if dirA {
			return compareDirectories(args[0], args[1])
		}
		return compareFiles(args[0], args[1])
	},
}

func init() {
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "print the full comparison report as JSON")
}

func compareFiles(pathA, pathB string) error {
	res, err := raster.CompareRasters(pathA, pathB)
	if err != nil {
		return err
	}

	if compareJSON {
		if err := printJSON(res); err != nil {
			return err
		}
	} else if res.Equal {
		fmt.Printf("%s and %s are identical (%d bands)\n", pathA, pathB, res.BandsA)
	} else {
		fmt.Printf("%s and %s DIFFER: %s\n", pathA, pathB, res.Detail)
		if res.DiffBand != 0 {
			fmt.Printf("  first difference at band %d row %d col %d: %g vs %g\n",
				res.DiffBand, res.DiffRow, res.DiffCol, res.ValueA, res.ValueB)
		}
	}

	if !res.Equal {
		return fmt.Errorf("rasters differ")
	}
	return nil
}

func compareDirectories(dirA, dirB string) error {
	results, err := raster.CompareDirectory(dirA, dirB)
	if err != nil {
		return err
	}

	if compareJSON {
		if err := printJSON(results); err != nil {
			return err
		}
	}

	unequal := 0
	for _, r := range results {
		switch {
		case r.Missing:
			unequal++
			if !compareJSON {
				fmt.Printf("%-40s MISSING counterpart\n", r.Name)
			}
		case r.Error != "":
			unequal++
			if !compareJSON {
				fmt.Printf("%-40s ERROR: %s\n", r.Name, r.Error)
			}
		case r.Equal:
			if !compareJSON {
				fmt.Printf("%-40s equal\n", r.Name)
			}
		default:
			unequal++
			if !compareJSON {
				fmt.Printf("%-40s DIFFERS: %s\n", r.Name, r.Result.Detail)
			}
		}
	}

	if unequal > 0 {
		return fmt.Errorf("%d of %d pairs differ or could not be compared", unequal, len(results))
	}
	fmt.Printf("all %d pairs equal\n", len(results))
	return nil
}

func isDir(path string) (bool, error) {
	st, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("cannot stat %s: %w", path, err)
	}
	return st.IsDir(), nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
