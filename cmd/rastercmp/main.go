// Command rastercmp inspects and compares georeferenced raster files from
// the command line. It exits non-zero when a comparison finds differences or
// when a raster cannot be read.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
