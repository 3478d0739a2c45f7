// Command rgbproc runs the golden-model image filters over a pixel text
// stream.
//
// Usage:
//
//	rgbproc [flags] <command> [args]
//
// Commands:
//
//	run      - Filter one stream (identity, median, low-pass, high-pass, gray, gen-matrix)
//	batch    - Run every filter over one input file concurrently
//	compare  - Compare a candidate stream against a golden one
//	gen      - Generate a ramp test image
//	version  - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/rgbproc/cmd/rgbproc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
