// unlzma decompresses an LZMA container, recovering data from streams
// that lack an end-of-stream marker.
//
// Usage:
//
//	unlzma [flags] INPUT [OUTPUT]
package main

import (
	"os"

	"seaglzma/internal/cli"
)

func main() {
	os.Exit(cli.Unlzma.Main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
