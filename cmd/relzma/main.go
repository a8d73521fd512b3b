// relzma compresses a file into an LZMA container.
//
// Usage:
//
//	relzma [flags] INPUT [OUTPUT]
package main

import (
	"os"

	"seaglzma/internal/cli"
)

func main() {
	os.Exit(cli.Relzma.Main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
