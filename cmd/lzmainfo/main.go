// lzmainfo prints the header fields of LZMA containers.
//
// Usage:
//
//	lzmainfo [--format text|yaml|json] FILE...
package main

import (
	"os"

	"seaglzma/internal/cli"
)

func main() {
	os.Exit(cli.InfoMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
