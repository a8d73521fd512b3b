package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	lzma "seaglzma"
)

// fileInfo is one lzmainfo record.
type fileInfo struct {
	File      string `json:"file" yaml:"file"`
	lzma.Info `yaml:",inline"`
}

// InfoMain runs lzmainfo, which prints the container headers of its
// arguments without decompressing them.
func InfoMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	err := runInfo(args, stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "lzmainfo: error: %v\n", err)
	}
	return ExitCode(err)
}

func runInfo(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var format string
	var verbose bool

	flagSet := pflag.NewFlagSet("lzmainfo", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&format, "format", "text", "output format: text, yaml or json")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log debug records to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	printHelp := func() {
		fmt.Fprintf(stderr, `Print the header fields of LZMA containers.

Usage:
  lzmainfo [flags] FILE...

FILE "-" reads standard input.

Flags:
%s`, flagSet.FlagUsages())
	}

	if err := flagSet.Parse(args); err != nil {
		printHelp()
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return Exitf(ExitUsage, "%v", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp()
		return nil
	}
	switch format {
	case "text", "yaml", "json":
	default:
		return Exitf(ExitUsage, "unknown format %q", format)
	}
	files := flagSet.Args()
	if len(files) == 0 {
		printHelp()
		return Exitf(ExitUsage, "no input files")
	}

	logger := NewLogger(stderr, verbose).With("command", "lzmainfo")

	var infos []fileInfo
	var firstErr error
	for _, name := range files {
		data, err := ReadInput(name, stdin)
		if err != nil {
			if firstErr == nil {
				firstErr = Exitf(ExitInput, "unable to read %s: %v", name, err)
			}
			logger.Warn("unable to read file", "file", name, "error", err)
			continue
		}
		info, err := lzma.Inspect(data)
		if err != nil {
			if firstErr == nil {
				firstErr = CodecExit(fmt.Errorf("%s: %w", name, err))
			}
			logger.Warn("not a container", "file", name, "error", err)
			continue
		}
		infos = append(infos, fileInfo{File: name, Info: info})
	}

	if err := writeInfos(stdout, format, infos); err != nil {
		return Exitf(ExitOutput, "%v", err)
	}
	return firstErr
}

func writeInfos(w io.Writer, format string, infos []fileInfo) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(infos); err != nil {
			return err
		}
		return enc.Close()
	}
	for i, info := range infos {
		if i > 0 {
			fmt.Fprintln(w)
		}
		props := info.Properties
		if props == "" {
			props = "invalid"
		}
		streamSize := "unknown"
		if info.StreamSizeKnown {
			streamSize = fmt.Sprint(info.StreamSize)
		}
		_, err := fmt.Fprintf(w, `%s
  payload length:      %d
  compressed length:   %d
  decompressed length: %d
  properties:          %#02x (%s)
  dictionary size:     %d
  stream size:         %s
  trailing bytes:      %d
`, info.File, info.PayloadLen, info.CompressedLen, info.DecompressedLen,
			info.PropertiesByte, props, info.DictSize, streamSize, info.TrailingBytes)
		if err != nil {
			return err
		}
	}
	return nil
}
