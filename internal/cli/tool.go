// Package cli holds the plumbing shared by the relzma, unlzma and
// lzmainfo commands: flag handling, logging, input and output
// selection, and the mapping of failures to exit statuses.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"seaglzma/internal/config"
)

// Tool is a command that turns one input into one output.
type Tool struct {
	Name    string
	Summary string
	// Transform produces the output. Errors without an exit status are
	// mapped by CodecExit.
	Transform func(cfg *config.Config, logger *slog.Logger, data []byte) ([]byte, error)
}

// Relzma compresses its input into a container.
var Relzma = &Tool{
	Name:    "relzma",
	Summary: "Compress INPUT into an LZMA container.",
	Transform: func(cfg *config.Config, logger *slog.Logger, data []byte) ([]byte, error) {
		return cfg.EncoderConfig(logger).Compress(data)
	},
}

// Unlzma decompresses a container.
var Unlzma = &Tool{
	Name:    "unlzma",
	Summary: "Decompress the LZMA container INPUT.",
	Transform: func(cfg *config.Config, logger *slog.Logger, data []byte) ([]byte, error) {
		out, err := cfg.DecoderConfig(logger).Decompress(data)
		if err != nil {
			return nil, err
		}
		if len(out) == 0 {
			return nil, Exitf(ExitCodec, "no data decompressed")
		}
		return out, nil
	},
}

// Main runs the tool and returns the process exit status.
func (t *Tool) Main(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	err := t.run(args, stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: error: %v\n", t.Name, err)
	}
	return ExitCode(err)
}

func (t *Tool) run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var configPath string
	var verbose, force bool

	flagSet := pflag.NewFlagSet(t.Name, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&configPath, "config", "", "YAML config file (default: $"+config.EnvVar+")")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log debug records to stderr")
	flagSet.BoolVarP(&force, "force", "f", false, "write binary output even to a terminal")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			t.printHelp(stderr, flagSet)
			return nil
		}
		t.printHelp(stderr, flagSet)
		return Exitf(ExitUsage, "%v", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		t.printHelp(stderr, flagSet)
		return nil
	}
	positional := flagSet.Args()
	if len(positional) < 1 || len(positional) > 2 {
		t.printHelp(stderr, flagSet)
		return Exitf(ExitUsage, "expected INPUT [OUTPUT], got %d arguments", len(positional))
	}

	logger := NewLogger(stderr, verbose).With("command", t.Name)

	cfg, err := config.Load(configPath)
	if err != nil {
		return Exitf(ExitUsage, "%v", err)
	}

	input := positional[0]
	data, err := ReadInput(input, stdin)
	if err != nil {
		return Exitf(ExitInput, "unable to read %s: %v", input, err)
	}

	out, err := t.Transform(cfg, logger, data)
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr
		}
		return CodecExit(err)
	}

	output := "-"
	if len(positional) == 2 {
		output = positional[1]
	}
	if err := WriteOutput(output, out, stdout, force); err != nil {
		return Exitf(ExitOutput, "unable to write %s: %v", output, err)
	}
	logger.Debug("done", "input", input, "output", output, "in_bytes", len(data), "out_bytes", len(out))
	return nil
}

func (t *Tool) printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `%s

Usage:
  %s [flags] INPUT [OUTPUT]

INPUT "-" reads standard input. Without OUTPUT the result goes to
standard output.

Flags:
%s`, t.Summary, t.Name, flagSet.FlagUsages())
}
