package cli

import (
	"errors"
	"fmt"

	lzma "seaglzma"
)

// Exit statuses. The low four are the historical relzma/unlzma values;
// the container and stream failures each get their own bit.
const (
	ExitOK           = 0x00
	ExitUsage        = 0x01
	ExitInput        = 0x02
	ExitCodec        = 0x04
	ExitOutput       = 0x08
	ExitBadMagic     = 0x10
	ExitTruncated    = 0x20
	ExitPrematureEnd = 0x40
)

// ExitError carries the exit status a failure maps to.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the process exit status.
func (e *ExitError) ExitCode() int { return e.Code }

// Exitf wraps a formatted error with an exit status.
func Exitf(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}

// CodecExit maps a compression or decompression error to its exit
// status.
func CodecExit(err error) *ExitError {
	code := ExitCodec
	switch {
	case errors.Is(err, lzma.ErrBadMagic):
		code = ExitBadMagic
	case errors.Is(err, lzma.ErrTruncated):
		code = ExitTruncated
	case errors.Is(err, lzma.ErrPrematureEnd):
		code = ExitPrematureEnd
	}
	return &ExitError{Code: code, Err: err}
}

// ExitCode returns the exit status for err: zero for nil, the carried
// code for errors with an ExitCode method, ExitUsage otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitUsage
}
