package lzma

import (
	"errors"
	"fmt"
)

// FormatErrorKind classifies container framing failures.
type FormatErrorKind int

const (
	// BadMagic means the input does not start with "LZMA".
	BadMagic FormatErrorKind = iota + 1
	// Truncated means the input is shorter than its header declares.
	Truncated
)

func (k FormatErrorKind) String() string {
	switch k {
	case BadMagic:
		return "bad magic"
	case Truncated:
		return "truncated"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// FormatError reports input that is not a well-formed container.
type FormatError struct {
	Kind FormatErrorKind
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Msg == "" {
		return "lzma: " + e.Kind.String()
	}
	return "lzma: " + e.Msg
}

// Is matches any FormatError of the same kind, so the sentinels below
// work with errors.Is.
func (e *FormatError) Is(target error) bool {
	t, ok := target.(*FormatError)
	return ok && t.Kind == e.Kind
}

// CodecErrorKind classifies failures of the compressed payload.
type CodecErrorKind int

const (
	// Corrupt means the codec rejected the stream before any data was
	// recovered.
	Corrupt CodecErrorKind = iota + 1
	// PrematureEnd means input was left over without an end-of-stream
	// marker.
	PrematureEnd
)

func (k CodecErrorKind) String() string {
	switch k {
	case Corrupt:
		return "corrupt"
	case PrematureEnd:
		return "premature end"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// CodecError reports a compressed payload that could not be decoded.
// Err holds the underlying codec error, if any.
type CodecError struct {
	Kind CodecErrorKind
	Msg  string
	Err  error
}

func (e *CodecError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("lzma: %s: %v", msg, e.Err)
	}
	return "lzma: " + msg
}

func (e *CodecError) Unwrap() error { return e.Err }

func (e *CodecError) Is(target error) bool {
	t, ok := target.(*CodecError)
	return ok && t.Kind == e.Kind
}

// Sentinel errors, for use with errors.Is.
var (
	ErrBadMagic     = &FormatError{Kind: BadMagic}
	ErrTruncated    = &FormatError{Kind: Truncated}
	ErrCorrupt      = &CodecError{Kind: Corrupt}
	ErrPrematureEnd = &CodecError{Kind: PrematureEnd}

	// ErrTooLarge is returned by Compress for input whose length does
	// not fit the 32-bit decompressed length field of the container.
	ErrTooLarge = errors.New("lzma: input exceeds 4 GiB container limit")
)
