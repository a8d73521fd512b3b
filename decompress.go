package lzma

import (
	"errors"
	"log/slog"
	"math"
)

// DecoderConfig configures decompression. The zero value is usable.
type DecoderConfig struct {
	// DictCap limits the dictionary size a legacy header may request.
	// Zero selects the codec's default limit.
	DictCap int
	// Logger receives debug records about recovered streams. Nil
	// discards them.
	Logger *slog.Logger
}

func (c *DecoderConfig) fill() {
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
}

// Verify checks the configuration and fills in defaults.
func (c *DecoderConfig) Verify() error {
	if c == nil {
		return errors.New("lzma: DecoderConfig is nil")
	}
	c.fill()
	if c.DictCap < 0 {
		return errors.New("lzma: negative dictionary capacity")
	}
	return nil
}

// stepKind tags the outcome of decoding one segment.
type stepKind int

const (
	// stepProgress: the segment ended with an end-of-stream marker and
	// more input follows.
	stepProgress stepKind = iota
	// stepDone: all input was consumed.
	stepDone
	// stepFailed: the codec rejected the segment.
	stepFailed
	// stepPremature: input is left over but the segment has no
	// end-of-stream marker.
	stepPremature
)

type step struct {
	kind stepKind
	seg  segment
	err  error
}

func (c *DecoderConfig) next(input []byte) step {
	seg, err := decodeSegment(input, c.DictCap)
	switch {
	case err != nil:
		return step{kind: stepFailed, err: err}
	case len(seg.remainder) == 0:
		return step{kind: stepDone, seg: seg}
	case !seg.eos || len(seg.remainder) >= len(input):
		return step{kind: stepPremature, seg: seg}
	default:
		return step{kind: stepProgress, seg: seg}
	}
}

// DecompressStream decodes a legacy LZMA stream whose header normally
// carries NoSize. The stream may end without an end-of-stream marker,
// and further streams may follow it back to back. Once some data has
// been recovered, a segment the codec rejects is treated as trailing
// garbage and decoding stops there.
func (c DecoderConfig) DecompressStream(stream []byte) ([]byte, error) {
	if err := c.Verify(); err != nil {
		return nil, err
	}
	out, _, err := c.decompressStream(stream)
	return out, err
}

// decompressStream is DecompressStream on a verified config. endMarker
// reports whether the last decoded segment closed with an end-of-stream
// marker.
func (c *DecoderConfig) decompressStream(stream []byte) (out []byte, endMarker bool, err error) {
	input := stream
	for {
		s := c.next(input)
		if s.kind == stepFailed {
			if len(out) == 0 {
				return nil, false, &CodecError{Kind: Corrupt, Err: s.err}
			}
			c.Logger.Debug("ignoring undecodable trailing data",
				"offset", len(stream)-len(input),
				"bytes", len(input),
				"error", s.err)
			// Only a segment with a marker can be followed by more input.
			return out, true, nil
		}
		out = append(out, s.seg.out...)
		switch s.kind {
		case stepDone:
			return out, s.seg.eos, nil
		case stepPremature:
			return nil, false, &CodecError{Kind: PrematureEnd,
				Msg: "compressed data ended before the end-of-stream marker was reached"}
		}
		c.Logger.Debug("stream ended with more input pending",
			"offset", len(stream)-len(s.seg.remainder),
			"remaining", len(s.seg.remainder))
		input = s.seg.remainder
	}
}

// Decompress parses a container and decodes its payload.
//
// A stream without an end-of-stream marker can decode a few bytes past
// its true end before the input runs out. When the last stream has no
// marker, output longer than the container's decompressed length is
// cut to that length. Output of a stream that closed on a marker is
// returned whole.
func (c DecoderConfig) Decompress(data []byte) ([]byte, error) {
	if err := c.Verify(); err != nil {
		return nil, err
	}
	ct, err := ParseContainer(data)
	if err != nil {
		return nil, err
	}
	out, endMarker, err := c.decompressStream(ct.Stream())
	if err != nil {
		return nil, err
	}
	want := int64(ct.DecompressedLen)
	got := int64(len(out))
	switch {
	case got > want && endMarker:
		c.Logger.Warn("decoded more data than declared",
			"declared", want, "decoded", got)
	case got > want && got <= math.MaxUint32:
		c.Logger.Debug("discarding output past declared length",
			"declared", want, "decoded", got)
		out = out[:want]
	case got < want:
		c.Logger.Warn("decoded less data than declared",
			"declared", want, "decoded", got)
	}
	return out, nil
}

// Decompress decodes a container with the default configuration.
func Decompress(data []byte) ([]byte, error) {
	return DecoderConfig{}.Decompress(data)
}
