package lzma

import (
	"errors"
	"log/slog"
)

// MaxDataSize is the largest input the container can describe: the
// decompressed length field is 32 bits wide.
const MaxDataSize = 1<<32 - 1

// MinDictSize is the smallest dictionary size the codec accepts.
const MinDictSize = 1 << 12

// EncoderConfig configures compression. The zero value selects
// DefaultStreamParams with an end-of-stream marker.
type EncoderConfig struct {
	// Params selects the properties and dictionary size. Nil selects
	// DefaultStreamParams; a zero DictSize selects DefaultDictSize.
	Params *StreamParams
	// OmitEOSMarker leaves the end-of-stream marker off the body.
	// Decoders then stop when the payload runs out.
	OmitEOSMarker bool
	Logger        *slog.Logger
}

func (c *EncoderConfig) fill() {
	p := DefaultStreamParams
	if c.Params != nil {
		p = *c.Params
	}
	if p.DictSize == 0 {
		p.DictSize = DefaultDictSize
	}
	c.Params = &p
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
}

// Verify checks the configuration and fills in defaults.
func (c *EncoderConfig) Verify() error {
	if c == nil {
		return errors.New("lzma: EncoderConfig is nil")
	}
	c.fill()
	if err := c.Params.Properties.verify(); err != nil {
		return err
	}
	if c.Params.DictSize < MinDictSize {
		return errors.New("lzma: dictionary size is out of range")
	}
	return nil
}

// Compress compresses data and frames it as a container.
func (c EncoderConfig) Compress(data []byte) ([]byte, error) {
	if err := c.Verify(); err != nil {
		return nil, err
	}
	if uint64(len(data)) > MaxDataSize {
		return nil, ErrTooLarge
	}
	body, err := compressRaw(data, *c.Params, !c.OmitEOSMarker)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("compressed",
		"size", len(data),
		"compressed", len(body),
		"properties", c.Params.Properties.String(),
		"dict_size", c.Params.DictSize,
		"eos_marker", !c.OmitEOSMarker)
	return Build(body, uint64(len(data)), *c.Params), nil
}

// Compress compresses data with the default configuration.
func Compress(data []byte) ([]byte, error) {
	return EncoderConfig{}.Compress(data)
}
