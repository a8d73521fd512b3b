// Package lzma reads and writes the "LZMA" container: a 12-byte frame
// header holding payload and decompressed lengths, followed by a legacy
// LZMA1 header and a raw LZMA1 body.
package lzma

import (
	"encoding/binary"
	"fmt"
)

// Magic starts every container.
const Magic = "LZMA"

// containerHeaderLen covers magic, payload length and decompressed
// length. The legacy header follows at this offset.
const containerHeaderLen = 12

// bodyOffset is where the compressed body starts.
const bodyOffset = containerHeaderLen + HeaderLen

// DefaultDictSize is the dictionary size written into new containers.
const DefaultDictSize = 0x10000

// StreamParams are the LZMA1 stream parameters recorded in the legacy
// header.
type StreamParams struct {
	Properties Properties
	DictSize   uint32
}

// DefaultStreamParams are 0x5D and 64 KiB.
var DefaultStreamParams = StreamParams{
	Properties: DefaultProperties,
	DictSize:   DefaultDictSize,
}

// Container is a parsed container. Body aliases the parsed input.
type Container struct {
	PayloadLen      uint32
	DecompressedLen uint32
	Header          Header
	Body            []byte
}

// Build frames a raw LZMA1 body compressed from size bytes of data.
// The decompressed length field is 32 bits wide; size is truncated to
// fit it.
func Build(body []byte, size uint64, p StreamParams) []byte {
	h := Header{
		Props:    p.Properties.ToByte(),
		DictSize: p.DictSize,
		Size:     size,
	}
	payloadLen := HeaderLen + len(body)
	out := make([]byte, containerHeaderLen+payloadLen)
	copy(out, Magic)
	binary.LittleEndian.PutUint32(out[4:8], uint32(payloadLen))
	binary.LittleEndian.PutUint32(out[8:12], uint32(size))
	h.put(out[containerHeaderLen:bodyOffset])
	copy(out[bodyOffset:], body)
	return out
}

// ParseContainer validates the frame of data and splits it into its
// fields. Bytes past the declared payload are ignored.
func ParseContainer(data []byte) (*Container, error) {
	if len(data) < len(Magic) || string(data[:len(Magic)]) != Magic {
		return nil, ErrBadMagic
	}
	if len(data) < containerHeaderLen {
		return nil, &FormatError{Kind: Truncated,
			Msg: fmt.Sprintf("container header needs %d bytes, have %d", containerHeaderLen, len(data))}
	}
	c := &Container{
		PayloadLen:      binary.LittleEndian.Uint32(data[4:8]),
		DecompressedLen: binary.LittleEndian.Uint32(data[8:12]),
	}
	if c.PayloadLen < HeaderLen {
		return nil, &FormatError{Kind: Truncated,
			Msg: fmt.Sprintf("payload length %d shorter than legacy header", c.PayloadLen)}
	}
	end := uint64(containerHeaderLen) + uint64(c.PayloadLen)
	if uint64(len(data)) < end {
		return nil, &FormatError{Kind: Truncated,
			Msg: fmt.Sprintf("payload declares %d bytes, have %d", c.PayloadLen, len(data)-containerHeaderLen)}
	}
	if err := c.Header.unmarshalBinary(data[containerHeaderLen:bodyOffset]); err != nil {
		return nil, err
	}
	c.Body = data[bodyOffset:end]
	return c, nil
}

// Stream returns a new legacy LZMA stream: the container's legacy
// header with its size replaced by NoSize, followed by the body.
func (c *Container) Stream() []byte {
	h := c.Header
	h.Size = NoSize
	out := make([]byte, HeaderLen+len(c.Body))
	h.put(out)
	copy(out[HeaderLen:], c.Body)
	return out
}

// Parse validates a container and returns its legacy stream prepared
// for DecompressStream.
func Parse(data []byte) ([]byte, error) {
	c, err := ParseContainer(data)
	if err != nil {
		return nil, err
	}
	return c.Stream(), nil
}
