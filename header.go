package lzma

import (
	"encoding/binary"
	"errors"
)

// NoSize is the uncompressed size value meaning the length is unknown
// and the stream ends with an end-of-stream marker or when its input
// runs out.
const NoSize uint64 = 1<<64 - 1

// HeaderLen is the length of the legacy LZMA header.
const HeaderLen = 13

// Header is the legacy single-stream LZMA header: properties byte,
// dictionary size and uncompressed size. Props is kept as the raw byte
// so that a header can be carried through unchanged even when the byte
// is not a valid properties code; the codec rejects it later.
type Header struct {
	Props    byte
	DictSize uint32
	Size     uint64
}

// Properties unpacks the properties byte.
func (h Header) Properties() (Properties, error) {
	return PropertiesFromByte(h.Props)
}

// SizeKnown reports whether Size carries a real length.
func (h Header) SizeKnown() bool {
	return h.Size != NoSize
}

func (h *Header) marshalBinary() []byte {
	data := make([]byte, HeaderLen)
	h.put(data)
	return data
}

func (h *Header) put(data []byte) {
	data[0] = h.Props
	binary.LittleEndian.PutUint32(data[1:5], h.DictSize)
	binary.LittleEndian.PutUint64(data[5:13], h.Size)
}

func (h *Header) unmarshalBinary(data []byte) error {
	if len(data) < HeaderLen {
		return errors.New("lzma: legacy header too short")
	}
	h.Props = data[0]
	h.DictSize = binary.LittleEndian.Uint32(data[1:5])
	h.Size = binary.LittleEndian.Uint64(data[5:13])
	return nil
}
