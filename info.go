package lzma

// Info summarizes a container header.
type Info struct {
	PayloadLen      uint32 `json:"payload_length" yaml:"payload_length"`
	CompressedLen   uint32 `json:"compressed_length" yaml:"compressed_length"`
	DecompressedLen uint32 `json:"decompressed_length" yaml:"decompressed_length"`
	PropertiesByte  byte   `json:"properties_byte" yaml:"properties_byte"`
	// Properties is empty when the properties byte is invalid.
	Properties string `json:"properties,omitempty" yaml:"properties,omitempty"`
	DictSize   uint32 `json:"dict_size" yaml:"dict_size"`
	// StreamSize is the legacy header's uncompressed size. It is only
	// meaningful when StreamSizeKnown is set.
	StreamSize      uint64 `json:"stream_size" yaml:"stream_size"`
	StreamSizeKnown bool   `json:"stream_size_known" yaml:"stream_size_known"`
	// TrailingBytes counts input past the declared payload.
	TrailingBytes int `json:"trailing_bytes" yaml:"trailing_bytes"`
}

// Inspect parses the container frame of data without decompressing.
func Inspect(data []byte) (Info, error) {
	c, err := ParseContainer(data)
	if err != nil {
		return Info{}, err
	}
	info := Info{
		PayloadLen:      c.PayloadLen,
		CompressedLen:   c.PayloadLen - HeaderLen,
		DecompressedLen: c.DecompressedLen,
		PropertiesByte:  c.Header.Props,
		DictSize:        c.Header.DictSize,
		StreamSize:      c.Header.Size,
		StreamSizeKnown: c.Header.SizeKnown(),
		TrailingBytes:   len(data) - containerHeaderLen - int(c.PayloadLen),
	}
	if p, err := c.Header.Properties(); err == nil {
		info.Properties = p.String()
	}
	return info, nil
}
