package lzma

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	xlzma "github.com/ulikunitz/xz/lzma"
)

// compressRaw compresses data into a raw LZMA1 body. The codec always
// writes a legacy header in front of the body; it is cut off here
// because Build writes its own.
func compressRaw(data []byte, p StreamParams, eosMarker bool) ([]byte, error) {
	props := xlzma.Properties{LC: p.Properties.LC, LP: p.Properties.LP, PB: p.Properties.PB}
	wc := xlzma.WriterConfig{
		Properties:   &props,
		DictCap:      int(p.DictSize),
		SizeInHeader: true,
		Size:         int64(len(data)),
		EOSMarker:    eosMarker,
	}
	if err := wc.Verify(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w, err := wc.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err = w.Write(data); err != nil {
		return nil, fmt.Errorf("lzma: compress: %w", err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("lzma: compress: %w", err)
	}
	if buf.Len() < HeaderLen {
		return nil, errors.New("lzma: compress: codec output shorter than its header")
	}
	return buf.Bytes()[HeaderLen:], nil
}

// segment is the result of decoding one legacy stream from the front
// of the input.
type segment struct {
	out []byte
	// remainder is the input the decoder did not consume.
	remainder []byte
	// eos is set when the stream ended with an end-of-stream marker.
	eos bool
}

// decodeSegment runs a fresh codec reader over input until it reaches
// an end-of-stream marker or runs out of input. Running out of input
// is not an error; anything else the codec reports is.
func decodeSegment(input []byte, dictCap int) (segment, error) {
	br := bytes.NewReader(input)
	r, err := xlzma.ReaderConfig{DictCap: dictCap}.NewReader(br)
	if err != nil {
		return segment{}, err
	}
	var out bytes.Buffer
	p := make([]byte, 32*1024)
	for {
		n, err := r.Read(p)
		out.Write(p[:n])
		if err == nil {
			continue
		}
		if err == io.EOF {
			break
		}
		// The decoder may still hold bytes it decoded before hitting
		// the end of input; keep reading until it reports io.EOF.
		if err == io.ErrUnexpectedEOF {
			continue
		}
		return segment{}, err
	}
	return segment{
		out:       out.Bytes(),
		remainder: input[len(input)-br.Len():],
		eos:       r.EOSMarker(),
	}, nil
}
