// Package frame seals assembled payload buffers into framed wire messages and
// opens received regions back into payload buffers. A frame is a fixed-size
// header followed by the (optionally compressed) payload bytes; the header is
// prepended through the payload buffer's reserved slack, so sealing does not
// move the payload.
package frame

import (
	go_streambuffer "github.com/datnguyenzzz/nogodb/lib/go-streambuffer"
)

type IEncoder interface {
	// Seal turns the readable bytes of payload into a complete framed message
	// in place: the bytes are compressed per the encoder configuration and the
	// header is prepended. Afterwards payload.Bytes() is the full wire frame.
	Seal(seq uint64, payload *go_streambuffer.StreamBuffer) error
}

type IDecoder interface {
	// Open validates the frame at the start of region and returns its header
	// together with a buffer positioned at the first payload byte. The buffer
	// is a read-only view into region for uncompressed frames and owns freshly
	// decompressed storage otherwise.
	Open(region []byte) (Header, *go_streambuffer.StreamBuffer, error)
}
