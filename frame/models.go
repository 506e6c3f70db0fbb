package frame

import (
	"errors"

	"github.com/datnguyenzzz/nogodb/lib/go-streambuffer/compression"
)

const (
	// HeaderSize is the encoded size of a frame header. A default header
	// reserve absorbs it with room to spare, so sealing a freshly assembled
	// payload never relocates it.
	HeaderSize = 20

	frameMagic   uint16 = 0x5342
	frameVersion byte   = 1
)

// Header is the fixed-size metadata prepended to every framed payload. All
// fields are encoded little-endian behind a 2-byte magic marker.
type Header struct {
	// Version of the frame layout that produced this header.
	Version byte
	// Compression applied to the payload bytes on the wire.
	Compression compression.CompressionType
	// Checksum over the payload bytes as they appear on the wire, i.e. after
	// compression.
	Checksum uint32
	// Seq correlates a response frame with its request.
	Seq uint64
	// Length of the payload on the wire in bytes, excluding the header.
	Length uint32
}

// Errors \\

var (
	ErrInvalidMagic       = errors.New("region does not start with a frame")
	ErrUnsupportedVersion = errors.New("unsupported frame version")
	ErrUnknownCompression = errors.New("unknown compression type")
	ErrTruncatedFrame     = errors.New("region is shorter than the frame declares")
	ErrInvalidChecksum    = errors.New("payload checksum mismatch")
	ErrCorruptPayload     = errors.New("payload does not match its declared compression")
)
