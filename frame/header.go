package frame

import (
	"encoding/binary"
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-streambuffer/compression"
)

func (h *Header) encode() [HeaderSize]byte {
	var buf [HeaderSize]byte
	binary.LittleEndian.PutUint16(buf[0:2], frameMagic)
	buf[2] = h.Version
	buf[3] = byte(h.Compression)
	binary.LittleEndian.PutUint32(buf[4:8], h.Checksum)
	binary.LittleEndian.PutUint64(buf[8:16], h.Seq)
	binary.LittleEndian.PutUint32(buf[16:20], h.Length)
	return buf
}

// decodeHeader parses and validates the header at the start of buf. The
// compression byte is checked here so that hostile input can never reach a
// compressor factory.
func decodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, a header alone needs %d", ErrTruncatedFrame, len(buf), HeaderSize)
	}
	if magic := binary.LittleEndian.Uint16(buf[0:2]); magic != frameMagic {
		return Header{}, fmt.Errorf("%w: magic 0x%04x", ErrInvalidMagic, magic)
	}

	h := Header{
		Version:     buf[2],
		Compression: compression.CompressionType(buf[3]),
		Checksum:    binary.LittleEndian.Uint32(buf[4:8]),
		Seq:         binary.LittleEndian.Uint64(buf[8:16]),
		Length:      binary.LittleEndian.Uint32(buf[16:20]),
	}
	if h.Version != frameVersion {
		return Header{}, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, h.Version)
	}
	if h.Compression > compression.ZstdCompression {
		return Header{}, fmt.Errorf("%w: compression byte %d", ErrUnknownCompression, buf[3])
	}
	return h, nil
}
