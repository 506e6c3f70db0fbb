package frame

import (
	"fmt"
	"math"

	go_streambuffer "github.com/datnguyenzzz/nogodb/lib/go-streambuffer"
	"github.com/datnguyenzzz/nogodb/lib/go-streambuffer/compression"
	"go.uber.org/zap"
)

type decoder struct {
	opts       options
	checksumer IChecksum
}

func NewDecoder(opts ...OptionFn) IDecoder {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}

	return &decoder{
		opts:       o,
		checksumer: NewChecksumer(o.checksumType),
	}
}

func (d *decoder) Open(region []byte) (Header, *go_streambuffer.StreamBuffer, error) {
	view := go_streambuffer.NewBorrowed(region)

	var hdrBuf [HeaderSize]byte
	if err := view.Consume(hdrBuf[:]); err != nil {
		return Header{}, nil, fmt.Errorf("%w: region holds %d bytes, a header needs %d", ErrTruncatedFrame, len(region), HeaderSize)
	}
	h, err := decodeHeader(hdrBuf[:])
	if err != nil {
		return Header{}, nil, err
	}

	if uint64(h.Length) > uint64(view.Len()) {
		return Header{}, nil, fmt.Errorf("%w: header declares %d payload bytes, %d remain", ErrTruncatedFrame, h.Length, view.Len())
	}

	// Checksum the wire payload before touching a decompressor, so corrupted
	// bytes never reach one.
	wire := view.Bytes()[:h.Length]
	if got := d.checksumer.Checksum(wire, byte(h.Compression)); got != h.Checksum {
		zap.L().Error("rejecting frame, payload checksum mismatch",
			zap.Uint64("seq", h.Seq),
			zap.Uint32("want", h.Checksum),
			zap.Uint32("got", got))
		return Header{}, nil, fmt.Errorf("%w: want 0x%08x, got 0x%08x", ErrInvalidChecksum, h.Checksum, got)
	}

	if h.Compression == compression.NoCompression {
		return h, go_streambuffer.NewBorrowed(wire), nil
	}

	// decodeHeader vouched for the compression byte, the factory cannot panic.
	compressor := compression.NewCompressor(h.Compression)
	decLen, err := compressor.DecompressedLen(wire)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	if decLen < 0 || uint64(decLen) > math.MaxUint32 {
		return Header{}, nil, fmt.Errorf("%w: implausible decompressed length %d", ErrCorruptPayload, decLen)
	}

	decompressed := make([]byte, decLen)
	if err := compressor.Decompress(decompressed, wire); err != nil {
		zap.L().Error("rejecting frame, payload failed to decompress",
			zap.Uint64("seq", h.Seq),
			zap.Error(err))
		return Header{}, nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	return h, go_streambuffer.NewFromBytes(decompressed), nil
}

var _ IDecoder = (*decoder)(nil)
