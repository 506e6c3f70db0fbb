package frame

import (
	"fmt"
	"math"

	go_streambuffer "github.com/datnguyenzzz/nogodb/lib/go-streambuffer"
	"github.com/datnguyenzzz/nogodb/lib/go-streambuffer/compression"
	"github.com/datnguyenzzz/nogodb/lib/go-streambuffer/internal/bufpool"
)

// scratchPool recycles the staging buffers compression writes into before the
// result is copied back into the payload buffer.
var scratchPool = bufpool.New()

type encoder struct {
	opts       options
	compressor compression.ICompression
	checksumer IChecksum
}

func NewEncoder(opts ...OptionFn) IEncoder {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}

	e := &encoder{
		opts:       o,
		checksumer: NewChecksumer(o.checksumType),
	}
	if o.compressionType != compression.NoCompression {
		e.compressor = compression.NewCompressor(o.compressionType)
	}
	return e
}

func (e *encoder) Seal(seq uint64, payload *go_streambuffer.StreamBuffer) error {
	if payload.Mode() == go_streambuffer.BufferModeBorrowed {
		return fmt.Errorf("%w: cannot seal a borrowed view", go_streambuffer.ErrReadOnlyBuffer)
	}

	ct := e.opts.compressionType
	if e.compressor != nil {
		body := payload.Bytes()
		scratch := scratchPool.Get(compressBoundHint(len(body)))
		compressed := e.compressor.Compress(scratch, body)
		if len(compressed) >= len(body) {
			// Incompressible payload; ship it raw and let the header say so. The
			// decoder follows the header, not its own configuration.
			ct = compression.NoCompression
			scratchPool.Put(compressed)
		} else {
			payload.Reset()
			err := payload.Append(compressed)
			scratchPool.Put(compressed)
			if err != nil {
				return err
			}
		}
	}

	wire := payload.Bytes()
	if uint64(len(wire)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d payload bytes exceed the frame length field", go_streambuffer.ErrDataTooLarge, len(wire))
	}

	h := Header{
		Version:     frameVersion,
		Compression: ct,
		Checksum:    e.checksumer.Checksum(wire, byte(ct)),
		Seq:         seq,
		Length:      uint32(len(wire)),
	}
	hdr := h.encode()
	return payload.Prepend(hdr[:])
}

// compressBoundHint sizes the compression scratch so the usual case stays
// inside one pooled slice: it covers snappy's MaxEncodedLen and zstd's
// CompressBound plus its length prefix. A short hint only costs an extra
// allocation inside the compressor, never correctness.
func compressBoundHint(n int) int {
	return n + n/6 + 64
}

var _ IEncoder = (*encoder)(nil)
