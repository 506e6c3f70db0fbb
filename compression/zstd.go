package compression

import (
	"encoding/binary"
	"fmt"

	"github.com/DataDog/zstd"
)

const (
	defaultZstdLevel = 3
)

type zstdCompressor struct{}

func (z *zstdCompressor) GetType() CompressionType {
	return ZstdCompression
}

// Compress prefixes the compressed payload with a uvarint encoding of the
// decompressed length, since the zstd frame itself does not expose it cheaply.
func (z *zstdCompressor) Compress(dst, src []byte) []byte {
	if len(dst) < binary.MaxVarintLen64 {
		dst = append(dst, make([]byte, binary.MaxVarintLen64-len(dst))...)
	}

	// Size dst up front from CompressBound instead of letting DataDog/zstd
	// allocate, so the varint prefix and the compressed bytes share one buffer.
	bound := zstd.CompressBound(len(src))
	if cap(dst) < binary.MaxVarintLen64+bound {
		dst = make([]byte, binary.MaxVarintLen64, binary.MaxVarintLen64+bound)
	}

	zCtx := zstd.NewCtx()
	varIntLen := binary.PutUvarint(dst, uint64(len(src)))
	result, err := zCtx.CompressLevel(dst[varIntLen:varIntLen+bound], src, defaultZstdLevel)
	if err != nil {
		panic("error while compressing using zstd")
	}
	if &result[0] != &dst[varIntLen] {
		panic("allocated a new buffer despite checking CompressBound")
	}

	return dst[:varIntLen+len(result)]
}

func (z *zstdCompressor) Decompress(buf, compressed []byte) error {
	// The payload starts with a varint encoding of the decompressed length.
	_, prefixLen := binary.Uvarint(compressed)
	compressed = compressed[prefixLen:]
	if len(compressed) == 0 {
		return fmt.Errorf("zstd: empty compressed payload")
	}
	if len(buf) == 0 {
		return fmt.Errorf("zstd: empty destination buffer")
	}
	zCtx := zstd.NewCtx()
	n, err := zCtx.DecompressInto(buf, compressed)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return fmt.Errorf("zstd: decompressed payload does not fit the provided buffer: %d of %d bytes", n, len(buf))
	}
	return nil
}

func (z *zstdCompressor) DecompressedLen(b []byte) (decompressedLen int, err error) {
	decodedLenU64, varIntLen := binary.Uvarint(b)
	if varIntLen <= 0 {
		return 0, fmt.Errorf("zstd: missing decompressed length prefix")
	}
	return int(decodedLenU64), nil
}

var _ ICompression = (*zstdCompressor)(nil)
