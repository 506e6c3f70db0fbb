// Package compression provides the block compressors applied to message
// payloads before framing. Compressors work on caller-provided buffers so the
// caller controls allocation and pooling.
package compression

// CompressionType identifies the per-frame compression algorithm. It is small
// enough to travel as a single header byte.
type CompressionType byte

// The available compression types.
const (
	NoCompression CompressionType = iota
	SnappyCompression
	ZstdCompression
)

type ICompression interface {
	GetType() CompressionType
	// Compress a payload, appending the compressed data to dst[:0].
	Compress(dst, src []byte) []byte
	// Decompress compressed into buf. The buf slice must have the exact size of
	// the decompressed value; callers may use DecompressedLen to size it.
	Decompress(buf, compressed []byte) error
	// DecompressedLen returns the length of the provided payload once
	// decompressed, allowing the caller to allocate a buffer exactly sized to
	// the decompressed value.
	DecompressedLen(b []byte) (decompressedLen int, err error)
}

func NewCompressor(ct CompressionType) ICompression {
	switch ct {
	case SnappyCompression:
		return &snappyCompressor{}
	case ZstdCompression:
		return &zstdCompressor{}
	default:
		panic("unknown compression type")
	}
}
