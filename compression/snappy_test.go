package compression

import (
	"bytes"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnappyCompressor_GetType(t *testing.T) {
	compressor := &snappyCompressor{}
	assert.Equal(t, SnappyCompression, compressor.GetType())
}

func TestSnappyCompressor_RoundTrip(t *testing.T) {
	compressor := &snappyCompressor{}

	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "empty data",
			data: []byte{},
		},
		{
			name: "single byte",
			data: []byte{0x42},
		},
		{
			name: "text data",
			data: []byte("a short framed message body"),
		},
		{
			name: "binary data",
			data: []byte{0x00, 0x01, 0x02, 0x03, 0xff, 0xfe, 0xfd, 0xfc},
		},
		{
			name: "highly compressible",
			data: bytes.Repeat([]byte("A"), 1000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed := compressor.Compress(make([]byte, 0, 16), tt.data)

			decompressedLen, err := compressor.DecompressedLen(compressed)
			require.NoError(t, err)
			assert.Equal(t, len(tt.data), decompressedLen)

			buf := make([]byte, decompressedLen)
			err = compressor.Decompress(buf, compressed)
			require.NoError(t, err)
			assert.Equal(t, tt.data, buf)
		})
	}
}

func TestSnappyCompressor_ReusesDst(t *testing.T) {
	compressor := &snappyCompressor{}

	data := bytes.Repeat([]byte("scratch buffer reuse"), 10)
	dst := make([]byte, 0, 1024)
	compressed := compressor.Compress(dst, data)

	// A dst with enough capacity must be used in place, no fresh allocation.
	require.NotEmpty(t, compressed)
	assert.Same(t, &dst[:1][0], &compressed[0])
}

func TestSnappyCompressor_Decompress_BufferSizeMismatch(t *testing.T) {
	compressor := &snappyCompressor{}

	original := []byte("payload for the size mismatch checks")
	compressed := snappy.Encode(nil, original)

	smallBuf := make([]byte, len(original)-5)
	err := compressor.Decompress(smallBuf, compressed)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not fit the provided buffer")

	largeBuf := make([]byte, len(original)+5)
	err = compressor.Decompress(largeBuf, compressed)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not fit the provided buffer")
}

func TestSnappyCompressor_Decompress_TruncatedInput(t *testing.T) {
	compressor := &snappyCompressor{}

	compressed := snappy.Encode(nil, []byte("payload that will be truncated"))

	buf := make([]byte, 30)
	err := compressor.Decompress(buf, compressed[:len(compressed)-3])
	assert.Error(t, err)
}
