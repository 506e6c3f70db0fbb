package frame

import (
	"testing"

	"github.com/datnguyenzzz/nogodb/lib/go-streambuffer/compression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderEncodeDecode(t *testing.T) {
	h := Header{
		Version:     frameVersion,
		Compression: compression.ZstdCompression,
		Checksum:    0xdeadbeef,
		Seq:         0x0123456789abcdef,
		Length:      4096,
	}

	buf := h.encode()
	got, err := decodeHeader(buf[:])
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestDecodeHeader_Rejects(t *testing.T) {
	h := Header{Version: frameVersion, Compression: compression.SnappyCompression, Seq: 1, Length: 10}
	valid := h.encode()

	tests := []struct {
		name    string
		mutate  func(buf []byte) []byte
		wantErr error
	}{
		{
			name:    "short buffer",
			mutate:  func(buf []byte) []byte { return buf[:HeaderSize-1] },
			wantErr: ErrTruncatedFrame,
		},
		{
			name: "wrong magic",
			mutate: func(buf []byte) []byte {
				buf[0] ^= 0xff
				return buf
			},
			wantErr: ErrInvalidMagic,
		},
		{
			name: "future version",
			mutate: func(buf []byte) []byte {
				buf[2] = frameVersion + 1
				return buf
			},
			wantErr: ErrUnsupportedVersion,
		},
		{
			name: "compression byte out of range",
			mutate: func(buf []byte) []byte {
				buf[3] = 0x7f
				return buf
			},
			wantErr: ErrUnknownCompression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.mutate(append([]byte(nil), valid[:]...))
			_, err := decodeHeader(buf)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
