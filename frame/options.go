package frame

import "github.com/datnguyenzzz/nogodb/lib/go-streambuffer/compression"

type OptionFn func(opts *options)

type options struct {
	// compressionType is applied to every sealed payload. The type travels in
	// the header, so a decoder handles any of them regardless of its own
	// configuration.
	compressionType compression.CompressionType

	// checksumType guards the wire payload. Unlike compression it is not
	// carried in the header: encoder and decoder must be configured alike.
	checksumType ChecksumType
}

var defaultOptions = options{
	compressionType: compression.SnappyCompression,
	checksumType:    CRC32Checksum,
}

func WithCompression(ct compression.CompressionType) OptionFn {
	return func(opts *options) {
		opts.compressionType = ct
	}
}

func WithChecksum(ct ChecksumType) OptionFn {
	return func(opts *options) {
		if ct == UnknownChecksum {
			return
		}
		opts.checksumType = ct
	}
}
