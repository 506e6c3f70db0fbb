package go_streambuffer

import "errors"

type BufferMode byte

const (
	// BufferModeOwned buffers manage their own growable storage and release it on Close.
	BufferModeOwned BufferMode = iota
	// BufferModeBorrowed buffers wrap external caller-owned memory. They are read-only
	// and never allocate, grow or release anything.
	BufferModeBorrowed
)

// StreamBuffer is a contiguous byte buffer with independent read and write cursors,
// used to assemble and consume binary message payloads. An owned buffer keeps some
// slack ahead of the data so framing metadata (message length, correlation ID, ...)
// can be prepended after the payload body has already been written, without moving it.
//
// A StreamBuffer must not be copied by value: owned storage has exactly one owner.
// Use Exchange to move ownership between two instances.
type StreamBuffer struct {
	opts options

	// buf is the backing storage; len(buf) is the total capacity.
	buf []byte
	// readPos is the offset of the next unread byte.
	readPos int
	// writePos is the offset of the next byte to write; [readPos, writePos) holds
	// the valid, still-unconsumed data.
	writePos int

	mode BufferMode
}

// Errors \\

var (
	ErrReadOnlyBuffer = errors.New("buffer is a read-only view")
	ErrNotEnoughData  = errors.New("not enough readable data")
	ErrDataTooLarge   = errors.New("data is too large")
)
