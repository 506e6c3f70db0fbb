// Package go_streambuffer provides a growable dual-cursor byte buffer for
// assembling and consuming RPC message payloads. Payload bytes are appended at
// the write cursor, framing metadata is prepended into reserved slack ahead of
// the read cursor, and received regions are consumed through borrowed
// read-only views.
package go_streambuffer

import (
	"fmt"

	"go.uber.org/zap"
)

// New creates an empty owned buffer. The allocation is pre-sized to twice the
// header reserve: the first half is slack for future Prepend calls, the second
// half is the initial write capacity, and both cursors start on the boundary.
func New(opts ...OptionFn) *StreamBuffer {
	b := &StreamBuffer{opts: defaultOptions}
	for _, o := range opts {
		o(b)
	}

	b.buf = make([]byte, 2*b.opts.headerReserve)
	b.readPos = b.opts.headerReserve
	b.writePos = b.opts.headerReserve
	return b
}

// NewBorrowed wraps p as a read-only view. The region stays owned by the
// caller and is never grown, mutated or released; the whole of p is readable.
func NewBorrowed(p []byte) *StreamBuffer {
	return &StreamBuffer{
		opts:     defaultOptions,
		buf:      p,
		readPos:  0,
		writePos: len(p),
		mode:     BufferModeBorrowed,
	}
}

// NewFromBytes adopts p as the storage of an owned buffer, avoiding a copy
// when the caller has already materialized the data. Ownership of p moves to
// the buffer: the caller must not touch p afterwards. The whole of p is
// readable and there is no slack ahead of it, so a Prepend before p has been
// consumed reallocates.
func NewFromBytes(p []byte, opts ...OptionFn) *StreamBuffer {
	b := &StreamBuffer{opts: defaultOptions}
	for _, o := range opts {
		o(b)
	}

	b.buf = p
	b.readPos = 0
	b.writePos = len(p)
	return b
}

// Core functions \\

// Append writes p after the current data and advances the write cursor. The
// storage grows by at least growSize when p does not fit; growth keeps every
// valid byte at its current offset. Any previously obtained Bytes view may be
// invalidated.
func (b *StreamBuffer) Append(p []byte) error {
	if b.mode == BufferModeBorrowed {
		return fmt.Errorf("%w: cannot append %d bytes", ErrReadOnlyBuffer, len(p))
	}
	if len(p) == 0 {
		return nil
	}

	needed := b.writePos + len(p)
	if needed < 0 {
		return fmt.Errorf("%w: appending %d bytes at offset %d overflows", ErrDataTooLarge, len(p), b.writePos)
	}
	if needed > len(b.buf) {
		newCap := max(needed, b.writePos+b.opts.growSize)
		zap.L().Info("buffer is full, reallocating",
			zap.Int("capacity", len(b.buf)),
			zap.Int("needed", needed),
			zap.Int("new_capacity", newCap))
		next := make([]byte, newCap)
		copy(next, b.buf[:b.writePos])
		b.buf = next
	}

	copy(b.buf[b.writePos:], p)
	b.writePos += len(p)
	return nil
}

// Prepend writes p in front of the current data, into the reserved header
// slack, and moves the read cursor back onto it; the prepended bytes are
// consumed before everything written earlier. When the slack cannot hold p the
// unread region is relocated to the tail of a larger allocation, leaving fresh
// slack ahead of it. That path should stay rare: the header reserve is meant
// to absorb the usual one or two header prepends per message.
func (b *StreamBuffer) Prepend(p []byte) error {
	if b.mode == BufferModeBorrowed {
		return fmt.Errorf("%w: cannot prepend %d bytes", ErrReadOnlyBuffer, len(p))
	}
	if len(p)+b.writePos < 0 {
		return fmt.Errorf("%w: prepending %d bytes to %d data bytes overflows", ErrDataTooLarge, len(p), b.Len())
	}

	if b.readPos < len(p) {
		newCap := max(len(p)+b.writePos, b.writePos+b.opts.headerReserve)
		zap.L().Warn("reallocating on prepend, possible performance loss",
			zap.Int("slack", b.readPos),
			zap.Int("prepend_size", len(p)),
			zap.Int("new_capacity", newCap))
		next := make([]byte, newCap)
		newReadPos := newCap - b.Len()
		copy(next[newReadPos:], b.buf[b.readPos:b.writePos])
		b.buf = next
		b.readPos = newReadPos
		b.writePos = newCap
	}

	b.readPos -= len(p)
	copy(b.buf[b.readPos:], p)
	return nil
}

// Consume copies the next len(dst) unread bytes into dst and advances the read
// cursor past them. It works in both modes and never returns short: when fewer
// than len(dst) bytes are readable nothing is consumed and ErrNotEnoughData is
// returned.
func (b *StreamBuffer) Consume(dst []byte) error {
	if len(dst) > b.Len() {
		return fmt.Errorf("%w: requested %d bytes, %d readable", ErrNotEnoughData, len(dst), b.Len())
	}

	copy(dst, b.buf[b.readPos:b.readPos+len(dst)])
	b.readPos += len(dst)

	if b.opts.shrinkOnConsume && b.mode == BufferModeOwned && b.readPos > b.opts.growSize {
		b.compact()
	}
	return nil
}

// compact slides the unread region down to offset 0 and shrinks the storage to
// exactly the unread length. The consumed prefix and the prepend slack are both
// given back; the next Append or Prepend pays for a fresh allocation.
func (b *StreamBuffer) compact() {
	unread := b.Len()
	next := make([]byte, unread)
	copy(next, b.buf[b.readPos:b.writePos])
	b.buf = next
	b.readPos = 0
	b.writePos = unread
}

// Len returns the number of readable bytes, writePos-readPos. It grows by
// exactly the appended size on Append/Prepend and shrinks by exactly the
// consumed size on Consume.
func (b *StreamBuffer) Len() int {
	return b.writePos - b.readPos
}

// Cap returns the total capacity of the backing storage. For a borrowed view
// this is the borrowed region's length.
func (b *StreamBuffer) Cap() int {
	return len(b.buf)
}

// Bytes returns the readable region [readPos, writePos) without copying, for
// handing the assembled message to an I/O layer. The view is invalidated by
// any mutating call (Append, Prepend, Consume with shrinking, Rebind, Reset,
// Exchange, Close) and must not be written through on a borrowed buffer.
func (b *StreamBuffer) Bytes() []byte {
	return b.buf[b.readPos:b.writePos]
}

func (b *StreamBuffer) Mode() BufferMode {
	return b.mode
}

// Ownership \\

// Rebind turns the buffer into a borrowed read-only view over p. An owned
// allocation is released at the transition, before adopting the new region;
// there is no way back to owned mode.
func (b *StreamBuffer) Rebind(p []byte) {
	_ = b.Close()
	b.mode = BufferModeBorrowed
	b.buf = p
	b.writePos = len(p)
}

// Exchange swaps the complete internal state of the two buffers: storage,
// mode, both cursors and options. It is the only sanctioned way to move
// ownership of owned storage between instances, since buffers must never be
// copied by value.
func (b *StreamBuffer) Exchange(other *StreamBuffer) {
	b.buf, other.buf = other.buf, b.buf
	b.mode, other.mode = other.mode, b.mode
	b.readPos, other.readPos = other.readPos, b.readPos
	b.writePos, other.writePos = other.writePos, b.writePos
	b.opts, other.opts = other.opts, b.opts
}

// Reset empties the buffer so it can be reused for the next message. An owned
// buffer keeps its storage and gets its header slack back; a borrowed view
// becomes readable from the start again.
func (b *StreamBuffer) Reset() {
	if b.mode == BufferModeBorrowed {
		b.readPos = 0
		return
	}

	reserve := min(b.opts.headerReserve, len(b.buf))
	b.readPos = reserve
	b.writePos = reserve
}

// Close releases the storage reference. Owned storage is handed back to the
// runtime; a borrowed region stays with its external owner. Close is
// idempotent, and the buffer must not be used afterwards.
func (b *StreamBuffer) Close() error {
	b.buf = nil
	b.readPos = 0
	b.writePos = 0
	return nil
}

var _ IStreamBuffer = (*StreamBuffer)(nil)
