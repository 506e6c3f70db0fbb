package go_streambuffer

type IStreamBuffer interface {
	// Append writes p after the current data, growing the storage when needed.
	Append(p []byte) error

	// Prepend writes p in front of the current data, into the reserved header slack.
	Prepend(p []byte) error

	// Consume copies the next len(dst) unread bytes into dst and advances past them.
	Consume(dst []byte) error

	// Len is the number of readable bytes between the two cursors.
	Len() int

	// Cap is the total capacity of the backing storage.
	Cap() int

	// Bytes is a view of the readable region, valid until the next mutating call.
	Bytes() []byte

	// Mode reports whether the buffer owns its storage or borrows it.
	Mode() BufferMode

	// Reset rewinds the cursors so the buffer can be reused.
	Reset()

	// Close releases the buffer storage.
	Close() error
}
