package go_streambuffer

type OptionFn func(*StreamBuffer)

type options struct {
	// headerReserve is the number of slack bytes kept ahead of the data so that
	// headers can be prepended later without relocating the payload. A freshly
	// constructed owned buffer allocates twice this amount: one half as prepend
	// slack, one half as initial write capacity.
	headerReserve int

	// growSize is the minimum amount of extra capacity allocated when an Append
	// no longer fits, so repeated small appends stay amortized O(1) per byte.
	// It also serves as the consumed-prefix threshold for shrinkOnConsume.
	growSize int

	// shrinkOnConsume reclaims consumed space eagerly: once the read cursor moves
	// past growSize, the unread bytes are slid to the front and the storage is
	// shrunk to exactly the unread length. Off by default; callers that keep
	// buffers around for many messages trade an extra copy for a smaller
	// steady-state footprint.
	shrinkOnConsume bool
}

var defaultOptions = options{
	headerReserve:   64,
	growSize:        1024,
	shrinkOnConsume: false,
}

func WithHeaderReserve(n int) OptionFn {
	return func(b *StreamBuffer) {
		if n < 0 {
			return
		}
		b.opts.headerReserve = n
	}
}

func WithGrowSize(n int) OptionFn {
	return func(b *StreamBuffer) {
		if n < 0 {
			return
		}
		b.opts.growSize = n
	}
}

func WithShrinkOnConsume(shrink bool) OptionFn {
	return func(b *StreamBuffer) {
		b.opts.shrinkOnConsume = shrink
	}
}
