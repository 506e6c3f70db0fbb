// Package bufpool pools byte slices in power-of-two size classes, so transient
// scratch buffers (compression staging, in particular) stop churning the GC.
package bufpool

import (
	"math/bits"
	"sync"
)

const (
	// classCount caps the largest pooled class at 2^31 bytes; slices beyond that
	// are handed straight to the allocator, pooling them buys nothing.
	classCount = 24
)

// Pool keeps one sync.Pool per size class.
//
//	classes[0] serves capacities from 0 upto 256
//	classes[1] serves capacities from 257 upto 512
//	...
//	classes[n] serves capacities from 2^(n+7)+1 upto 2^(n+8)
type Pool struct {
	classes [classCount]sync.Pool
}

func New() *Pool {
	return &Pool{}
}

// Get returns a zero-length slice whose capacity covers at least dataLen.
func (p *Pool) Get(dataLen int) []byte {
	id, classCap := classFor(dataLen)
	if classCap < dataLen {
		// beyond the largest class, hand out an unpooled slice
		return make([]byte, 0, dataLen)
	}
	if b := p.classes[id].Get(); b != nil {
		return b.([]byte)
	}

	return make([]byte, 0, classCap)
}

// Put hands buf back to its size class. Only slices whose capacity exactly
// matches a class are retained; anything else would let a later Get hand out
// less capacity than it promises.
func (p *Pool) Put(buf []byte) {
	capacity := cap(buf)
	id, classCap := classFor(capacity)
	if capacity != classCap {
		return
	}

	p.classes[id].Put(buf[:0])
}

// classFor maps a size onto its class index and the class capacity.
func classFor(size int) (int, int) {
	size--
	size = max(size, 0)
	size >>= 8
	id := bits.Len(uint(size))
	id = min(id, classCount-1)
	return id, 1 << (id + 8)
}
