package bufpool

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassFor(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		expectedID  int
		expectedCap int
	}{
		{"zero size", 0, 0, 256},
		{"one byte", 1, 0, 256},
		{"smallest class upper bound", 256, 0, 256},
		{"just above smallest class", 257, 1, 512},
		{"512 boundary", 512, 1, 512},
		{"1KiB", 1024, 2, 1024},
		{"1KiB plus one", 1025, 3, 2048},
		{"1MiB", 1 << 20, 12, 1 << 20},
		{"negative size", -5, 0, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, classCap := classFor(tt.size)
			assert.Equal(t, tt.expectedID, id)
			assert.Equal(t, tt.expectedCap, classCap)
		})
	}
}

func TestGetReturnsCoveringCapacity(t *testing.T) {
	p := New()

	for _, size := range []int{0, 100, 256, 1000, 5000, 1 << 18} {
		b := p.Get(size)
		assert.Equal(t, 0, len(b))
		assert.GreaterOrEqual(t, cap(b), size)
	}
}

func TestPutResetsAndReuses(t *testing.T) {
	p := New()

	b := p.Get(256)
	b = append(b, []byte("scratch content")...)
	p.Put(b)

	next := p.Get(256)
	assert.Equal(t, 0, len(next))
	assert.Equal(t, 256, cap(next))
}

func TestPutDropsOddCapacities(t *testing.T) {
	p := New()

	// 3000 is no class capacity, the slice must not be retained
	p.Put(make([]byte, 0, 3000))
	got := p.Get(3000)
	assert.Equal(t, 4096, cap(got))
}

func TestConcurrentGetPut(t *testing.T) {
	const workers = 8
	const iterations = 500

	p := New()
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				size := (id*iterations + j) % 10000
				b := p.Get(size)
				runtime.Gosched()
				p.Put(b)
			}
		}(i)
	}

	wg.Wait()
}
