package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}

	var counter int64
	n := 1000
	seen := make([]int32, n)

	For(n, func(i int) {
		atomic.AddInt64(&counter, 1)
		atomic.AddInt32(&seen[i], 1)
	}, cfg)

	assert.Equal(t, int64(n), counter)
	for i, v := range seen {
		assert.Equal(t, int32(1), v, "index %d visited %d times", i, v)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	order := make([]int, 0, 100)
	For(100, func(i int) {
		order = append(order, i)
	}, cfg)

	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Work below two chunks stays on the caller's goroutine, in order.
	cfg := DefaultConfig()

	n := cfg.MinChunkSize - 1
	last := -1
	For(n, func(i int) {
		assert.Equal(t, last+1, i)
		last = i
	}, cfg)

	assert.Equal(t, n-1, last)
}

func TestSequential(t *testing.T) {
	cfg := Sequential()
	assert.False(t, cfg.Enabled)

	var counter int
	For(10000, func(_ int) { counter++ }, cfg)
	assert.Equal(t, 10000, counter)
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 1 << 16
	out := make([]float64, n)

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			For(n, func(j int) { out[j] = float64(j) * 2 }, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			For(n, func(j int) { out[j] = float64(j) * 2 }, Sequential())
		}
	})
}
