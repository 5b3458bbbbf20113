// Package bufpool provides pooled scratch buffers for connection reads
// and response serialization, backed by bytebufferpool rather than a
// hand-rolled sync.Pool of byte slices.
package bufpool

import (
	"sync/atomic"

	"github.com/valyala/bytebufferpool"
)

// ReadChunkSize is the size of the scratch buffer each non-blocking
// read syscall fills before the bytes are handed to the parser.
const ReadChunkSize = 4096

var (
	pool bytebufferpool.Pool

	gets atomic.Uint64
	puts atomic.Uint64
)

// Get retrieves a pooled *bytebufferpool.ByteBuffer with its length
// reset to zero. Callers grow it with Write.
func Get() *bytebufferpool.ByteBuffer {
	gets.Add(1)
	return pool.Get()
}

// Put returns buf to the pool after resetting it.
func Put(buf *bytebufferpool.ByteBuffer) {
	puts.Add(1)
	pool.Put(buf)
}

// Metrics reports pool usage counters.
type Metrics struct {
	Gets uint64
	Puts uint64
}

// GetMetrics returns a snapshot of pool usage counters.
func GetMetrics() Metrics {
	return Metrics{Gets: gets.Load(), Puts: puts.Load()}
}
