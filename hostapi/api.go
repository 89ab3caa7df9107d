// Package hostapi defines the stable callback surface the host hands to
// every native module exactly once during the handshake. Its shape is
// the ABI contract: any change to the method set or semantics requires
// bumping ABIVersion.
package hostapi

import (
	"errors"
	"sync"
)

// ABIVersion is the host's compiled compatibility marker. A module is
// accepted only if its own exported version matches exactly; there are
// no compatibility ranges.
const ABIVersion int32 = 1

// ErrForeignBuffer is returned by Release for a buffer that was not
// handed out by this API instance, or that was already released.
// Callers violating the Allocate/Release pairing are reported, never
// silently tolerated.
var ErrForeignBuffer = errors.New("buffer was not allocated by this API")

// Sink is the logging collaborator the API routes plugin messages to.
// Implementations must tolerate concurrent calls.
type Sink interface {
	Write(level Level, text string)
}

// Buffer is a host-owned allocation exchanged across the plugin
// boundary. Plugins must hand it back through Release when done.
type Buffer struct {
	data []byte
}

// Bytes returns the buffer's backing storage.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the buffer's capacity in bytes.
func (b *Buffer) Len() int { return len(b.data) }

// API is the callback table injected into modules. It is constructed
// once before any module is loaded, never mutated afterwards, and stays
// valid for the process's lifetime. All methods are safe for concurrent
// use from arbitrary plugin goroutines.
type API struct {
	sink Sink

	mu      sync.Mutex
	buffers map[*Buffer]struct{}
}

// New creates the API around the given sink.
func New(sink Sink) *API {
	return &API{
		sink:    sink,
		buffers: make(map[*Buffer]struct{}),
	}
}

// Log formats a message and routes it to the sink at the given level.
// The formatted text is bounded by MaxMessageLen; oversized messages
// are truncated with a marker rather than passed through.
func (a *API) Log(level Level, format string, args ...any) {
	a.sink.Write(level, formatBounded(format, args...))
}

// Allocate hands out a host-tracked buffer of the given size so host
// and plugin can exchange ownership safely when their allocators
// differ. Sizes below one byte yield a nil buffer.
func (a *API) Allocate(size int) *Buffer {
	if size <= 0 {
		return nil
	}
	buf := &Buffer{data: make([]byte, size)}

	a.mu.Lock()
	a.buffers[buf] = struct{}{}
	a.mu.Unlock()

	return buf
}

// Release returns a buffer previously handed out by Allocate on this
// API instance. Releasing any other buffer, or the same buffer twice,
// fails with ErrForeignBuffer.
func (a *API) Release(buf *Buffer) error {
	if buf == nil {
		return ErrForeignBuffer
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.buffers[buf]; !ok {
		return ErrForeignBuffer
	}
	delete(a.buffers, buf)
	return nil
}

// Outstanding reports how many allocated buffers have not been
// released yet.
func (a *API) Outstanding() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.buffers)
}
