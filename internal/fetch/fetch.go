// Package fetch wraps journal reads in a simulated fixed-latency fetch,
// standing in for a future network boundary. A scheduled read always
// resolves after its delay; there is no cancellation. If the consumer was
// discarded in the meantime, the delivery is dropped silently.
package fetch

import (
	"log/slog"
	"sync"
	"time"
)

// Fetcher schedules deferred reads with one fixed latency.
type Fetcher struct {
	latency time.Duration
	log     *slog.Logger
}

// New creates a Fetcher. A zero latency delivers on the next timer tick.
func New(latency time.Duration, log *slog.Logger) *Fetcher {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Fetcher{latency: latency, log: log}
}

// Latency returns the fixed delay applied to every read.
func (f *Fetcher) Latency() time.Duration { return f.latency }

// Handle tracks one in-flight read and whether its consumer still wants
// the result.
type Handle struct {
	mu        sync.Mutex
	discarded bool
	done      chan struct{}
}

// Discard marks the consumer as gone. The read still runs to completion;
// only the delivery is dropped.
func (h *Handle) Discard() {
	h.mu.Lock()
	h.discarded = true
	h.mu.Unlock()
}

// Done is closed once the read has resolved, delivered or not. Tests and
// shutdown paths wait on it.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Read schedules query to run after the fetcher's latency and hands its
// result to deliver, unless the handle was discarded first.
func Read[T any](f *Fetcher, query func() T, deliver func(T)) *Handle {
	h := &Handle{done: make(chan struct{})}
	time.AfterFunc(f.latency, func() {
		defer close(h.done)
		v := query()

		h.mu.Lock()
		defer h.mu.Unlock()
		if h.discarded {
			f.log.Debug("fetch result dropped, consumer discarded")
			return
		}
		deliver(v)
	})
	return h
}
