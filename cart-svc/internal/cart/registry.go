package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const KeyPrefix = "cart:"

// Registry hands out one Store per session. A session's store is loaded from
// the KV the first time it is asked for and kept in memory afterwards.
type Registry struct {
	kv     KV
	logger zerolog.Logger
	now    func() time.Time

	mu     sync.Mutex
	stores map[string]*entry
}

type entry struct {
	store    *Store
	lastUsed time.Time
}

func NewRegistry(kv KV, logger zerolog.Logger) *Registry {
	return &Registry{
		kv:     kv,
		logger: logger,
		now:    time.Now,
		stores: make(map[string]*entry),
	}
}

func Key(session string) string {
	return KeyPrefix + session
}

func (r *Registry) Get(ctx context.Context, session string) *Store {
	r.mu.Lock()
	if e, ok := r.stores[session]; ok {
		e.lastUsed = r.now()
		r.mu.Unlock()
		return e.store
	}
	r.mu.Unlock()

	loaded := Load(ctx, r.kv, Key(session), r.logger)

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.stores[session]; ok {
		// Another request loaded the same session first.
		loaded.Close()
		e.lastUsed = r.now()
		return e.store
	}
	r.stores[session] = &entry{store: loaded, lastUsed: r.now()}
	return loaded
}

// Sweep drops stores not used for longer than idle after writing them out.
// A dropped session is loaded again from the KV on its next request.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	var stale []*Store
	for session, e := range r.stores {
		if e.lastUsed.Before(cutoff) {
			stale = append(stale, e.store)
			delete(r.stores, session)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		s.Close()
	}
	return len(stale)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

// Flush waits for the pending writes of every store.
func (r *Registry) Flush(ctx context.Context) error {
	var errs []error
	for _, s := range r.snapshot() {
		if err := s.Flush(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close flushes and stops every store. It is called once on shutdown.
func (r *Registry) Close(ctx context.Context) error {
	err := r.Flush(ctx)

	r.mu.Lock()
	stores := r.stores
	r.stores = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range stores {
		e.store.Close()
	}
	return err
}

func (r *Registry) snapshot() []*Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Store, 0, len(r.stores))
	for _, e := range r.stores {
		out = append(out, e.store)
	}
	return out
}
