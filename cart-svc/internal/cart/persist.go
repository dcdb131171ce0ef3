package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const writeTimeout = 5 * time.Second

// writer persists snapshots for one store on its own goroutine. Only the
// newest pending snapshot is kept: when writes fall behind, intermediate
// states are skipped but the store always converges on its latest state.
type writer struct {
	kv     KV
	key    string
	logger zerolog.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	pending []byte
	queued  uint64
	written uint64
	closed  bool
	done    chan struct{}
}

func newWriter(kv KV, key string, logger zerolog.Logger) *writer {
	w := &writer{
		kv:     kv,
		key:    key,
		logger: logger.With().Str("cart_key", key).Logger(),
		done:   make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

func (w *writer) enqueue(snapshot []byte) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.logger.Warn().Msg("cart mutated after close, snapshot dropped")
		return
	}
	w.pending = snapshot
	w.queued++
	w.mu.Unlock()
	w.cond.Broadcast()
}

func (w *writer) run() {
	defer close(w.done)
	for {
		w.mu.Lock()
		for w.written == w.queued && !w.closed {
			w.cond.Wait()
		}
		if w.written == w.queued {
			w.mu.Unlock()
			return
		}
		snapshot, version := w.pending, w.queued
		w.mu.Unlock()

		w.write(snapshot)

		w.mu.Lock()
		w.written = version
		w.mu.Unlock()
		w.cond.Broadcast()
	}
}

func (w *writer) write(snapshot []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := w.kv.Set(ctx, w.key, snapshot); err != nil {
		w.logger.Error().Err(err).Msg("failed to persist cart")
		return
	}
	w.logger.Debug().Int("bytes", len(snapshot)).Msg("cart persisted")
}

func (w *writer) flush(ctx context.Context) error {
	w.mu.Lock()
	target := w.queued
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.mu.Lock()
		for w.written < target {
			w.cond.Wait()
		}
		w.mu.Unlock()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *writer) close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.cond.Broadcast()
	<-w.done
}

// Load returns the cart stored under key. A missing, unreadable or malformed
// snapshot gives an empty cart; the reason is only logged.
func Load(ctx context.Context, kv KV, key string, logger zerolog.Logger) *Store {
	s := NewStore(kv, key, logger)

	data, err := kv.Get(ctx, key)
	switch {
	case errors.Is(err, ErrNotFound):
		return s
	case err != nil:
		logger.Warn().Err(err).Str("cart_key", key).Msg("failed to read cart, starting empty")
		return s
	}

	items, err := decodeSnapshot(data)
	if err != nil {
		logger.Debug().Err(err).Str("cart_key", key).Msg("discarding malformed cart snapshot")
		return s
	}
	s.items = items
	return s
}

func decodeSnapshot(data []byte) ([]LineItem, error) {
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ID == "" || item.Quantity < 1 || item.Price < 0 {
			return nil, fmt.Errorf("invalid line %q", item.ID)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("duplicate line %q", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	if items == nil {
		items = []LineItem{}
	}
	return items, nil
}
