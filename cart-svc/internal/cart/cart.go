// Package cart holds a customer's line items and keeps a JSON snapshot of
// them in a key/value store.
//
// A Store is the single owner of one cart. Mutations apply in call order
// under the store's lock, and each one hands the full collection to a
// background writer; callers never wait on persistence.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"restoran/i18n"
)

// Product is what can be put in a cart: a menu item, or a promotion
// converted with FromPromotion.
type Product struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id,omitempty"`
	Name        i18n.Text `json:"name"`
	Description i18n.Text `json:"description"`
	Ingredients i18n.Text `json:"ingredients"`
	ImageURL    string    `json:"image_url,omitempty"`
	Price       int64     `json:"price"`
	IsPromotion bool      `json:"is_promotion,omitempty"`
}

// LineItem is one product in the cart. Price is the unit price captured when
// the product was first added.
type LineItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (l LineItem) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

type Store struct {
	mu     sync.Mutex
	items  []LineItem
	writer *writer
}

// NewStore returns an empty cart persisted under key. A nil kv gives a
// store that only lives in memory.
func NewStore(kv KV, key string, logger zerolog.Logger) *Store {
	s := &Store{items: []LineItem{}}
	if kv != nil {
		s.writer = newWriter(kv, key, logger)
	}
	return s
}

// AddItem adds one unit of p. An existing line for the same id is
// incremented and keeps its original price.
func (s *Store) AddItem(p Product) {
	if p.ID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(p.ID); i >= 0 {
		s.items[i].Quantity++
	} else {
		s.items = append(s.items, LineItem{Product: p, Quantity: 1})
	}
	s.persist()
}

// UpdateQuantity sets the quantity of the line with the given id. A
// quantity of zero or less removes the line. Unknown ids are ignored.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(id)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return
	}
	s.items[i].Quantity = quantity
	s.persist()
}

func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.persist()
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []LineItem{}
	s.persist()
}

// Subtract takes each line's quantity off the matching line in the cart and
// drops lines that reach zero. Lines added after ordered was taken are left
// alone, and a line the customer raised keeps the difference.
func (s *Store) Subtract(ordered []LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for _, line := range ordered {
		i := s.index(line.ID)
		if i < 0 || line.Quantity <= 0 {
			continue
		}
		s.items[i].Quantity -= line.Quantity
		if s.items[i].Quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		}
		changed = true
	}
	if changed {
		s.persist()
	}
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

// Flush blocks until every mutation made so far has been written, or ctx is
// done.
func (s *Store) Flush(ctx context.Context) error {
	if s.writer == nil {
		return nil
	}
	return s.writer.flush(ctx)
}

// Close writes what is pending and stops the background writer. The store
// must not be mutated afterwards.
func (s *Store) Close() {
	if s.writer != nil {
		s.writer.close()
	}
}

func (s *Store) index(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// persist must be called with s.mu held so snapshots reach the writer in
// mutation order.
func (s *Store) persist() {
	if s.writer == nil {
		return
	}
	snapshot, err := json.Marshal(s.items)
	if err != nil {
		s.writer.logger.Error().Err(err).Msg("failed to encode cart snapshot")
		return
	}
	s.writer.enqueue(snapshot)
}
