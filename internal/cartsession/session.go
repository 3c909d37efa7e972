// Package cartsession holds the storefront's cart state: an explicit,
// injectable session object rather than an ambient singleton. Mutations are
// applied locally first and mirrored to the server-side cart store on a
// best-effort basis, so the UI never blocks on the network.
package cartsession

import (
	"context"
	"sync"

	"feastly-be/internal/logger"

	"go.uber.org/zap"
)

// Catalog resolves current prices for cart entries. Ids missing from the
// catalog are absent from the result and price in at zero.
type Catalog interface {
	PricesByIDs(ctx context.Context, ids []string) (map[string]float64, error)
}

// Syncer mirrors cart mutations to the server-side store for an
// authenticated user.
type Syncer interface {
	AddItem(ctx context.Context, itemID string) error
	RemoveItem(ctx context.Context, itemID string) error
	Fetch(ctx context.Context) (map[string]int, error)
}

type Session struct {
	mu      sync.Mutex
	items   map[string]int
	catalog Catalog
	syncer  Syncer

	// pending tracks in-flight remote syncs so Flush can await them.
	pending sync.WaitGroup
}

func New(catalog Catalog) *Session {
	return &Session{
		items:   make(map[string]int),
		catalog: catalog,
	}
}

// Attach binds the session to an authenticated user's server-side cart and
// hydrates local state from it, replacing any local-only contents.
func (s *Session) Attach(ctx context.Context, syncer Syncer) error {
	remote, err := syncer.Fetch(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.syncer = syncer
	s.items = make(map[string]int, len(remote))
	for id, qty := range remote {
		if qty > 0 {
			s.items[id] = qty
		}
	}

	return nil
}

// Detach tears the session down on logout: the server mirror is forgotten
// and local state is cleared.
func (s *Session) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.syncer = nil
	s.items = make(map[string]int)
}

// Add increments the quantity for itemID by one, creating the entry at one
// when absent. Calling it again increments further.
func (s *Session) Add(ctx context.Context, itemID string) {
	if itemID == "" {
		return
	}

	s.mu.Lock()
	s.items[itemID]++
	syncer := s.syncer
	s.mu.Unlock()

	if syncer != nil {
		s.sync(ctx, "add", itemID, syncer.AddItem)
	}
}

// Remove decrements the quantity by one and drops the entry at zero. It is a
// no-op when the item is absent.
func (s *Session) Remove(ctx context.Context, itemID string) {
	s.mu.Lock()
	qty, ok := s.items[itemID]
	if !ok || qty <= 0 {
		s.mu.Unlock()
		return
	}
	if qty == 1 {
		delete(s.items, itemID)
	} else {
		s.items[itemID] = qty - 1
	}
	syncer := s.syncer
	s.mu.Unlock()

	if syncer != nil {
		s.sync(ctx, "remove", itemID, syncer.RemoveItem)
	}
}

// sync runs a remote mirror call without blocking the caller. The local
// mutation is already committed; a failed sync is a recoverable error and is
// only logged. The parent context's cancellation must not abort the sync,
// request handling is long done by then.
func (s *Session) sync(ctx context.Context, op, itemID string, fn func(context.Context, string) error) {
	log := logger.FromCtx(ctx)
	bg := context.WithoutCancel(ctx)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := fn(bg, itemID); err != nil {
			log.Warn("cart sync failed",
				zap.String("op", op),
				zap.String("item_id", itemID),
				zap.Error(err),
			)
		}
	}()
}

// Flush waits for outstanding remote syncs. Intended for shutdown and tests.
func (s *Session) Flush() {
	s.pending.Wait()
}

// Quantity reports the current quantity for a single item.
func (s *Session) Quantity(itemID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[itemID]
}

// Quantities returns a copy of the cart mapping.
func (s *Session) Quantities() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int, len(s.items))
	for id, qty := range s.items {
		out[id] = qty
	}
	return out
}

// TotalAmount computes the cart subtotal against current catalog prices.
// Entries whose item no longer exists in the catalog contribute zero.
func (s *Session) TotalAmount(ctx context.Context) (float64, error) {
	s.mu.Lock()
	ids := make([]string, 0, len(s.items))
	quantities := make(map[string]int, len(s.items))
	for id, qty := range s.items {
		ids = append(ids, id)
		quantities[id] = qty
	}
	s.mu.Unlock()

	if len(ids) == 0 {
		return 0, nil
	}

	prices, err := s.catalog.PricesByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	var total float64
	for id, qty := range quantities {
		total += prices[id] * float64(qty)
	}

	return total, nil
}
