// Package cart holds the single source of truth for cart contents.
package cart

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/nikolayk812/cart-engine/internal/domain"
	"github.com/nikolayk812/cart-engine/internal/port"
)

// Store owns the ordered line-item collection for one cart owner.
// In-memory state is authoritative; the snapshot repository is written
// best-effort after every mutation and a write failure never rolls back
// or blocks the mutation.
//
// The mutex serializes read-modify-write sequences so two concurrent adds
// of the same variant cannot produce duplicate identity keys.
type Store struct {
	mu    sync.Mutex
	owner string
	items []domain.LineItem

	repo   port.SnapshotRepository
	logger *slog.Logger
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore builds a store for ownerID and loads its prior snapshot.
// An absent or unreadable snapshot yields an empty cart, never an error.
func NewStore(ctx context.Context, ownerID string, repo port.SnapshotRepository, opts ...Option) (*Store, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}

	s := &Store{
		owner:  ownerID,
		repo:   repo,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	items, found, err := repo.Load(ctx, ownerID)
	if err != nil {
		s.logger.Warn("cart snapshot load failed, starting empty",
			"owner_id", ownerID, "error", err)
		return s, nil
	}
	if found {
		s.items = items
	}

	return s, nil
}

// ItemDraft is the input to AddItem. Quantity 0 means the default of 1.
type ItemDraft struct {
	ProductID string
	Name      string
	UnitPrice domain.Money
	Image     string
	Size      string
	Color     string
	Quantity  int64
}

// AddItem merges the draft into the cart: an existing line item with the same
// identity key has its quantity increased, otherwise a new line item is
// appended, preserving insertion order for display.
func (s *Store) AddItem(ctx context.Context, draft ItemDraft) error {
	if draft.ProductID == "" {
		return domain.ValidationError{Field: "productId", Reason: "is empty"}
	}
	if draft.UnitPrice.IsNegative() {
		return domain.ValidationError{Field: "unitPrice", Reason: "is negative"}
	}
	if draft.Quantity < 0 {
		return domain.ValidationError{Field: "quantity", Reason: "is not positive"}
	}

	quantity := draft.Quantity
	if quantity == 0 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.ItemKey{ProductID: draft.ProductID, Size: draft.Size, Color: draft.Color}
	if idx := s.indexOf(key); idx >= 0 {
		// Same variant: increment through the shared quantity path so the
		// non-positive-removes rule holds everywhere.
		s.setQuantity(idx, s.items[idx].Quantity+quantity)
	} else {
		s.items = append(s.items, domain.LineItem{
			ProductID: draft.ProductID,
			Name:      draft.Name,
			UnitPrice: draft.UnitPrice,
			Image:     draft.Image,
			Size:      draft.Size,
			Color:     draft.Color,
			Quantity:  quantity,
		})
	}

	s.persist(ctx)
	return nil
}

// UpdateQuantity replaces the quantity of the line item with the given key.
// A quantity <= 0 removes the item. Unknown keys are a no-op, not an error.
func (s *Store) UpdateQuantity(ctx context.Context, key domain.ItemKey, quantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(key)
	if idx < 0 {
		return nil
	}

	s.setQuantity(idx, quantity)
	s.persist(ctx)
	return nil
}

// RemoveItem deletes the line item with the given key, if present.
func (s *Store) RemoveItem(ctx context.Context, key domain.ItemKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(key)
	if idx < 0 {
		return nil
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.persist(ctx)
	return nil
}

// Clear empties the cart and deletes the persisted snapshot entirely, so a
// later load behaves as if the cart never existed.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil

	if _, err := s.repo.Delete(ctx, s.owner); err != nil {
		s.logger.Warn("cart snapshot delete failed",
			"owner_id", s.owner, "error", err)
	}

	return nil
}

// Items returns the line items in insertion order. The slice is a copy.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Cart returns the owner together with the current line items.
func (s *Store) Cart() domain.Cart {
	return domain.Cart{OwnerID: s.owner, Items: s.Items()}
}

// Totals derives the line, unit and subtotal aggregates. No side effects.
func (s *Store) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := decimal.Zero
	var units int64
	for _, item := range s.items {
		units += item.Quantity
		subtotal = subtotal.Add(item.LineTotal().Amount)
	}

	return domain.Totals{
		Lines:    len(s.items),
		Units:    units,
		Subtotal: subtotal,
	}
}

// indexOf is called with the lock held.
func (s *Store) indexOf(key domain.ItemKey) int {
	for i, item := range s.items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}

// setQuantity is called with the lock held; quantity <= 0 removes the item.
func (s *Store) setQuantity(idx int, quantity int64) {
	if quantity <= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
		return
	}
	s.items[idx].Quantity = quantity
}

// persist is called with the lock held. Write-behind, best-effort: memory
// stays authoritative and a failure only produces a warning.
func (s *Store) persist(ctx context.Context) {
	snapshot := make([]domain.LineItem, len(s.items))
	copy(snapshot, s.items)

	if err := s.repo.Save(ctx, s.owner, snapshot); err != nil {
		s.logger.Warn("cart snapshot save failed",
			"owner_id", s.owner, "error", err)
	}
}
