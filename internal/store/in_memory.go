package store

import (
	"context"
	"sync"

	groceryerrors "github.com/abgdnv/grocerylist/internal/errors"
)

// inMemory implements ItemStore using an in-memory map keyed by ItemID.
// It mirrors the DynamoDB semantics: Put overwrites, FindByName returns an
// arbitrary match when names collide.
type inMemory struct {
	mu    sync.RWMutex
	items map[string]Item
}

// NewInMemoryStore creates a new instance of ItemStore backed by a map.
func NewInMemoryStore() ItemStore {
	return &inMemory{
		items: make(map[string]Item),
	}
}

// FindAll retrieves all items.
func (s *inMemory) FindAll(_ context.Context) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		list = append(list, item)
	}
	return list, nil
}

// FindByName retrieves an item by its name.
// Returns ErrItemNotFound if no item exists with the given name.
func (s *inMemory) FindByName(_ context.Context, name string) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.Name == name {
			found := item
			return &found, nil
		}
	}
	return nil, groceryerrors.ErrItemNotFound
}

// Put writes the item, replacing any existing item with the same ItemID.
func (s *inMemory) Put(_ context.Context, item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[item.ItemID] = item
	return nil
}

// UpdatePurchased sets the Purchased flag on the item with the given ID.
// Returns ErrItemNotFound if no item exists with the given ID.
func (s *inMemory) UpdatePurchased(_ context.Context, itemID string, purchased bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return groceryerrors.ErrItemNotFound
	}
	item.Purchased = purchased
	s.items[itemID] = item
	return nil
}
