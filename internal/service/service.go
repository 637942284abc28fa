// Package service provides the implementation of grocery item business logic.
package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/abgdnv/grocerylist/internal/store"
)

// ItemService defines the methods for managing grocery items.
// It abstracts the underlying business logic and data access.
type ItemService interface {
	// FindAll returns every stored item.
	// Returns an empty slice if no items exist.
	FindAll(ctx context.Context) ([]store.Item, error)

	// Create persists a new item, overwriting any existing item with the
	// same itemID.
	Create(ctx context.Context, item ItemCreateDto) error

	// ResetPurchased looks an item up by name and sets its Purchased flag
	// back to false.
	// Returns ErrItemNotFound if no item exists with the given name.
	ResetPurchased(ctx context.Context, name string) error
}

// Service implements ItemService and provides methods to manage grocery items.
type Service struct {
	repository store.ItemStore
}

// NewService creates a new instance of ItemService with the provided repository.
func NewService(repo store.ItemStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ItemCreateDto represents the data transfer object for creating a new item.
// Pointer fields distinguish absent JSON keys from zero values.
type ItemCreateDto struct {
	ItemID    *string  `json:"itemID"   validate:"required"`
	Name      *string  `json:"name"     validate:"required"`
	Quantity  *float64 `json:"quantity" validate:"required,gt=0"`
	Price     *float64 `json:"price"    validate:"required,gt=0"`
	Purchased bool     `json:"purchased"`
}

// ItemUpdateDto represents the data transfer object for the update-by-name operation.
type ItemUpdateDto struct {
	Name *string `json:"name" validate:"required"`
}

// FindAll retrieves every item from the store.
// Returns an empty slice if no items exist or error if the retrieval fails.
func (s *Service) FindAll(ctx context.Context) ([]store.Item, error) {
	items, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	return items, nil
}

// Create converts the DTO into the persisted record shape and writes it.
// Price and Quantity are stored as the decimal string form of the input
// numbers; that encoding is part of the table's contract. The write is an
// unconditional overwrite, so a repeated create with the same itemID
// replaces the prior item.
func (s *Service) Create(ctx context.Context, item ItemCreateDto) error {
	record := store.Item{
		ItemID:    *item.ItemID,
		Name:      *item.Name,
		Quantity:  strconv.FormatFloat(*item.Quantity, 'f', -1, 64),
		Price:     strconv.FormatFloat(*item.Price, 'f', -1, 64),
		Purchased: item.Purchased,
	}
	if err := s.repository.Put(ctx, record); err != nil {
		return fmt.Errorf("failed to add item %q: %w", record.ItemID, err)
	}
	return nil
}

// ResetPurchased finds the item by name and unconditionally sets Purchased to
// false. The operation never sets the flag to true; callers reset purchase
// state, they cannot mark an item purchased through this path.
// Returns ErrItemNotFound if no item exists with the given name.
func (s *Service) ResetPurchased(ctx context.Context, name string) error {
	item, err := s.repository.FindByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to look up item by name %q: %w", name, err)
	}
	if err := s.repository.UpdatePurchased(ctx, item.ItemID, false); err != nil {
		return fmt.Errorf("failed to update item %q: %w", item.ItemID, err)
	}
	return nil
}
