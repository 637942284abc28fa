package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	groceryerrors "github.com/abgdnv/grocerylist/internal/errors"
	"github.com/abgdnv/grocerylist/internal/store"
)

// mockItemStore is a mock implementation of the ItemStore interface
type mockItemStore struct {
	items []store.Item
	item  *store.Item
	error error

	putCalls    []store.Item
	updateCalls []updateCall
}

type updateCall struct {
	itemID    string
	purchased bool
}

// Simulate scanning all items
func (m *mockItemStore) FindAll(_ context.Context) ([]store.Item, error) {
	return m.items, m.error
}

// Simulate the secondary-index lookup by name
func (m *mockItemStore) FindByName(_ context.Context, _ string) (*store.Item, error) {
	return m.item, m.error
}

// Simulate putting an item
func (m *mockItemStore) Put(_ context.Context, item store.Item) error {
	m.putCalls = append(m.putCalls, item)
	return m.error
}

// Simulate updating the purchased attribute
func (m *mockItemStore) UpdatePurchased(_ context.Context, itemID string, purchased bool) error {
	m.updateCalls = append(m.updateCalls, updateCall{itemID: itemID, purchased: purchased})
	return m.error
}

func ptr[T any](v T) *T { return &v }

func Test_ItemService_FindAll(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockItemStore
		expected    []store.Item
		expectError error
	}{
		{
			name: "Success - items found",
			mockStore: &mockItemStore{
				items: []store.Item{{ItemID: "i1", Name: "Milk", Quantity: "2", Price: "3.5"}},
			},
			expected: []store.Item{{ItemID: "i1", Name: "Milk", Quantity: "2", Price: "3.5"}},
		},
		{
			name: "Success - no items",
			mockStore: &mockItemStore{
				items: []store.Item{},
			},
			expected: []store.Item{},
		},
		{
			name: "Error - store error",
			mockStore: &mockItemStore{
				error: ErrStoreError,
			},
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			found, err := service.FindAll(context.Background())
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, found)
		})
	}
}

func Test_ItemService_Create(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name        string
		mockStore   *mockItemStore
		dto         ItemCreateDto
		expectPut   *store.Item
		expectError error
	}{
		{
			name:      "Success - numeric fields stored as strings",
			mockStore: &mockItemStore{},
			dto: ItemCreateDto{
				ItemID:   ptr("i1"),
				Name:     ptr("Milk"),
				Quantity: ptr(2.0),
				Price:    ptr(3.5),
			},
			expectPut: &store.Item{
				ItemID:    "i1",
				Name:      "Milk",
				Quantity:  "2",
				Price:     "3.5",
				Purchased: false,
			},
		},
		{
			name:      "Success - purchased flag carried through",
			mockStore: &mockItemStore{},
			dto: ItemCreateDto{
				ItemID:    ptr("i2"),
				Name:      ptr("Eggs"),
				Quantity:  ptr(12.0),
				Price:     ptr(4.99),
				Purchased: true,
			},
			expectPut: &store.Item{
				ItemID:    "i2",
				Name:      "Eggs",
				Quantity:  "12",
				Price:     "4.99",
				Purchased: true,
			},
		},
		{
			name:      "Error - store error",
			mockStore: &mockItemStore{error: ErrStoreError},
			dto: ItemCreateDto{
				ItemID:   ptr("i1"),
				Name:     ptr("Milk"),
				Quantity: ptr(2.0),
				Price:    ptr(3.5),
			},
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			err := service.Create(context.Background(), tc.dto)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			require.Len(t, tc.mockStore.putCalls, 1)
			assert.Equal(t, *tc.expectPut, tc.mockStore.putCalls[0])
		})
	}
}

func Test_ItemService_ResetPurchased(t *testing.T) {
	ErrStoreError := errors.New("store error")
	testCases := []struct {
		name         string
		mockStore    *mockItemStore
		itemName     string
		expectUpdate *updateCall
		expectError  error
	}{
		{
			name: "Success - purchased reset to false",
			mockStore: &mockItemStore{
				item: &store.Item{ItemID: "i1", Name: "Milk", Purchased: true},
			},
			itemName:     "Milk",
			expectUpdate: &updateCall{itemID: "i1", purchased: false},
		},
		{
			name: "Error - item not found",
			mockStore: &mockItemStore{
				error: groceryerrors.ErrItemNotFound,
			},
			itemName:    "Bread",
			expectError: groceryerrors.ErrItemNotFound,
		},
		{
			name: "Error - store error",
			mockStore: &mockItemStore{
				error: ErrStoreError,
			},
			itemName:    "Milk",
			expectError: ErrStoreError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			service := NewService(tc.mockStore)
			// when
			err := service.ResetPurchased(context.Background(), tc.itemName)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			require.Len(t, tc.mockStore.updateCalls, 1)
			assert.Equal(t, *tc.expectUpdate, tc.mockStore.updateCalls[0])
		})
	}
}
