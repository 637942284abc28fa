// Package store provides an interface for grocery item storage operations.
package store

import "context"

// Item is the persisted grocery item record. Price and Quantity are stored as
// the decimal string form of the numbers supplied on creation; that encoding
// is part of the table's contract and is surfaced as-is by the list operation.
type Item struct {
	ItemID    string `dynamodbav:"ItemID"    json:"ItemID"`
	Name      string `dynamodbav:"Name"      json:"Name"`
	Price     string `dynamodbav:"Price"     json:"Price"`
	Quantity  string `dynamodbav:"Quantity"  json:"Quantity"`
	Purchased bool   `dynamodbav:"Purchased" json:"Purchased"`
}

// ItemStore is an interface for grocery item storage operations.
// It abstracts the underlying data store, allowing for different implementations
// (e.g. in-memory, DynamoDB). Each call is a single round trip with no
// client-side retry or batching.
type ItemStore interface {
	// FindAll returns every item in the table via a full scan.
	// Returns an empty slice if no items exist.
	FindAll(ctx context.Context) ([]Item, error)

	// FindByName looks an item up through the secondary index on Name.
	// When several items share the name, the first result the index returns
	// wins; the ordering is not defined.
	// Returns ErrItemNotFound if no item exists with the given name.
	FindByName(ctx context.Context, name string) (*Item, error)

	// Put writes an item, unconditionally replacing any existing item with
	// the same ItemID.
	Put(ctx context.Context, item Item) error

	// UpdatePurchased sets the Purchased attribute of the item with the given
	// ID, leaving every other attribute untouched.
	UpdatePurchased(ctx context.Context, itemID string, purchased bool) error
}
