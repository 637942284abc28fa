// Package errors provides custom error types for grocery item operations.
package errors

import "errors"

var ErrItemNotFound = errors.New("item not found")
