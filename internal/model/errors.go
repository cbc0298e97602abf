package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound          = errors.New("product not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrModeMismatch is returned when a mutation supplies serials for a
	// product created without serial tracking, or omits them for one
	// created with it. A product's tracking mode is fixed for life.
	ErrModeMismatch = errors.New("serial tracking mode mismatch")
)

// SerialConflictError reports serials that already exist on the product.
type SerialConflictError struct {
	Product string
	Serials []string
}

func (e *SerialConflictError) Error() string {
	return fmt.Sprintf("serials already present on product %q: %s", e.Product, strings.Join(e.Serials, ", "))
}

// SerialNotFoundError reports requested serials that are not members of the
// product's current serial set.
type SerialNotFoundError struct {
	Product string
	Serials []string
}

func (e *SerialNotFoundError) Error() string {
	return fmt.Sprintf("serials not found on product %q: %s", e.Product, strings.Join(e.Serials, ", "))
}
