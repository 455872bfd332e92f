// Package inventory manages quantity-on-hand for catalog items.
//
// Every stock record belongs to exactly one comic and its record id
// is aliased to the comic id. Quantities never go negative.
package inventory

import (
	"errors"
	"fmt"
)

// Stock mutation errors.
var (
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateRecord   = errors.New("stock record already exists for comic")
	ErrNoRecord          = errors.New("no stock record for comic")
)

// Record is the quantity-on-hand for one comic. ID always equals
// ComicID; the pair is kept because the persisted 3-field form
// carries both.
type Record struct {
	ID       int
	ComicID  int
	Quantity int
}

// NewRecord creates a stock record for a comic. The record id is the
// comic id.
func NewRecord(comicID, quantity int) (*Record, error) {
	r := &Record{ID: comicID, ComicID: comicID}
	if err := r.SetQuantity(quantity); err != nil {
		return nil, err
	}
	return r, nil
}

// SetQuantity replaces the quantity. It must be non-negative.
func (r *Record) SetQuantity(quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	r.Quantity = quantity
	return nil
}

// Add increases the quantity by amount.
func (r *Record) Add(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	r.Quantity += amount
	return nil
}

// Remove decreases the quantity by amount. The amount must not exceed
// the current quantity.
func (r *Record) Remove(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount > r.Quantity {
		return fmt.Errorf("%w: available %d, requested %d", ErrInsufficientStock, r.Quantity, amount)
	}
	r.Quantity -= amount
	return nil
}
