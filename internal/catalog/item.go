// Package catalog manages the comic catalog: sellable items with
// descriptive and pricing attributes, persisted as comma-separated
// lines in the comics blob.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation errors for item fields.
var (
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrEmptyAuthor    = errors.New("author cannot be empty")
	ErrEmptyGenre     = errors.New("genre cannot be empty")
	ErrBadPrice       = errors.New("price must be greater than 0")
	ErrFieldSeparator = errors.New("value cannot contain a comma")
)

// Publication years are accepted from minYear up to the current year
// plus yearSlack (pre-orders for announced issues).
const (
	minYear   = 1800
	yearSlack = 5
)

// Item is one sellable comic. Items are shared by reference between
// the catalog store, stock lookups, and cart lines: a mutation through
// the catalog is immediately visible everywhere the item is held.
type Item struct {
	ID     int
	Title  string
	Author string
	Price  decimal.Decimal
	Genre  string
	Year   int
}

// New constructs a validated Item.
func New(id int, title, author string, price decimal.Decimal, genre string, year int) (*Item, error) {
	it := &Item{ID: id}
	if err := it.SetTitle(title); err != nil {
		return nil, err
	}
	if err := it.SetAuthor(author); err != nil {
		return nil, err
	}
	if err := it.SetPrice(price); err != nil {
		return nil, err
	}
	if err := it.SetGenre(genre); err != nil {
		return nil, err
	}
	if err := it.SetYear(year); err != nil {
		return nil, err
	}
	return it, nil
}

// SetTitle replaces the title. It must be non-empty and free of the
// comma field separator, which would corrupt the persisted line.
func (it *Item) SetTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if strings.Contains(title, ",") {
		return fmt.Errorf("title %q: %w", title, ErrFieldSeparator)
	}
	it.Title = title
	return nil
}

// SetAuthor replaces the author. Same rules as SetTitle.
func (it *Item) SetAuthor(author string) error {
	if author == "" {
		return ErrEmptyAuthor
	}
	if strings.Contains(author, ",") {
		return fmt.Errorf("author %q: %w", author, ErrFieldSeparator)
	}
	it.Author = author
	return nil
}

// SetPrice replaces the unit price. It must be strictly positive.
func (it *Item) SetPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return ErrBadPrice
	}
	it.Price = price
	return nil
}

// SetGenre replaces the genre label. Same rules as SetTitle.
func (it *Item) SetGenre(genre string) error {
	if genre == "" {
		return ErrEmptyGenre
	}
	if strings.Contains(genre, ",") {
		return fmt.Errorf("genre %q: %w", genre, ErrFieldSeparator)
	}
	it.Genre = genre
	return nil
}

// SetYear replaces the publication year, bounded to a sane range.
func (it *Item) SetYear(year int) error {
	maxYear := time.Now().Year() + yearSlack
	if year < minYear || year > maxYear {
		return fmt.Errorf("year must be between %d and %d", minYear, maxYear)
	}
	it.Year = year
	return nil
}
