package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Legacy 4-field lines predate the genre and year columns; they are
// accepted on read with these defaults and rewritten in the 6-field
// form on the next save.
const (
	legacyGenre = "Unknown"
	legacyYear  = 2000
)

// Codec encodes items as comma-separated lines:
//
//	id,title,author,price,genre,year
type Codec struct{}

// Parse decodes a 6-field line, or a legacy 4-field line
// (id,title,author,price). Field values are validated the same way
// as construction, so an invalid persisted record is skipped on load.
func (Codec) Parse(line string) (*Item, error) {
	parts := strings.Split(line, ",")

	var genre string
	var yearField string
	switch len(parts) {
	case 4:
		genre = legacyGenre
		yearField = strconv.Itoa(legacyYear)
	case 6:
		genre = strings.TrimSpace(parts[4])
		yearField = strings.TrimSpace(parts[5])
	default:
		return nil, fmt.Errorf("want 4 or 6 fields, got %d", len(parts))
	}

	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("bad id %q: %w", parts[0], err)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(parts[3]))
	if err != nil {
		return nil, fmt.Errorf("bad price %q: %w", parts[3], err)
	}
	year, err := strconv.Atoi(yearField)
	if err != nil {
		return nil, fmt.Errorf("bad year %q: %w", yearField, err)
	}

	return New(id, strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), price, genre, year)
}

// Serialize encodes an item as a 6-field line.
func (Codec) Serialize(it *Item) string {
	return strings.Join([]string{
		strconv.Itoa(it.ID),
		it.Title,
		it.Author,
		it.Price.String(),
		it.Genre,
		strconv.Itoa(it.Year),
	}, ",")
}

// ID returns the item's identity.
func (Codec) ID(it *Item) int {
	return it.ID
}
