package inventory

import (
	"errors"
	"fmt"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/blob"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/entity"
)

// BlobName is the backing blob for stock records.
const BlobName = "stocks.txt"

// LowStockThreshold is the fixed quantity at or below which a record
// shows up on the low-stock dashboard.
const LowStockThreshold = 10

// NoRecord is the sentinel Quantity returns when a comic has no stock
// record. Callers must treat it as "no record", not "zero stock".
const NoRecord = -1

// Store holds the stock records, backed by the stocks blob.
type Store struct {
	*entity.Store[*Record]
}

// NewStore creates the stock store and loads it from blobs.
func NewStore(blobs blob.Store) *Store {
	return &Store{entity.NewStore(blobs, BlobName, Codec{})}
}

// FindByComicID returns the stock record for a comic.
func (s *Store) FindByComicID(comicID int) (*Record, bool) {
	for _, r := range s.All() {
		if r.ComicID == comicID {
			return r, true
		}
	}
	return nil, false
}

// AddRecord creates the stock record for a comic. Each comic can have
// only one record; a second is rejected without mutating the store.
func (s *Store) AddRecord(comicID, quantity int) error {
	if _, exists := s.FindByComicID(comicID); exists {
		return fmt.Errorf("%w: id %d", ErrDuplicateRecord, comicID)
	}
	r, err := NewRecord(comicID, quantity)
	if err != nil {
		return err
	}
	s.Add(r)
	return nil
}

// Quantity returns the quantity on hand for a comic, or NoRecord when
// the comic has no stock record at all.
func (s *Store) Quantity(comicID int) int {
	r, ok := s.FindByComicID(comicID)
	if !ok {
		return NoRecord
	}
	return r.Quantity
}

// HasSufficient reports whether at least required units are on hand.
// A comic with no stock record is never sufficient, even for a
// required quantity of zero: NoRecord compares below any non-negative
// requirement.
func (s *Store) HasSufficient(comicID, required int) bool {
	return s.Quantity(comicID) >= required
}

// SetQuantity sets the quantity directly, persisting on success.
func (s *Store) SetQuantity(comicID, quantity int) error {
	return s.mutate(comicID, func(r *Record) error {
		return r.SetQuantity(quantity)
	})
}

// AddToComic increases a comic's stock, persisting on success.
func (s *Store) AddToComic(comicID, amount int) error {
	return s.mutate(comicID, func(r *Record) error {
		return r.Add(amount)
	})
}

// RemoveFromComic decreases a comic's stock, persisting on success.
// Fails without persisting when the amount exceeds what is on hand.
func (s *Store) RemoveFromComic(comicID, amount int) error {
	return s.mutate(comicID, func(r *Record) error {
		return r.Remove(amount)
	})
}

// LowStock returns the records at or below LowStockThreshold, in
// store order.
func (s *Store) LowStock() []*Record {
	var low []*Record
	for _, r := range s.All() {
		if r.Quantity <= LowStockThreshold {
			low = append(low, r)
		}
	}
	return low
}

func (s *Store) mutate(comicID int, fn func(r *Record) error) error {
	err := s.Update(comicID, fn)
	if errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("%w: id %d", ErrNoRecord, comicID)
	}
	return err
}
