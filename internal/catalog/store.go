package catalog

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/blob"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/entity"
)

// BlobName is the backing blob for the catalog.
const BlobName = "comics.txt"

// Store is the catalog of items, backed by the comics blob.
type Store struct {
	*entity.Store[*Item]
}

// NewStore creates the catalog store and loads it from blobs.
func NewStore(blobs blob.Store) *Store {
	return &Store{entity.NewStore(blobs, BlobName, Codec{})}
}

// NormalizeTitle canonicalizes a title for matching: trimmed, NFC
// normalized, lowercased. Titles typed with different Unicode
// compositions compare equal.
func NormalizeTitle(title string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(title)))
}

// FindByTitle returns the first item whose title matches
// case-insensitively.
func (s *Store) FindByTitle(title string) (*Item, bool) {
	want := NormalizeTitle(title)
	for _, it := range s.All() {
		if NormalizeTitle(it.Title) == want {
			return it, true
		}
	}
	return nil, false
}

// FindByIDOrTitle resolves free-form input: if it parses as an
// integer the lookup is by id only (an id wins over an identically
// spelled title, and a missing id does not fall back to titles),
// otherwise by title.
func (s *Store) FindByIDOrTitle(input string) (*Item, bool) {
	input = strings.TrimSpace(input)
	if id, err := strconv.Atoi(input); err == nil {
		return s.FindByID(id)
	}
	return s.FindByTitle(input)
}
