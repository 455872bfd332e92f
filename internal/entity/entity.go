// Package entity provides the generic record store shared by the
// catalog and inventory layers.
//
// A Store holds an ordered in-memory collection of records backed by
// one named blob. The in-memory collection is authoritative for the
// life of the process; the blob is a write-through snapshot rewritten
// wholesale after every mutation. Record-specific behavior (line
// parsing, serialization, identity) is supplied by a Codec, so no
// inheritance is involved.
//
// Malformed persisted lines are skipped with a warning, never fatal:
// hand-edited data files cost individual records, not startup.
package entity

import (
	"errors"
	"log/slog"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/blob"
)

// ErrNotFound is returned by Update when no record has the given id.
var ErrNotFound = errors.New("record not found")

// Codec supplies the record-specific behavior a Store needs.
type Codec[T any] interface {
	// Parse decodes one persisted line into a record.
	Parse(line string) (T, error)

	// Serialize encodes a record as one persisted line.
	Serialize(rec T) string

	// ID returns the record's identity.
	ID(rec T) int
}

// Store is an ordered collection of records backed by one blob.
type Store[T any] struct {
	blobs blob.Store
	name  string
	codec Codec[T]
	recs  []T
	log   *slog.Logger
}

// NewStore creates a store over the named blob and loads it.
// Lines that fail to parse are skipped.
func NewStore[T any](blobs blob.Store, name string, codec Codec[T]) *Store[T] {
	s := &Store[T]{
		blobs: blobs,
		name:  name,
		codec: codec,
		log:   slog.Default(),
	}
	s.load()
	return s
}

// Add appends a record and rewrites the backing blob.
func (s *Store[T]) Add(rec T) {
	s.recs = append(s.recs, rec)
	s.save()
}

// Delete removes every record with the given id and rewrites the
// backing blob. Reports whether anything was removed.
func (s *Store[T]) Delete(id int) bool {
	kept := s.recs[:0]
	removed := false
	for _, rec := range s.recs {
		if s.codec.ID(rec) == id {
			removed = true
			continue
		}
		kept = append(kept, rec)
	}
	s.recs = kept
	s.save()
	return removed
}

// FindByID returns the first record with the given id.
func (s *Store[T]) FindByID(id int) (T, bool) {
	for _, rec := range s.recs {
		if s.codec.ID(rec) == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Update locates the record with the given id, applies mutate, and
// rewrites the backing blob. If mutate returns an error nothing is
// persisted. Returns ErrNotFound when the id is absent.
func (s *Store[T]) Update(id int, mutate func(rec T) error) error {
	rec, ok := s.FindByID(id)
	if !ok {
		return ErrNotFound
	}
	if err := mutate(rec); err != nil {
		return err
	}
	s.save()
	return nil
}

// NextID returns 1 for an empty store, else the id of the
// last-inserted record plus one.
//
// This is deliberately insertion-order-based, not max-based: deleting
// the newest record and re-adding can reissue an id. Longstanding
// behavior, pinned by tests.
func (s *Store[T]) NextID() int {
	if len(s.recs) == 0 {
		return 1
	}
	return s.codec.ID(s.recs[len(s.recs)-1]) + 1
}

// All returns the live collection in insertion order, for read-only
// iteration. Callers must not mutate the slice.
func (s *Store[T]) All() []T {
	return s.recs
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	return len(s.recs)
}

func (s *Store[T]) load() {
	lines, err := s.blobs.Read(s.name)
	if err != nil {
		s.log.Warn("blob unreadable, starting empty", "blob", s.name, "error", err)
		return
	}
	for _, line := range lines {
		rec, err := s.codec.Parse(line)
		if err != nil {
			s.log.Warn("skipping malformed record", "blob", s.name, "line", line, "error", err)
			continue
		}
		s.recs = append(s.recs, rec)
	}
}

// save rewrites the whole blob from the current collection. A failed
// write is logged and otherwise ignored: the in-memory state stays
// authoritative and the process keeps running.
func (s *Store[T]) save() {
	lines := make([]string, len(s.recs))
	for i, rec := range s.recs {
		lines[i] = s.codec.Serialize(rec)
	}
	if err := s.blobs.Write(s.name, lines); err != nil {
		s.log.Warn("blob write failed, keeping in-memory state", "blob", s.name, "error", err)
	}
}
