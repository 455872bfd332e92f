package entity

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/blob"
)

// note is a minimal record type used to exercise the generic store.
type note struct {
	ID   int
	Text string
}

type noteCodec struct{}

func (noteCodec) Parse(line string) (*note, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("want 2 fields, got %d", len(parts))
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("bad id %q: %w", parts[0], err)
	}
	return &note{ID: id, Text: parts[1]}, nil
}

func (noteCodec) Serialize(n *note) string {
	return strconv.Itoa(n.ID) + "," + n.Text
}

func (noteCodec) ID(n *note) int {
	return n.ID
}

func newNoteStore(t *testing.T) (*Store[*note], blob.Store) {
	t.Helper()
	bs, err := blob.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewStore(bs, "notes.txt", noteCodec{}), bs
}

func TestStore_LoadSkipsMalformedLines(t *testing.T) {
	bs, err := blob.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, bs.Write("notes.txt", []string{
		"1,first",
		"not a record at all",
		"x,bad id",
		"2,second",
	}))

	s := NewStore(bs, "notes.txt", noteCodec{})

	require.Equal(t, 2, s.Len(), "malformed lines must be skipped, not fatal")
	assert.Equal(t, "first", s.All()[0].Text)
	assert.Equal(t, "second", s.All()[1].Text)
}

func TestStore_AddRewritesBlob(t *testing.T) {
	s, bs := newNoteStore(t)

	s.Add(&note{ID: 1, Text: "first"})
	s.Add(&note{ID: 2, Text: "second"})

	lines, err := bs.Read("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"1,first", "2,second"}, lines)
}

func TestStore_Delete(t *testing.T) {
	s, bs := newNoteStore(t)
	s.Add(&note{ID: 1, Text: "first"})
	s.Add(&note{ID: 2, Text: "second"})
	s.Add(&note{ID: 3, Text: "third"})

	removed := s.Delete(2)

	assert.True(t, removed)
	require.Equal(t, 2, s.Len())
	lines, err := bs.Read("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"1,first", "3,third"}, lines)
}

func TestStore_DeleteUnknownID(t *testing.T) {
	s, _ := newNoteStore(t)
	s.Add(&note{ID: 1, Text: "first"})

	assert.False(t, s.Delete(99))
	assert.Equal(t, 1, s.Len())
}

func TestStore_FindByID(t *testing.T) {
	s, _ := newNoteStore(t)
	s.Add(&note{ID: 7, Text: "seventh"})

	got, ok := s.FindByID(7)
	require.True(t, ok)
	assert.Equal(t, "seventh", got.Text)

	_, ok = s.FindByID(8)
	assert.False(t, ok)
}

func TestStore_FindByIDSharesRecord(t *testing.T) {
	s, _ := newNoteStore(t)
	s.Add(&note{ID: 1, Text: "before"})

	got, ok := s.FindByID(1)
	require.True(t, ok)
	got.Text = "after"

	again, ok := s.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "after", again.Text, "records are shared by reference, not copied")
}

func TestStore_Update(t *testing.T) {
	s, bs := newNoteStore(t)
	s.Add(&note{ID: 1, Text: "before"})

	err := s.Update(1, func(n *note) error {
		n.Text = "after"
		return nil
	})
	require.NoError(t, err)

	lines, rerr := bs.Read("notes.txt")
	require.NoError(t, rerr)
	assert.Equal(t, []string{"1,after"}, lines)
}

func TestStore_UpdateNotFound(t *testing.T) {
	s, _ := newNoteStore(t)

	err := s.Update(42, func(n *note) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpdateMutatorErrorDoesNotPersist(t *testing.T) {
	s, bs := newNoteStore(t)
	s.Add(&note{ID: 1, Text: "keep"})

	boom := errors.New("boom")
	err := s.Update(1, func(n *note) error { return boom })
	require.ErrorIs(t, err, boom)

	lines, rerr := bs.Read("notes.txt")
	require.NoError(t, rerr)
	assert.Equal(t, []string{"1,keep"}, lines)
}

func TestStore_NextID_Empty(t *testing.T) {
	s, _ := newNoteStore(t)
	assert.Equal(t, 1, s.NextID())
}

// NextID is based on the last-inserted record, not the maximum id.
// This pins the documented quirk: after deleting the newest record
// the next id can repeat.
func TestStore_NextID_LastInsertedBased(t *testing.T) {
	s, _ := newNoteStore(t)
	s.Add(&note{ID: 1, Text: "a"})
	s.Add(&note{ID: 2, Text: "b"})
	s.Add(&note{ID: 3, Text: "c"})

	// Deleting from the middle leaves the last-inserted record intact.
	s.Delete(2)
	assert.Equal(t, 4, s.NextID())

	// Deleting the last-inserted record steps NextID back.
	s.Delete(3)
	assert.Equal(t, 2, s.NextID(), "last remaining record is id 1, so NextID is 2 again")
}

func TestStore_AllInsertionOrder(t *testing.T) {
	s, _ := newNoteStore(t)
	s.Add(&note{ID: 3, Text: "c"})
	s.Add(&note{ID: 1, Text: "a"})
	s.Add(&note{ID: 2, Text: "b"})

	var ids []int
	for _, n := range s.All() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []int{3, 1, 2}, ids)
}

func TestStore_UnreadableBlobStartsEmpty(t *testing.T) {
	// A directory where the blob file should be makes the read fail;
	// the store must come up empty instead of propagating the error.
	dir := t.TempDir()
	bs, err := blob.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "notes.txt"), 0o755))

	s := NewStore(bs, "notes.txt", noteCodec{})
	assert.Equal(t, 0, s.Len())
}
