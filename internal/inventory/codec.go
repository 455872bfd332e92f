package inventory

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Codec encodes stock records as comma-separated lines:
//
//	id,comicId,quantity
type Codec struct{}

// Parse decodes a 3-field line. A record whose id differs from its
// comic id is logged and healed: the comic id is authoritative.
func (Codec) Parse(line string) (*Record, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("want 3 fields, got %d", len(parts))
	}

	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("bad id %q: %w", parts[0], err)
	}
	comicID, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("bad comic id %q: %w", parts[1], err)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, fmt.Errorf("bad quantity %q: %w", parts[2], err)
	}

	if id != comicID {
		slog.Warn("stock id does not match comic id, using comic id", "id", id, "comic_id", comicID)
	}
	return NewRecord(comicID, quantity)
}

// Serialize encodes a record as a 3-field line.
func (Codec) Serialize(r *Record) string {
	return strings.Join([]string{
		strconv.Itoa(r.ID),
		strconv.Itoa(r.ComicID),
		strconv.Itoa(r.Quantity),
	}, ",")
}

// ID returns the record's identity (the comic id).
func (Codec) ID(r *Record) int {
	return r.ID
}
