package checkout

import (
	"errors"
	"fmt"
	"strings"
)

// Cart and checkout errors.
var (
	ErrUnknownItem = errors.New("comic not found")
	ErrBadQuantity = errors.New("quantity must be greater than 0")
	ErrEmptyCart   = errors.New("cart is empty")
)

// FailureCode categorizes a per-line validation failure.
type FailureCode string

const (
	// CodeNoStockRecord indicates the comic has no stock record at all.
	CodeNoStockRecord FailureCode = "NO_STOCK_RECORD"

	// CodeInsufficientStock indicates fewer units on hand than requested.
	CodeInsufficientStock FailureCode = "INSUFFICIENT_STOCK"
)

// LineFailure describes why one cart line failed validation.
type LineFailure struct {
	Code      FailureCode
	ComicID   int
	Title     string
	Requested int

	// Available is the quantity on hand. Meaningless for
	// CodeNoStockRecord.
	Available int
}

func (f LineFailure) String() string {
	switch f.Code {
	case CodeNoStockRecord:
		return fmt.Sprintf("%s: %q (id %d) has no stock record", f.Code, f.Title, f.ComicID)
	default:
		return fmt.Sprintf("%s: %q (id %d) requested %d, available %d",
			f.Code, f.Title, f.ComicID, f.Requested, f.Available)
	}
}

// ValidationError aggregates every failing cart line from the
// validation phase. The checkout did not mutate anything.
type ValidationError struct {
	Failures []LineFailure
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.String()
	}
	return "checkout validation failed: " + strings.Join(msgs, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
