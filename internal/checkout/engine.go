package checkout

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/blob"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/catalog"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/inventory"
)

// Order is a committed checkout: the finalized lines and totals at
// the time of purchase. Written once as a receipt blob, never re-read.
type Order struct {
	ID        int
	Reference string
	Placed    time.Time
	Lines     []Line
	Total     decimal.Decimal
}

// Engine accumulates a cart and commits checkouts against the catalog
// and stock stores.
type Engine struct {
	catalog *catalog.Store
	stock   *inventory.Store
	blobs   blob.Store
	cart    []Line
	orders  *Counter
	now     func() time.Time
	newRef  func() string
	log     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock. Used by tests for deterministic
// receipts.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithReferenceGenerator overrides the order reference generator.
// The default draws a random UUID per order.
func WithReferenceGenerator(gen func() string) Option {
	return func(e *Engine) { e.newRef = gen }
}

// New creates an Engine with an empty cart. The order counter resumes
// from the highest order id found among existing receipt blobs.
func New(cat *catalog.Store, stk *inventory.Store, blobs blob.Store, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		stock:   stk,
		blobs:   blobs,
		now:     time.Now,
		newRef:  uuid.NewString,
		log:     slog.Default(),
	}
	e.orders = NewCounterAt(int64(e.maxOrderID()))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddLine resolves ref (comic id or title) and appends a line to the
// cart.
func (e *Engine) AddLine(ref string, quantity int) (Line, error) {
	item, ok := e.catalog.FindByIDOrTitle(ref)
	if !ok {
		return Line{}, fmt.Errorf("%w: %q", ErrUnknownItem, ref)
	}
	line, err := NewLine(item, quantity)
	if err != nil {
		return Line{}, err
	}
	e.cart = append(e.cart, line)
	return line, nil
}

// RemoveLine removes cart lines matching ref: by comic id when ref
// parses as an integer (id wins even if a title spells the same
// number), otherwise by case-insensitive title. All matching lines
// are removed. Reports whether anything matched.
func (e *Engine) RemoveLine(ref string) bool {
	ref = strings.TrimSpace(ref)

	var match func(l Line) bool
	if id, err := strconv.Atoi(ref); err == nil {
		match = func(l Line) bool { return l.Item.ID == id }
	} else {
		want := catalog.NormalizeTitle(ref)
		match = func(l Line) bool { return catalog.NormalizeTitle(l.Item.Title) == want }
	}

	kept := e.cart[:0]
	removed := false
	for _, l := range e.cart {
		if match(l) {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	e.cart = kept
	return removed
}

// Cart returns the pending lines in insertion order, for read-only
// iteration.
func (e *Engine) Cart() []Line {
	return e.cart
}

// CartTotal is the running total of the pending lines.
func (e *Engine) CartTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.cart {
		total = total.Add(l.Total())
	}
	return total
}

// Checkout runs the two-phase protocol over the whole cart.
//
// Validation: every line is checked against the stock store; failures
// are collected, not short-circuited. Any failure aborts the checkout
// with a *ValidationError and no mutation at all - stock, cart, and
// blobs are untouched.
//
// Commit: assigns the next order id, stamps the time, deducts stock
// per line in cart order (each deduction persisted immediately),
// writes the receipt blob, and clears the cart unconditionally.
// A deduction failure here (stock changed underneath us) is surfaced
// in the returned error but already-committed deductions are not
// rolled back; the failed line is left off the receipt.
func (e *Engine) Checkout() (*Order, error) {
	if len(e.cart) == 0 {
		return nil, ErrEmptyCart
	}

	// Phase 1: validate everything before touching anything.
	var failures []LineFailure
	for _, line := range e.cart {
		id := line.Item.ID
		available := e.stock.Quantity(id)
		switch {
		case available == inventory.NoRecord:
			failures = append(failures, LineFailure{
				Code:      CodeNoStockRecord,
				ComicID:   id,
				Title:     line.Item.Title,
				Requested: line.Quantity,
			})
		case available < line.Quantity:
			failures = append(failures, LineFailure{
				Code:      CodeInsufficientStock,
				ComicID:   id,
				Title:     line.Item.Title,
				Requested: line.Quantity,
				Available: available,
			})
		}
	}
	if len(failures) > 0 {
		return nil, &ValidationError{Failures: failures}
	}

	// Phase 2: commit.
	order := &Order{
		ID:        int(e.orders.Next()),
		Reference: e.newRef(),
		Placed:    e.now(),
		Total:     decimal.Zero,
	}

	var deductErrs []error
	for _, line := range e.cart {
		if err := e.stock.RemoveFromComic(line.Item.ID, line.Quantity); err != nil {
			deductErrs = append(deductErrs, fmt.Errorf("deduct %q: %w", line.Item.Title, err))
			continue
		}
		order.Lines = append(order.Lines, line)
		order.Total = order.Total.Add(line.Total())
	}

	if err := e.blobs.Write(OrderBlobName(order.ID), RenderReceipt(order)); err != nil {
		e.log.Warn("receipt write failed", "order", order.ID, "error", err)
	}
	e.cart = nil

	e.log.Info("order placed", "order", order.ID, "reference", order.Reference,
		"lines", len(order.Lines), "total", order.Total.StringFixed(2))

	if len(deductErrs) > 0 {
		return order, errors.Join(deductErrs...)
	}
	return order, nil
}

// maxOrderID scans existing receipt blob names for the highest
// order_<n>.txt suffix. An unreadable listing just restarts numbering
// at 1; receipts are never re-read so the only risk is an overwritten
// old receipt.
func (e *Engine) maxOrderID() int {
	names, err := e.blobs.List(orderPrefix)
	if err != nil {
		e.log.Warn("could not list order blobs, numbering from 1", "error", err)
		return 0
	}
	maxID := 0
	for _, name := range names {
		if n, ok := parseOrderBlobName(name); ok && n > maxID {
			maxID = n
		}
	}
	return maxID
}
