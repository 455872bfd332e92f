package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/catalog"
)

// Line is one pending purchase intent: an item and a quantity. The
// item is shared with the catalog store, so a price change before
// checkout is reflected in the line total.
type Line struct {
	Item     *catalog.Item
	Quantity int
}

// NewLine creates a cart line. Quantity must be positive.
func NewLine(item *catalog.Item, quantity int) (Line, error) {
	if quantity <= 0 {
		return Line{}, ErrBadQuantity
	}
	return Line{Item: item, Quantity: quantity}, nil
}

// Total is the line total, recomputed from the current unit price.
func (l Line) Total() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
