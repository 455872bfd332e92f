package checkout

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	orderPrefix = "order_"
	orderSuffix = ".txt"

	receiptBanner = "===== Comic Book Store ====="
	receiptRule   = "----------------------------------------"
)

// OrderBlobName returns the receipt blob name for an order id,
// order_<id>.txt by convention.
func OrderBlobName(id int) string {
	return orderPrefix + strconv.Itoa(id) + orderSuffix
}

// parseOrderBlobName extracts the order id from a receipt blob name.
func parseOrderBlobName(name string) (int, bool) {
	if !strings.HasPrefix(name, orderPrefix) || !strings.HasSuffix(name, orderSuffix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, orderPrefix), orderSuffix))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// RenderReceipt formats an order as receipt lines. The receipt is a
// free-form text blob for humans; the system never parses it back.
func RenderReceipt(o *Order) []string {
	lines := []string{
		receiptBanner,
		fmt.Sprintf("Order #%d", o.ID),
		"Reference: " + o.Reference,
		"Date: " + o.Placed.Format("2006-01-02 15:04:05"),
		receiptRule,
	}
	for _, l := range o.Lines {
		lines = append(lines, fmt.Sprintf("%s x%d @ %s = %s",
			l.Item.Title, l.Quantity, l.Item.Price.StringFixed(2), l.Total().StringFixed(2)))
	}
	lines = append(lines,
		receiptRule,
		"Total: "+o.Total.StringFixed(2),
	)
	return lines
}
