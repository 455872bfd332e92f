// Package checkout owns the in-memory shopping cart and the two-phase
// checkout protocol.
//
// A cart is a list of pending lines (catalog item + quantity) that
// lives only for the shopping session. Checkout first validates every
// line against the stock store, collecting all failures so the
// customer sees every problem at once; if anything fails the whole
// checkout aborts with no mutation. Only then does the commit phase
// deduct stock line by line (each deduction persisted immediately),
// write the receipt blob, and clear the cart.
//
// Order ids are sequential. The counter is seeded at construction by
// scanning existing order_<n>.txt blob names for the highest suffix
// and is incremented in memory per checkout for the life of the
// process.
package checkout
