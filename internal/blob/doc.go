// Package blob provides named line-oriented text blob storage.
//
// A blob is an ordered sequence of text lines identified by a name
// (e.g. "comics.txt", "order_3.txt"). Blobs are the persistence
// boundary for every store in the system: each store loads its blob
// once at startup and rewrites it wholesale after every mutation.
//
// # Contract
//
//   - Read returns the current lines of a blob, or an empty slice if
//     the blob does not exist. Absence is never an error.
//   - Write replaces the entire contents of a blob, creating it (and
//     any underlying storage location) if missing.
//   - List returns the names of existing blobs with a given prefix.
//     Used to derive the next order id from order receipt names.
//
// Two backends implement the contract: FileStore (one file per blob
// under a data directory) and SQLiteStore (a single blobs table).
// Both are exercised by the same behavioral test suite.
package blob
