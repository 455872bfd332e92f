package blob

// Store is the abstracted persistence boundary underlying every
// entity store. Implementations must treat a missing blob as empty
// on Read, never as an error.
type Store interface {
	// Read returns the lines of the named blob in order.
	// A blob that does not exist yields an empty slice and no error.
	Read(name string) ([]string, error)

	// Write replaces the entire contents of the named blob,
	// creating it if it does not exist.
	Write(name string, lines []string) error

	// List returns the names of all blobs whose name starts with
	// prefix, in lexical order.
	List(prefix string) ([]string, error)
}
