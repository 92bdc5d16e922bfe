package corpus

import "context"

// Loader reads all tables of a corpus. Implementations read either a
// directory of CSV files or a SQLite snapshot.
type Loader interface {
	// Load reads the tables in corpus order. A missing required table or
	// a malformed row is a LoadError.
	Load(ctx context.Context) (*Tables, error)
}
