package driven

import "context"

// DatasetFetcher retrieves the raw bytes of one CSV snapshot.
// A fetch is one-shot: implementations must not retry.
type DatasetFetcher interface {
	// Fetch returns the content of the named file.
	Fetch(ctx context.Context, name string) ([]byte, error)

	// Location returns where the named file is read from (for display).
	Location(name string) string
}
