package driven

import (
	"context"

	"github.com/sdvotes/runoff/internal/core/domain"
)

// RecordParser converts CSV text into header-keyed records.
// Malformed CSV is an error; missing or blank fields are not.
type RecordParser interface {
	Parse(ctx context.Context, data []byte) ([]domain.RawRecord, error)
}
