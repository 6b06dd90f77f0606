// Package csvparse converts CSV text into header-keyed records.
package csvparse

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/sdvotes/runoff/internal/core/domain"
	"github.com/sdvotes/runoff/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.RecordParser = (*Parser)(nil)

// ErrNoHeader is returned when the input has no header row.
var ErrNoHeader = errors.New("missing header row")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parser reads the first row as the header and maps every later row onto it.
// Short rows leave the missing columns out; extra cells are dropped.
type Parser struct{}

// NewParser creates a new CSV parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts CSV text to records. Blank lines are skipped.
// Quoting errors are returned with the offending line.
func (p *Parser) Parse(ctx context.Context, data []byte) ([]domain.RawRecord, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records []domain.RawRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := r.FieldPos(0)

		fields := make(map[string]string, len(header))
		for i, col := range header {
			if i >= len(row) {
				break
			}
			fields[col] = row[i]
		}
		records = append(records, domain.NewRawRecord(line, fields))
	}
	return records, nil
}
