package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Position is the support/oppose flag on an independent expenditure.
// Unknown values pass through unchanged.
type Position string

// Known positions.
const (
	PositionSupport Position = "Support"
	PositionOppose  Position = "Oppose"
)

// IsSupport reports whether the position supports the candidate.
func (p Position) IsSupport() bool {
	return strings.EqualFold(string(p), string(PositionSupport))
}

// IsOppose reports whether the position opposes the candidate.
func (p Position) IsOppose() bool {
	return strings.EqualFold(string(p), string(PositionOppose))
}

// Transaction is a single contribution or independent expenditure.
// It is built once per load and never mutated afterwards.
type Transaction struct {
	// ID is the upstream transaction identifier. May be empty and is not
	// guaranteed to be unique.
	ID string `json:"id"`

	// Date is when the transaction occurred.
	Date Date `json:"date"`

	// Amount is in currency units. Always finite; unparsable input is zero.
	Amount decimal.Decimal `json:"amount"`

	// PayerName is the contributor's last name or organisation name.
	PayerName string `json:"payer_name,omitempty"`

	// PayerFirstName is the contributor's first name, empty for organisations.
	PayerFirstName string `json:"payer_first_name,omitempty"`

	// ReceivingEntity is the committee receiving a contribution, or the
	// organisation making an independent expenditure.
	ReceivingEntity string `json:"receiving_entity"`

	// FilerID is the upstream identifier of the filing committee.
	FilerID string `json:"filer_id,omitempty"`

	// FormType is the reporting form (e.g. "F460", "F497P1").
	FormType string `json:"form_type,omitempty"`

	// RecType is the record type on contribution filings.
	RecType string `json:"rec_type,omitempty"`

	// Candidate is the candidate an expenditure targets.
	Candidate string `json:"candidate,omitempty"`

	// Position is whether an expenditure supports or opposes Candidate.
	Position Position `json:"position,omitempty"`

	// Description is the free-text purpose of an expenditure.
	Description string `json:"description,omitempty"`
}

// FullPayerName returns "first last", trimmed.
func (t *Transaction) FullPayerName() string {
	return strings.TrimSpace(strings.TrimSpace(t.PayerFirstName) + " " + strings.TrimSpace(t.PayerName))
}
