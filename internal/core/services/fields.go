package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sdvotes/runoff/internal/core/domain"
)

// Expenditure CSV columns.
const (
	ColExpEntity      = "Entity"
	ColExpDate        = "Date"
	ColExpDescription = "Description"
	ColExpAmount      = "Amount"
	ColExpCandidate   = "Candidate"
	ColExpPosition    = "Oppose/Support"
)

// Contribution CSV columns.
const (
	ColConID        = "Tran_ID"
	ColConDate      = "Tran_Date"
	ColConAmount    = "Amount"
	ColConFormType  = "Form_Type"
	ColConRecType   = "Rec_Type"
	ColConLastName  = "Entity_Nam L"
	ColConFirstName = "Entity_Nam F"
	ColConFiler     = "Filer_Nam L"
	ColConFilerID   = "Filer_ID"
)

// Ballot-return CSV columns.
const (
	ColBallotDescription = "Description"
	ColBallotTotal       = "Total"
	ColBallotDem         = "Dem"
	ColBallotRep         = "Rep"
	ColBallotOther       = "Other (Not DEM or REP)"
)

var (
	expenditureColumns  = []string{ColExpEntity, ColExpDate, ColExpAmount, ColExpCandidate, ColExpPosition}
	contributionColumns = []string{ColConID, ColConDate, ColConAmount, ColConLastName, ColConFiler}
	ballotColumns       = []string{ColBallotTotal, ColBallotDem, ColBallotRep, ColBallotOther}
)

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	"2006-01-02",
	"1/2/06",
	"Jan 2, 2006",
	"January 2, 2006",
	"1/2/2006 15:04",
	"1/2/2006 3:04:05 PM",
	"01/02/2006 15:04:05",
	"1/2/2006 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseAmount coerces a currency string to a decimal.
// Everything except digits, '.' and '-' is stripped, and accounting
// parentheses mark a negative value. Unparsable input yields zero.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	negative := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	if negative && d.IsPositive() {
		d = d.Neg()
	}
	return d
}

// ParseDate parses a locale-specific date.
// When no layout matches, the trimmed text is kept verbatim.
func ParseDate(raw string) domain.Date {
	s := CollapseSpace(raw)
	if s == "" {
		return domain.Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.NewDate(t)
		}
	}
	return domain.Date{Raw: s}
}

// ParseCount parses an integer count with thousands separators.
// Unparsable input yields zero.
func ParseCount(raw string) int64 {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', '_', ' ':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

// ExpenditureFromRecord converts an expenditure row.
// Returns false when the row carries none of the expenditure columns.
func ExpenditureFromRecord(rec domain.RawRecord) (domain.Transaction, bool) {
	if !rec.HasAny(expenditureColumns...) {
		return domain.Transaction{}, false
	}
	return domain.Transaction{
		Date:            ParseDate(rec.Get(ColExpDate)),
		Amount:          ParseAmount(rec.Get(ColExpAmount)),
		ReceivingEntity: CollapseSpace(rec.Get(ColExpEntity)),
		Candidate:       CollapseSpace(rec.Get(ColExpCandidate)),
		Position:        domain.Position(rec.Get(ColExpPosition)),
		Description:     CollapseSpace(rec.Get(ColExpDescription)),
	}, true
}

// ContributionFromRecord converts a contribution row.
// Returns false when the row carries none of the contribution columns.
func ContributionFromRecord(rec domain.RawRecord) (domain.Transaction, bool) {
	if !rec.HasAny(contributionColumns...) {
		return domain.Transaction{}, false
	}
	return domain.Transaction{
		ID:              rec.Get(ColConID),
		Date:            ParseDate(rec.Get(ColConDate)),
		Amount:          ParseAmount(rec.Get(ColConAmount)),
		PayerName:       CollapseSpace(rec.Get(ColConLastName)),
		PayerFirstName:  CollapseSpace(rec.Get(ColConFirstName)),
		ReceivingEntity: CollapseSpace(rec.Get(ColConFiler)),
		FilerID:         rec.Get(ColConFilerID),
		FormType:        rec.Get(ColConFormType),
		RecType:         rec.Get(ColConRecType),
	}, true
}

// SnapshotFromRecord converts a ballot-return row.
// The description doubles as the snapshot date; the registration row keeps
// its label with an invalid date.
func SnapshotFromRecord(rec domain.RawRecord) (domain.Snapshot, bool) {
	if !rec.HasAny(ballotColumns...) {
		return domain.Snapshot{}, false
	}
	label := CollapseSpace(rec.Get(ColBallotDescription))
	return domain.Snapshot{
		Date:  ParseDate(label),
		Label: label,
		Total: ParseCount(rec.Get(ColBallotTotal)),
		Party: domain.PartyBreakdown{
			Dem:   ParseCount(rec.Get(ColBallotDem)),
			Rep:   ParseCount(rec.Get(ColBallotRep)),
			Other: ParseCount(rec.Get(ColBallotOther)),
		},
	}, true
}

// IsExcludedForm reports whether a row's form type is in the exclusion list.
func IsExcludedForm(rec domain.RawRecord, excluded []string) bool {
	form := rec.Get(ColConFormType)
	if form == "" {
		return false
	}
	for _, f := range excluded {
		if strings.EqualFold(form, strings.TrimSpace(f)) {
			return true
		}
	}
	return false
}

// ApplyOverride reports transactions of the override's filer under the
// override name. The input slice is not modified.
func ApplyOverride(txs []domain.Transaction, override domain.MergeOverride) []domain.Transaction {
	if !override.IsConfigured() {
		return txs
	}
	filer := strings.TrimSpace(override.FilerID)
	out := make([]domain.Transaction, len(txs))
	for i, tx := range txs {
		if strings.TrimSpace(tx.FilerID) == filer {
			tx.ReceivingEntity = override.Name
		}
		out[i] = tx
	}
	return out
}
