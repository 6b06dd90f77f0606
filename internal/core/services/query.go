package services

import (
	"sort"
	"strings"

	"github.com/sdvotes/runoff/internal/core/domain"
)

// Filter returns the transactions matching the options.
// The entity filter compares normalised keys; the search is a
// case-insensitive substring match over name and committee fields.
func Filter(txs []domain.Transaction, opts domain.FilterOptions) []domain.Transaction {
	entityKey := ""
	if opts.HasEntity() {
		entityKey = NormalizeName(opts.Entity)
	}
	needle := strings.ToLower(strings.TrimSpace(opts.Search))

	out := make([]domain.Transaction, 0, len(txs))
	for i := range txs {
		tx := &txs[i]
		if entityKey != "" && NormalizeName(tx.ReceivingEntity) != entityKey {
			continue
		}
		if needle != "" && !matchesSearch(tx, needle) {
			continue
		}
		out = append(out, *tx)
	}
	return out
}

func matchesSearch(tx *domain.Transaction, needle string) bool {
	fields := []string{
		tx.FullPayerName(),
		tx.ReceivingEntity,
		tx.Candidate,
		tx.Description,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Sort returns a sorted copy of txs. Equal elements keep their input order.
// Parsed dates compare chronologically and sort before unparsed ones;
// amounts compare numerically; text compares case-insensitively.
func Sort(txs []domain.Transaction, opts domain.SortOptions) []domain.Transaction {
	out := make([]domain.Transaction, len(txs))
	copy(out, txs)
	cmp := comparator(opts.Field)
	if cmp == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if opts.Descending {
			return cmp(&out[j], &out[i]) < 0
		}
		return cmp(&out[i], &out[j]) < 0
	})
	return out
}

type compareFunc func(a, b *domain.Transaction) int

func comparator(field domain.SortField) compareFunc {
	switch field {
	case domain.SortByDate:
		return func(a, b *domain.Transaction) int { return compareDates(a.Date, b.Date) }
	case domain.SortByAmount:
		return func(a, b *domain.Transaction) int { return a.Amount.Cmp(b.Amount) }
	case domain.SortByPayer:
		return textComparator(func(t *domain.Transaction) string { return t.FullPayerName() })
	case domain.SortByEntity:
		return textComparator(func(t *domain.Transaction) string { return t.ReceivingEntity })
	case domain.SortByCandidate:
		return textComparator(func(t *domain.Transaction) string { return t.Candidate })
	case domain.SortByPosition:
		return textComparator(func(t *domain.Transaction) string { return string(t.Position) })
	case domain.SortByDescription:
		return textComparator(func(t *domain.Transaction) string { return t.Description })
	case domain.SortByFormType:
		return textComparator(func(t *domain.Transaction) string { return t.FormType })
	case domain.SortByID:
		return textComparator(func(t *domain.Transaction) string { return t.ID })
	default:
		return nil
	}
}

func textComparator(get func(*domain.Transaction) string) compareFunc {
	return func(a, b *domain.Transaction) int {
		return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}

func compareDates(a, b domain.Date) int {
	switch {
	case a.Valid && b.Valid:
		return a.Time.Compare(b.Time)
	case a.Valid:
		return -1
	case b.Valid:
		return 1
	default:
		return strings.Compare(a.Raw, b.Raw)
	}
}
