package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sdvotes/runoff/internal/core/domain"
)

// KeyFunc maps a transaction to its normalised grouping key.
type KeyFunc func(tx *domain.Transaction) string

// NameFunc maps a transaction to the display name of its group.
type NameFunc func(tx *domain.Transaction) string

// EntityKey groups by receiving committee or spending organisation.
func EntityKey(tx *domain.Transaction) string {
	return NormalizeName(tx.ReceivingEntity)
}

// EntityName displays the receiving committee or spending organisation.
func EntityName(tx *domain.Transaction) string {
	return DisplayName(tx.ReceivingEntity)
}

// PayerKey groups by contributor identity.
func PayerKey(tx *domain.Transaction) string {
	return NormalizeName(tx.FullPayerName())
}

// PayerName displays the contributor.
func PayerName(tx *domain.Transaction) string {
	return DisplayName(tx.FullPayerName())
}

// CandidateKey groups by targeted candidate.
func CandidateKey(tx *domain.Transaction) string {
	return NormalizeName(tx.Candidate)
}

// CandidateName displays the targeted candidate.
func CandidateName(tx *domain.Transaction) string {
	return CollapseSpace(tx.Candidate)
}

// Group sums amounts per key in one pass.
// Entries come out in first-seen key order; the display name is taken from
// the first member. Transactions with an empty key form their own group so
// the grand total is conserved.
func Group(txs []domain.Transaction, key KeyFunc, name NameFunc) []domain.AggregateEntry {
	entries := make([]domain.AggregateEntry, 0)
	index := make(map[string]int)
	for i := range txs {
		tx := &txs[i]
		k := key(tx)
		pos, ok := index[k]
		if !ok {
			pos = len(entries)
			index[k] = pos
			entries = append(entries, domain.AggregateEntry{Key: k, Name: name(tx), Total: decimal.Zero})
		}
		entries[pos].Total = entries[pos].Total.Add(tx.Amount)
		entries[pos].Count++
	}
	return entries
}

// Rank orders entries by descending total, ties in input order, and keeps
// the first limit. limit <= 0 keeps all.
func Rank(entries []domain.AggregateEntry, limit int) []domain.AggregateEntry {
	ranked := make([]domain.AggregateEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Aggregate groups and ranks in one call.
func Aggregate(txs []domain.Transaction, key KeyFunc, name NameFunc, limit int) []domain.AggregateEntry {
	return Rank(Group(txs, key, name), limit)
}

// Total sums the amounts of all transactions.
func Total(txs []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for i := range txs {
		sum = sum.Add(txs[i].Amount)
	}
	return sum
}
