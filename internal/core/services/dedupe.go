package services

import (
	"github.com/sdvotes/runoff/internal/core/domain"
)

// DedupeKey is the composite identity of a transaction:
// date, trimmed "first last" payer name and amount. The name is compared
// as written, so case-only variants stay distinct.
func DedupeKey(tx *domain.Transaction) string {
	return tx.Date.String() + "|" + tx.FullPayerName() + "|" + tx.Amount.String()
}

// Dedupe collapses transactions sharing a DedupeKey to one survivor.
// A record with an ID replaces an earlier one without; among records with
// IDs the first in input order wins. Output follows first-seen key order.
// Coincidentally identical but distinct transactions are merged too.
func Dedupe(txs []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txs))
	index := make(map[string]int, len(txs))
	for i := range txs {
		tx := txs[i]
		key := DedupeKey(&tx)
		pos, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, tx)
			continue
		}
		if out[pos].ID == "" && tx.ID != "" {
			out[pos] = tx
		}
	}
	return out
}
