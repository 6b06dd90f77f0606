package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdvotes/runoff/internal/core/domain"
)

func sampleExpenditures() []domain.Transaction {
	return []domain.Transaction{
		{ReceivingEntity: "Lincoln Club of San Diego County, The", Candidate: "John McCann", Date: ParseDate("5/20/2025"), Amount: decimal.NewFromInt(300), Description: "Mailer"},
		{ReceivingEntity: "Labor Council", Candidate: "Paloma Aguirre", Date: ParseDate("5/18/2025"), Amount: decimal.NewFromInt(100), Description: "Digital ads"},
		{ReceivingEntity: "THE LINCOLN CLUB OF SAN DIEGO COUNTY", Candidate: "Paloma Aguirre", Date: ParseDate("unknown"), Amount: decimal.NewFromInt(200), Description: "Door hangers"},
		{ReceivingEntity: "Labor Council", Candidate: "John McCann", Date: ParseDate("6/2/2025"), Amount: decimal.NewFromInt(50), Description: "Canvass"},
	}
}

func TestFilter_Entity(t *testing.T) {
	out := Filter(sampleExpenditures(), domain.FilterOptions{Entity: "The Lincoln Club of San Diego County"})

	require.Len(t, out, 2)
	assert.Equal(t, "300", out[0].Amount.String())
	assert.Equal(t, "200", out[1].Amount.String())
}

func TestFilter_AllEntities(t *testing.T) {
	txs := sampleExpenditures()

	assert.Len(t, Filter(txs, domain.FilterOptions{Entity: domain.AllEntities}), len(txs))
	assert.Len(t, Filter(txs, domain.FilterOptions{}), len(txs))
}

func TestFilter_Search(t *testing.T) {
	txs := sampleExpenditures()

	assert.Len(t, Filter(txs, domain.FilterOptions{Search: "mccann"}), 2)
	assert.Len(t, Filter(txs, domain.FilterOptions{Search: "LABOR"}), 2)
	assert.Len(t, Filter(txs, domain.FilterOptions{Search: "door"}), 1)
	assert.Empty(t, Filter(txs, domain.FilterOptions{Search: "nobody"}))
}

func TestFilter_SearchPayer(t *testing.T) {
	txs := []domain.Transaction{
		{PayerFirstName: "Jane", PayerName: "Doe"},
		{PayerName: "Acme"},
	}

	out := Filter(txs, domain.FilterOptions{Search: "jane d"})

	require.Len(t, out, 1)
	assert.Equal(t, "Doe", out[0].PayerName)
}

func TestFilter_EntityAndSearch(t *testing.T) {
	out := Filter(sampleExpenditures(), domain.FilterOptions{Entity: "Labor Council", Search: "mccann"})

	require.Len(t, out, 1)
	assert.Equal(t, "Canvass", out[0].Description)
}

func amounts(txs []domain.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.Amount.String())
	}
	return out
}

func TestSort_Amount(t *testing.T) {
	txs := sampleExpenditures()

	asc := Sort(txs, domain.SortOptions{Field: domain.SortByAmount})
	desc := Sort(txs, domain.SortOptions{Field: domain.SortByAmount, Descending: true})

	assert.Equal(t, []string{"50", "100", "200", "300"}, amounts(asc))
	assert.Equal(t, []string{"300", "200", "100", "50"}, amounts(desc))
}

func TestSort_AmountIsNumeric(t *testing.T) {
	txs := []domain.Transaction{
		{Amount: decimal.NewFromInt(9)},
		{Amount: decimal.NewFromInt(10)},
		{Amount: decimal.NewFromInt(100)},
	}

	assert.Equal(t, []string{"9", "10", "100"}, amounts(Sort(txs, domain.SortOptions{Field: domain.SortByAmount})))
}

func TestSort_AscendingDescendingAreReverse(t *testing.T) {
	txs := sampleExpenditures()

	asc := Sort(txs, domain.SortOptions{Field: domain.SortByAmount})
	desc := Sort(txs, domain.SortOptions{Field: domain.SortByAmount, Descending: true})

	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestSort_DateUnparsedLast(t *testing.T) {
	out := Sort(sampleExpenditures(), domain.SortOptions{Field: domain.SortByDate})

	assert.Equal(t, "2025-05-18", out[0].Date.String())
	assert.Equal(t, "2025-05-20", out[1].Date.String())
	assert.Equal(t, "2025-06-02", out[2].Date.String())
	assert.Equal(t, "unknown", out[3].Date.String())
}

func TestSort_DateIsChronological(t *testing.T) {
	txs := []domain.Transaction{
		{Date: ParseDate("12/1/2024")},
		{Date: ParseDate("2/1/2025")},
	}

	out := Sort(txs, domain.SortOptions{Field: domain.SortByDate})

	assert.Equal(t, "2024-12-01", out[0].Date.String())
}

func TestSort_TextCaseInsensitiveAndStable(t *testing.T) {
	txs := []domain.Transaction{
		{Candidate: "b", Description: "1"},
		{Candidate: "A", Description: "2"},
		{Candidate: "B", Description: "3"},
	}

	out := Sort(txs, domain.SortOptions{Field: domain.SortByCandidate})

	assert.Equal(t, "2", out[0].Description)
	assert.Equal(t, "1", out[1].Description)
	assert.Equal(t, "3", out[2].Description)
}

func TestSort_NoFieldKeepsOrder(t *testing.T) {
	txs := sampleExpenditures()

	out := Sort(txs, domain.SortOptions{})

	assert.Equal(t, txs, out)
}

func TestSort_DoesNotModifyInput(t *testing.T) {
	txs := sampleExpenditures()
	before := amounts(txs)

	_ = Sort(txs, domain.SortOptions{Field: domain.SortByAmount})

	assert.Equal(t, before, amounts(txs))
}
