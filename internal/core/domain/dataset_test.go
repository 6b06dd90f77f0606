package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatasetKind_IsValid(t *testing.T) {
	for _, k := range DatasetKinds {
		assert.True(t, k.IsValid(), k)
	}
	assert.False(t, DatasetKind("registrations").IsValid())
	assert.False(t, DatasetKind("").IsValid())
}

func TestDataset_Len(t *testing.T) {
	tx := &Dataset{Kind: DatasetContributions, Transactions: make([]Transaction, 3)}
	snaps := &Dataset{Kind: DatasetBallotsRunoff, Snapshots: make([]Snapshot, 2), Transactions: make([]Transaction, 5)}

	assert.Equal(t, 3, tx.Len())
	assert.Equal(t, 2, snaps.Len())
}

func TestFilterOptions_HasEntity(t *testing.T) {
	assert.False(t, FilterOptions{}.HasEntity())
	assert.False(t, FilterOptions{Entity: "  "}.HasEntity())
	assert.False(t, FilterOptions{Entity: "all"}.HasEntity())
	assert.True(t, FilterOptions{Entity: "Lincoln Club"}.HasEntity())
}

func TestSortField_IsValid(t *testing.T) {
	assert.True(t, SortByAmount.IsValid())
	assert.False(t, SortField("size").IsValid())
}

func TestTransaction_FullPayerName(t *testing.T) {
	tx := Transaction{PayerFirstName: " Jane ", PayerName: "Doe"}
	org := Transaction{PayerName: "Acme Corp"}

	assert.Equal(t, "Jane Doe", tx.FullPayerName())
	assert.Equal(t, "Acme Corp", org.FullPayerName())
}

func TestPosition(t *testing.T) {
	assert.True(t, Position("support").IsSupport())
	assert.True(t, PositionOppose.IsOppose())
	assert.False(t, Position("Neutral").IsSupport())
	assert.False(t, Position("Neutral").IsOppose())
}
