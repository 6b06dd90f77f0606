package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdvotes/runoff/internal/core/domain"
)

func TestNewDatasetStore(t *testing.T) {
	store := NewDatasetStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.datasets)
}

func TestDatasetStore_SaveAndGet(t *testing.T) {
	store := NewDatasetStore()
	ctx := context.Background()

	ds := &domain.Dataset{ID: "load-1", Kind: domain.DatasetExpenditures, Rows: 3}
	require.NoError(t, store.Save(ctx, ds))

	got, err := store.Get(ctx, domain.DatasetExpenditures)
	require.NoError(t, err)
	assert.Same(t, ds, got)
}

func TestDatasetStore_Save_Replaces(t *testing.T) {
	store := NewDatasetStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Dataset{ID: "old", Kind: domain.DatasetContributions}))
	require.NoError(t, store.Save(ctx, &domain.Dataset{ID: "new", Kind: domain.DatasetContributions}))

	got, err := store.Get(ctx, domain.DatasetContributions)
	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)
}

func TestDatasetStore_Save_Invalid(t *testing.T) {
	store := NewDatasetStore()
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, nil))
	assert.ErrorIs(t, store.Save(ctx, &domain.Dataset{Kind: "bogus"}), domain.ErrUnknownDataset)
}

func TestDatasetStore_Get_NotFound(t *testing.T) {
	_, err := NewDatasetStore().Get(context.Background(), domain.DatasetBallotsRunoff)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDatasetStore_List_Ordered(t *testing.T) {
	store := NewDatasetStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Dataset{Kind: domain.DatasetBallotsRunoff}))
	require.NoError(t, store.Save(ctx, &domain.Dataset{Kind: domain.DatasetExpenditures}))
	require.NoError(t, store.Save(ctx, &domain.Dataset{Kind: domain.DatasetBallotsPrimary}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, domain.DatasetExpenditures, list[0].Kind)
	assert.Equal(t, domain.DatasetBallotsPrimary, list[1].Kind)
	assert.Equal(t, domain.DatasetBallotsRunoff, list[2].Kind)
}

func TestDatasetStore_ConcurrentAccess(t *testing.T) {
	store := NewDatasetStore()
	ctx := context.Background()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, &domain.Dataset{Kind: domain.DatasetExpenditures})
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Get(ctx, domain.DatasetExpenditures)
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	_, err := store.Get(ctx, domain.DatasetExpenditures)
	assert.NoError(t, err)
}
