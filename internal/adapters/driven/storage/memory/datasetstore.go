package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/sdvotes/runoff/internal/core/domain"
	"github.com/sdvotes/runoff/internal/core/ports/driven"
)

// Ensure DatasetStore implements the interface.
var _ driven.DatasetStore = (*DatasetStore)(nil)

// DatasetStore is an in-memory implementation of driven.DatasetStore.
// Datasets are held by reference; callers must treat them as read-only.
type DatasetStore struct {
	mu       sync.RWMutex
	datasets map[domain.DatasetKind]*domain.Dataset
}

// NewDatasetStore creates a new in-memory dataset store.
func NewDatasetStore() *DatasetStore {
	return &DatasetStore{
		datasets: make(map[domain.DatasetKind]*domain.Dataset),
	}
}

// Save stores a dataset, replacing any previous load of the same kind.
func (s *DatasetStore) Save(_ context.Context, ds *domain.Dataset) error {
	if ds == nil {
		return errors.New("nil dataset")
	}
	if !ds.Kind.IsValid() {
		return domain.ErrUnknownDataset
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[ds.Kind] = ds
	return nil
}

// Get retrieves the dataset of a kind.
func (s *DatasetStore) Get(_ context.Context, kind domain.DatasetKind) (*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.datasets[kind]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ds, nil
}

// List returns all loaded datasets in load order of their kinds.
func (s *DatasetStore) List(_ context.Context) ([]*domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.Dataset, 0, len(s.datasets))
	for _, ds := range s.datasets {
		result = append(result, ds)
	}
	order := make(map[domain.DatasetKind]int, len(domain.DatasetKinds))
	for i, k := range domain.DatasetKinds {
		order[k] = i
	}
	sort.Slice(result, func(i, j int) bool {
		return order[result[i].Kind] < order[result[j].Kind]
	})
	return result, nil
}
