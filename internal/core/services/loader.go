package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sdvotes/runoff/internal/core/domain"
	"github.com/sdvotes/runoff/internal/core/ports/driven"
	"github.com/sdvotes/runoff/internal/core/ports/driving"
	"github.com/sdvotes/runoff/internal/logger"
)

// Ensure DatasetLoader implements the interface.
var _ driving.DatasetService = (*DatasetLoader)(nil)

// DatasetLoader turns CSV snapshots into canonical datasets.
// A load is fetch → parse → convert → (exclude, override, dedupe) and is
// all-or-nothing: a fetch or parse failure stores nothing and is remembered
// as the terminal state of that dataset until the next explicit Load.
type DatasetLoader struct {
	fetcher  driven.DatasetFetcher
	parser   driven.RecordParser
	store    driven.DatasetStore
	settings driving.SettingsService

	mu       sync.Mutex
	failures map[domain.DatasetKind]error
	now      func() time.Time
}

// NewDatasetLoader creates a new dataset loader.
func NewDatasetLoader(
	fetcher driven.DatasetFetcher,
	parser driven.RecordParser,
	store driven.DatasetStore,
	settings driving.SettingsService,
) *DatasetLoader {
	return &DatasetLoader{
		fetcher:  fetcher,
		parser:   parser,
		store:    store,
		settings: settings,
		failures: make(map[domain.DatasetKind]error),
		now:      time.Now,
	}
}

// Load fetches, parses and normalises a dataset.
func (l *DatasetLoader) Load(ctx context.Context, kind domain.DatasetKind) (*domain.Dataset, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDataset, kind)
	}
	settings, err := l.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	name, ok := settings.Data.File(kind)
	if !ok {
		return nil, fmt.Errorf("%w: no file configured for %s", domain.ErrUnknownDataset, kind)
	}

	logger.Section("Load " + kind.String())
	defer logger.Elapsed("load "+kind.String(), time.Now())
	source := l.fetcher.Location(name)

	data, err := l.fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, l.fail(kind, fmt.Errorf("%w: %s: %w", domain.ErrFetchFailed, source, err))
	}
	logger.Debug("fetched %d bytes from %s", len(data), source)

	records, err := l.parser.Parse(ctx, data)
	if err != nil {
		return nil, l.fail(kind, fmt.Errorf("%w: %s: %w", domain.ErrParseFailed, source, err))
	}
	logger.Debug("parsed %d records", len(records))

	ds := &domain.Dataset{
		ID:       uuid.New().String(),
		Kind:     kind,
		Source:   source,
		LoadedAt: l.now(),
		Rows:     len(records),
	}
	switch kind {
	case domain.DatasetExpenditures:
		buildExpenditures(ds, records)
	case domain.DatasetContributions:
		buildContributions(ds, records, settings)
	default:
		buildSnapshots(ds, records)
	}

	if err := l.store.Save(ctx, ds); err != nil {
		return nil, fmt.Errorf("store %s: %w", kind, err)
	}

	l.mu.Lock()
	delete(l.failures, kind)
	l.mu.Unlock()

	logger.Info("loaded %s: %d items (%d rejected, %d excluded, %d duplicates)",
		kind, ds.Len(), ds.Rejected, ds.Excluded, ds.Duplicates)
	return ds, nil
}

// Get returns the loaded dataset, loading it on first use.
// A dataset whose last load failed returns that failure.
func (l *DatasetLoader) Get(ctx context.Context, kind domain.DatasetKind) (*domain.Dataset, error) {
	l.mu.Lock()
	failure := l.failures[kind]
	l.mu.Unlock()
	if failure != nil {
		return nil, failure
	}

	ds, err := l.store.Get(ctx, kind)
	if err == nil {
		return ds, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return l.Load(ctx, kind)
}

// List returns all loaded datasets.
func (l *DatasetLoader) List(ctx context.Context) ([]*domain.Dataset, error) {
	return l.store.List(ctx)
}

func (l *DatasetLoader) fail(kind domain.DatasetKind, err error) error {
	logger.Warn("load %s failed: %v", kind, err)
	l.mu.Lock()
	l.failures[kind] = err
	l.mu.Unlock()
	return err
}

func buildExpenditures(ds *domain.Dataset, records []domain.RawRecord) {
	txs := make([]domain.Transaction, 0, len(records))
	for _, rec := range records {
		if rec.IsBlank() {
			continue
		}
		tx, ok := ExpenditureFromRecord(rec)
		if !ok {
			logger.Debug("line %d: no expenditure columns, skipping", rec.Line)
			ds.Rejected++
			continue
		}
		txs = append(txs, tx)
	}
	ds.Transactions = txs
}

func buildContributions(ds *domain.Dataset, records []domain.RawRecord, settings *domain.AppSettings) {
	txs := make([]domain.Transaction, 0, len(records))
	for _, rec := range records {
		if rec.IsBlank() {
			continue
		}
		if IsExcludedForm(rec, settings.Contributions.ExcludedForms) {
			ds.Excluded++
			continue
		}
		tx, ok := ContributionFromRecord(rec)
		if !ok {
			logger.Debug("line %d: no contribution columns, skipping", rec.Line)
			ds.Rejected++
			continue
		}
		txs = append(txs, tx)
	}
	if settings.Merge.IsConfigured() {
		logger.Debug("merging filer %s into %q", settings.Merge.FilerID, settings.Merge.Name)
		txs = ApplyOverride(txs, settings.Merge)
	}
	deduped := Dedupe(txs)
	ds.Duplicates = len(txs) - len(deduped)
	ds.Transactions = deduped
}

func buildSnapshots(ds *domain.Dataset, records []domain.RawRecord) {
	snaps := make([]domain.Snapshot, 0, len(records))
	for _, rec := range records {
		if rec.IsBlank() {
			continue
		}
		snap, ok := SnapshotFromRecord(rec)
		if !ok {
			logger.Debug("line %d: no ballot columns, skipping", rec.Line)
			ds.Rejected++
			continue
		}
		snaps = append(snaps, snap)
	}
	ds.Snapshots = snaps
}
