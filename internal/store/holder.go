package store

import (
	"sync/atomic"

	"fjacquet/finquery/internal/models"
)

// Holder publishes the current dataset snapshot to any number of concurrent
// readers. A reload swaps the snapshot wholesale, so a reader always sees
// either the old or the new dataset in full, never a mixture.
type Holder struct {
	store    *DatasetStore
	snapshot atomic.Pointer[models.Dataset]
}

// NewHolder creates a holder around the given store with an empty snapshot.
func NewHolder(store *DatasetStore) *Holder {
	h := &Holder{store: store}
	h.snapshot.Store(&models.Dataset{Transactions: map[string][]models.Transaction{}})
	return h
}

// Current returns the current snapshot. Callers must treat it as read-only.
func (h *Holder) Current() *models.Dataset {
	return h.snapshot.Load()
}

// Reload reads the dataset from disk and atomically replaces the snapshot.
// On error the previous snapshot stays in place.
func (h *Holder) Reload() (*models.Dataset, error) {
	ds, err := h.store.Load()
	if err != nil {
		return nil, err
	}
	h.snapshot.Store(ds)
	return ds, nil
}
