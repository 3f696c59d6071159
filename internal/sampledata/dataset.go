package sampledata

import (
	"context"
	"sync"

	"github.com/GregMSThompson/review-dashboard/internal/models"
	"github.com/GregMSThompson/review-dashboard/pkg/logger"
)

// Dataset lazily generates the sample population once and hands out the
// same slices until Reset. Callers must treat the slices as read-only.
type Dataset struct {
	gen  *Generator
	days int

	mu      sync.RWMutex
	loaded  bool
	stores  []models.Store
	reviews []models.Review
	index   models.StoreIndex
}

func NewDataset(gen *Generator, days int) *Dataset {
	if days <= 0 {
		days = DefaultDays
	}
	return &Dataset{gen: gen, days: days}
}

// Snapshot returns a consistent stores/reviews/index triple, generating it
// on first use.
func (d *Dataset) Snapshot(ctx context.Context) ([]models.Store, []models.Review, models.StoreIndex) {
	d.mu.RLock()
	if d.loaded {
		defer d.mu.RUnlock()
		return d.stores, d.reviews, d.index
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.loaded {
		d.load(ctx)
	}
	return d.stores, d.reviews, d.index
}

func (d *Dataset) Stores() []models.Store {
	stores, _, _ := d.Snapshot(context.Background())
	return stores
}

func (d *Dataset) Reviews() []models.Review {
	_, reviews, _ := d.Snapshot(context.Background())
	return reviews
}

func (d *Dataset) StoreIndex() models.StoreIndex {
	_, _, index := d.Snapshot(context.Background())
	return index
}

// Reset drops the cached population; the next access regenerates it.
func (d *Dataset) Reset(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.loaded = false
	d.stores, d.reviews, d.index = nil, nil, nil
	logger.FromContext(ctx).Info("sample dataset reset")
}

// must hold d.mu for writing
func (d *Dataset) load(ctx context.Context) {
	d.stores = d.gen.GenerateStores()
	d.reviews = d.gen.GenerateReviews(d.stores, d.days)
	d.index = models.IndexStores(d.stores)
	d.loaded = true

	logger.FromContext(ctx).Info("sample dataset generated",
		"stores", len(d.stores),
		"reviews", len(d.reviews),
		"days", d.days)
}
