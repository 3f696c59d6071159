package sampledata

import (
	"sync"
	"testing"

	"github.com/GregMSThompson/review-dashboard/pkg/helpers"
)

func TestDatasetMemoises(t *testing.T) {
	ds := NewDataset(newTestGenerator(20), 3)

	first := ds.Reviews()
	second := ds.Reviews()
	if len(first) != 60 {
		t.Fatalf("review count mismatch: got %d", len(first))
	}
	if &first[0] != &second[0] {
		t.Fatal("expected the same review slice on repeated calls")
	}
	if &ds.Stores()[0] != &ds.Stores()[0] {
		t.Fatal("expected the same store slice on repeated calls")
	}

	idx := ds.StoreIndex()
	if idx[first[0].StoreID] == nil {
		t.Fatalf("index missing store %s", first[0].StoreID)
	}
}

func TestDatasetReset(t *testing.T) {
	ds := NewDataset(newTestGenerator(20), 3)

	before := ds.Reviews()
	ds.Reset(helpers.TestCtx())
	after := ds.Reviews()

	if len(after) != len(before) {
		t.Fatalf("review count changed after reset: %d vs %d", len(after), len(before))
	}
	if &before[0] == &after[0] {
		t.Fatal("expected a regenerated slice after reset")
	}
}

func TestDatasetConcurrentSnapshot(t *testing.T) {
	ds := NewDataset(newTestGenerator(20), 2)
	ctx := helpers.TestCtx()

	var wg sync.WaitGroup
	counts := make([]int, 8)
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, reviews, _ := ds.Snapshot(ctx)
			counts[i] = len(reviews)
		}(i)
	}
	wg.Wait()

	for i, n := range counts {
		if n != 40 {
			t.Fatalf("goroutine %d saw %d reviews", i, n)
		}
	}
}
