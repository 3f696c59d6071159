package services

import (
	"slices"
	"testing"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

func storeIDs(list []dto.TopListStore) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.StoreID)
	}
	return out
}

func TestTopStores(t *testing.T) {
	stores := append(testStores(),
		models.Store{ID: "S4", Name: "S4", Region: models.RegionEast},
		models.Store{ID: "S5", Name: "S5", Region: models.RegionEast},
		models.Store{ID: "S6", Name: "S6", Region: models.RegionEast},
		models.Store{ID: "S7", Name: "S7", Region: models.RegionEast},
	)
	day := baseTime.Add(-24 * time.Hour)
	reviews := build([]mkArgs{
		{"r1", "S1", 5, day},
		{"r2", "S2", 4, day},
		{"r3", "S3", 3, day},
		{"r4", "S5", 4, day},
		{"r5", "S4", 4, day},
		{"r6", "S6", 1, day},
		// outside the 7-day window
		{"r7", "S7", 1, baseTime.AddDate(0, 0, -20)},
	})

	got := TopStores(stores, reviews, baseTime)

	wantRed := []string{"S1", "S4", "S5", "S2"}
	if ids := storeIDs(got.RedList); !slices.Equal(ids, wantRed) {
		t.Fatalf("red list %v, want %v", ids, wantRed)
	}
	wantBlack := []string{"S6", "S3"}
	if ids := storeIDs(got.BlackList); !slices.Equal(ids, wantBlack) {
		t.Fatalf("black list %v, want %v", ids, wantBlack)
	}
	if got.RedList[0].Region != string(models.RegionEast) || got.RedList[0].Rating != 5 {
		t.Fatalf("unexpected red entry %+v", got.RedList[0])
	}
	if got.RedList[3].Region != string(models.RegionNorth) {
		t.Fatalf("unexpected region %s", got.RedList[3].Region)
	}
}

func TestTopStoresEmpty(t *testing.T) {
	got := TopStores(testStores(), nil, baseTime)
	if got.RedList == nil || got.BlackList == nil || len(got.RedList)+len(got.BlackList) != 0 {
		t.Fatalf("expected empty lists, got %+v", got)
	}
}
