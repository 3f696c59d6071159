package services

import (
	"testing"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

func drillDownFixture() []models.Review {
	return []models.Review{
		mkReview("r1", "S1", 2.0, baseTime.Add(-3*time.Hour), withTags("上菜慢")),
		mkReview("r2", "S1", 4.8, baseTime.Add(-1*time.Hour), withTags("好吃")),
		mkReview("r3", "S1", 1.5, baseTime.Add(-2*time.Hour), withTags("上菜慢", "服务差")),
		mkReview("r4", "S2", 2.5, baseTime.Add(-time.Minute), withTags("上菜慢")),
		mkReview("r5", "S1", 3.5, baseTime.Add(-4*time.Hour), withTags("一般")),
	}
}

func TestReviewDrillDownByStoreAndTag(t *testing.T) {
	f := rangeFilters(baseTime.AddDate(0, 0, -1), baseTime)

	got := ReviewDrillDown(drillDownFixture(), models.IndexStores(testStores()), f, dto.ReviewDrillDownQuery{
		StoreID: "S1",
		Tag:     "上菜慢",
	})

	if got.StoreName != "蜀香人家(上海1店)" || got.Sentiment != dto.SentimentAll {
		t.Fatalf("result header mismatch: %+v", got)
	}
	if got.Total != 2 || len(got.Reviews) != 2 {
		t.Fatalf("expected 2 reviews, got total=%d len=%d", got.Total, len(got.Reviews))
	}
	if got.Reviews[0].ID != "r3" || got.Reviews[1].ID != "r1" {
		t.Fatalf("expected newest first, got %s, %s", got.Reviews[0].ID, got.Reviews[1].ID)
	}
}

func TestReviewDrillDownSentiment(t *testing.T) {
	f := rangeFilters(baseTime.AddDate(0, 0, -1), baseTime)
	index := models.IndexStores(testStores())

	neg := ReviewDrillDown(drillDownFixture(), index, f, dto.ReviewDrillDownQuery{Sentiment: dto.SentimentNegative})
	if neg.Total != 3 {
		t.Fatalf("expected 3 negative reviews, got %d", neg.Total)
	}
	pos := ReviewDrillDown(drillDownFixture(), index, f, dto.ReviewDrillDownQuery{Sentiment: dto.SentimentPositive})
	if pos.Total != 1 || pos.Reviews[0].ID != "r2" {
		t.Fatalf("expected r2 as the only positive review, got %+v", pos)
	}
}

func TestReviewDrillDownLimit(t *testing.T) {
	f := rangeFilters(baseTime.AddDate(0, 0, -1), baseTime)

	got := ReviewDrillDown(drillDownFixture(), models.IndexStores(testStores()), f, dto.ReviewDrillDownQuery{Limit: 2})
	if got.Total != 5 || len(got.Reviews) != 2 {
		t.Fatalf("limit should cap reviews but not total: total=%d len=%d", got.Total, len(got.Reviews))
	}
	if got.Reviews[0].ID != "r4" {
		t.Fatalf("expected r4 first, got %s", got.Reviews[0].ID)
	}
}

func TestReviewDrillDownNoMatch(t *testing.T) {
	f := rangeFilters(baseTime.AddDate(0, 0, -1), baseTime)

	got := ReviewDrillDown(drillDownFixture(), models.IndexStores(testStores()), f, dto.ReviewDrillDownQuery{Tag: "不存在"})
	if got.Total != 0 || got.Reviews == nil {
		t.Fatalf("expected empty non-nil reviews, got %+v", got)
	}
}

func TestDrillDownLimit(t *testing.T) {
	tests := map[int]int{0: DefaultDrillDownLimit, -5: DefaultDrillDownLimit, 50: 50, 1000: MaxDrillDownLimit}
	for in, want := range tests {
		if got := drillDownLimit(in); got != want {
			t.Errorf("drillDownLimit(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestReviewsByKeyword(t *testing.T) {
	f := rangeFilters(baseTime.AddDate(0, 0, -1), baseTime)
	f.Region = string(models.RegionEast)

	got := ReviewsByKeyword(drillDownFixture(), models.IndexStores(testStores()), f, "上菜慢", 0)
	if len(got) != 2 || got[0].ID != "r3" || got[1].ID != "r1" {
		t.Fatalf("unexpected keyword matches: %+v", got)
	}

	if none := ReviewsByKeyword(drillDownFixture(), models.IndexStores(testStores()), f, "无", 0); none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", none)
	}
}
