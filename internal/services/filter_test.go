package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/models"
)

func TestFilterReviewsDateRangeInclusive(t *testing.T) {
	start := baseTime.Add(-48 * time.Hour)
	reviews := []models.Review{
		mkReview("before", "S1", 5, start.Add(-time.Second)),
		mkReview("at-start", "S1", 5, start),
		mkReview("inside", "S1", 5, baseTime.Add(-time.Hour)),
		mkReview("at-end", "S1", 5, baseTime),
		mkReview("after", "S1", 5, baseTime.Add(time.Second)),
	}

	got := FilterReviews(reviews, models.IndexStores(testStores()), rangeFilters(start, baseTime))

	var ids []string
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	want := []string{"at-start", "inside", "at-end"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids mismatch: got %v want %v", ids, want)
	}
}

func TestFilterReviewsRegionAndChannel(t *testing.T) {
	at := baseTime.Add(-time.Hour)
	reviews := []models.Review{
		mkReview("r1", "S1", 5, at, withChannel(models.ChannelMeituan)),
		mkReview("r2", "S2", 5, at, withChannel(models.ChannelMeituan)),
		mkReview("r3", "S3", 5, at, withChannel(models.ChannelEleme)),
		mkReview("r4", "S3", 5, at, withChannel(models.ChannelMeituan)),
	}
	index := models.IndexStores(testStores())

	f := rangeFilters(baseTime.Add(-24*time.Hour), baseTime)
	f.Region = string(models.RegionEast)
	if got := FilterReviews(reviews, index, f); len(got) != 3 {
		t.Fatalf("region filter: got %d reviews", len(got))
	}

	f.Channel = string(models.ChannelMeituan)
	got := FilterReviews(reviews, index, f)
	if len(got) != 2 || got[0].ID != "r1" || got[1].ID != "r4" {
		t.Fatalf("region+channel filter mismatch: %+v", got)
	}
}

func TestFilterReviewsStartAfterEnd(t *testing.T) {
	reviews := []models.Review{mkReview("r1", "S1", 5, baseTime)}
	f := rangeFilters(baseTime.Add(time.Hour), baseTime.Add(-time.Hour))

	got := FilterReviews(reviews, models.IndexStores(testStores()), f)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", got)
	}
}

func TestFilterReviewsDropsUnknownStore(t *testing.T) {
	reviews := []models.Review{
		mkReview("r1", "S1", 5, baseTime),
		mkReview("r2", "GONE", 5, baseTime),
	}
	got := FilterReviews(reviews, models.IndexStores(testStores()), rangeFilters(baseTime.Add(-time.Hour), baseTime))
	if len(got) != 1 || got[0].ID != "r1" {
		t.Fatalf("expected only r1, got %+v", got)
	}
}

func TestFilterReviewsIgnoresCityAndGroup(t *testing.T) {
	reviews := []models.Review{
		mkReview("r1", "S1", 5, baseTime),
		mkReview("r2", "S2", 5, baseTime),
	}
	f := rangeFilters(baseTime.Add(-time.Hour), baseTime)
	f.City = "杭州市"
	f.Group = "督导1组"

	if got := FilterReviews(reviews, models.IndexStores(testStores()), f); len(got) != 2 {
		t.Fatalf("city/group should not narrow results, got %d", len(got))
	}
}

func TestFilterReviewsDoesNotMutateInput(t *testing.T) {
	reviews := []models.Review{
		mkReview("r1", "S1", 5, baseTime, withTags("好吃")),
		mkReview("r2", "S2", 2, baseTime.Add(-72*time.Hour)),
	}
	before := make([]models.Review, len(reviews))
	copy(before, reviews)

	FilterReviews(reviews, models.IndexStores(testStores()), rangeFilters(baseTime.Add(-time.Hour), baseTime))

	if !reflect.DeepEqual(before, reviews) {
		t.Fatal("input reviews were modified")
	}
}

func TestFilterReviewsSevenDayWindow(t *testing.T) {
	now := time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC)
	_, reviews, index := generated(now)
	if len(reviews) != 30000 {
		t.Fatalf("expected 30000 generated reviews, got %d", len(reviews))
	}

	f := rangeFilters(now.AddDate(0, 0, -7), now)
	got := FilterReviews(reviews, index, f)

	if len(got) > 7000 {
		t.Fatalf("7-day window returned %d reviews", len(got))
	}
	for _, r := range got {
		if r.CreateTime.Before(f.DateRange.Start) || r.CreateTime.After(f.DateRange.End) {
			t.Fatalf("review %s at %v outside window", r.ID, r.CreateTime)
		}
	}
}
