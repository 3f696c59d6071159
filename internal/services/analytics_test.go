package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/errs"
	"github.com/GregMSThompson/review-dashboard/internal/models"
	"github.com/GregMSThompson/review-dashboard/pkg/helpers"
)

func newTestAnalyticsService(data datasetASSource) *analyticsService {
	svc := NewAnalyticsService(data, time.UTC)
	svc.clockNow = func() time.Time { return baseTime }
	return svc
}

func TestAnalyticsServiceGetStoreDetailNotFound(t *testing.T) {
	svc := newTestAnalyticsService(newFakeDataset(testStores(), nil))

	_, err := svc.GetStoreDetail(helpers.TestCtx(), "NOPE", rangeFilters(baseTime.Add(-time.Hour), baseTime))
	var nfErr *errs.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestAnalyticsServiceGetReviewsUnknownStore(t *testing.T) {
	svc := newTestAnalyticsService(newFakeDataset(testStores(), nil))

	_, err := svc.GetReviews(helpers.TestCtx(), rangeFilters(baseTime.Add(-time.Hour), baseTime), dto.ReviewDrillDownQuery{StoreID: "NOPE"})
	var nfErr *errs.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected not found error, got %v", err)
	}

	res, err := svc.GetReviews(helpers.TestCtx(), rangeFilters(baseTime.Add(-time.Hour), baseTime), dto.ReviewDrillDownQuery{})
	if err != nil || res.Total != 0 {
		t.Fatalf("open query should succeed with no reviews: %+v %v", res, err)
	}
}

func TestAnalyticsServiceStoreMetricsScope(t *testing.T) {
	reviews := []models.Review{
		mkReview("r1", "S1", 4.9, baseTime.Add(-time.Hour)),
		mkReview("r2", "S1", 2.0, baseTime.Add(-time.Hour), withChannel(models.ChannelEleme)),
		mkReview("r3", "S2", 2.0, baseTime.Add(-time.Hour)),
	}
	svc := newTestAnalyticsService(newFakeDataset(testStores(), reviews))

	f := dto.DefaultFilters(baseTime)
	f.Region = string(models.RegionEast)
	f.Channel = string(models.ChannelMeituan)

	got := svc.GetStoreMetrics(helpers.TestCtx(), f)
	if len(got) != 2 {
		t.Fatalf("expected the two east stores, got %d", len(got))
	}
	m := metricsByID(got)
	if m["S1"].TotalReviews != 1 || m["S1"].AvgRating != 4.9 {
		t.Fatalf("channel scope not applied: %+v", m["S1"])
	}

	kpi := svc.GetStoreAnalysisKPI(helpers.TestCtx(), f)
	if kpi.TotalNewReviews != 1 || kpi.AdvantageStoreCount != 1 {
		t.Fatalf("unexpected store analysis KPI: %+v", kpi)
	}
}

func TestAnalyticsServiceResetDataset(t *testing.T) {
	data := newFakeDataset(testStores(), nil)
	svc := newTestAnalyticsService(data)

	svc.ResetDataset(helpers.TestCtx())
	if data.resetCalls != 1 {
		t.Fatalf("Reset called %d times, want 1", data.resetCalls)
	}
}

func TestAnalyticsServiceTrendUsesServiceLocation(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)
	reviews := []models.Review{
		mkReview("r1", "S1", 4, time.Date(2024, time.January, 1, 12, 0, 0, 0, shanghai)),
		mkReview("r2", "S1", 4, time.Date(2024, time.January, 2, 12, 0, 0, 0, shanghai)),
		mkReview("r3", "S1", 4, time.Date(2024, time.January, 3, 12, 0, 0, 0, shanghai)),
	}
	svc := NewAnalyticsService(newFakeDataset(testStores(), reviews), shanghai)
	ctx := helpers.TestCtx()

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, shanghai)
	end := time.Date(2024, time.January, 4, 0, 0, 0, 0, shanghai).Add(-time.Nanosecond)

	local := svc.GetTrend(ctx, rangeFilters(start, end))
	utc := svc.GetTrend(ctx, rangeFilters(start.UTC(), end.UTC()))

	want := []dto.TrendDataPoint{{Date: "01-01", Value: 4}, {Date: "01-02", Value: 4}, {Date: "01-03", Value: 4}}
	if !reflect.DeepEqual(local, want) {
		t.Fatalf("unexpected trend %+v", local)
	}
	if !reflect.DeepEqual(utc, want) {
		t.Fatalf("the same instants in UTC gave %+v", utc)
	}
}
