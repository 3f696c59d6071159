package services

import (
	"context"
	"fmt"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/errs"
	"github.com/GregMSThompson/review-dashboard/internal/models"
	"github.com/GregMSThompson/review-dashboard/pkg/logger"
)

type datasetASSource interface {
	Snapshot(ctx context.Context) ([]models.Store, []models.Review, models.StoreIndex)
	Reset(ctx context.Context)
}

type analyticsService struct {
	data     datasetASSource
	loc      *time.Location
	clockNow func() time.Time
}

// NewAnalyticsService serves rollups over data. Trend days are calendar
// days in loc.
func NewAnalyticsService(data datasetASSource, loc *time.Location) *analyticsService {
	if loc == nil {
		loc = time.UTC
	}
	return &analyticsService{
		data:     data,
		loc:      loc,
		clockNow: time.Now,
	}
}

func (s *analyticsService) GetKPI(ctx context.Context, filters dto.FilterState) dto.KPIData {
	_, reviews, index := s.data.Snapshot(ctx)
	return CalculateKPIData(reviews, index, filters)
}

func (s *analyticsService) GetTrend(ctx context.Context, filters dto.FilterState) []dto.TrendDataPoint {
	_, reviews, index := s.data.Snapshot(ctx)
	return CalculateTrendData(reviews, index, filters.In(s.loc))
}

func (s *analyticsService) GetDistribution(ctx context.Context, filters dto.FilterState) []dto.DistributionDataPoint {
	_, reviews, index := s.data.Snapshot(ctx)
	return CalculateDistributionData(reviews, index, filters)
}

func (s *analyticsService) GetBubbles(ctx context.Context, filters dto.FilterState) []dto.BubbleDataPoint {
	_, reviews, index := s.data.Snapshot(ctx)
	return CalculateBubbleData(reviews, index, filters)
}

func (s *analyticsService) GetBlacklist(ctx context.Context, filters dto.FilterState) []dto.BlacklistStore {
	_, reviews, index := s.data.Snapshot(ctx)
	out := CalculateBlacklistStores(reviews, index, filters)

	logger.FromContext(ctx).Debug("blacklist computed", "stores", len(out))
	return out
}

func (s *analyticsService) GetWordCloud(ctx context.Context, filters dto.FilterState) []dto.WordCloudItem {
	_, reviews, index := s.data.Snapshot(ctx)
	return CalculateWordCloudData(reviews, index, filters)
}

func (s *analyticsService) GetContentAnalysis(ctx context.Context, filters dto.FilterState) dto.ContentAnalysisData {
	stores, reviews, index := s.data.Snapshot(ctx)
	return ContentAnalysis(reviews, stores, index, filters)
}

func (s *analyticsService) GetReviews(ctx context.Context, filters dto.FilterState, q dto.ReviewDrillDownQuery) (dto.ReviewDrillDownResult, error) {
	_, reviews, index := s.data.Snapshot(ctx)
	if q.StoreID != "" {
		if _, ok := index[q.StoreID]; !ok {
			return dto.ReviewDrillDownResult{}, errs.NewNotFoundError(fmt.Sprintf("store %s not found", q.StoreID))
		}
	}
	return ReviewDrillDown(reviews, index, filters, q), nil
}

func (s *analyticsService) GetReviewsByKeyword(ctx context.Context, filters dto.FilterState, keyword string, limit int) []models.Review {
	_, reviews, index := s.data.Snapshot(ctx)
	return ReviewsByKeyword(reviews, index, filters, keyword, limit)
}

func (s *analyticsService) GetStoreDetail(ctx context.Context, storeID string, filters dto.FilterState) (*dto.StoreDetail, error) {
	_, reviews, index := s.data.Snapshot(ctx)
	detail := GetStoreDetail(storeID, reviews, index, filters)
	if detail == nil {
		return nil, errs.NewNotFoundError(fmt.Sprintf("store %s not found", storeID))
	}
	return detail, nil
}

// scopeForMetrics narrows the population to the filter's region and channel.
// Store metrics use fixed 7-day windows ending now, so the date range is
// ignored.
func scopeForMetrics(stores []models.Store, reviews []models.Review, filters dto.FilterState) ([]models.Store, []models.Review) {
	scopedStores := stores
	if !isOpen(filters.Region) {
		scopedStores = make([]models.Store, 0, len(stores))
		for _, st := range stores {
			if string(st.Region) == filters.Region {
				scopedStores = append(scopedStores, st)
			}
		}
	}

	scopedReviews := reviews
	if !isOpen(filters.Channel) {
		scopedReviews = make([]models.Review, 0, len(reviews)/len(models.Channels))
		for _, r := range reviews {
			if string(r.Channel) == filters.Channel {
				scopedReviews = append(scopedReviews, r)
			}
		}
	}
	return scopedStores, scopedReviews
}

func (s *analyticsService) GetStoreMetrics(ctx context.Context, filters dto.FilterState) []dto.StoreMetrics {
	stores, reviews, _ := s.data.Snapshot(ctx)
	stores, reviews = scopeForMetrics(stores, reviews, filters)
	return CalculateStoreMetrics(stores, reviews, s.clockNow())
}

func (s *analyticsService) GetStoreAnalysisKPI(ctx context.Context, filters dto.FilterState) dto.StoreAnalysisKPI {
	stores, reviews, _ := s.data.Snapshot(ctx)
	stores, reviews = scopeForMetrics(stores, reviews, filters)

	now := s.clockNow()
	current := CalculateStoreMetrics(stores, reviews, now)
	previous := CalculateStoreMetrics(stores, reviews, now.Add(-metricsWindow))
	return CalculateStoreAnalysisKPI(current, previous)
}

func (s *analyticsService) ResetDataset(ctx context.Context) {
	s.data.Reset(ctx)
	stores, reviews, _ := s.data.Snapshot(ctx)

	logger.FromContext(ctx).Info("sample dataset regenerated", "stores", len(stores), "reviews", len(reviews))
}
