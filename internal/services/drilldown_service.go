package services

import (
	"context"
	"fmt"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/errs"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

type datasetDSSource interface {
	Snapshot(ctx context.Context) ([]models.Store, []models.Review, models.StoreIndex)
}

// drilldownService serves the canned drill-down tables. Unknown QSCV and
// ranking nodes are reported as not found; the flat lookups answer with an
// empty list.
type drilldownService struct {
	data     datasetDSSource
	loc      *time.Location
	clockNow func() time.Time
}

func NewDrilldownService(data datasetDSSource, loc *time.Location) *drilldownService {
	if loc == nil {
		loc = time.UTC
	}
	return &drilldownService{data: data, loc: loc, clockNow: time.Now}
}

func (s *drilldownService) now() time.Time {
	return s.clockNow().In(s.loc)
}

func (s *drilldownService) QSCVTree(ctx context.Context) []dto.QSCVTagL1 {
	stores, _, _ := s.data.Snapshot(ctx)
	return QSCVTree(stores)
}

func (s *drilldownService) QSCVChildren(ctx context.Context, l1 string) ([]dto.QSCVTagL2, error) {
	stores, _, _ := s.data.Snapshot(ctx)
	out, ok := QSCVChildren(stores, l1)
	if !ok {
		return nil, errs.NewNotFoundError(fmt.Sprintf("tag %s not found", l1))
	}
	return out, nil
}

func (s *drilldownService) QSCVLeaves(ctx context.Context, l1, l2 string) ([]dto.QSCVTagL3, error) {
	stores, _, _ := s.data.Snapshot(ctx)
	out, ok := QSCVLeaves(stores, l1, l2)
	if !ok {
		return nil, errs.NewNotFoundError(fmt.Sprintf("tag %s/%s not found", l1, l2))
	}
	return out, nil
}

func (s *drilldownService) RegionalTags(ctx context.Context) []dto.RegionalTagShare {
	return RegionalTagShares()
}

func (s *drilldownService) Dimensions(ctx context.Context) []dto.DimensionItem {
	return DimensionData()
}

func (s *drilldownService) DimensionTags(ctx context.Context, dimension string) []dto.TagL2Item {
	return TagL2Data(dimension)
}

func (s *drilldownService) DimensionLeaves(ctx context.Context, dimension, l2 string) []dto.TagL3Item {
	return TagL3Data(dimension, l2)
}

func (s *drilldownService) RegionKeywords(ctx context.Context, region string) []dto.WordCloudItem {
	return NegativeKeywordsByRegion(region)
}

func (s *drilldownService) RegionRankings(ctx context.Context) []dto.RegionRanking {
	return RegionRankings()
}

func (s *drilldownService) GroupRankings(ctx context.Context, region string) ([]dto.SupervisorGroupRanking, error) {
	out, ok := SupervisorGroupRankings(region)
	if !ok {
		return nil, errs.NewNotFoundError(fmt.Sprintf("region %s not found", region))
	}
	return out, nil
}

func (s *drilldownService) SupervisorRankings(ctx context.Context, region, group string) ([]dto.SupervisorRanking, error) {
	out, ok := SupervisorRankings(region, group)
	if !ok {
		return nil, errs.NewNotFoundError(fmt.Sprintf("group %s/%s not found", region, group))
	}
	return out, nil
}

func (s *drilldownService) StoreRankings(ctx context.Context, region, group, supervisor string) ([]dto.StoreRanking, error) {
	out, ok := StoreRankings(region, group, supervisor)
	if !ok {
		return nil, errs.NewNotFoundError(fmt.Sprintf("supervisor %s/%s/%s not found", region, group, supervisor))
	}
	return out, nil
}

func (s *drilldownService) SafetyKeywords(ctx context.Context) []dto.KeywordCount {
	return FoodSafetyKeywords()
}

func (s *drilldownService) MarketKeywords(ctx context.Context) []dto.MarketKeywords {
	return MarketSafetyKeywords()
}

func (s *drilldownService) MarketBlacklists(ctx context.Context) []dto.MarketBlacklist {
	return MarketSafetyBlacklists()
}

func (s *drilldownService) MarketTrend(ctx context.Context, granularity string) (dto.MarketSafetyTrend, error) {
	out, ok := MarketSafetyTrend(granularity, s.now())
	if !ok {
		return dto.MarketSafetyTrend{}, errs.NewValidationError(
			fmt.Sprintf("granularity must be %s or %s", GranularityDaily, GranularityWeekly))
	}
	return out, nil
}

func (s *drilldownService) ReviewVoices(ctx context.Context, keyword string) []dto.ReviewVoice {
	return ReviewVoices(keyword, s.now())
}

func (s *drilldownService) TopStores(ctx context.Context) dto.TopStoresData {
	stores, reviews, _ := s.data.Snapshot(ctx)
	return TopStores(stores, reviews, s.now())
}
