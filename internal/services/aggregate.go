package services

import (
	"hash/fnv"
	"sort"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
	"github.com/GregMSThompson/review-dashboard/internal/sampledata"
)

const (
	blacklistNegativeRate = 15.0
	blacklistAvgRating    = 3.5
	blacklistLimit        = 10
	wordCloudLimit        = 50
	recentReviewsLimit    = 10
	issueTagsLimit        = 5
	sideTagsLimit         = 3
	mainIssuesLimit       = 3
)

// previousWindow is the range of equal length ending just before f starts.
func previousWindow(f dto.FilterState) dto.FilterState {
	span := f.DateRange.End.Sub(f.DateRange.Start)
	prev := f
	prev.DateRange = dto.DateRange{
		Start: f.DateRange.Start.Add(-span),
		End:   f.DateRange.Start.Add(-time.Nanosecond),
		Label: f.DateRange.Label,
	}
	return prev
}

func CalculateKPIData(reviews []models.Review, stores models.StoreIndex, filters dto.FilterState) dto.KPIData {
	cur := statsOf(FilterReviews(reviews, stores, filters))
	prev := statsOf(FilterReviews(reviews, stores, previousWindow(filters)))

	brandScore := cur.avgRating() / 5 * 100
	prevBrandScore := prev.avgRating() / 5 * 100

	return dto.KPIData{
		BrandScore:               round1(brandScore),
		BrandScoreTrend:          percentChange(brandScore, prevBrandScore),
		NegativeRate:             round1(cur.negativeRate()),
		NegativeRateTrend:        percentChange(cur.negativeRate(), prev.negativeRate()),
		AvgReplyRate:             round1(cur.replyRate()),
		AvgReplyRateTrend:        percentChange(cur.replyRate(), prev.replyRate()),
		FoodSafetyIncidents:      cur.incidents,
		FoodSafetyIncidentsTrend: percentChange(float64(cur.incidents), float64(prev.incidents)),
	}
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CalculateTrendData returns the mean rating for every calendar day of the
// filter range, in the location of the range start. Days without reviews
// report 0.
func CalculateTrendData(reviews []models.Review, stores models.StoreIndex, filters dto.FilterState) []dto.TrendDataPoint {
	loc := filters.DateRange.Start.Location()
	first := dayStart(filters.DateRange.Start)
	last := dayStart(filters.DateRange.End.In(loc))
	if first.After(last) {
		return []dto.TrendDataPoint{}
	}

	byDay := map[string]*reviewStats{}
	for _, r := range FilterReviews(reviews, stores, filters) {
		key := r.CreateTime.In(loc).Format(dto.DateLayout)
		s, ok := byDay[key]
		if !ok {
			s = &reviewStats{}
			byDay[key] = s
		}
		s.add(&r)
	}

	var points []dto.TrendDataPoint
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		var value float64
		if s, ok := byDay[day.Format(dto.DateLayout)]; ok {
			value = round2(s.avgRating())
		}
		points = append(points, dto.TrendDataPoint{
			Date:  day.Format("01-02"),
			Value: value,
		})
	}
	return points
}

type ratingBand struct {
	name     string
	min, max float64
	closed   bool // include max
}

var ratingBands = []ratingBand{
	{name: "5星", min: 4.5, max: 5, closed: true},
	{name: "4-5星", min: 4, max: 4.5},
	{name: "3-4星", min: 3, max: 4},
	{name: "2-3星", min: 2, max: 3},
	{name: "1-2星", min: 1, max: 2},
}

func (b ratingBand) contains(rating float64) bool {
	if rating < b.min {
		return false
	}
	if b.closed {
		return rating <= b.max
	}
	return rating < b.max
}

func CalculateDistributionData(reviews []models.Review, stores models.StoreIndex, filters dto.FilterState) []dto.DistributionDataPoint {
	filtered := FilterReviews(reviews, stores, filters)

	counts := make([]int, len(ratingBands))
	for _, r := range filtered {
		for i, band := range ratingBands {
			if band.contains(r.Rating) {
				counts[i]++
				break
			}
		}
	}

	total := float64(len(filtered))
	if total == 0 {
		total = 1
	}
	out := make([]dto.DistributionDataPoint, 0, len(ratingBands))
	for i, band := range ratingBands {
		out = append(out, dto.DistributionDataPoint{
			Name:       band.name,
			Value:      counts[i],
			Percentage: round1(float64(counts[i]) / total * 100),
		})
	}
	return out
}

func CalculateBubbleData(reviews []models.Review, stores models.StoreIndex, filters dto.FilterState) []dto.BubbleDataPoint {
	type bucket struct {
		stores     map[string]struct{}
		complaints int
	}
	buckets := map[models.RiskCategory]*bucket{}

	for _, r := range FilterReviews(reviews, stores, filters) {
		if r.RiskCategory == nil {
			continue
		}
		b, ok := buckets[*r.RiskCategory]
		if !ok {
			b = &bucket{stores: map[string]struct{}{}}
			buckets[*r.RiskCategory] = b
		}
		b.stores[r.StoreID] = struct{}{}
		b.complaints++
	}

	out := make([]dto.BubbleDataPoint, 0, len(buckets))
	for category, b := range buckets {
		out = append(out, dto.BubbleDataPoint{
			StoreName:      string(category),
			StoreCount:     len(b.stores),
			ComplaintCount: b.complaints,
			BubbleSize:     b.complaints,
			Category:       category,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ComplaintCount != out[j].ComplaintCount {
			return out[i].ComplaintCount > out[j].ComplaintCount
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// CalculateBlacklistStores ranks the stores whose negative rate exceeds 15%
// or whose mean rating is below 3.5, worst negative rate first.
func CalculateBlacklistStores(reviews []models.Review, stores models.StoreIndex, filters dto.FilterState) []dto.BlacklistStore {
	type storeAgg struct {
		name  string
		stats reviewStats
		tags  *tagCounter
	}
	aggs := map[string]*storeAgg{}

	for _, r := range FilterReviews(reviews, stores, filters) {
		a, ok := aggs[r.StoreID]
		if !ok {
			a = &storeAgg{name: r.StoreName, tags: newTagCounter(nil)}
			aggs[r.StoreID] = a
		}
		a.stats.add(&r)
		a.tags.add(&r)
	}

	type ranked struct {
		id      string
		negRate float64
		agg     *storeAgg
	}
	var qualifying []ranked
	for id, a := range aggs {
		negRate := a.stats.negativeRate()
		if negRate > blacklistNegativeRate || a.stats.avgRating() < blacklistAvgRating {
			qualifying = append(qualifying, ranked{id: id, negRate: negRate, agg: a})
		}
	}
	sort.Slice(qualifying, func(i, j int) bool {
		if qualifying[i].negRate != qualifying[j].negRate {
			return qualifying[i].negRate > qualifying[j].negRate
		}
		return qualifying[i].id < qualifying[j].id
	})
	if len(qualifying) > blacklistLimit {
		qualifying = qualifying[:blacklistLimit]
	}

	out := make([]dto.BlacklistStore, 0, len(qualifying))
	for _, q := range qualifying {
		issues := make([]string, 0, mainIssuesLimit)
		for _, it := range q.agg.tags.top(mainIssuesLimit) {
			issues = append(issues, it.Name)
		}
		out = append(out, dto.BlacklistStore{
			StoreID:         q.id,
			StoreName:       q.agg.name,
			Score:           round1(q.agg.stats.avgRating()),
			NegativeRate:    round1(q.negRate),
			ComplaintsCount: q.agg.stats.negative,
			MainIssues:      issues,
		})
	}
	return out
}

// CalculateWordCloudData counts, per tag, the negative reviews carrying it.
func CalculateWordCloudData(reviews []models.Review, stores models.StoreIndex, filters dto.FilterState) []dto.WordCloudItem {
	counter := newTagCounter(nil)
	for _, r := range FilterReviews(reviews, stores, filters) {
		if r.IsNegative() {
			counter.add(&r)
		}
	}
	return counter.top(wordCloudLimit)
}

var (
	commercialAreas      = []string{"徐家汇", "陆家嘴", "南京西路", "五角场", "中山公园"}
	commercialCategories = []string{"川菜", "火锅", "烧烤", "小吃快餐", "日料"}
)

// commercialAreaRanking derives a stable area, category and rank (1-20)
// from the store id.
func commercialAreaRanking(storeID string) *dto.CommercialAreaRanking {
	h := fnv.New32a()
	h.Write([]byte(storeID))
	sum := int(h.Sum32())

	return &dto.CommercialAreaRanking{
		Area:     commercialAreas[sum%len(commercialAreas)],
		Category: commercialCategories[(sum/len(commercialAreas))%len(commercialCategories)],
		Rank:     (sum/(len(commercialAreas)*len(commercialCategories)))%20 + 1,
	}
}

// GetStoreDetail rolls up one store's filtered reviews. It returns nil when
// storeID is unknown.
func GetStoreDetail(storeID string, reviews []models.Review, stores models.StoreIndex, filters dto.FilterState) *dto.StoreDetail {
	store, ok := stores[storeID]
	if !ok {
		return nil
	}

	var stats reviewStats
	issues := newTagCounter(nil)
	positive := newTagCounter(sampledata.IsNeutralTag)
	negative := newTagCounter(sampledata.IsNeutralTag)
	var own []models.Review
	var positiveCount, negativeCount int

	for _, r := range FilterReviews(reviews, stores, filters) {
		if r.StoreID != storeID {
			continue
		}
		own = append(own, r)
		stats.add(&r)
		issues.add(&r)
		switch {
		case r.IsPositive():
			positive.add(&r)
			positiveCount++
		case r.IsNegative():
			negative.add(&r)
			negativeCount++
		}
	}

	sort.SliceStable(own, func(i, j int) bool {
		return own[i].CreateTime.After(own[j].CreateTime)
	})
	if len(own) > recentReviewsLimit {
		own = own[:recentReviewsLimit]
	}
	if own == nil {
		own = []models.Review{}
	}

	return &dto.StoreDetail{
		Store:                 *store,
		TotalReviews:          stats.total,
		AvgRating:             round1(stats.avgRating()),
		NegativeReviews:       stats.negative,
		NegativeRate:          round1(stats.negativeRate()),
		ReplyRate:             round1(stats.replyRate()),
		RecentReviews:         own,
		IssueDistribution:     issues.topShares(issueTagsLimit, stats.total),
		CommercialAreaRanking: commercialAreaRanking(storeID),
		PositiveTagsTop3:      positive.topShares(sideTagsLimit, positiveCount),
		NegativeTagsTop3:      negative.topShares(sideTagsLimit, negativeCount),
	}
}
