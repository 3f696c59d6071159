package services

import (
	"math"
	"sort"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// reviewStats accumulates the counters every rollup needs. Ratios divide by
// max(total, 1) so an empty set reads as zero rather than NaN.
type reviewStats struct {
	total     int
	negative  int
	replied   int
	incidents int
	ratingSum float64
}

func (s *reviewStats) add(r *models.Review) {
	s.total++
	s.ratingSum += r.Rating
	if r.IsNegative() {
		s.negative++
	}
	if r.Replied {
		s.replied++
	}
	if r.RiskCategory != nil {
		s.incidents++
	}
}

func (s *reviewStats) denominator() float64 {
	if s.total == 0 {
		return 1
	}
	return float64(s.total)
}

func (s *reviewStats) avgRating() float64 { return s.ratingSum / s.denominator() }

func (s *reviewStats) negativeRate() float64 { return float64(s.negative) / s.denominator() * 100 }

func (s *reviewStats) replyRate() float64 { return float64(s.replied) / s.denominator() * 100 }

func statsOf(reviews []models.Review) reviewStats {
	var s reviewStats
	for i := range reviews {
		s.add(&reviews[i])
	}
	return s
}

// percentChange is the change from prev to cur in percent, one decimal.
// A zero baseline has no meaningful change and reports 0.
func percentChange(cur, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return round1((cur - prev) / prev * 100)
}

// tagCounter counts, per tag, how many reviews carry it. A tag repeated
// within one review counts once.
type tagCounter struct {
	counts map[string]int
	skip   func(tag string) bool
}

func newTagCounter(skip func(tag string) bool) *tagCounter {
	return &tagCounter{counts: map[string]int{}, skip: skip}
}

func (c *tagCounter) add(r *models.Review) {
	for i, tag := range r.Tags {
		if c.skip != nil && c.skip(tag) {
			continue
		}
		if seenBefore(r.Tags[:i], tag) {
			continue
		}
		c.counts[tag]++
	}
}

func seenBefore(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// top returns up to n tags by count desc, name asc on ties. n <= 0 means all.
func (c *tagCounter) top(n int) []dto.WordCloudItem {
	items := make([]dto.WordCloudItem, 0, len(c.counts))
	for name, value := range c.counts {
		items = append(items, dto.WordCloudItem{Name: name, Value: value})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Value != items[j].Value {
			return items[i].Value > items[j].Value
		}
		return items[i].Name < items[j].Name
	})
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	return items
}

// topShares is top with each count expressed as a percentage of total.
func (c *tagCounter) topShares(n, total int) []dto.DistributionDataPoint {
	denom := float64(total)
	if total == 0 {
		denom = 1
	}
	items := c.top(n)
	out := make([]dto.DistributionDataPoint, 0, len(items))
	for _, it := range items {
		out = append(out, dto.DistributionDataPoint{
			Name:       it.Name,
			Value:      it.Value,
			Percentage: round1(float64(it.Value) / denom * 100),
		})
	}
	return out
}
