package services

import (
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

const (
	metricsWindow = 7 * 24 * time.Hour

	// avg rating reported for a store with no reviews in the window
	defaultStoreRating = 4.5

	riskAvgRating         = 4.0
	riskNegativeRate      = 15.0
	advantageAvgRating    = 4.7
	advantageNegativeRate = 5.0
)

func riskLevel(avgRating, negativeRate float64) string {
	switch {
	case avgRating < riskAvgRating || negativeRate > riskNegativeRate:
		return dto.RiskLevelRisk
	case avgRating >= advantageAvgRating && negativeRate < advantageNegativeRate:
		return dto.RiskLevelAdvantage
	default:
		return dto.RiskLevelNormal
	}
}

// CalculateStoreMetrics compares each store's last 7 days, (now-7d, now],
// with the 7 days before, (now-14d, now-7d]. A store without reviews in the
// previous window reports no change.
func CalculateStoreMetrics(stores []models.Store, reviews []models.Review, now time.Time) []dto.StoreMetrics {
	recentFrom := now.Add(-metricsWindow)
	previousFrom := now.Add(-2 * metricsWindow)

	type windows struct{ recent, previous reviewStats }
	byStore := make(map[string]*windows, len(stores))
	for i := range stores {
		byStore[stores[i].ID] = &windows{}
	}

	for i := range reviews {
		r := &reviews[i]
		w, ok := byStore[r.StoreID]
		if !ok || r.CreateTime.After(now) {
			continue
		}
		switch {
		case r.CreateTime.After(recentFrom):
			w.recent.add(r)
		case r.CreateTime.After(previousFrom):
			w.previous.add(r)
		}
	}

	out := make([]dto.StoreMetrics, 0, len(stores))
	for _, s := range stores {
		w := byStore[s.ID]

		avg := defaultStoreRating
		if w.recent.total > 0 {
			avg = w.recent.avgRating()
		}
		negRate := w.recent.negativeRate()
		replyRate := w.recent.replyRate()

		prevAvg, prevNegRate, prevReplyRate := avg, negRate, replyRate
		if w.previous.total > 0 {
			prevAvg = w.previous.avgRating()
			prevNegRate = w.previous.negativeRate()
			prevReplyRate = w.previous.replyRate()
		}

		out = append(out, dto.StoreMetrics{
			StoreID:            s.ID,
			StoreName:          s.Name,
			AvgRating:          round1(avg),
			AvgRatingChange:    round2(avg - prevAvg),
			TotalReviews:       w.recent.total,
			TotalReviewsChange: w.recent.total - w.previous.total,
			NegativeRate:       round1(negRate),
			NegativeRateChange: round1(negRate - prevNegRate),
			ReplyRate:          round1(replyRate),
			ReplyRateChange:    round1(replyRate - prevReplyRate),
			NewReviewsCount:    w.recent.total,
			RiskLevel:          riskLevel(avg, negRate),
		})
	}
	return out
}

func countRiskLevel(metrics []dto.StoreMetrics, level string) int {
	n := 0
	for _, m := range metrics {
		if m.RiskLevel == level {
			n++
		}
	}
	return n
}

// CalculateStoreAnalysisKPI averages current across stores. Risk and
// advantage store counts change against previous, the metrics of the
// preceding window.
func CalculateStoreAnalysisKPI(current, previous []dto.StoreMetrics) dto.StoreAnalysisKPI {
	if len(current) == 0 {
		return dto.StoreAnalysisKPI{}
	}

	var avg, avgChange, negRate, negRateChange, replyRate, replyRateChange float64
	var newReviews, newReviewsChange int
	for _, m := range current {
		avg += m.AvgRating
		avgChange += m.AvgRatingChange
		negRate += m.NegativeRate
		negRateChange += m.NegativeRateChange
		replyRate += m.ReplyRate
		replyRateChange += m.ReplyRateChange
		newReviews += m.NewReviewsCount
		newReviewsChange += m.TotalReviewsChange
	}
	n := float64(len(current))

	risk := countRiskLevel(current, dto.RiskLevelRisk)
	advantage := countRiskLevel(current, dto.RiskLevelAdvantage)

	return dto.StoreAnalysisKPI{
		AvgRating:                 round1(avg / n),
		AvgRatingChange:           round2(avgChange / n),
		RiskStoreCount:            risk,
		RiskStoreCountChange:      risk - countRiskLevel(previous, dto.RiskLevelRisk),
		AdvantageStoreCount:       advantage,
		AdvantageStoreCountChange: advantage - countRiskLevel(previous, dto.RiskLevelAdvantage),
		TotalNewReviews:           newReviews,
		TotalNewReviewsChange:     newReviewsChange,
		AvgNegativeRate:           round1(negRate / n),
		AvgNegativeRateChange:     round1(negRateChange / n),
		AvgReplyRate:              round1(replyRate / n),
		AvgReplyRateChange:        round1(replyRateChange / n),
	}
}
