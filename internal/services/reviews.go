package services

import (
	"sort"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

const (
	DefaultDrillDownLimit = 20
	MaxDrillDownLimit     = 200
)

func matchesSentiment(r *models.Review, sentiment string) bool {
	switch sentiment {
	case dto.SentimentPositive:
		return r.IsPositive()
	case dto.SentimentNegative:
		return r.IsNegative()
	default:
		return true
	}
}

func newestFirst(reviews []models.Review, limit int) []models.Review {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreateTime.After(reviews[j].CreateTime)
	})
	if limit > 0 && len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews
}

func drillDownLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultDrillDownLimit
	case limit > MaxDrillDownLimit:
		return MaxDrillDownLimit
	default:
		return limit
	}
}

// ReviewDrillDown lists the filtered reviews matching q, newest first. An
// empty StoreID or Tag leaves that dimension open. Total counts every match
// before the limit is applied.
func ReviewDrillDown(reviews []models.Review, stores models.StoreIndex, filters dto.FilterState, q dto.ReviewDrillDownQuery) dto.ReviewDrillDownResult {
	sentiment := q.Sentiment
	if sentiment == "" {
		sentiment = dto.SentimentAll
	}

	var matched []models.Review
	for _, r := range FilterReviews(reviews, stores, filters) {
		if q.StoreID != "" && r.StoreID != q.StoreID {
			continue
		}
		if q.Tag != "" && !r.HasTag(q.Tag) {
			continue
		}
		if !matchesSentiment(&r, sentiment) {
			continue
		}
		matched = append(matched, r)
	}

	res := dto.ReviewDrillDownResult{
		StoreID:   q.StoreID,
		Tag:       q.Tag,
		Sentiment: sentiment,
		Total:     len(matched),
		Reviews:   newestFirst(matched, drillDownLimit(q.Limit)),
	}
	if res.Reviews == nil {
		res.Reviews = []models.Review{}
	}
	if store, ok := stores[q.StoreID]; ok {
		res.StoreName = store.Name
	}
	return res
}

// ReviewsByKeyword lists the filtered reviews tagged with keyword, newest
// first.
func ReviewsByKeyword(reviews []models.Review, stores models.StoreIndex, filters dto.FilterState, keyword string, limit int) []models.Review {
	var matched []models.Review
	for _, r := range FilterReviews(reviews, stores, filters) {
		if r.HasTag(keyword) {
			matched = append(matched, r)
		}
	}
	if matched == nil {
		return []models.Review{}
	}
	return newestFirst(matched, drillDownLimit(limit))
}
