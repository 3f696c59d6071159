package services

import (
	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

func isOpen(selector string) bool {
	return selector == "" || selector == models.FilterAll
}

func selects(selector, value string) bool {
	return isOpen(selector) || selector == value
}

// FilterReviews returns the reviews created within the filter's date range
// (inclusive) whose store exists and matches the region and channel
// selectors. City and group are accepted but not applied: the review data
// carries no group, and city filtering is not part of the dashboard filter
// contract. A range with start after end matches nothing. The input slice is
// never modified.
func FilterReviews(reviews []models.Review, stores models.StoreIndex, filters dto.FilterState) []models.Review {
	start, end := filters.DateRange.Start, filters.DateRange.End
	if start.After(end) {
		return []models.Review{}
	}

	out := make([]models.Review, 0, len(reviews)/4)
	for i := range reviews {
		r := &reviews[i]
		if r.CreateTime.Before(start) || r.CreateTime.After(end) {
			continue
		}
		store, ok := stores[r.StoreID]
		if !ok {
			continue
		}
		if !selects(filters.Region, string(store.Region)) {
			continue
		}
		if !selects(filters.Channel, string(r.Channel)) {
			continue
		}
		out = append(out, *r)
	}
	return out
}
