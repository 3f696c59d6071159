package services

import (
	"sort"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

const topListPerRegion = 3

// TopStores builds the home red and black lists from the 7-day store
// metrics at now. Per region the red list takes the three best rated
// stores and the black list the three worst of the rest. Stores without
// reviews in the window are left out; ties break by store id.
func TopStores(stores []models.Store, reviews []models.Review, now time.Time) dto.TopStoresData {
	metrics := CalculateStoreMetrics(stores, reviews, now)
	region := make(map[string]models.Region, len(stores))
	for _, st := range stores {
		region[st.ID] = st.Region
	}

	byRegion := make(map[models.Region][]dto.StoreMetrics)
	for _, m := range metrics {
		if m.TotalReviews == 0 {
			continue
		}
		r := region[m.StoreID]
		byRegion[r] = append(byRegion[r], m)
	}

	out := dto.TopStoresData{RedList: []dto.TopListStore{}, BlackList: []dto.TopListStore{}}
	for _, r := range models.Regions {
		ms := byRegion[r]
		sort.Slice(ms, func(i, j int) bool {
			if ms[i].AvgRating != ms[j].AvgRating {
				return ms[i].AvgRating > ms[j].AvgRating
			}
			return ms[i].StoreID < ms[j].StoreID
		})

		red := min(topListPerRegion, len(ms))
		for _, m := range ms[:red] {
			out.RedList = append(out.RedList, topListEntry(r, m))
		}
		rest := ms[red:]
		sort.Slice(rest, func(i, j int) bool {
			if rest[i].AvgRating != rest[j].AvgRating {
				return rest[i].AvgRating < rest[j].AvgRating
			}
			return rest[i].StoreID < rest[j].StoreID
		})
		for _, m := range rest[:min(topListPerRegion, len(rest))] {
			out.BlackList = append(out.BlackList, topListEntry(r, m))
		}
	}
	return out
}

func topListEntry(r models.Region, m dto.StoreMetrics) dto.TopListStore {
	return dto.TopListStore{
		Region:    string(r),
		StoreID:   m.StoreID,
		StoreName: m.StoreName,
		Rating:    m.AvgRating,
		Change:    m.AvgRatingChange,
	}
}
