package services

import (
	"context"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
	"github.com/GregMSThompson/review-dashboard/internal/sampledata"
)

var baseTime = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func testStores() []models.Store {
	return []models.Store{
		{ID: "S1", Name: "蜀香人家(上海1店)", Region: models.RegionEast, City: "上海市"},
		{ID: "S2", Name: "粤品轩(北京2店)", Region: models.RegionNorth, City: "北京市"},
		{ID: "S3", Name: "江南小馆(杭州3店)", Region: models.RegionEast, City: "杭州市"},
	}
}

type reviewOpt func(*models.Review)

func withChannel(c models.Channel) reviewOpt {
	return func(r *models.Review) { r.Channel = c }
}

func withTags(tags ...string) reviewOpt {
	return func(r *models.Review) { r.Tags = tags }
}

func withRisk(c models.RiskCategory) reviewOpt {
	return func(r *models.Review) { r.RiskCategory = &c }
}

func replied() reviewOpt {
	return func(r *models.Review) {
		t := r.CreateTime.Add(time.Hour)
		r.Replied = true
		r.ReplyTime = &t
	}
}

func mkReview(id, storeID string, rating float64, at time.Time, opts ...reviewOpt) models.Review {
	r := models.Review{
		ID:         id,
		StoreID:    storeID,
		StoreName:  storeID + "-name",
		Rating:     rating,
		Channel:    models.ChannelMeituan,
		CreateTime: at,
		Tags:       []string{},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func rangeFilters(start, end time.Time) dto.FilterState {
	return dto.FilterState{
		DateRange: dto.DateRange{Start: start, End: end, Label: dto.LabelCustom},
		Region:    models.FilterAll,
		City:      models.FilterAll,
		Group:     models.FilterAll,
		Channel:   models.FilterAll,
	}
}

// generated builds a seeded population: 30 days of 1000 reviews a day.
func generated(now time.Time) ([]models.Store, []models.Review, models.StoreIndex) {
	g := sampledata.NewGenerator(7, func() time.Time { return now })
	stores := g.GenerateStores()
	reviews := g.GenerateReviews(stores, sampledata.DefaultDays)
	return stores, reviews, models.IndexStores(stores)
}

type fakeDataset struct {
	stores     []models.Store
	reviews    []models.Review
	resetCalls int
}

func newFakeDataset(stores []models.Store, reviews []models.Review) *fakeDataset {
	return &fakeDataset{stores: stores, reviews: reviews}
}

func (f *fakeDataset) Snapshot(ctx context.Context) ([]models.Store, []models.Review, models.StoreIndex) {
	return f.stores, f.reviews, models.IndexStores(f.stores)
}

func (f *fakeDataset) Reset(ctx context.Context) {
	f.resetCalls++
}

type mkArgs struct {
	id, storeID string
	rating      float64
	at          time.Time
}

func build(args []mkArgs) []models.Review {
	out := make([]models.Review, 0, len(args))
	for _, a := range args {
		out = append(out, mkReview(a.id, a.storeID, a.rating, a.at))
	}
	return out
}
