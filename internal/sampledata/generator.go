package sampledata

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/models"
)

const (
	MaxStores            = 300
	DefaultDays          = 30
	DefaultReviewsPerDay = 1000

	flagshipExtraStores = 20
	replyProbability    = 0.65
)

// Generator synthesises the sample store and review population. It is not
// safe for concurrent use; Dataset serialises access to it.
type Generator struct {
	rng           *rand.Rand
	Now           func() time.Time
	ReviewsPerDay int
}

// NewGenerator returns a generator seeded with seed. A zero seed draws one
// from the clock, so each process gets a different population.
func NewGenerator(seed uint64, now func() time.Time) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Now:           now,
		ReviewsPerDay: DefaultReviewsPerDay,
	}
}

func storeID(index int) string {
	return fmt.Sprintf("STORE%04d", index)
}

func reviewID(index int) string {
	return fmt.Sprintf("REV%08d", index)
}

func cityCount() int {
	n := 0
	for _, rc := range citiesByRegion {
		n += len(rc.Cities)
	}
	return n
}

// GenerateStores emits stores region by region and city by city. Flagship
// cities get extra stores; the total never exceeds MaxStores.
func (g *Generator) GenerateStores() []models.Store {
	now := g.Now()
	perCity := (MaxStores - flagshipExtraStores*len(flagshipCities)) / cityCount()

	stores := make([]models.Store, 0, MaxStores)
	for _, rc := range citiesByRegion {
		for _, ci := range rc.Cities {
			count := perCity
			if flagshipCities[ci.City] {
				count += flagshipExtraStores
			}

			for i := 0; i < count && len(stores) < MaxStores; i++ {
				shortCity := strings.TrimSuffix(string(ci.City), "市")
				stores = append(stores, models.Store{
					ID:       storeID(len(stores) + 1),
					Name:     fmt.Sprintf("%s(%s%d店)", pick(g.rng, storeNames), shortCity, g.intN(1, 50)),
					Region:   rc.Region,
					Province: ci.Province,
					City:     ci.City,
					Address:  fmt.Sprintf("%s%s路%d号", ci.City, pick(g.rng, addressDirections), g.intN(1, 999)),
					OpenDate: now.AddDate(0, -g.intN(1, 60), 0),
				})
			}
		}
	}
	return stores
}

// GenerateReviews emits ReviewsPerDay reviews for each of the trailing days,
// newest day first. An empty store list yields no reviews.
func (g *Generator) GenerateReviews(stores []models.Store, days int) []models.Review {
	if len(stores) == 0 || days <= 0 {
		return []models.Review{}
	}

	now := g.Now()
	perDay := g.ReviewsPerDay
	reviews := make([]models.Review, 0, days*perDay)

	for day := 0; day < days; day++ {
		date := now.AddDate(0, 0, -day)

		for i := 0; i < perDay; i++ {
			store := &stores[g.rng.IntN(len(stores))]
			review := g.review(len(reviews)+1, store, date, now)
			reviews = append(reviews, review)
		}
	}
	return reviews
}

func (g *Generator) review(index int, store *models.Store, date, now time.Time) models.Review {
	channel := pick(g.rng, models.Channels)
	rating := g.rating()

	replied := g.rng.Float64() < replyProbability
	replyDelay := time.Duration(g.intN(1, 48)) * time.Hour

	r := models.Review{
		ID:        reviewID(index),
		StoreID:   store.ID,
		StoreName: store.Name,
		Rating:    rating,
		Channel:   channel,
		Replied:   replied,
	}

	switch {
	case rating >= models.PositiveRatingFrom:
		r.Content = pick(g.rng, positiveTemplates)
		r.Tags = []string{pick(g.rng, positiveKeywords), pick(g.rng, positiveKeywords)}
	case rating >= models.NegativeRatingBelow:
		r.Content = pick(g.rng, neutralTemplates)
		r.Tags = append([]string(nil), neutralTags...)
	default:
		r.Content = pick(g.rng, negativeTemplates)
		risk := pick(g.rng, models.RiskCategories)
		r.RiskCategory = &risk
		r.Tags = []string{string(risk), pick(g.rng, negativeKeywords)}
	}

	created := time.Date(date.Year(), date.Month(), date.Day(),
		g.intN(10, 22), g.intN(0, 59), g.intN(0, 59), 0, date.Location())
	if created.After(now) {
		created = now
	}
	r.CreateTime = created

	if replied {
		replyTime := created.Add(replyDelay)
		r.ReplyTime = &replyTime
		r.ReplyContent = replyText
	}
	return r
}

// rating draws from the 70/20/10 mixture of positive, mid and negative
// bands, rounded to one decimal.
func (g *Generator) rating() float64 {
	switch p := g.rng.Float64(); {
	case p < 0.7:
		return g.float1(4.5, 5.0)
	case p < 0.9:
		return g.float1(3.0, 4.4)
	default:
		return g.float1(1.0, 2.9)
	}
}

func (g *Generator) float1(lo, hi float64) float64 {
	v := g.rng.Float64()*(hi-lo) + lo
	return math.Round(v*10) / 10
}

// intN returns a uniform int in [lo, hi].
func (g *Generator) intN(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
