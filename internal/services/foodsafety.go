package services

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
)

// Trend granularities of MarketSafetyTrend.
const (
	GranularityDaily  = "daily"
	GranularityWeekly = "weekly"
)

const (
	dailyTrendPoints  = 30
	weeklyTrendPoints = 12

	blacklistStoresPerMarket = 5
	minSafetyRate            = 0.5
)

func FoodSafetyKeywords() []dto.KeywordCount {
	return slices.Clone(foodSafetyKeywords)
}

// MarketSafetyKeywords lists the five leading complaint keywords of each
// market, counts descending.
func MarketSafetyKeywords() []dto.MarketKeywords {
	out := make([]dto.MarketKeywords, 0, len(SafetyMarkets))
	for _, market := range SafetyMarkets {
		words := marketKeywordSets[market]
		kw := make([]dto.KeywordCount, 0, len(words))
		for i, w := range words {
			kw = append(kw, dto.KeywordCount{
				Keyword: w,
				Count:   45 - i*8 + jitter(market+"/"+w, 10),
			})
		}
		out = append(out, dto.MarketKeywords{Market: market, Keywords: kw})
	}
	return out
}

func safetySeverity(eventCount, changeRate int) string {
	switch {
	case eventCount >= 12 || changeRate >= 15:
		return dto.SeverityHigh
	case eventCount >= 8:
		return dto.SeverityMedium
	default:
		return dto.SeverityLow
	}
}

// MarketSafetyBlacklists names five stores per market by food-safety event
// count. Store names are dealt from one list across all markets.
func MarketSafetyBlacklists() []dto.MarketBlacklist {
	out := make([]dto.MarketBlacklist, 0, len(SafetyMarkets))
	next := 0
	for _, market := range SafetyMarkets {
		stores := make([]dto.SafetyBlacklistStore, 0, blacklistStoresPerMarket)
		for i := 0; i < blacklistStoresPerMarket; i++ {
			id := fmt.Sprintf("store_%s_%d", market, i)
			events := 18 - i*3 + jitter(id+"/events", 5)
			change := jitter(id+"/change", 40) - 10
			stores = append(stores, dto.SafetyBlacklistStore{
				StoreID:    id,
				StoreName:  blacklistStoreNames[next%len(blacklistStoreNames)],
				Market:     market,
				EventCount: events,
				ChangeRate: change,
				Severity:   safetySeverity(events, change),
			})
			next++
		}
		out = append(out, dto.MarketBlacklist{Market: market, Stores: stores})
	}
	return out
}

func monthDay(t time.Time) string {
	return fmt.Sprintf("%d/%d", t.Month(), t.Day())
}

// safetyRate is a market's incident rate on day. The noise is keyed on the
// calendar date.
func safetyRate(market string, idx int, day time.Time, trend, noise float64) float64 {
	base := 2 + float64(idx)*0.3
	n := (float64(jitter(market+"/"+day.Format(time.DateOnly), 101))/100 - 0.5) * noise
	return math.Max(minSafetyRate, round1(base+trend+n))
}

// MarketSafetyTrend is the per-market incident rate over the 30 days or 12
// weeks ending at now's date; false for an unknown granularity.
func MarketSafetyTrend(granularity string, now time.Time) (dto.MarketSafetyTrend, bool) {
	today := dayStart(now)

	var days []time.Time
	var labels []string
	var trend func(i int) float64
	var noise float64
	switch granularity {
	case GranularityDaily:
		for i := dailyTrendPoints - 1; i >= 0; i-- {
			d := today.AddDate(0, 0, -i)
			days = append(days, d)
			labels = append(labels, monthDay(d))
		}
		trend = func(i int) float64 { return math.Sin(float64(i)/5) * 0.5 }
		noise = 1
	case GranularityWeekly:
		for i := weeklyTrendPoints - 1; i >= 0; i-- {
			d := today.AddDate(0, 0, -i*7)
			days = append(days, d)
			labels = append(labels, monthDay(d)+"-"+monthDay(d.AddDate(0, 0, 6)))
		}
		trend = func(i int) float64 { return math.Sin(float64(i)/3) * 0.8 }
		noise = 0.6
	default:
		return dto.MarketSafetyTrend{}, false
	}

	data := make(map[string][]float64, len(SafetyMarkets))
	for idx, market := range SafetyMarkets {
		series := make([]float64, len(days))
		for i, d := range days {
			series[i] = safetyRate(market, idx, d, trend(i), noise)
		}
		data[market] = series
	}
	return dto.MarketSafetyTrend{
		Dates:   labels,
		Markets: slices.Clone(SafetyMarkets),
		Data:    data,
	}, true
}

// ReviewVoices returns the sample reviews behind keyword, dated within the
// 30 days before now. Unknown keywords have none.
func ReviewVoices(keyword string, now time.Time) []dto.ReviewVoice {
	contents, ok := voiceTemplates[keyword]
	if !ok {
		return []dto.ReviewVoice{}
	}
	today := dayStart(now)
	out := make([]dto.ReviewVoice, 0, len(contents))
	for i, content := range contents {
		id := fmt.Sprintf("review_%s_%d", keyword, i)
		out = append(out, dto.ReviewVoice{
			ID:        id,
			Content:   content,
			StoreName: voiceStoreNames[i%len(voiceStoreNames)],
			Date:      today.AddDate(0, 0, -jitter(id, 30)),
			Platform:  voicePlatforms[i%len(voicePlatforms)],
			Keyword:   keyword,
		})
	}
	return out
}
