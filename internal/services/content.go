package services

import (
	"math"
	"slices"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

// CalculateSentiment splits reviews into positive (>= 4.5), neutral and
// negative (< 3) shares, in whole percent, and weights them 1.0/0.6/0.2
// into a 0-100 score. No reviews gives a zero score.
func CalculateSentiment(reviews []models.Review) dto.SentimentData {
	if len(reviews) == 0 {
		return dto.SentimentData{}
	}

	var positive, neutral, negative int
	for i := range reviews {
		switch r := &reviews[i]; {
		case r.IsPositive():
			positive++
		case r.IsNegative():
			negative++
		default:
			neutral++
		}
	}

	total := float64(len(reviews))
	posPct := float64(positive) / total * 100
	neuPct := float64(neutral) / total * 100
	negPct := float64(negative) / total * 100

	return dto.SentimentData{
		Score:    int(math.Round(posPct*1.0 + neuPct*0.6 + negPct*0.2)),
		Positive: int(math.Round(posPct)),
		Neutral:  int(math.Round(neuPct)),
		Negative: int(math.Round(negPct)),
	}
}

// ContentAnalysis bundles the sentiment of the filtered reviews with the
// canned QSCV tree and word clouds.
func ContentAnalysis(reviews []models.Review, stores []models.Store, index models.StoreIndex, filters dto.FilterState) dto.ContentAnalysisData {
	return dto.ContentAnalysisData{
		Sentiment:         CalculateSentiment(FilterReviews(reviews, index, filters)),
		QSCVTags:          QSCVTree(stores),
		PositiveWordCloud: slices.Clone(positiveWordCloud),
		NegativeWordCloud: slices.Clone(negativeWordCloud),
	}
}
