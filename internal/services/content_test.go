package services

import (
	"testing"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

func TestCalculateSentiment(t *testing.T) {
	var reviews []models.Review
	for i := 0; i < 7; i++ {
		reviews = append(reviews, mkReview("p", "S1", 4.6, baseTime))
	}
	reviews = append(reviews,
		mkReview("n1", "S1", 3.5, baseTime),
		mkReview("n2", "S1", 4.4, baseTime),
		mkReview("x1", "S1", 2.0, baseTime),
	)

	got := CalculateSentiment(reviews)
	want := dto.SentimentData{Score: 84, Positive: 70, Neutral: 20, Negative: 10}
	if got != want {
		t.Fatalf("sentiment = %+v, want %+v", got, want)
	}
}

func TestCalculateSentimentEmpty(t *testing.T) {
	if got := CalculateSentiment(nil); got != (dto.SentimentData{}) {
		t.Fatalf("expected zero sentiment, got %+v", got)
	}
}

func TestContentAnalysis(t *testing.T) {
	stores := testStores()
	reviews := []models.Review{
		mkReview("r1", "S1", 5.0, baseTime),
		mkReview("r2", "S2", 1.0, baseTime),
		mkReview("r3", "S1", 1.0, baseTime.AddDate(0, 0, -30)),
	}
	f := rangeFilters(baseTime.AddDate(0, 0, -1), baseTime)

	got := ContentAnalysis(reviews, stores, models.IndexStores(stores), f)

	if got.Sentiment.Positive != 50 || got.Sentiment.Negative != 50 {
		t.Fatalf("sentiment should cover the filtered reviews only: %+v", got.Sentiment)
	}
	if len(got.QSCVTags) != 4 {
		t.Fatalf("expected 4 QSCV roots, got %d", len(got.QSCVTags))
	}
	if len(got.PositiveWordCloud) == 0 || len(got.NegativeWordCloud) == 0 {
		t.Fatal("word clouds should not be empty")
	}

	got.PositiveWordCloud[0].Value = -1
	if positiveWordCloud[0].Value == -1 {
		t.Fatal("content analysis exposed the shared word cloud")
	}
}
