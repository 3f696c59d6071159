package dto

import "github.com/GregMSThompson/review-dashboard/internal/models"

type KPIData struct {
	BrandScore               float64 `json:"brandScore"`
	BrandScoreTrend          float64 `json:"brandScoreTrend"`
	NegativeRate             float64 `json:"negativeRate"`
	NegativeRateTrend        float64 `json:"negativeRateTrend"`
	AvgReplyRate             float64 `json:"avgReplyRate"`
	AvgReplyRateTrend        float64 `json:"avgReplyRateTrend"`
	FoodSafetyIncidents      int     `json:"foodSafetyIncidents"`
	FoodSafetyIncidentsTrend float64 `json:"foodSafetyIncidentsTrend"`
}

type TrendDataPoint struct {
	Date     string  `json:"date"`
	Value    float64 `json:"value"`
	Category string  `json:"category,omitempty"`
}

type DistributionDataPoint struct {
	Name       string  `json:"name"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
}

// BubbleDataPoint places one risk category on the scatter chart:
// x = distinct stores, y = complaints, size = complaints.
type BubbleDataPoint struct {
	StoreName      string              `json:"storeName"`
	StoreCount     int                 `json:"storeCount"`
	ComplaintCount int                 `json:"complaintCount"`
	BubbleSize     int                 `json:"bubbleSize"`
	Category       models.RiskCategory `json:"category"`
}

type BlacklistStore struct {
	StoreID         string   `json:"storeId"`
	StoreName       string   `json:"storeName"`
	Score           float64  `json:"score"`
	NegativeRate    float64  `json:"negativeRate"`
	ComplaintsCount int      `json:"complaintsCount"`
	MainIssues      []string `json:"mainIssues"`
}

type WordCloudItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type CommercialAreaRanking struct {
	Area     string `json:"area"`
	Category string `json:"category"`
	Rank     int    `json:"rank"`
}

type StoreDetail struct {
	models.Store
	TotalReviews          int                     `json:"totalReviews"`
	AvgRating             float64                 `json:"avgRating"`
	NegativeReviews       int                     `json:"negativeReviews"`
	NegativeRate          float64                 `json:"negativeRate"`
	ReplyRate             float64                 `json:"replyRate"`
	RecentReviews         []models.Review         `json:"recentReviews"`
	IssueDistribution     []DistributionDataPoint `json:"issueDistribution"`
	CommercialAreaRanking *CommercialAreaRanking  `json:"commercialAreaRanking,omitempty"`
	PositiveTagsTop3      []DistributionDataPoint `json:"positiveTagsTop3"`
	NegativeTagsTop3      []DistributionDataPoint `json:"negativeTagsTop3"`
}

// --- Review drill-down ---

// Sentiment selectors for review drill-down.
const (
	SentimentAll      = "all"
	SentimentPositive = "positive"
	SentimentNegative = "negative"
)

type ReviewDrillDownQuery struct {
	StoreID   string
	Tag       string
	Sentiment string
	Limit     int
}

type ReviewDrillDownResult struct {
	StoreID   string          `json:"storeId,omitempty"`
	StoreName string          `json:"storeName,omitempty"`
	Tag       string          `json:"tag,omitempty"`
	Sentiment string          `json:"sentiment"`
	Total     int             `json:"total"`
	Reviews   []models.Review `json:"reviews"`
}

// --- Insight ---

type InsightResponse struct {
	Summary   string `json:"summary"`
	Generated bool   `json:"generated"` // false when the template fallback was used
}
