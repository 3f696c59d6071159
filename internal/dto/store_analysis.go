package dto

// Store risk levels
const (
	RiskLevelRisk      = "risk"
	RiskLevelNormal    = "normal"
	RiskLevelAdvantage = "advantage"
)

type StoreMetrics struct {
	StoreID            string  `json:"storeId"`
	StoreName          string  `json:"storeName"`
	AvgRating          float64 `json:"avgRating"`
	AvgRatingChange    float64 `json:"avgRatingChange"`
	TotalReviews       int     `json:"totalReviews"`
	TotalReviewsChange int     `json:"totalReviewsChange"`
	NegativeRate       float64 `json:"negativeRate"`
	NegativeRateChange float64 `json:"negativeRateChange"`
	ReplyRate          float64 `json:"replyRate"`
	ReplyRateChange    float64 `json:"replyRateChange"`
	NewReviewsCount    int     `json:"newReviewsCount"`
	RiskLevel          string  `json:"riskLevel"`
}

type StoreAnalysisKPI struct {
	AvgRating                 float64 `json:"avgRating"`
	AvgRatingChange           float64 `json:"avgRatingChange"`
	RiskStoreCount            int     `json:"riskStoreCount"`
	RiskStoreCountChange      int     `json:"riskStoreCountChange"`
	AdvantageStoreCount       int     `json:"advantageStoreCount"`
	AdvantageStoreCountChange int     `json:"advantageStoreCountChange"`
	TotalNewReviews           int     `json:"totalNewReviews"`
	TotalNewReviewsChange     int     `json:"totalNewReviewsChange"`
	AvgNegativeRate           float64 `json:"avgNegativeRate"`
	AvgNegativeRateChange     float64 `json:"avgNegativeRateChange"`
	AvgReplyRate              float64 `json:"avgReplyRate"`
	AvgReplyRateChange        float64 `json:"avgReplyRateChange"`
}
