package models

import (
	"time"
)

// Rating thresholds shared by every aggregation.
const (
	NegativeRatingBelow = 3.0 // rating < 3.0 is a negative review
	PositiveRatingFrom  = 4.5 // rating >= 4.5 is a positive review
)

type Review struct {
	ID           string        `json:"id"`
	StoreID      string        `json:"storeId"`
	StoreName    string        `json:"storeName"`
	Rating       float64       `json:"rating"`
	Content      string        `json:"content"`
	Channel      Channel       `json:"channel"`
	CreateTime   time.Time     `json:"createTime"`
	Replied      bool          `json:"replied"`
	ReplyContent string        `json:"replyContent,omitempty"`
	ReplyTime    *time.Time    `json:"replyTime,omitempty"`
	Tags         []string      `json:"tags"`
	RiskCategory *RiskCategory `json:"riskCategory,omitempty"` // set only when Rating < 3.0
}

func (r *Review) IsNegative() bool { return r.Rating < NegativeRatingBelow }

func (r *Review) IsPositive() bool { return r.Rating >= PositiveRatingFrom }

// HasTag reports whether the review carries tag.
func (r *Review) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
