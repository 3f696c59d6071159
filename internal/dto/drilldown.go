package dto

import "time"

type TopStore struct {
	StoreID   string `json:"storeId"`
	StoreName string `json:"storeName"`
	Count     int    `json:"count"`
}

// QSCVTagL1 → QSCVTagL2 → QSCVTagL3 is the content-analysis complaint tree.
type QSCVTagL1 struct {
	Name      string      `json:"name"`
	Count     int         `json:"count"`
	Children  []QSCVTagL2 `json:"children"`
	TopStores []TopStore  `json:"topStores"`
}

type QSCVTagL2 struct {
	Name      string      `json:"name"`
	Count     int         `json:"count"`
	Children  []QSCVTagL3 `json:"children"`
	TopStores []TopStore  `json:"topStores"`
}

type QSCVTagL3 struct {
	Name      string     `json:"name"`
	Count     int        `json:"count"`
	TopStores []TopStore `json:"topStores"`
}

// RegionalTagShare is one node of the regional Q/S/C/V share breakdown.
type RegionalTagShare struct {
	Name       string             `json:"name"`
	Count      int                `json:"count"`
	Percentage float64            `json:"percentage"`
	Children   []RegionalTagShare `json:"children,omitempty"`
}

type DimensionItem struct {
	Dimension     string `json:"dimension"`
	PositiveCount int    `json:"positiveCount"`
	NegativeCount int    `json:"negativeCount"`
}

type TagL2Item struct {
	Name          string `json:"name"`
	PositiveCount int    `json:"positiveCount"`
	NegativeCount int    `json:"negativeCount"`
}

type TagL3Item struct {
	Name   string     `json:"name"`
	Count  int        `json:"count"`
	Stores []TopStore `json:"stores"`
}

// --- Content analysis ---

type SentimentData struct {
	Score    int `json:"score"`
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

type ContentAnalysisData struct {
	Sentiment         SentimentData   `json:"sentiment"`
	QSCVTags          []QSCVTagL1     `json:"qscvTags"`
	PositiveWordCloud []WordCloudItem `json:"positiveWordCloud"`
	NegativeWordCloud []WordCloudItem `json:"negativeWordCloud"`
}

// --- Regional negative-review rankings ---
//
// Region → supervisor group → supervisor → store. Ranks order by negative
// reviews per ten thousand orders, lowest first.

type RegionRanking struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	NationalRank           int     `json:"nationalRank"`
	RankChange             int     `json:"rankChange"`
	NegativePerTenThousand float64 `json:"negativePerTenThousand"`
	NegativeCount          int     `json:"negativeCount"`
	StoreCount             int     `json:"storeCount"`
}

type SupervisorGroupRanking struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Region                 string  `json:"region"`
	NationalRank           int     `json:"nationalRank"`
	RegionalRank           int     `json:"regionalRank"`
	RankChange             int     `json:"rankChange"`
	NegativePerTenThousand float64 `json:"negativePerTenThousand"`
	NegativeCount          int     `json:"negativeCount"`
	SupervisorCount        int     `json:"supervisorCount"`
}

type SupervisorRanking struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Group                  string  `json:"group"`
	Region                 string  `json:"region"`
	NationalRank           int     `json:"nationalRank"`
	RegionalRank           int     `json:"regionalRank"`
	GroupRank              int     `json:"groupRank"`
	RankChange             int     `json:"rankChange"`
	NegativePerTenThousand float64 `json:"negativePerTenThousand"`
	NegativeCount          int     `json:"negativeCount"`
	StoreCount             int     `json:"storeCount"`
}

type StoreRanking struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Supervisor             string  `json:"supervisor"`
	Group                  string  `json:"group"`
	Region                 string  `json:"region"`
	NationalRank           int     `json:"nationalRank"`
	RegionalRank           int     `json:"regionalRank"`
	GroupRank              int     `json:"groupRank"`
	SupervisorRank         int     `json:"supervisorRank"`
	RankChange             int     `json:"rankChange"`
	NegativePerTenThousand float64 `json:"negativePerTenThousand"`
	NegativeCount          int     `json:"negativeCount"`
	AvgRating              float64 `json:"avgRating"`
}

// --- Food safety ---

type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

type MarketKeywords struct {
	Market   string         `json:"market"`
	Keywords []KeywordCount `json:"keywords"`
}

// Food-safety severities
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

type SafetyBlacklistStore struct {
	StoreID    string `json:"storeId"`
	StoreName  string `json:"storeName"`
	Market     string `json:"market"`
	EventCount int    `json:"eventCount"`
	ChangeRate int    `json:"changeRate"`
	Severity   string `json:"severity"`
}

type MarketBlacklist struct {
	Market string                 `json:"market"`
	Stores []SafetyBlacklistStore `json:"stores"`
}

// MarketSafetyTrend holds one incident-rate series per market, aligned
// with Dates.
type MarketSafetyTrend struct {
	Dates   []string             `json:"dates"`
	Markets []string             `json:"markets"`
	Data    map[string][]float64 `json:"data"`
}

type ReviewVoice struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	StoreName string    `json:"storeName"`
	Date      time.Time `json:"date"`
	Platform  string    `json:"platform"`
	Keyword   string    `json:"keyword"`
}

// --- Home red/black list ---

type TopListStore struct {
	Region    string  `json:"region"`
	StoreID   string  `json:"storeId"`
	StoreName string  `json:"storeName"`
	Rating    float64 `json:"rating"`
	Change    float64 `json:"change"`
}

type TopStoresData struct {
	RedList   []TopListStore `json:"redList"`
	BlackList []TopListStore `json:"blackList"`
}
