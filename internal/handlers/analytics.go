package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/errs"
	"github.com/GregMSThompson/review-dashboard/internal/models"
	"github.com/GregMSThompson/review-dashboard/internal/response"
)

type analyticsService interface {
	GetKPI(ctx context.Context, filters dto.FilterState) dto.KPIData
	GetTrend(ctx context.Context, filters dto.FilterState) []dto.TrendDataPoint
	GetDistribution(ctx context.Context, filters dto.FilterState) []dto.DistributionDataPoint
	GetBubbles(ctx context.Context, filters dto.FilterState) []dto.BubbleDataPoint
	GetBlacklist(ctx context.Context, filters dto.FilterState) []dto.BlacklistStore
	GetWordCloud(ctx context.Context, filters dto.FilterState) []dto.WordCloudItem
	GetContentAnalysis(ctx context.Context, filters dto.FilterState) dto.ContentAnalysisData
	GetReviews(ctx context.Context, filters dto.FilterState, q dto.ReviewDrillDownQuery) (dto.ReviewDrillDownResult, error)
	GetReviewsByKeyword(ctx context.Context, filters dto.FilterState, keyword string, limit int) []models.Review
	GetStoreDetail(ctx context.Context, storeID string, filters dto.FilterState) (*dto.StoreDetail, error)
	GetStoreMetrics(ctx context.Context, filters dto.FilterState) []dto.StoreMetrics
	GetStoreAnalysisKPI(ctx context.Context, filters dto.FilterState) dto.StoreAnalysisKPI
	ResetDataset(ctx context.Context)
}

type insightService interface {
	Insight(ctx context.Context, filters dto.FilterState) dto.InsightResponse
}

type analyticsHandlers struct {
	ResponseHandler response.ResponseHandler
	AnalyticsSvc    analyticsService
	InsightSvc      insightService
	FilterSvc       sessionFilters
	Location        *time.Location
}

func NewAnalyticsHandlers(deps *Deps) *analyticsHandlers {
	return &analyticsHandlers{
		ResponseHandler: deps.ResponseHandler,
		AnalyticsSvc:    deps.AnalyticsSvc,
		InsightSvc:      deps.InsightSvc,
		FilterSvc:       deps.FilterSvc,
		Location:        deps.Location,
	}
}

func (h *analyticsHandlers) AnalyticsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/kpi", h.GetKPI)
	r.Get("/trend", h.GetTrend)
	r.Get("/distribution", h.GetDistribution)
	r.Get("/bubble", h.GetBubbles)
	r.Get("/blacklist", h.GetBlacklist)
	r.Get("/wordcloud", h.GetWordCloud)
	r.Get("/reviews", h.GetReviews)
	r.Get("/insight", h.GetInsight)
	r.Get("/content", h.GetContentAnalysis)
	r.Post("/dataset/reset", h.ResetDataset)
	return r
}

func (h *analyticsHandlers) filters(w http.ResponseWriter, r *http.Request) (dto.FilterState, bool) {
	f, err := requestFilters(r, h.FilterSvc, h.Location)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return f, false
	}
	return f, true
}

func (h *analyticsHandlers) GetKPI(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filters(w, r)
	if !ok {
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.GetKPI(r.Context(), f))
}

func (h *analyticsHandlers) GetTrend(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filters(w, r)
	if !ok {
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.GetTrend(r.Context(), f))
}

func (h *analyticsHandlers) GetDistribution(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filters(w, r)
	if !ok {
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.GetDistribution(r.Context(), f))
}

func (h *analyticsHandlers) GetBubbles(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filters(w, r)
	if !ok {
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.GetBubbles(r.Context(), f))
}

func (h *analyticsHandlers) GetBlacklist(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filters(w, r)
	if !ok {
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.GetBlacklist(r.Context(), f))
}

func (h *analyticsHandlers) GetWordCloud(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filters(w, r)
	if !ok {
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.GetWordCloud(r.Context(), f))
}

func (h *analyticsHandlers) GetContentAnalysis(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filters(w, r)
	if !ok {
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.GetContentAnalysis(r.Context(), f))
}

// GetReviews serves the review drawer. With a keyword it lists reviews
// tagged with that keyword; otherwise it drills down by store, tag and
// sentiment.
func (h *analyticsHandlers) GetReviews(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filters(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	limit, err := queryInt(q, "limit")
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	if keyword := q.Get("keyword"); keyword != "" {
		h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.GetReviewsByKeyword(r.Context(), f, keyword, limit))
		return
	}

	sentiment := q.Get("sentiment")
	switch sentiment {
	case "", dto.SentimentAll, dto.SentimentPositive, dto.SentimentNegative:
	default:
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("sentiment must be all, positive or negative"))
		return
	}

	res, err := h.AnalyticsSvc.GetReviews(r.Context(), f, dto.ReviewDrillDownQuery{
		StoreID:   q.Get("storeId"),
		Tag:       q.Get("tag"),
		Sentiment: sentiment,
		Limit:     limit,
	})
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, res)
}

func (h *analyticsHandlers) GetInsight(w http.ResponseWriter, r *http.Request) {
	f, ok := h.filters(w, r)
	if !ok {
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.InsightSvc.Insight(r.Context(), f))
}

func (h *analyticsHandlers) ResetDataset(w http.ResponseWriter, r *http.Request) {
	h.AnalyticsSvc.ResetDataset(r.Context())
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
