package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/response"
	"github.com/GregMSThompson/review-dashboard/internal/services"
)

type drilldownService interface {
	QSCVTree(ctx context.Context) []dto.QSCVTagL1
	QSCVChildren(ctx context.Context, l1 string) ([]dto.QSCVTagL2, error)
	QSCVLeaves(ctx context.Context, l1, l2 string) ([]dto.QSCVTagL3, error)
	RegionalTags(ctx context.Context) []dto.RegionalTagShare
	Dimensions(ctx context.Context) []dto.DimensionItem
	DimensionTags(ctx context.Context, dimension string) []dto.TagL2Item
	DimensionLeaves(ctx context.Context, dimension, l2 string) []dto.TagL3Item
	RegionKeywords(ctx context.Context, region string) []dto.WordCloudItem
	RegionRankings(ctx context.Context) []dto.RegionRanking
	GroupRankings(ctx context.Context, region string) ([]dto.SupervisorGroupRanking, error)
	SupervisorRankings(ctx context.Context, region, group string) ([]dto.SupervisorRanking, error)
	StoreRankings(ctx context.Context, region, group, supervisor string) ([]dto.StoreRanking, error)
	SafetyKeywords(ctx context.Context) []dto.KeywordCount
	MarketKeywords(ctx context.Context) []dto.MarketKeywords
	MarketBlacklists(ctx context.Context) []dto.MarketBlacklist
	MarketTrend(ctx context.Context, granularity string) (dto.MarketSafetyTrend, error)
	ReviewVoices(ctx context.Context, keyword string) []dto.ReviewVoice
	TopStores(ctx context.Context) dto.TopStoresData
}

type drilldownHandlers struct {
	ResponseHandler response.ResponseHandler
	DrilldownSvc    drilldownService
}

func NewDrilldownHandlers(deps *Deps) *drilldownHandlers {
	return &drilldownHandlers{
		ResponseHandler: deps.ResponseHandler,
		DrilldownSvc:    deps.DrilldownSvc,
	}
}

func (h *drilldownHandlers) DrilldownRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/qscv", h.GetQSCVTree)
	r.Get("/qscv/{l1}", h.GetQSCVChildren)
	r.Get("/qscv/{l1}/{l2}", h.GetQSCVLeaves)
	r.Get("/regional-tags", h.GetRegionalTags)
	r.Get("/dimensions", h.GetDimensions)
	r.Get("/dimensions/{dimension}", h.GetDimensionTags)
	r.Get("/dimensions/{dimension}/{l2}", h.GetDimensionLeaves)
	r.Get("/keywords/{region}", h.GetRegionKeywords)

	r.Route("/rankings/regions", func(r chi.Router) {
		r.Get("/", h.GetRegionRankings)
		r.Get("/{region}/groups", h.GetGroupRankings)
		r.Get("/{region}/groups/{group}/supervisors", h.GetSupervisorRankings)
		r.Get("/{region}/groups/{group}/supervisors/{supervisor}/stores", h.GetStoreRankings)
	})

	r.Route("/food-safety", func(r chi.Router) {
		r.Get("/keywords", h.GetSafetyKeywords)
		r.Get("/markets/keywords", h.GetMarketKeywords)
		r.Get("/markets/blacklist", h.GetMarketBlacklists)
		r.Get("/markets/trend", h.GetMarketTrend)
		r.Get("/voices/{keyword}", h.GetReviewVoices)
	})

	r.Get("/top-stores", h.GetTopStores)
	return r
}

func (h *drilldownHandlers) GetQSCVTree(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DrilldownSvc.QSCVTree(r.Context()))
}

func (h *drilldownHandlers) GetQSCVChildren(w http.ResponseWriter, r *http.Request) {
	out, err := h.DrilldownSvc.QSCVChildren(r.Context(), chi.URLParam(r, "l1"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, out)
}

func (h *drilldownHandlers) GetQSCVLeaves(w http.ResponseWriter, r *http.Request) {
	out, err := h.DrilldownSvc.QSCVLeaves(r.Context(), chi.URLParam(r, "l1"), chi.URLParam(r, "l2"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, out)
}

func (h *drilldownHandlers) GetRegionalTags(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DrilldownSvc.RegionalTags(r.Context()))
}

func (h *drilldownHandlers) GetDimensions(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DrilldownSvc.Dimensions(r.Context()))
}

func (h *drilldownHandlers) GetDimensionTags(w http.ResponseWriter, r *http.Request) {
	out := h.DrilldownSvc.DimensionTags(r.Context(), chi.URLParam(r, "dimension"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, out)
}

func (h *drilldownHandlers) GetDimensionLeaves(w http.ResponseWriter, r *http.Request) {
	out := h.DrilldownSvc.DimensionLeaves(r.Context(), chi.URLParam(r, "dimension"), chi.URLParam(r, "l2"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, out)
}

func (h *drilldownHandlers) GetRegionKeywords(w http.ResponseWriter, r *http.Request) {
	out := h.DrilldownSvc.RegionKeywords(r.Context(), chi.URLParam(r, "region"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, out)
}

func (h *drilldownHandlers) GetRegionRankings(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DrilldownSvc.RegionRankings(r.Context()))
}

func (h *drilldownHandlers) GetGroupRankings(w http.ResponseWriter, r *http.Request) {
	out, err := h.DrilldownSvc.GroupRankings(r.Context(), chi.URLParam(r, "region"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, out)
}

func (h *drilldownHandlers) GetSupervisorRankings(w http.ResponseWriter, r *http.Request) {
	out, err := h.DrilldownSvc.SupervisorRankings(r.Context(), chi.URLParam(r, "region"), chi.URLParam(r, "group"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, out)
}

func (h *drilldownHandlers) GetStoreRankings(w http.ResponseWriter, r *http.Request) {
	out, err := h.DrilldownSvc.StoreRankings(r.Context(),
		chi.URLParam(r, "region"), chi.URLParam(r, "group"), chi.URLParam(r, "supervisor"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, out)
}

func (h *drilldownHandlers) GetSafetyKeywords(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DrilldownSvc.SafetyKeywords(r.Context()))
}

func (h *drilldownHandlers) GetMarketKeywords(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DrilldownSvc.MarketKeywords(r.Context()))
}

func (h *drilldownHandlers) GetMarketBlacklists(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DrilldownSvc.MarketBlacklists(r.Context()))
}

// GetMarketTrend defaults to the daily series.
func (h *drilldownHandlers) GetMarketTrend(w http.ResponseWriter, r *http.Request) {
	granularity := r.URL.Query().Get("granularity")
	if granularity == "" {
		granularity = services.GranularityDaily
	}
	out, err := h.DrilldownSvc.MarketTrend(r.Context(), granularity)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, out)
}

func (h *drilldownHandlers) GetReviewVoices(w http.ResponseWriter, r *http.Request) {
	out := h.DrilldownSvc.ReviewVoices(r.Context(), chi.URLParam(r, "keyword"))
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, out)
}

func (h *drilldownHandlers) GetTopStores(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.DrilldownSvc.TopStores(r.Context()))
}
