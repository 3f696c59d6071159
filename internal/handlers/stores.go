package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/review-dashboard/internal/response"
)

type storeHandlers struct {
	ResponseHandler response.ResponseHandler
	AnalyticsSvc    analyticsService
	FilterSvc       sessionFilters
	Location        *time.Location
}

func NewStoreHandlers(deps *Deps) *storeHandlers {
	return &storeHandlers{
		ResponseHandler: deps.ResponseHandler,
		AnalyticsSvc:    deps.AnalyticsSvc,
		FilterSvc:       deps.FilterSvc,
		Location:        deps.Location,
	}
}

func (h *storeHandlers) StoreRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/metrics", h.GetStoreMetrics)
	r.Get("/kpi", h.GetStoreAnalysisKPI) // must be before /{storeId}
	r.Get("/{storeId}", h.GetStoreDetail)
	return r
}

func (h *storeHandlers) GetStoreMetrics(w http.ResponseWriter, r *http.Request) {
	f, err := requestFilters(r, h.FilterSvc, h.Location)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.GetStoreMetrics(r.Context(), f))
}

func (h *storeHandlers) GetStoreAnalysisKPI(w http.ResponseWriter, r *http.Request) {
	f, err := requestFilters(r, h.FilterSvc, h.Location)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.AnalyticsSvc.GetStoreAnalysisKPI(r.Context(), f))
}

func (h *storeHandlers) GetStoreDetail(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeId")
	f, err := requestFilters(r, h.FilterSvc, h.Location)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	detail, err := h.AnalyticsSvc.GetStoreDetail(r.Context(), storeID, f)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, detail)
}
