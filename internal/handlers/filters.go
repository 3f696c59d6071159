package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/errs"
	"github.com/GregMSThompson/review-dashboard/internal/middleware"
	"github.com/GregMSThompson/review-dashboard/internal/models"
	"github.com/GregMSThompson/review-dashboard/internal/response"
)

type filterService interface {
	GetFilters(ctx context.Context, uid string) dto.FilterState
	UpdateFilters(ctx context.Context, uid string, upd dto.FilterStateUpdate) (dto.FilterState, error)
	ResetFilters(ctx context.Context, uid string) dto.FilterState
	ListPresets(ctx context.Context, uid string) ([]*models.FilterPreset, error)
	SavePreset(ctx context.Context, uid, name string) (*models.FilterPreset, error)
	LoadPreset(ctx context.Context, uid, presetID string) (dto.FilterState, error)
	DeletePreset(ctx context.Context, uid, presetID string) error
}

type filterHandlers struct {
	ResponseHandler response.ResponseHandler
	FilterSvc       filterService
	Location        *time.Location
}

func NewFilterHandlers(deps *Deps) *filterHandlers {
	return &filterHandlers{
		ResponseHandler: deps.ResponseHandler,
		FilterSvc:       deps.FilterSvc,
		Location:        deps.Location,
	}
}

func (h *filterHandlers) FilterRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetFilters)
	r.Patch("/", h.UpdateFilters)
	r.Delete("/", h.ResetFilters)
	r.Get("/presets", h.ListPresets)
	r.Post("/presets", h.SavePreset)
	r.Post("/presets/{presetId}/load", h.LoadPreset)
	r.Delete("/presets/{presetId}", h.DeletePreset)
	return r
}

func (h *filterHandlers) GetFilters(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.FilterSvc.GetFilters(r.Context(), uid))
}

func (h *filterHandlers) toUpdate(req dto.UpdateFiltersRequest) (dto.FilterStateUpdate, error) {
	loc := location(h.Location)
	upd := dto.FilterStateUpdate{
		Label:   req.Label,
		Region:  req.Region,
		City:    req.City,
		Group:   req.Group,
		Channel: req.Channel,
	}
	if req.StartDate != nil {
		t, err := parseDate(*req.StartDate, loc, false)
		if err != nil {
			return upd, err
		}
		upd.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := parseDate(*req.EndDate, loc, true)
		if err != nil {
			return upd, err
		}
		upd.EndDate = &t
	}
	return upd, nil
}

func (h *filterHandlers) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateFiltersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	upd, err := h.toUpdate(req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	uid := middleware.UID(r.Context())
	f, err := h.FilterSvc.UpdateFilters(r.Context(), uid, upd)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, f)
}

func (h *filterHandlers) ResetFilters(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.FilterSvc.ResetFilters(r.Context(), uid))
}

func (h *filterHandlers) ListPresets(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	presets, err := h.FilterSvc.ListPresets(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, presets)
}

func (h *filterHandlers) SavePreset(w http.ResponseWriter, r *http.Request) {
	var req dto.SavePresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	uid := middleware.UID(r.Context())
	preset, err := h.FilterSvc.SavePreset(r.Context(), uid, req.Name)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, preset)
}

func (h *filterHandlers) LoadPreset(w http.ResponseWriter, r *http.Request) {
	presetID := chi.URLParam(r, "presetId")
	uid := middleware.UID(r.Context())
	f, err := h.FilterSvc.LoadPreset(r.Context(), uid, presetID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, f)
}

func (h *filterHandlers) DeletePreset(w http.ResponseWriter, r *http.Request) {
	presetID := chi.URLParam(r, "presetId")
	uid := middleware.UID(r.Context())
	if err := h.FilterSvc.DeletePreset(r.Context(), uid, presetID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
