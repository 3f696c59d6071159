package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GregMSThompson/review-dashboard/internal/errs"
	"github.com/GregMSThompson/review-dashboard/pkg/helpers"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", errs.NewNotFoundError("store S9 not found"), http.StatusNotFound, "not_found"},
		{"exists", errs.NewAlreadyExistsError("dup"), http.StatusConflict, "already_exists"},
		{"validation", errs.NewValidationError("bad region"), http.StatusBadRequest, "invalid_input"},
		{"unauthorized", errs.NewUnauthorizedError("no token"), http.StatusUnauthorized, "unauthorized"},
		{"database", errs.NewDatabaseError("read", "failed", errors.New("boom")), http.StatusInternalServerError, "internal_error"},
		{"transient upstream", errs.NewExternalServiceError("vertexai", "failed", true, nil), http.StatusServiceUnavailable, "service_unavailable"},
		{"upstream", errs.NewExternalServiceError("vertexai", "failed", false, nil), http.StatusBadGateway, "service_unavailable"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	h := New(nil)
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(helpers.TestCtx())
		rr := httptest.NewRecorder()
		h.HandleError(rr, req, tt.err)

		if rr.Code != tt.wantStatus {
			t.Errorf("%s: status %d, want %d", tt.name, rr.Code, tt.wantStatus)
		}
		var body ErrorResponse
		if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
			t.Fatalf("%s: decode error: %v", tt.name, err)
		}
		if body.Code != tt.wantCode {
			t.Errorf("%s: code %q, want %q", tt.name, body.Code, tt.wantCode)
		}
	}
}

func TestWriteSuccess(t *testing.T) {
	h := New(nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(helpers.TestCtx())
	rr := httptest.NewRecorder()

	h.WriteSuccess(rr, req, http.StatusOK, map[string]int{"total": 3})

	var body struct {
		Success bool           `json:"success"`
		Data    map[string]int `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !body.Success || body.Data["total"] != 3 {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
}
