package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/handlers"
	"github.com/GregMSThompson/review-dashboard/internal/response"
	"github.com/GregMSThompson/review-dashboard/internal/sampledata"
	"github.com/GregMSThompson/review-dashboard/internal/services"
	"github.com/GregMSThompson/review-dashboard/internal/store"
	"github.com/GregMSThompson/review-dashboard/pkg/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.New("", logger.NewTestHandler)
	gen := sampledata.NewGenerator(11, time.Now)
	gen.ReviewsPerDay = 50
	dataset := sampledata.NewDataset(gen, 14)

	deps := &handlers.Deps{
		Log:             log,
		ResponseHandler: response.New(log),
		LocalUID:        "local-user",
		Location:        time.UTC,
		AnalyticsSvc:    services.NewAnalyticsService(dataset, time.UTC),
		InsightSvc:      services.NewInsightService(nil, dataset),
		DrilldownSvc:    services.NewDrilldownService(dataset, time.UTC),
		FilterSvc:       services.NewFilterService(store.NewMemoryPresetStore(), time.UTC),
	}

	srv := httptest.NewServer(NewRouter(deps))
	t.Cleanup(srv.Close)
	return srv
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code"`
}

func call(t *testing.T, method, target, body string) (int, envelope) {
	t.Helper()

	req, err := http.NewRequest(method, target, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode: %v", method, target, err)
	}
	return resp.StatusCode, env
}

func TestRouterAnalyticsEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/healthz",
		"/api/analytics/kpi",
		"/api/analytics/trend",
		"/api/analytics/distribution",
		"/api/analytics/bubble",
		"/api/analytics/blacklist",
		"/api/analytics/wordcloud",
		"/api/analytics/content",
		"/api/analytics/insight",
		"/api/analytics/reviews?sentiment=negative&limit=5",
		"/api/stores/metrics",
		"/api/stores/kpi",
		"/api/stores/STORE0001",
		"/api/drilldown/qscv",
		"/api/drilldown/regional-tags",
		"/api/drilldown/dimensions",
		"/api/drilldown/rankings/regions",
		"/api/drilldown/rankings/regions/" + url.PathEscape("华东") + "/groups/" + url.PathEscape("上海督导组") + "/supervisors",
		"/api/drilldown/rankings/regions/" + url.PathEscape("华东") + "/groups/" + url.PathEscape("上海督导组") +
			"/supervisors/" + url.PathEscape("张三") + "/stores",
		"/api/drilldown/food-safety/keywords",
		"/api/drilldown/food-safety/markets/keywords",
		"/api/drilldown/food-safety/markets/blacklist",
		"/api/drilldown/food-safety/markets/trend?granularity=weekly",
		"/api/drilldown/food-safety/voices/" + url.PathEscape("异物"),
		"/api/drilldown/top-stores",
		"/api/filters/presets",
	} {
		status, env := call(t, http.MethodGet, srv.URL+path, "")
		if status != http.StatusOK || !env.Success {
			t.Errorf("GET %s: status %d success %v code %q", path, status, env.Success, env.Code)
		}
	}
}

func TestRouterErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/api/stores/NOPE", http.StatusNotFound, "not_found"},
		{"/api/drilldown/qscv/" + url.PathEscape("不存在"), http.StatusNotFound, "not_found"},
		{"/api/drilldown/rankings/regions/" + url.PathEscape("火星") + "/groups", http.StatusNotFound, "not_found"},
		{"/api/drilldown/food-safety/markets/trend?granularity=hourly", http.StatusBadRequest, "invalid_input"},
		{"/api/analytics/kpi?region=" + url.QueryEscape("火星"), http.StatusBadRequest, "invalid_input"},
		{"/api/analytics/trend?start=2024-03-10&end=2024-03-01", http.StatusBadRequest, "invalid_input"},
	}
	for _, tt := range tests {
		status, env := call(t, http.MethodGet, srv.URL+tt.path, "")
		if status != tt.status || env.Code != tt.code {
			t.Errorf("GET %s: got %d %q, want %d %q", tt.path, status, env.Code, tt.status, tt.code)
		}
	}
}

func TestRouterFilterSession(t *testing.T) {
	srv := newTestServer(t)

	status, _ := call(t, http.MethodPatch, srv.URL+"/api/filters", `{"region":"华东","channel":"美团"}`)
	if status != http.StatusOK {
		t.Fatalf("PATCH /api/filters: status %d", status)
	}

	_, env := call(t, http.MethodGet, srv.URL+"/api/filters", "")
	var f struct {
		Region  string `json:"region"`
		Channel string `json:"channel"`
	}
	if err := json.Unmarshal(env.Data, &f); err != nil {
		t.Fatalf("decode filters: %v", err)
	}
	if f.Region != "华东" || f.Channel != "美团" {
		t.Fatalf("session filters not updated: %+v", f)
	}

	status, env = call(t, http.MethodPost, srv.URL+"/api/filters/presets", `{"name":"华东美团"}`)
	if status != http.StatusCreated {
		t.Fatalf("POST /api/filters/presets: status %d", status)
	}
	var preset struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &preset); err != nil || !strings.HasPrefix(preset.ID, "preset-") {
		t.Fatalf("unexpected preset: %s %v", env.Data, err)
	}

	if status, _ := call(t, http.MethodDelete, srv.URL+"/api/filters", ""); status != http.StatusOK {
		t.Fatalf("DELETE /api/filters: status %d", status)
	}
	if status, _ := call(t, http.MethodPost, srv.URL+"/api/filters/presets/"+preset.ID+"/load", ""); status != http.StatusOK {
		t.Fatalf("load preset: status %d", status)
	}

	_, env = call(t, http.MethodGet, srv.URL+"/api/filters", "")
	if err := json.Unmarshal(env.Data, &f); err != nil || f.Region != "华东" {
		t.Fatalf("loaded preset not applied: %+v %v", f, err)
	}

	if status, env := call(t, http.MethodDelete, srv.URL+"/api/filters/presets/preset-1", ""); status != http.StatusBadRequest {
		t.Fatalf("deleting a built-in preset: status %d code %q", status, env.Code)
	}
	if status, _ := call(t, http.MethodDelete, srv.URL+"/api/filters/presets/"+preset.ID, ""); status != http.StatusOK {
		t.Fatalf("delete preset: status %d", status)
	}
}

func TestRouterRejectsUnusableSessionRange(t *testing.T) {
	srv := newTestServer(t)

	status, env := call(t, http.MethodPatch, srv.URL+"/api/filters", `{"startDate":"2024-01-01","endDate":"2025-12-31"}`)
	if status != http.StatusBadRequest || env.Code != "invalid_input" {
		t.Fatalf("PATCH with a two-year range: got %d %q", status, env.Code)
	}

	for _, path := range []string{"/api/analytics/kpi", "/api/analytics/trend", "/api/stores/STORE0001"} {
		if status, env := call(t, http.MethodGet, srv.URL+path, ""); status != http.StatusOK {
			t.Errorf("GET %s after rejected update: %d %q", path, status, env.Code)
		}
	}
}
