package handlers

import (
	"log/slog"
	"time"

	"firebase.google.com/go/v4/auth"

	"github.com/GregMSThompson/review-dashboard/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	LocalUID        string
	// Location interprets date-only query parameters.
	Location     *time.Location
	AnalyticsSvc analyticsService
	InsightSvc   insightService
	DrilldownSvc drilldownService
	FilterSvc    filterService
}
