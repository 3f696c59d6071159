package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/errs"
	"github.com/GregMSThompson/review-dashboard/internal/middleware"
	"github.com/GregMSThompson/review-dashboard/internal/services"
)

type sessionFilters interface {
	GetFilters(ctx context.Context, uid string) dto.FilterState
}

// parseDate accepts RFC 3339 or YYYY-MM-DD. A bare date is the start of
// that day in loc, or its last instant when endOfDay is set.
func parseDate(value string, loc *time.Location, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dto.DateLayout, value, loc)
	if err != nil {
		return time.Time{}, errs.NewValidationError(fmt.Sprintf("invalid date %q, want YYYY-MM-DD or RFC 3339", value))
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t, nil
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

// overlayQuery applies the filter query parameters on top of base. The
// result is expressed in loc.
func overlayQuery(base dto.FilterState, q url.Values, loc *time.Location) (dto.FilterState, error) {
	var upd dto.FilterStateUpdate
	if v := q.Get("start"); v != "" {
		t, err := parseDate(v, loc, false)
		if err != nil {
			return base, err
		}
		upd.StartDate = &t
	}
	if v := q.Get("end"); v != "" {
		t, err := parseDate(v, loc, true)
		if err != nil {
			return base, err
		}
		upd.EndDate = &t
	}
	for key, field := range map[string]**string{
		"label":   &upd.Label,
		"region":  &upd.Region,
		"city":    &upd.City,
		"group":   &upd.Group,
		"channel": &upd.Channel,
	} {
		if v := q.Get(key); v != "" {
			*field = &v
		}
	}

	f := services.ApplyUpdate(base, upd).In(loc)
	if err := services.ValidateFilters(f); err != nil {
		return base, err
	}
	return f, nil
}

// requestFilters is the caller's session filter with the request's query
// parameters applied. The session itself is left unchanged.
func requestFilters(r *http.Request, session sessionFilters, loc *time.Location) (dto.FilterState, error) {
	base := session.GetFilters(r.Context(), middleware.UID(r.Context()))
	return overlayQuery(base, r.URL.Query(), location(loc))
}

func queryInt(q url.Values, key string) (int, error) {
	v := q.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errs.NewValidationError(fmt.Sprintf("%s must be an integer", key))
	}
	return n, nil
}
