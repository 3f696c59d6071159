package handlers

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/errs"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

var (
	shanghai = time.FixedZone("CST", 8*3600)
	testNow  = time.Date(2024, time.March, 15, 12, 0, 0, 0, shanghai)
)

func TestParseDate(t *testing.T) {
	start, err := parseDate("2024-03-01", shanghai, false)
	if err != nil {
		t.Fatalf("parseDate returned error: %v", err)
	}
	if !start.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, shanghai)) {
		t.Fatalf("unexpected start %v", start)
	}

	end, err := parseDate("2024-03-01", shanghai, true)
	if err != nil {
		t.Fatalf("parseDate returned error: %v", err)
	}
	if !end.Equal(time.Date(2024, time.March, 2, 0, 0, 0, 0, shanghai).Add(-time.Nanosecond)) {
		t.Fatalf("unexpected end %v", end)
	}

	rfc, err := parseDate("2024-03-01T08:30:00Z", shanghai, true)
	if err != nil || !rfc.Equal(time.Date(2024, time.March, 1, 8, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected RFC 3339 parse: %v %v", rfc, err)
	}

	_, err = parseDate("03/01/2024", shanghai, false)
	var vErr *errs.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOverlayQuery(t *testing.T) {
	base := dto.DefaultFilters(testNow)
	q := url.Values{
		"start":   {"2024-03-01"},
		"end":     {"2024-03-10"},
		"region":  {string(models.RegionEast)},
		"channel": {string(models.ChannelEleme)},
	}

	got, err := overlayQuery(base, q, shanghai)
	if err != nil {
		t.Fatalf("overlayQuery returned error: %v", err)
	}
	if got.Region != string(models.RegionEast) || got.Channel != string(models.ChannelEleme) {
		t.Fatalf("selectors not applied: %+v", got)
	}
	if got.City != models.FilterAll || got.Group != models.FilterAll {
		t.Fatalf("untouched selectors changed: %+v", got)
	}
	if got.DateRange.Label != dto.LabelCustom {
		t.Fatalf("explicit dates should be custom, got %q", got.DateRange.Label)
	}
	if got.DateRange.End.Day() != 10 || got.DateRange.End.Hour() != 23 {
		t.Fatalf("end should cover the whole day: %v", got.DateRange.End)
	}
}

func TestOverlayQueryNoParams(t *testing.T) {
	base := dto.DefaultFilters(testNow)
	got, err := overlayQuery(base, url.Values{}, shanghai)
	if err != nil || got != base {
		t.Fatalf("empty query should keep the session filters: %+v %v", got, err)
	}
}

func TestOverlayQueryInvalid(t *testing.T) {
	base := dto.DefaultFilters(testNow)
	tests := map[string]url.Values{
		"unknown region": {"region": {"火星"}},
		"reversed range": {"start": {"2024-03-10"}, "end": {"2024-03-01"}},
		"too long":       {"start": {"2022-01-01"}, "end": {"2024-03-01"}},
		"bad date":       {"end": {"tomorrow"}},
	}
	for name, q := range tests {
		_, err := overlayQuery(base, q, shanghai)
		var vErr *errs.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestOverlayQueryUsesServiceLocation(t *testing.T) {
	base := dto.DefaultFilters(testNow).In(time.UTC)
	q := url.Values{"start": {"2024-02-29T16:00:00Z"}, "end": {"2024-03-03T15:59:59Z"}}

	got, err := overlayQuery(base, q, shanghai)
	if err != nil {
		t.Fatalf("overlayQuery returned error: %v", err)
	}
	if got.DateRange.Start.Location() != shanghai || got.DateRange.End.Location() != shanghai {
		t.Fatalf("range not expressed in the service location: %v %v", got.DateRange.Start, got.DateRange.End)
	}
	if got.DateRange.Start.Day() != 1 || got.DateRange.End.Day() != 3 {
		t.Fatalf("unexpected local days: %v %v", got.DateRange.Start, got.DateRange.End)
	}
}
