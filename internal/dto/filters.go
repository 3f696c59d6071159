package dto

import (
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/models"
)

const DateLayout = "2006-01-02"

// Date range labels
const (
	LabelLast7Days  = "最近7天"
	LabelLast30Days = "最近30天"
	LabelCustom     = "自定义"
)

type DateRange struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
	Label string    `json:"label"`
}

// Contains reports whether t lies in [Start, End].
func (d DateRange) Contains(t time.Time) bool {
	return !t.Before(d.Start) && !t.After(d.End)
}

// FilterState is the dashboard filter. Each selector is either an enumerated
// value or models.FilterAll.
type FilterState struct {
	DateRange DateRange `json:"dateRange"`
	Region    string    `json:"region"`
	City      string    `json:"city"`
	Group     string    `json:"group"`
	Channel   string    `json:"channel"`
}

// In expresses the date range in loc. Day-based rollups bucket by the
// location of the range, so every filter reaching them goes through here.
func (f FilterState) In(loc *time.Location) FilterState {
	if loc == nil {
		return f
	}
	f.DateRange.Start = f.DateRange.Start.In(loc)
	f.DateRange.End = f.DateRange.End.In(loc)
	return f
}

// DefaultFilters covers the trailing 7 days with every selector open.
func DefaultFilters(now time.Time) FilterState {
	return FilterState{
		DateRange: DateRange{
			Start: now.AddDate(0, 0, -7),
			End:   now,
			Label: LabelLast7Days,
		},
		Region:  models.FilterAll,
		City:    models.FilterAll,
		Group:   models.FilterAll,
		Channel: models.FilterAll,
	}
}

// FilterStateUpdate is a partial update; nil fields keep their current value.
type FilterStateUpdate struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Label     *string    `json:"label,omitempty"`
	Region    *string    `json:"region,omitempty"`
	City      *string    `json:"city,omitempty"`
	Group     *string    `json:"group,omitempty"`
	Channel   *string    `json:"channel,omitempty"`
}

// UpdateFiltersRequest is the PATCH /filters body. Dates are YYYY-MM-DD or
// RFC 3339.
type UpdateFiltersRequest struct {
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Label     *string `json:"label,omitempty"`
	Region    *string `json:"region,omitempty"`
	City      *string `json:"city,omitempty"`
	Group     *string `json:"group,omitempty"`
	Channel   *string `json:"channel,omitempty"`
}

// --- Presets ---

type SavePresetRequest struct {
	Name string `json:"name"`
}

func PresetFromFilters(f FilterState) models.PresetFilters {
	return models.PresetFilters{
		StartDate: f.DateRange.Start,
		EndDate:   f.DateRange.End,
		Label:     f.DateRange.Label,
		Region:    f.Region,
		City:      f.City,
		Group:     f.Group,
		Channel:   f.Channel,
	}
}

func FiltersFromPreset(p models.PresetFilters) FilterState {
	return FilterState{
		DateRange: DateRange{Start: p.StartDate, End: p.EndDate, Label: p.Label},
		Region:    p.Region,
		City:      p.City,
		Group:     p.Group,
		Channel:   p.Channel,
	}
}
