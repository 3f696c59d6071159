package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/GregMSThompson/review-dashboard/internal/dto"
	"github.com/GregMSThompson/review-dashboard/internal/errs"
	"github.com/GregMSThompson/review-dashboard/internal/models"
	"github.com/GregMSThompson/review-dashboard/internal/sampledata"
	"github.com/GregMSThompson/review-dashboard/pkg/logger"
)

const (
	maxPresetNameLength = 50

	// MaxRangeDays bounds a filter's date range.
	MaxRangeDays = 366
)

type presetFSStore interface {
	Create(ctx context.Context, uid string, preset *models.FilterPreset) error
	Get(ctx context.Context, uid, presetID string) (*models.FilterPreset, error)
	List(ctx context.Context, uid string) ([]*models.FilterPreset, error)
	Delete(ctx context.Context, uid, presetID string) error
}

type builtInPreset struct {
	id, name string
	build    func(now time.Time) dto.FilterState
}

// built-in presets are relative to the moment they are loaded
var builtInPresets = []builtInPreset{
	{
		id:   "preset-1",
		name: "华东区最近7天",
		build: func(now time.Time) dto.FilterState {
			f := dto.DefaultFilters(now)
			f.Region = string(models.RegionEast)
			return f
		},
	},
	{
		id:   "preset-2",
		name: "美团渠道最近30天",
		build: func(now time.Time) dto.FilterState {
			f := dto.DefaultFilters(now)
			f.DateRange.Start = now.AddDate(0, 0, -30)
			f.DateRange.Label = dto.LabelLast30Days
			f.Channel = string(models.ChannelMeituan)
			return f
		},
	},
}

func findBuiltIn(id string) (builtInPreset, bool) {
	for _, p := range builtInPresets {
		if p.id == id {
			return p, true
		}
	}
	return builtInPreset{}, false
}

// filterService owns each user's current dashboard filter. Session state
// lives in memory; saved presets go through the preset store.
type filterService struct {
	store    presetFSStore
	loc      *time.Location
	clockNow func() time.Time
	newID    func() string

	mu       sync.RWMutex
	sessions map[string]dto.FilterState
}

// NewFilterService keeps session filters expressed in loc, whatever
// location a preset or update arrives in.
func NewFilterService(store presetFSStore, loc *time.Location) *filterService {
	if loc == nil {
		loc = time.UTC
	}
	return &filterService{
		store:    store,
		loc:      loc,
		clockNow: time.Now,
		newID:    func() string { return "preset-" + uuid.NewString() },
		sessions: map[string]dto.FilterState{},
	}
}

func (s *filterService) now() time.Time {
	return s.clockNow().In(s.loc)
}

func (s *filterService) GetFilters(ctx context.Context, uid string) dto.FilterState {
	s.mu.RLock()
	f, ok := s.sessions[uid]
	s.mu.RUnlock()
	if !ok {
		return dto.DefaultFilters(s.now())
	}
	return f
}

func (s *filterService) setFilters(uid string, f dto.FilterState) {
	s.mu.Lock()
	s.sessions[uid] = f
	s.mu.Unlock()
}

func validateSelector(name, value string, valid func(string) bool) error {
	if isOpen(value) || valid(value) {
		return nil
	}
	return errs.NewValidationError(fmt.Sprintf("unknown %s %q", name, value))
}

// ValidateFilters checks every selector against its enumeration and that
// the date range is ordered and at most MaxRangeDays long.
func ValidateFilters(f dto.FilterState) error {
	if f.DateRange.Start.IsZero() || f.DateRange.End.IsZero() {
		return errs.NewValidationError("date range requires start and end")
	}
	if f.DateRange.Start.After(f.DateRange.End) {
		return errs.NewValidationError("start date must not be after end date")
	}
	if f.DateRange.End.Sub(f.DateRange.Start) > MaxRangeDays*24*time.Hour {
		return errs.NewValidationError(fmt.Sprintf("date range must not exceed %d days", MaxRangeDays))
	}
	if err := validateSelector("region", f.Region, models.IsRegion); err != nil {
		return err
	}
	if err := validateSelector("city", f.City, sampledata.IsCity); err != nil {
		return err
	}
	if err := validateSelector("group", f.Group, models.IsGroup); err != nil {
		return err
	}
	return validateSelector("channel", f.Channel, models.IsChannel)
}

// ApplyUpdate merges the non-nil fields of upd into f. Changing either date
// without a label marks the range as custom.
func ApplyUpdate(f dto.FilterState, upd dto.FilterStateUpdate) dto.FilterState {
	if upd.StartDate != nil {
		f.DateRange.Start = *upd.StartDate
		f.DateRange.Label = dto.LabelCustom
	}
	if upd.EndDate != nil {
		f.DateRange.End = *upd.EndDate
		f.DateRange.Label = dto.LabelCustom
	}
	if upd.Label != nil {
		f.DateRange.Label = *upd.Label
	}
	if upd.Region != nil {
		f.Region = *upd.Region
	}
	if upd.City != nil {
		f.City = *upd.City
	}
	if upd.Group != nil {
		f.Group = *upd.Group
	}
	if upd.Channel != nil {
		f.Channel = *upd.Channel
	}
	return f
}

// UpdateFilters merges upd into the user's current filter. The last write
// wins; an invalid result leaves the stored filter untouched.
func (s *filterService) UpdateFilters(ctx context.Context, uid string, upd dto.FilterStateUpdate) (dto.FilterState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.sessions[uid]
	if !ok {
		cur = dto.DefaultFilters(s.now())
	}
	next := ApplyUpdate(cur, upd).In(s.loc)
	if err := ValidateFilters(next); err != nil {
		return cur, err
	}
	s.sessions[uid] = next

	logger.FromContext(ctx).Debug("filters updated", "filters", next)
	return next, nil
}

func (s *filterService) ResetFilters(ctx context.Context, uid string) dto.FilterState {
	f := dto.DefaultFilters(s.now())
	s.setFilters(uid, f)
	return f
}

func (s *filterService) builtIns() []*models.FilterPreset {
	now := s.now()
	out := make([]*models.FilterPreset, 0, len(builtInPresets))
	for _, p := range builtInPresets {
		out = append(out, &models.FilterPreset{
			ID:      p.id,
			Name:    p.name,
			Filters: dto.PresetFromFilters(p.build(now)),
			BuiltIn: true,
		})
	}
	return out
}

// ListPresets returns the built-in presets followed by the user's saved
// ones, oldest first.
func (s *filterService) ListPresets(ctx context.Context, uid string) ([]*models.FilterPreset, error) {
	saved, err := s.store.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(saved, func(i, j int) bool {
		return saved[i].CreatedAt.Before(saved[j].CreatedAt)
	})
	return append(s.builtIns(), saved...), nil
}

// SavePreset snapshots the user's current filter under name.
func (s *filterService) SavePreset(ctx context.Context, uid, name string) (*models.FilterPreset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValidationError("preset name is required")
	}
	if utf8.RuneCountInString(name) > maxPresetNameLength {
		return nil, errs.NewValidationError(fmt.Sprintf("preset name must be at most %d characters", maxPresetNameLength))
	}

	preset := &models.FilterPreset{
		ID:        s.newID(),
		Name:      name,
		Filters:   dto.PresetFromFilters(s.GetFilters(ctx, uid)),
		CreatedAt: s.now(),
	}
	if err := s.store.Create(ctx, uid, preset); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("filter preset saved", "preset_id", preset.ID)
	return preset, nil
}

// LoadPreset makes the preset the user's current filter and returns it. A
// saved preset that no longer validates is rejected and the current filter
// is kept.
func (s *filterService) LoadPreset(ctx context.Context, uid, presetID string) (dto.FilterState, error) {
	var f dto.FilterState
	if p, ok := findBuiltIn(presetID); ok {
		f = p.build(s.now())
	} else {
		preset, err := s.store.Get(ctx, uid, presetID)
		if err != nil {
			return dto.FilterState{}, err
		}
		f = dto.FiltersFromPreset(preset.Filters).In(s.loc)
	}
	if err := ValidateFilters(f); err != nil {
		return dto.FilterState{}, err
	}

	s.setFilters(uid, f)
	logger.FromContext(ctx).Info("filter preset loaded", "preset_id", presetID)
	return f, nil
}

func (s *filterService) DeletePreset(ctx context.Context, uid, presetID string) error {
	if _, ok := findBuiltIn(presetID); ok {
		return errs.NewValidationError("built-in presets cannot be deleted")
	}
	if err := s.store.Delete(ctx, uid, presetID); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("filter preset deleted", "preset_id", presetID)
	return nil
}
