package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/errs"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

// memoryPresetStore keeps presets in process memory. It is used when no
// Firestore project is configured; presets are lost on restart.
type memoryPresetStore struct {
	mu      sync.RWMutex
	presets map[string]map[string]models.FilterPreset
}

func NewMemoryPresetStore() *memoryPresetStore {
	return &memoryPresetStore{presets: map[string]map[string]models.FilterPreset{}}
}

func (s *memoryPresetStore) Create(_ context.Context, uid string, preset *models.FilterPreset) error {
	if preset.CreatedAt.IsZero() {
		preset.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.presets[uid]
	if !ok {
		user = map[string]models.FilterPreset{}
		s.presets[uid] = user
	}
	if _, exists := user[preset.ID]; exists {
		return errs.NewAlreadyExistsError("filter preset already exists")
	}
	user[preset.ID] = *preset
	return nil
}

func (s *memoryPresetStore) Get(_ context.Context, uid, presetID string) (*models.FilterPreset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.presets[uid][presetID]
	if !ok {
		return nil, errs.NewNotFoundError("filter preset not found")
	}
	return &p, nil
}

func (s *memoryPresetStore) List(_ context.Context, uid string) ([]*models.FilterPreset, error) {
	s.mu.RLock()
	out := make([]*models.FilterPreset, 0, len(s.presets[uid]))
	for _, p := range s.presets[uid] {
		out = append(out, &p)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *memoryPresetStore) Delete(_ context.Context, uid, presetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.presets[uid][presetID]; !ok {
		return errs.NewNotFoundError("filter preset not found")
	}
	delete(s.presets[uid], presetID)
	return nil
}
