package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/review-dashboard/internal/errs"
	"github.com/GregMSThompson/review-dashboard/internal/models"
)

type presetStore struct {
	client *firestore.Client
}

func NewPresetStore(client *firestore.Client) *presetStore {
	return &presetStore{client: client}
}

func (s *presetStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("filter_presets")
}

func (s *presetStore) Create(ctx context.Context, uid string, preset *models.FilterPreset) error {
	if preset.CreatedAt.IsZero() {
		preset.CreatedAt = time.Now()
	}
	_, err := s.collection(uid).Doc(preset.ID).Create(ctx, preset)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errs.NewAlreadyExistsError("filter preset already exists")
		}
		return errs.NewDatabaseError("create", "failed to create filter preset", err)
	}
	return nil
}

func (s *presetStore) Get(ctx context.Context, uid, presetID string) (*models.FilterPreset, error) {
	doc, err := s.collection(uid).Doc(presetID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("filter preset not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get filter preset", err)
	}
	var p models.FilterPreset
	if err := doc.DataTo(&p); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse filter preset data", err)
	}
	return &p, nil
}

// List returns the user's saved presets, oldest first.
func (s *presetStore) List(ctx context.Context, uid string) ([]*models.FilterPreset, error) {
	iter := s.collection(uid).OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	presets := []*models.FilterPreset{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list filter presets", err)
		}
		var p models.FilterPreset
		if err := doc.DataTo(&p); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse filter preset data", err)
		}
		presets = append(presets, &p)
	}
	return presets, nil
}

func (s *presetStore) Delete(ctx context.Context, uid, presetID string) error {
	_, err := s.collection(uid).Doc(presetID).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errs.NewNotFoundError("filter preset not found")
		}
		return errs.NewDatabaseError("delete", "failed to delete filter preset", err)
	}
	return nil
}
