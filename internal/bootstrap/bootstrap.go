package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/auth"

	vertexclient "github.com/GregMSThompson/review-dashboard/internal/client/vertex"
	"github.com/GregMSThompson/review-dashboard/internal/config"
	"github.com/GregMSThompson/review-dashboard/pkg/logger"
)

type Bootstrap struct {
	Log           *slog.Logger
	Location      *time.Location
	Firestore     *firestore.Client
	Firebase      *auth.Client
	VertexAdapter *vertexclient.Adapter
}

// Run builds the process-wide clients. Without a project id none of the
// Google Cloud clients are created and the service runs locally.
func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.HandlerFor(cfg.LogFormat))
	bs.Location = cfg.Location()

	if cfg.Local() {
		bs.Log.Warn("PROJECTID not set, running with in-memory presets and template insights")
		return bs, nil
	}

	bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
	if err != nil {
		return bs, err
	}
	if !cfg.AuthDisabled {
		bs.Firebase, err = InitFirebase(applicationCtx, cfg.ProjectID)
		if err != nil {
			return bs, err
		}
	}
	bs.VertexAdapter, err = vertexclient.NewAdapter(applicationCtx, bs.Log, cfg.ProjectID, cfg.Region, cfg.VertexModel)
	if err != nil {
		// insights fall back to the template summary
		bs.Log.Warn("vertex client unavailable", "error", err)
		bs.VertexAdapter = nil
	}

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.VertexAdapter != nil {
		_ = bs.VertexAdapter.Close()
	}
	if bs.Firestore != nil {
		if err := bs.Firestore.Close(); err != nil {
			bs.Log.Error("firestore close failed", "error", err)
		}
	}
}
