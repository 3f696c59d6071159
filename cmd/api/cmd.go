package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/GregMSThompson/review-dashboard/internal/bootstrap"
	"github.com/GregMSThompson/review-dashboard/internal/config"
	"github.com/GregMSThompson/review-dashboard/internal/handlers"
	"github.com/GregMSThompson/review-dashboard/internal/response"
	"github.com/GregMSThompson/review-dashboard/internal/router"
	"github.com/GregMSThompson/review-dashboard/internal/sampledata"
	"github.com/GregMSThompson/review-dashboard/internal/services"
	"github.com/GregMSThompson/review-dashboard/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// sample data
	gen := sampledata.NewGenerator(cfg.SampleSeed, func() time.Time { return time.Now().In(bs.Location) })
	gen.ReviewsPerDay = cfg.SampleReviewsPerDay
	dataset := sampledata.NewDataset(gen, cfg.SampleDays)

	// services
	anserv := services.NewAnalyticsService(dataset, bs.Location)
	ddserv := services.NewDrilldownService(dataset, bs.Location)
	flserv := services.NewFilterService(store.NewMemoryPresetStore(), bs.Location)
	if bs.Firestore != nil {
		flserv = services.NewFilterService(store.NewPresetStore(bs.Firestore), bs.Location)
	}
	inserv := services.NewInsightService(nil, dataset)
	if bs.VertexAdapter != nil {
		inserv = services.NewInsightService(bs.VertexAdapter, dataset)
	}

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.LocalUID = cfg.LocalUID
	deps.Location = bs.Location
	deps.AnalyticsSvc = anserv
	deps.DrilldownSvc = ddserv
	deps.FilterSvc = flserv
	deps.InsightSvc = inserv

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("server starting", "port", cfg.Port, "local", cfg.Local())
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
