package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/review-dashboard/internal/handlers"
	"github.com/GregMSThompson/review-dashboard/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		deps.ResponseHandler.WriteSuccess(w, req, http.StatusOK, nil)
	})

	anh := handlers.NewAnalyticsHandlers(deps)
	sth := handlers.NewStoreHandlers(deps)
	ddh := handlers.NewDrilldownHandlers(deps)
	flh := handlers.NewFilterHandlers(deps)

	r.Route("/api", func(api chi.Router) {
		if deps.Firebase != nil {
			api.Use(middleware.NewMiddleware(deps.Firebase, deps.ResponseHandler).FirebaseAuth)
		} else {
			api.Use(middleware.LocalUID(deps.LocalUID))
		}

		api.Mount("/analytics", anh.AnalyticsRoutes())
		api.Mount("/stores", sth.StoreRoutes())
		api.Mount("/drilldown", ddh.DrilldownRoutes())
		api.Mount("/filters", flh.FilterRoutes())
	})
	return r
}
