package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/travel-backend/internal/handlers"
	"github.com/GregMSThompson/travel-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RestrictOrigin(deps.FrontendURL))
	r.Use(middleware.CORS(deps.FrontendURL))

	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	th := handlers.NewTravelHandlers(deps)
	r.Mount("/", th.TravelRoutes())
	return r
}
