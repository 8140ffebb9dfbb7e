package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	appreport "github.com/bryanwahyu/roi-simulator/internal/application/report"
	appscenarios "github.com/bryanwahyu/roi-simulator/internal/application/scenarios"
	"github.com/bryanwahyu/roi-simulator/internal/domain/roi"
	"github.com/bryanwahyu/roi-simulator/internal/domain/scenarios"
	"github.com/bryanwahyu/roi-simulator/internal/middleware"
)

// Dependencies of the HTTP layer. RateLimiter and Checkers are optional.
type Dependencies struct {
	Scenarios   *appscenarios.Service
	Reports     *appreport.Service
	Logger      zerolog.Logger
	CORSOrigins []string
	RateLimiter *middleware.RateLimiter
	Checkers    map[string]middleware.HealthChecker
}

type Router struct {
	scenariosSvc *appscenarios.Service
	reportSvc    *appreport.Service
}

func NewRouter(deps Dependencies) http.Handler {
	r := &Router{scenariosSvc: deps.Scenarios, reportSvc: deps.Reports}
	logger := deps.Logger

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(middleware.Logger(&logger))
	mux.Use(recoverer)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	mux.Get("/", handleIndex)
	mux.Get("/health", middleware.HealthHandler(deps.Checkers))
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Post("/simulate", r.wrap(r.handleSimulate))

	mux.Route("/scenarios", func(rt chi.Router) {
		rt.Post("/", r.wrap(r.handleCreateScenario))
		rt.Get("/", r.wrap(r.handleListScenarios))
		rt.Get("/{id}", r.wrap(r.handleGetScenario))
		rt.Delete("/{id}", r.wrap(r.handleDeleteScenario))
	})

	mux.Group(func(rt chi.Router) {
		if deps.RateLimiter != nil {
			rt.Use(middleware.RateLimit(deps.RateLimiter))
		}
		rt.Post("/report/generate", r.wrap(r.handleGenerateReport))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			status := statusFor(err)
			if status >= http.StatusInternalServerError {
				zerolog.Ctx(req.Context()).Error().Err(err).Msg("request failed")
			}
			writeError(w, status, err)
		}
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, middleware.ErrValidation), errors.Is(err, roi.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, scenarios.ErrNotFound), errors.Is(err, sql.ErrNoRows):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
