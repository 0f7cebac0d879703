package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/achievement"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/engine"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/handler"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/metrics"
	"github.com/S-Moreira06/buisness-tycoon-sub000/internal/store"
)

// Server hosts the HTTP facade over the game engine.
type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and wires every route to its handler.
// apiKey may be empty, which disables authentication (local play).
func NewServer(port int, apiKey string, eng *engine.Engine, monitor *achievement.Monitor, st *store.Store, saveSlot string) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(AuthMiddleware(apiKey))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", handler.HandleGetState(eng))
		r.Post("/click", handler.HandleClick(eng))
		r.Get("/click-power", handler.HandleGetClickPower(eng))
		r.Get("/tier", handler.HandleGetTier(eng))

		r.Route("/businesses", func(r chi.Router) {
			r.Get("/", handler.HandleGetBusinesses(eng))
			r.Post("/buy", handler.HandleBuyBusiness(eng))
			r.Post("/upgrade", handler.HandleUpgradeBusiness(eng))
		})

		r.Route("/upgrades", func(r chi.Router) {
			r.Post("/purchase", handler.HandlePurchaseUpgrade(eng))
			r.Post("/purchase-click", handler.HandlePurchaseClickUpgrade(eng))
		})

		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", handler.HandleGetAchievements(eng, monitor))
			r.Post("/notifications/drain", handler.HandleDrainNotifications(eng))
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", handler.HandleGetJobs(eng))
			r.Post("/start", handler.HandleStartJob(eng))
			r.Post("/claim", handler.HandleClaimJob(eng))
		})

		r.Route("/game", func(r chi.Router) {
			r.Post("/external-gain", handler.HandleExternalGain(eng))
			r.Post("/reset", handler.HandleResetGame(eng))
			r.Post("/save", handler.HandleSaveGame(eng, st, saveSlot))
			r.Post("/load", handler.HandleLoadGame(eng, st, saveSlot))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
