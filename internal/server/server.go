package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Savio09/TSP-Solver/internal/config"
	"github.com/Savio09/TSP-Solver/pkg/milp"
	"github.com/Savio09/TSP-Solver/pkg/tsp"
)

//go:embed static
var staticFiles embed.FS

// Server wires the HTTP surface over a fixed problem instance.
type Server struct {
	cfg     *config.Config
	handler *SolveHandler
	metrics *Metrics
	logger  *zap.Logger
}

// New builds a server around an instance and a MILP solver.
func New(cfg *config.Config, instance tsp.Instance, solver milp.Solver, logger *zap.Logger) *Server {
	metrics := NewMetrics()
	return &Server{
		cfg:     cfg,
		handler: NewSolveHandler(instance, solver, cfg.MaxIterations, metrics, logger),
		metrics: metrics,
		logger:  logger,
	}
}

// Router assembles the chi router with middleware and all routes.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(RequestID())
	router.Use(Logger(s.logger))
	if s.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		}))
	}

	router.Get("/api/data", s.handler.GetData)
	router.Post("/api/solve", s.handler.Solve)
	router.Get("/healthz", healthCheck)
	if s.cfg.EnableMetrics {
		router.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))
	}

	// The embed path is a build-time constant; a failure here is a broken
	// build, not a runtime condition.
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	router.Handle("/*", http.FileServer(http.FS(static)))

	return router
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
