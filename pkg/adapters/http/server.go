// Package http exposes the workflow builder and the content endpoints the
// built workflows call.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/tweetflow/internal/metrics"
	"github.com/aretw0/tweetflow/pkg/content"
	"github.com/aretw0/tweetflow/pkg/simulate"
	"github.com/aretw0/tweetflow/pkg/workflow"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	Generator content.Generator
	Simulator *simulate.Simulator
	Metrics   *metrics.Metrics
	Logger    *slog.Logger

	// BuildOptions are applied to every workflow build.
	BuildOptions []workflow.Option

	// Spec, when set, validates /api requests before they reach the handlers.
	Spec *openapi3.T
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics records request, build and generation metrics and serves them
// on /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) {
		s.Metrics = m
	}
}

// WithBuildOptions sets the options used for every workflow build.
func WithBuildOptions(opts ...workflow.Option) Option {
	return func(s *Server) {
		s.BuildOptions = opts
	}
}

// WithSimulator replaces the simulator behind /api/execute-workflow.
func WithSimulator(sim *simulate.Simulator) Option {
	return func(s *Server) {
		s.Simulator = sim
	}
}

// NewServer creates a Server around gen.
func NewServer(gen content.Generator, opts ...Option) *Server {
	s := &Server{
		Generator: gen,
		Simulator: simulate.New(),
		Logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler creates the HTTP handler for gen.
func NewHandler(gen content.Generator, opts ...Option) http.Handler {
	return NewServer(gen, opts...).Routes()
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/health", s.Health)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(Spec())
	})
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		if s.Spec != nil {
			validate, err := s.requestValidator(s.Spec)
			if err != nil {
				s.Logger.Error("request validation disabled", "err", err)
			} else {
				r.Use(validate)
			}
		}

		r.Post("/generate-workflow", s.GenerateWorkflow)
		r.Post("/workflow/render", s.RenderWorkflow)
		r.Post("/execute-workflow", s.ExecuteWorkflow)

		r.Post("/generate-tweet", s.GenerateTweet)
		r.Post("/generate-image", s.GenerateImage)
		r.Post("/generate-comment", s.GenerateComment)
		r.Post("/personalize-dm", s.PersonalizeDM)
	})

	return enableCORS(r)
}

// instrument records one metrics sample per request, labelled with the
// matched route pattern rather than the raw path.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.Metrics.ObserveRequest(route, status, time.Since(start))
		s.Logger.Debug("request served", "method", r.Method, "route", route, "status", status)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListenAndServe serves handler on addr until ctx is cancelled, then shuts
// down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
