package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/SnowS2471/BettaFish/internal/depcheck"
)

type Server struct {
	Logger  *zap.Logger
	Checker *depcheck.Checker
}

func NewServer(l *zap.Logger, c *depcheck.Checker) *Server {
	return &Server{Logger: l, Checker: c}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/dependencies", s.handleDependencies)

	return r
}

type dependenciesResponse struct {
	Available bool                     `json:"available"`
	Message   string                   `json:"message"`
	Platform  string                   `json:"platform"`
	Libraries []depcheck.LibraryStatus `json:"libraries"`
}

// handleDependencies runs a fresh probe per request; the check is a cheap
// local call, so nothing is cached.
func (s *Server) handleDependencies(w http.ResponseWriter, r *http.Request) {
	res := s.Checker.CheckPangoAvailable()
	libs, scanErr := s.Checker.Scan()
	if scanErr != nil {
		s.Logger.Warn("native_scan_failed", zap.Error(scanErr))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dependenciesResponse{
		Available: res.Available,
		Message:   res.Message,
		Platform:  s.Checker.Platform.String(),
		Libraries: libs,
	})
}
