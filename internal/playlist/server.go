package playlist

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
)

// Server exposes the playlist operations over HTTP. Handlers only decode
// the request, call the service, and render the uniform envelope; all
// contract logic lives in the Service.
type Server struct {
	svc    *Service
	logger *log.Logger
}

func NewServer(svc *Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{svc: svc, logger: logger}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(s.requestLogger)
	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Post("/playlists", s.handleCreatePlaylist)
		r.Get("/playlists/{playlistId}", s.handleGetPlaylist)
		r.Patch("/playlists/{playlistId}", s.handleUpdatePlaylist)
		r.Delete("/playlists/{playlistId}", s.handleDeletePlaylist)

		r.Post("/playlists/{playlistId}/videos/{videoId}", s.handleAddVideo)
		r.Delete("/playlists/{playlistId}/videos/{videoId}", s.handleRemoveVideo)

		r.Get("/users/{userId}/playlists", s.handleGetUserPlaylists)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "playlist-service",
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
