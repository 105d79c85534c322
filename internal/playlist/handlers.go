package playlist

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleCreatePlaylist creates a new playlist owned by the current user.
// The owner id comes from the X-User-Id header set by the authenticating
// gateway; the request body is never trusted for ownership.
func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	ownerID := r.Header.Get("X-User-Id")
	if ownerID == "" {
		writeError(w, http.StatusUnauthorized, "missing user context", kindOperation)
		return
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", kindValidation)
		return
	}

	pl, err := s.svc.CreatePlaylist(r.Context(), ownerID, body.Name, body.Description)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, pl, "Playlist created successfully")
}

func (s *Server) handleGetUserPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := s.svc.GetUserPlaylists(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, playlists, "Playlists fetched successfully")
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	pl, err := s.svc.GetPlaylistByID(r.Context(), chi.URLParam(r, "playlistId"))
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, pl, "Playlist fetched successfully")
}

func (s *Server) handleAddVideo(w http.ResponseWriter, r *http.Request) {
	pl, err := s.svc.AddVideoToPlaylist(r.Context(),
		chi.URLParam(r, "playlistId"), chi.URLParam(r, "videoId"))
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, pl, "Video added successfully")
}

func (s *Server) handleRemoveVideo(w http.ResponseWriter, r *http.Request) {
	pl, err := s.svc.RemoveVideoFromPlaylist(r.Context(),
		chi.URLParam(r, "playlistId"), chi.URLParam(r, "videoId"))
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, pl, "Video removed successfully")
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	pl, err := s.svc.DeletePlaylist(r.Context(), chi.URLParam(r, "playlistId"))
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, pl, "Playlist deleted successfully")
}

func (s *Server) handleUpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	var patch PlaylistPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", kindValidation)
		return
	}

	pl, err := s.svc.UpdatePlaylist(r.Context(), chi.URLParam(r, "playlistId"), patch)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, pl, "Playlist updated successfully")
}
