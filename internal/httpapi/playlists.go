package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"melodia/internal/store"
)

type createPlaylistRequest struct {
	Name   string `json:"name"`
	UserID int64  `json:"user_id"`
}

type addSongRequest struct {
	SongID int64 `json:"song_id"`
}

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req createPlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
		return
	}

	playlist, err := s.playlists.Create(r.Context(), req.Name, req.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "user not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, playlist)
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid playlist id"})
		return
	}

	playlist, err := s.playlists.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrPlaylistNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "playlist not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, playlist)
}

func (s *Server) handleAddSongToPlaylist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid playlist id"})
		return
	}

	var req addSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	added, err := s.playlists.AddSong(r.Context(), id, req.SongID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPlaylistNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "playlist not found"})
		case errors.Is(err, store.ErrSongNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "song not found"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	if !added {
		writeJSON(w, http.StatusOK, statusMessage{Message: "song is already in the playlist"})
		return
	}
	writeJSON(w, http.StatusOK, statusMessage{Message: "song added to playlist"})
}
