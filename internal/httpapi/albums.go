package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"melodia/internal/store"
)

func (s *Server) handleCreateAlbum(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form payload"})
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	category := strings.TrimSpace(r.FormValue("category"))
	if title == "" || category == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "title and category are required"})
		return
	}

	artistID, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("artist_id")), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "valid artist_id is required"})
		return
	}

	coverURL, err := s.formAsset(r, "cover", "cover_link", albumCoversFolder)
	if err != nil {
		if errors.Is(err, errMalformedUpload) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form payload"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to store album cover"})
		return
	}

	album := &store.Album{
		Title:       title,
		Description: optionalFormValue(r, "description"),
		Category:    category,
		CoverURL:    coverURL,
		ArtistID:    artistID,
	}

	created, err := s.albums.Create(r.Context(), album)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := s.albums.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, albums)
}

func (s *Server) handleGetAlbum(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid album id"})
		return
	}

	album, err := s.albums.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrAlbumNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "album not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, album)
}
