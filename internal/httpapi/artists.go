package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"melodia/internal/store"
)

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form payload"})
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
		return
	}

	pictureURL, err := s.formAsset(r, "picture", "picture_link", artistPicsFolder)
	if err != nil {
		if errors.Is(err, errMalformedUpload) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form payload"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to store artist picture"})
		return
	}

	artist := &store.Artist{
		Name:       name,
		Bio:        optionalFormValue(r, "bio"),
		Country:    optionalFormValue(r, "country"),
		PictureURL: pictureURL,
	}

	created, err := s.artists.Create(r.Context(), artist)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, artists)
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artist id"})
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrArtistNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "artist not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, artist)
}
