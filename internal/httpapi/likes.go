package httpapi

import (
	"errors"
	"net/http"

	"melodia/internal/store"
)

type likeResponse struct {
	Liked bool `json:"liked"`
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "user_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}
	itemID, ok := pathID(r, "item_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid item id"})
		return
	}

	liked, err := s.likes.Toggle(r.Context(), userID, r.PathValue("item_type"), itemID)
	if err != nil {
		if errors.Is(err, store.ErrInvalidLikeType) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid item type"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, likeResponse{Liked: liked})
}

func (s *Server) handleUserLikes(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "user_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}

	liked, err := s.likes.ByUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "user not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, liked)
}
