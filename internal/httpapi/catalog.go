package httpapi

import (
	"net/http"

	"melodia/internal/store"
)

type catalogDump struct {
	Artists []*store.Artist `json:"artists"`
	Albums  []*store.Album  `json:"albums"`
	Songs   []*store.Song   `json:"songs"`
}

// handleCatalogDump returns the full catalog in one payload.
func (s *Server) handleCatalogDump(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	albums, err := s.albums.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	songs, err := s.songs.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, catalogDump{Artists: artists, Albums: albums, Songs: songs})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/docs", http.StatusFound)
}
