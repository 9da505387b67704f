package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"melodia/internal/store"
)

// Upload folders on the asset host, one per media kind.
const (
	artistPicsFolder  = "artist-pics"
	albumCoversFolder = "album-covers"
	songAudioFolder   = "song-audio"
)

const maxUploadBytes = 32 << 20

// ArtistService exposes artist catalog operations.
type ArtistService interface {
	Create(ctx context.Context, artist *store.Artist) (*store.Artist, error)
	Get(ctx context.Context, id int64) (*store.Artist, error)
	List(ctx context.Context) ([]*store.Artist, error)
}

// AlbumService exposes album catalog operations.
type AlbumService interface {
	Create(ctx context.Context, album *store.Album) (*store.Album, error)
	Get(ctx context.Context, id int64) (*store.Album, error)
	List(ctx context.Context) ([]*store.Album, error)
}

// SongService coordinates track-level operations.
type SongService interface {
	Create(ctx context.Context, song *store.Song) (*store.Song, error)
	Get(ctx context.Context, id int64) (*store.Song, error)
	List(ctx context.Context) ([]*store.Song, error)
}

// UserService captures the account operations needed by the HTTP handlers.
type UserService interface {
	Signup(ctx context.Context, username, email, password string) (*store.User, error)
	Authenticate(ctx context.Context, email, password string) (*store.User, error)
	Get(ctx context.Context, id int64) (*store.User, error)
	List(ctx context.Context) ([]*store.User, error)
}

// PlaylistService coordinates playlist-related operations.
type PlaylistService interface {
	Create(ctx context.Context, name string, userID int64) (*store.Playlist, error)
	Get(ctx context.Context, id int64) (*store.PlaylistWithSongs, error)
	AddSong(ctx context.Context, playlistID, songID int64) (bool, error)
}

// LikeService coordinates like toggling and grouped reads.
type LikeService interface {
	Toggle(ctx context.Context, userID int64, itemType string, itemID int64) (bool, error)
	ByUser(ctx context.Context, userID int64) (*store.LikedItems, error)
}

// AssetUploader transfers a binary payload to the external asset host and
// returns its URL.
type AssetUploader interface {
	Upload(ctx context.Context, body io.Reader, folder, filename string) (string, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	artists   ArtistService
	albums    AlbumService
	songs     SongService
	users     UserService
	playlists PlaylistService
	likes     LikeService
	uploads   AssetUploader
	jwtSecret []byte
}

// New configures a Server with the given services. uploads may be nil when
// asset hosting is not configured; binary uploads then fail with a server
// error while link fields keep working.
func New(
	artists ArtistService,
	albums AlbumService,
	songs SongService,
	users UserService,
	playlists PlaylistService,
	likes LikeService,
	uploads AssetUploader,
	jwtSecret []byte,
) *Server {
	return &Server{
		artists:   artists,
		albums:    albums,
		songs:     songs,
		users:     users,
		playlists: playlists,
		likes:     likes,
		uploads:   uploads,
		jwtSecret: jwtSecret,
	}
}

// Routes exposes the HTTP handlers for the catalog.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /artists", s.handleCreateArtist)
	mux.HandleFunc("GET /artists", s.handleListArtists)
	mux.HandleFunc("GET /artists/{id}", s.handleGetArtist)

	mux.HandleFunc("POST /albums", s.handleCreateAlbum)
	mux.HandleFunc("GET /albums", s.handleListAlbums)
	mux.HandleFunc("GET /albums/{id}", s.handleGetAlbum)

	mux.HandleFunc("POST /songs", s.handleCreateSong)
	mux.HandleFunc("GET /songs", s.handleListSongs)
	mux.HandleFunc("GET /songs/{id}", s.handleGetSong)

	mux.HandleFunc("POST /users", s.handleSignup)
	mux.HandleFunc("GET /users", s.handleListUsers)
	mux.HandleFunc("GET /users/{id}", s.handleGetUser)
	mux.HandleFunc("POST /login", s.handleLogin)

	mux.HandleFunc("POST /playlists", s.handleCreatePlaylist)
	mux.HandleFunc("GET /playlists/{id}", s.handleGetPlaylist)
	mux.HandleFunc("POST /playlists/{id}/add_song", s.handleAddSongToPlaylist)

	mux.HandleFunc("POST /users/{user_id}/like/{item_type}/{item_id}", s.handleToggleLike)
	mux.HandleFunc("GET /users/{user_id}/likes", s.handleUserLikes)

	mux.HandleFunc("GET /all", s.handleCatalogDump)
	mux.HandleFunc("GET /docs", s.handleDocs)
	mux.HandleFunc("GET /{$}", s.handleRoot)

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

type errorResponse struct {
	Error string `json:"error"`
}

type statusMessage struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	return id, err == nil
}

// parseForm accepts both multipart and urlencoded bodies so link-only
// requests do not need a multipart envelope.
func parseForm(r *http.Request) error {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return nil
}

// errMalformedUpload marks a file part the client sent but the server could
// not read; it is the client's fault, unlike a failed upload.
var errMalformedUpload = errors.New("malformed upload payload")

// formAsset resolves a media field: an attached file wins and is uploaded,
// otherwise a link field is taken verbatim, otherwise the result is nil.
func (s *Server) formAsset(r *http.Request, fileField, linkField, folder string) (*string, error) {
	file, header, err := r.FormFile(fileField)
	switch {
	case err == nil:
		defer file.Close()
		if s.uploads == nil {
			return nil, errors.New("asset uploads are not configured")
		}
		url, uploadErr := s.uploads.Upload(r.Context(), file, folder, header.Filename)
		if uploadErr != nil {
			return nil, uploadErr
		}
		return &url, nil
	case errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart):
		// fall through to the link field
	default:
		return nil, fmt.Errorf("%w: %v", errMalformedUpload, err)
	}

	if link := strings.TrimSpace(r.FormValue(linkField)); link != "" {
		return &link, nil
	}
	return nil, nil
}

func optionalFormValue(r *http.Request, field string) *string {
	if v := strings.TrimSpace(r.FormValue(field)); v != "" {
		return &v
	}
	return nil
}

func optionalFormInt64(r *http.Request, field string) (*int64, error) {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
