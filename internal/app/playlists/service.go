package playlists

import (
	"context"

	"melodia/internal/store"
)

// Store captures the persistence needs for playlist workflows.
type Store interface {
	CreatePlaylist(ctx context.Context, name string, userID int64) (*store.Playlist, error)
	GetPlaylist(ctx context.Context, id int64) (*store.PlaylistWithSongs, error)
	AddSongToPlaylist(ctx context.Context, playlistID, songID int64) (bool, error)
}

// Service coordinates playlist-related operations.
type Service interface {
	Create(ctx context.Context, name string, userID int64) (*store.Playlist, error)
	Get(ctx context.Context, id int64) (*store.PlaylistWithSongs, error)
	// AddSong reports whether the song was newly added; false means it was
	// already a member and nothing changed.
	AddSong(ctx context.Context, playlistID, songID int64) (bool, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, name string, userID int64) (*store.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreatePlaylist(ctx, name, userID)
}

func (s *service) Get(ctx context.Context, id int64) (*store.PlaylistWithSongs, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetPlaylist(ctx, id)
}

func (s *service) AddSong(ctx context.Context, playlistID, songID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.store.AddSongToPlaylist(ctx, playlistID, songID)
}
