package songs

import (
	"context"

	"melodia/internal/store"
)

// Store captures the persistence needs for song workflows.
type Store interface {
	CreateSong(ctx context.Context, song *store.Song) error
	GetSong(ctx context.Context, id int64) (*store.Song, error)
	ListSongs(ctx context.Context) ([]*store.Song, error)
}

// Service coordinates track-level operations.
type Service interface {
	Create(ctx context.Context, song *store.Song) (*store.Song, error)
	Get(ctx context.Context, id int64) (*store.Song, error)
	List(ctx context.Context) ([]*store.Song, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, song *store.Song) (*store.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.store.CreateSong(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

func (s *service) Get(ctx context.Context, id int64) (*store.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetSong(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*store.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListSongs(ctx)
}
