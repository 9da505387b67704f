package artists

import (
	"context"

	"melodia/internal/store"
)

// Store captures the persistence needs for artist workflows.
type Store interface {
	CreateArtist(ctx context.Context, artist *store.Artist) error
	GetArtist(ctx context.Context, id int64) (*store.Artist, error)
	ListArtists(ctx context.Context) ([]*store.Artist, error)
}

// Service exposes artist catalog operations.
type Service interface {
	Create(ctx context.Context, artist *store.Artist) (*store.Artist, error)
	Get(ctx context.Context, id int64) (*store.Artist, error)
	List(ctx context.Context) ([]*store.Artist, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, artist *store.Artist) (*store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.store.CreateArtist(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *service) Get(ctx context.Context, id int64) (*store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetArtist(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}
