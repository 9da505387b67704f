package albums

import (
	"context"

	"melodia/internal/store"
)

// Store captures the persistence needs for album workflows.
type Store interface {
	CreateAlbum(ctx context.Context, album *store.Album) error
	GetAlbum(ctx context.Context, id int64) (*store.Album, error)
	ListAlbums(ctx context.Context) ([]*store.Album, error)
}

// Service exposes album catalog operations.
type Service interface {
	Create(ctx context.Context, album *store.Album) (*store.Album, error)
	Get(ctx context.Context, id int64) (*store.Album, error)
	List(ctx context.Context) ([]*store.Album, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Create(ctx context.Context, album *store.Album) (*store.Album, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.store.CreateAlbum(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

func (s *service) Get(ctx context.Context, id int64) (*store.Album, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetAlbum(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*store.Album, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListAlbums(ctx)
}
