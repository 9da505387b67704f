package likes

import (
	"context"

	"melodia/internal/store"
)

// Store captures the persistence needs for like workflows.
type Store interface {
	ToggleLike(ctx context.Context, userID int64, itemType string, itemID int64) (bool, error)
	LikesByUser(ctx context.Context, userID int64) (*store.LikedItems, error)
}

// Service coordinates like toggling and grouped reads.
type Service interface {
	Toggle(ctx context.Context, userID int64, itemType string, itemID int64) (bool, error)
	ByUser(ctx context.Context, userID int64) (*store.LikedItems, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Toggle(ctx context.Context, userID int64, itemType string, itemID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.store.ToggleLike(ctx, userID, itemType, itemID)
}

func (s *service) ByUser(ctx context.Context, userID int64) (*store.LikedItems, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.LikesByUser(ctx, userID)
}
