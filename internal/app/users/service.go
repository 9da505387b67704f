package users

import (
	"context"

	"melodia/internal/store"
)

// Store describes the persistence operations required by the user service.
type Store interface {
	CreateUser(ctx context.Context, username, email, password string) (*store.User, error)
	Authenticate(ctx context.Context, email, password string) (*store.User, error)
	GetUser(ctx context.Context, id int64) (*store.User, error)
	ListUsers(ctx context.Context) ([]*store.User, error)
}

// Service exposes user-related workflows.
type Service interface {
	Signup(ctx context.Context, username, email, password string) (*store.User, error)
	Authenticate(ctx context.Context, email, password string) (*store.User, error)
	Get(ctx context.Context, id int64) (*store.User, error)
	List(ctx context.Context) ([]*store.User, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Signup(ctx context.Context, username, email, password string) (*store.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateUser(ctx, username, email, password)
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*store.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Authenticate(ctx, email, password)
}

func (s *service) Get(ctx context.Context, id int64) (*store.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetUser(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*store.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListUsers(ctx)
}
