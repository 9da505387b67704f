package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrArtistNotFound signals the requested artist does not exist.
var ErrArtistNotFound = errors.New("artist not found")

// Artist is a catalog performer. Bio, country and picture are optional.
type Artist struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Bio        *string `json:"bio"`
	Country    *string `json:"country"`
	PictureURL *string `json:"picture_url"`
}

// CreateArtist persists a new artist and fills in the generated id.
func (s *Store) CreateArtist(ctx context.Context, artist *Artist) error {
	if artist == nil || artist.Name == "" {
		return errors.New("artist name is required")
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO artists (name, bio, country, picture_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, artist.Name, artist.Bio, artist.Country, artist.PictureURL).Scan(&artist.ID)
	if err != nil {
		return fmt.Errorf("insert artist: %w", err)
	}
	return nil
}

// GetArtist returns a single artist by id.
func (s *Store) GetArtist(ctx context.Context, id int64) (*Artist, error) {
	var artist Artist
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, bio, country, picture_url
		FROM artists
		WHERE id = $1
	`, id).Scan(&artist.ID, &artist.Name, &artist.Bio, &artist.Country, &artist.PictureURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get artist: %w", err)
	}
	return &artist, nil
}

// ListArtists returns every artist in storage order.
func (s *Store) ListArtists(ctx context.Context) ([]*Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, bio, country, picture_url
		FROM artists
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	return collectArtists(rows)
}

func (s *Store) artistsByIDs(ctx context.Context, ids []int64) ([]*Artist, error) {
	if len(ids) == 0 {
		return make([]*Artist, 0), nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, bio, country, picture_url
		FROM artists
		WHERE id = ANY($1::bigint[])
		ORDER BY id
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("artists by ids: %w", err)
	}
	defer rows.Close()

	return collectArtists(rows)
}

func collectArtists(rows *sql.Rows) ([]*Artist, error) {
	artists := make([]*Artist, 0)
	for rows.Next() {
		var artist Artist
		if err := rows.Scan(&artist.ID, &artist.Name, &artist.Bio, &artist.Country, &artist.PictureURL); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, &artist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}
