package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrAlbumNotFound signals the requested album does not exist.
var ErrAlbumNotFound = errors.New("album not found")

// Album belongs to one artist by id. The reference is a plain column; the
// artist is not required to exist.
type Album struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	CoverURL    *string `json:"cover_url"`
	ArtistID    int64   `json:"artist_id"`
}

// CreateAlbum persists a new album and fills in the generated id.
func (s *Store) CreateAlbum(ctx context.Context, album *Album) error {
	if album == nil || album.Title == "" || album.Category == "" {
		return errors.New("album title and category are required")
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO albums (title, description, category, cover_url, artist_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, album.Title, album.Description, album.Category, album.CoverURL, album.ArtistID).Scan(&album.ID)
	if err != nil {
		return fmt.Errorf("insert album: %w", err)
	}
	return nil
}

// GetAlbum returns a single album by id.
func (s *Store) GetAlbum(ctx context.Context, id int64) (*Album, error) {
	var album Album
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, category, cover_url, artist_id
		FROM albums
		WHERE id = $1
	`, id).Scan(&album.ID, &album.Title, &album.Description, &album.Category, &album.CoverURL, &album.ArtistID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAlbumNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get album: %w", err)
	}
	return &album, nil
}

// ListAlbums returns every album in storage order.
func (s *Store) ListAlbums(ctx context.Context) ([]*Album, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, category, cover_url, artist_id
		FROM albums
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	defer rows.Close()

	return collectAlbums(rows)
}

func (s *Store) albumsByIDs(ctx context.Context, ids []int64) ([]*Album, error) {
	if len(ids) == 0 {
		return make([]*Album, 0), nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, category, cover_url, artist_id
		FROM albums
		WHERE id = ANY($1::bigint[])
		ORDER BY id
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("albums by ids: %w", err)
	}
	defer rows.Close()

	return collectAlbums(rows)
}

func collectAlbums(rows *sql.Rows) ([]*Album, error) {
	albums := make([]*Album, 0)
	for rows.Next() {
		var album Album
		if err := rows.Scan(&album.ID, &album.Title, &album.Description, &album.Category, &album.CoverURL, &album.ArtistID); err != nil {
			return nil, fmt.Errorf("scan album: %w", err)
		}
		albums = append(albums, &album)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate albums: %w", err)
	}
	return albums, nil
}
