package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrSongNotFound signals the requested song does not exist.
var ErrSongNotFound = errors.New("song not found")

// Song references its album and artist independently; either may be absent
// and neither is validated against the other.
type Song struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Duration *string `json:"duration"`
	AlbumID  *int64  `json:"album_id"`
	ArtistID *int64  `json:"artist_id"`
	AudioURL *string `json:"audio_url"`
}

// CreateSong persists a new song and fills in the generated id.
func (s *Store) CreateSong(ctx context.Context, song *Song) error {
	if song == nil || song.Title == "" {
		return errors.New("song title is required")
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO songs (title, duration, album_id, artist_id, audio_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, song.Title, song.Duration, song.AlbumID, song.ArtistID, song.AudioURL).Scan(&song.ID)
	if err != nil {
		return fmt.Errorf("insert song: %w", err)
	}
	return nil
}

// GetSong returns a single song by id.
func (s *Store) GetSong(ctx context.Context, id int64) (*Song, error) {
	var song Song
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, duration, album_id, artist_id, audio_url
		FROM songs
		WHERE id = $1
	`, id).Scan(&song.ID, &song.Title, &song.Duration, &song.AlbumID, &song.ArtistID, &song.AudioURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSongNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get song: %w", err)
	}
	return &song, nil
}

// ListSongs returns every song in storage order.
func (s *Store) ListSongs(ctx context.Context) ([]*Song, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, duration, album_id, artist_id, audio_url
		FROM songs
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows)
}

func (s *Store) songsByIDs(ctx context.Context, ids []int64) ([]*Song, error) {
	if len(ids) == 0 {
		return make([]*Song, 0), nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, duration, album_id, artist_id, audio_url
		FROM songs
		WHERE id = ANY($1::bigint[])
		ORDER BY id
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("songs by ids: %w", err)
	}
	defer rows.Close()

	return collectSongs(rows)
}

func collectSongs(rows *sql.Rows) ([]*Song, error) {
	songs := make([]*Song, 0)
	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.ID, &song.Title, &song.Duration, &song.AlbumID, &song.ArtistID, &song.AudioURL); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, &song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}
	return songs, nil
}
