package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrPlaylistNotFound signals the requested playlist does not exist.
var ErrPlaylistNotFound = errors.New("playlist not found")

// Playlist is a user-owned set of songs.
type Playlist struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"owner_id"`
}

// PlaylistSong is the trimmed song shape embedded in playlist reads.
type PlaylistSong struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	AudioURL *string `json:"audio"`
}

// PlaylistWithSongs is a playlist with its membership hydrated.
type PlaylistWithSongs struct {
	Playlist
	Songs []PlaylistSong `json:"songs"`
}

// CreatePlaylist persists a new playlist for an existing user.
func (s *Store) CreatePlaylist(ctx context.Context, name string, userID int64) (*Playlist, error) {
	if name == "" {
		return nil, errors.New("playlist name is required")
	}

	exists, err := s.userExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	playlist := &Playlist{Name: name, UserID: userID}
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO playlists (name, user_id)
		VALUES ($1, $2)
		RETURNING id
	`, name, userID).Scan(&playlist.ID)
	if err != nil {
		return nil, fmt.Errorf("insert playlist: %w", err)
	}
	return playlist, nil
}

// GetPlaylist returns a playlist with its embedded song list.
func (s *Store) GetPlaylist(ctx context.Context, id int64) (*PlaylistWithSongs, error) {
	var playlist PlaylistWithSongs
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, user_id
		FROM playlists
		WHERE id = $1
	`, id).Scan(&playlist.ID, &playlist.Name, &playlist.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlaylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get playlist: %w", err)
	}

	songs, err := s.listPlaylistSongs(ctx, playlist.ID)
	if err != nil {
		return nil, err
	}
	playlist.Songs = songs
	return &playlist, nil
}

// AddSongToPlaylist appends a song to the playlist's membership set. Adding a
// song that is already a member reports added=false without mutation.
func (s *Store) AddSongToPlaylist(ctx context.Context, playlistID, songID int64) (added bool, err error) {
	var playlistExists bool
	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM playlists WHERE id = $1)
	`, playlistID).Scan(&playlistExists)
	if err != nil {
		return false, fmt.Errorf("check playlist: %w", err)
	}
	if !playlistExists {
		return false, ErrPlaylistNotFound
	}

	var songExists bool
	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM songs WHERE id = $1)
	`, songID).Scan(&songExists)
	if err != nil {
		return false, fmt.Errorf("check song: %w", err)
	}
	if !songExists {
		return false, ErrSongNotFound
	}

	var member bool
	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2)
	`, playlistID, songID).Scan(&member)
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}
	if member {
		return false, nil
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO playlist_songs (playlist_id, song_id)
		VALUES ($1, $2)
	`, playlistID, songID)
	if err != nil {
		// A concurrent add can beat the membership check; the composite
		// primary key makes that a no-op rather than a duplicate.
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("insert playlist song: %w", err)
	}

	return true, nil
}

func (s *Store) listPlaylistSongs(ctx context.Context, playlistID int64) ([]PlaylistSong, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.title, s.audio_url
		FROM songs s
		JOIN playlist_songs ps ON ps.song_id = s.id
		WHERE ps.playlist_id = $1
		ORDER BY s.id
	`, playlistID)
	if err != nil {
		return nil, fmt.Errorf("list playlist songs: %w", err)
	}
	defer rows.Close()

	songs := make([]PlaylistSong, 0)
	for rows.Next() {
		var song PlaylistSong
		if err := rows.Scan(&song.ID, &song.Title, &song.AudioURL); err != nil {
			return nil, fmt.Errorf("scan playlist song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist songs: %w", err)
	}
	return songs, nil
}
