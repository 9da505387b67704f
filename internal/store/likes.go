package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidLikeType signals an item type outside artist/album/song.
var ErrInvalidLikeType = errors.New("invalid item type")

// Like item types.
const (
	LikeTypeArtist = "artist"
	LikeTypeAlbum  = "album"
	LikeTypeSong   = "song"
)

// LikedItems groups a user's likes by type with fully hydrated records.
// Likes pointing at ids that no longer resolve are silently dropped.
type LikedItems struct {
	Songs   []*Song   `json:"songs"`
	Artists []*Artist `json:"artists"`
	Albums  []*Album  `json:"albums"`
}

func validLikeType(itemType string) bool {
	switch itemType {
	case LikeTypeArtist, LikeTypeAlbum, LikeTypeSong:
		return true
	}
	return false
}

// ToggleLike flips the presence of a (user, type, id) like triple. It returns
// the resulting state: true when the like was created, false when removed.
func (s *Store) ToggleLike(ctx context.Context, userID int64, itemType string, itemID int64) (liked bool, err error) {
	if !validLikeType(itemType) {
		return false, ErrInvalidLikeType
	}

	var exists bool
	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = $1 AND item_type = $2 AND item_id = $3)
	`, userID, itemType, itemID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}

	if exists {
		_, err = s.db.ExecContext(ctx, `
			DELETE FROM likes
			WHERE user_id = $1 AND item_type = $2 AND item_id = $3
		`, userID, itemType, itemID)
		if err != nil {
			return false, fmt.Errorf("delete like: %w", err)
		}
		return false, nil
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO likes (user_id, item_type, item_id)
		VALUES ($1, $2, $3)
	`, userID, itemType, itemID)
	if err != nil {
		// Two concurrent toggles can both observe "absent"; the composite
		// primary key turns the loser's insert into a duplicate. Report it
		// as liked, matching the row that now exists.
		if isUniqueViolation(err) {
			return true, nil
		}
		return false, fmt.Errorf("insert like: %w", err)
	}
	return true, nil
}

// LikesByUser partitions a user's likes by item type and hydrates each
// partition against its entity table.
func (s *Store) LikesByUser(ctx context.Context, userID int64) (*LikedItems, error) {
	exists, err := s.userExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT item_type, item_id
		FROM likes
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	defer rows.Close()

	var songIDs, artistIDs, albumIDs []int64
	for rows.Next() {
		var itemType string
		var itemID int64
		if err := rows.Scan(&itemType, &itemID); err != nil {
			return nil, fmt.Errorf("scan like: %w", err)
		}
		switch itemType {
		case LikeTypeSong:
			songIDs = append(songIDs, itemID)
		case LikeTypeArtist:
			artistIDs = append(artistIDs, itemID)
		case LikeTypeAlbum:
			albumIDs = append(albumIDs, itemID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate likes: %w", err)
	}

	liked := &LikedItems{}
	if liked.Songs, err = s.songsByIDs(ctx, songIDs); err != nil {
		return nil, err
	}
	if liked.Artists, err = s.artistsByIDs(ctx, artistIDs); err != nil {
		return nil, err
	}
	if liked.Albums, err = s.albumsByIDs(ctx, albumIDs); err != nil {
		return nil, err
	}
	return liked, nil
}
