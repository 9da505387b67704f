package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func TestToggleLikeCreates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = $1 AND item_type = $2 AND item_id = $3)
	`)).
		WithArgs(int64(1), "song", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO likes (user_id, item_type, item_id)
		VALUES ($1, $2, $3)
	`)).
		WithArgs(int64(1), "song", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	liked, err := s.ToggleLike(context.Background(), 1, "song", 5)
	if err != nil {
		t.Fatalf("ToggleLike error: %v", err)
	}
	if !liked {
		t.Fatal("expected liked=true after insert")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestToggleLikeRemoves(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = $1 AND item_type = $2 AND item_id = $3)
	`)).
		WithArgs(int64(1), "artist", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM likes
		WHERE user_id = $1 AND item_type = $2 AND item_id = $3
	`)).
		WithArgs(int64(1), "artist", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	liked, err := s.ToggleLike(context.Background(), 1, "artist", 2)
	if err != nil {
		t.Fatalf("ToggleLike error: %v", err)
	}
	if liked {
		t.Fatal("expected liked=false after delete")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestToggleLikeInvalidType(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	if _, err := s.ToggleLike(context.Background(), 1, "podcast", 3); !errors.Is(err, ErrInvalidLikeType) {
		t.Fatalf("expected ErrInvalidLikeType, got %v", err)
	}
}

func TestLikesByUserUnknownUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)
	`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	if _, err := s.LikesByUser(context.Background(), 99); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLikesByUserEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)
	`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT item_type, item_id
		FROM likes
		WHERE user_id = $1
	`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"item_type", "item_id"}))

	liked, err := s.LikesByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("LikesByUser error: %v", err)
	}

	// All three groups must be present and empty, never nil.
	if liked.Songs == nil || len(liked.Songs) != 0 {
		t.Fatalf("expected empty songs, got %v", liked.Songs)
	}
	if liked.Artists == nil || len(liked.Artists) != 0 {
		t.Fatalf("expected empty artists, got %v", liked.Artists)
	}
	if liked.Albums == nil || len(liked.Albums) != 0 {
		t.Fatalf("expected empty albums, got %v", liked.Albums)
	}
}

func TestLikesByUserHydratesGroups(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)
	`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT item_type, item_id
		FROM likes
		WHERE user_id = $1
	`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"item_type", "item_id"}).
			AddRow("song", int64(5)).
			AddRow("artist", int64(2)).
			AddRow("song", int64(6)))

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, title, duration, album_id, artist_id, audio_url
		FROM songs
		WHERE id = ANY($1::bigint[])
		ORDER BY id
	`)).
		WithArgs(pq.Array([]int64{5, 6})).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "duration", "album_id", "artist_id", "audio_url"}).
			AddRow(int64(5), "Berghain", "2:58", int64(1), int64(2), nil))

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, bio, country, picture_url
		FROM artists
		WHERE id = ANY($1::bigint[])
		ORDER BY id
	`)).
		WithArgs(pq.Array([]int64{2})).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "bio", "country", "picture_url"}).
			AddRow(int64(2), "Rosalía", nil, "España", nil))

	liked, err := s.LikesByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("LikesByUser error: %v", err)
	}

	// Song 6 no longer resolves and is dropped from the hydrated group.
	if len(liked.Songs) != 1 || liked.Songs[0].Title != "Berghain" {
		t.Fatalf("unexpected songs group: %+v", liked.Songs)
	}
	if len(liked.Artists) != 1 || liked.Artists[0].Name != "Rosalía" {
		t.Fatalf("unexpected artists group: %+v", liked.Artists)
	}
	if liked.Albums == nil || len(liked.Albums) != 0 {
		t.Fatalf("expected empty albums, got %v", liked.Albums)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
