package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"melodia/internal/store"
)

// bootstrapDemoData seeds the Rosalía / LUX demo catalog and a handful of
// demo accounts. The seed is idempotent: if the artist already exists the
// catalog portion is skipped entirely.
func bootstrapDemoData(ctx context.Context, db *sql.DB, dataStore *store.Store) error {
	if err := ensureDemoUsers(ctx, dataStore); err != nil {
		return err
	}
	return ensureDemoCatalog(ctx, db, dataStore)
}

func ensureDemoUsers(ctx context.Context, dataStore *store.Store) error {
	usernames := []string{
		"musikita_uwu",
		"juanpismata11",
		"PanteraRosaFrix",
		"xav",
		"EdgarPro",
	}

	for _, name := range usernames {
		email := fmt.Sprintf("%s@melodia.local", name)
		if _, err := dataStore.CreateUser(ctx, name, email, "123456"); err != nil {
			if errors.Is(err, store.ErrUserExists) {
				continue
			}
			return fmt.Errorf("bootstrap demo user %q: %w", name, err)
		}
	}
	return nil
}

func ensureDemoCatalog(ctx context.Context, db *sql.DB, dataStore *store.Store) error {
	const artistName = "Rosalía"

	var existingID int64
	err := db.QueryRowContext(ctx, `
		SELECT id
		FROM artists
		WHERE name = $1
	`, artistName).Scan(&existingID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("lookup demo artist: %w", err)
	}

	strPtr := func(v string) *string { return &v }

	artist := &store.Artist{
		Name:    artistName,
		Bio:     strPtr("Cantante española, autora del álbum LUX."),
		Country: strPtr("España"),
	}
	if err := dataStore.CreateArtist(ctx, artist); err != nil {
		return fmt.Errorf("seed demo artist: %w", err)
	}

	album := &store.Album{
		Title:       "LUX",
		Description: strPtr("Álbum 2024 de Rosalía"),
		Category:    "Pop",
		ArtistID:    artist.ID,
	}
	if err := dataStore.CreateAlbum(ctx, album); err != nil {
		return fmt.Errorf("seed demo album: %w", err)
	}

	tracks := []struct {
		title    string
		duration string
	}{
		{"Sexo, violencia y llantas", "2:20"},
		{"Reliquia", "3:49"},
		{"Divinize", "4:03"},
		{"Porcelana", "4:07"},
		{"Mio Cristo Piange Diamanti", "4:29"},
		{"Berghain", "2:58"},
		{"La perla", "3:15"},
		{"Mundo nuevo", "2:20"},
		{"De madrugá", "1:44"},
		{"Dios es un stalker", "2:10"},
		{"La yugular", "4:18"},
		{"Focu 'ranni", "2:50"},
		{"Sauvignon blanc", "2:42"},
		{"Jeanne", "3:51"},
		{"Novia robot", "3:12"},
		{"La rumba del perdón", "4:11"},
		{"Memória", "3:45"},
		{"Magnolias", "3:14"},
	}

	for _, track := range tracks {
		song := &store.Song{
			Title:    track.title,
			Duration: strPtr(track.duration),
			AlbumID:  &album.ID,
			ArtistID: &artist.ID,
		}
		if err := dataStore.CreateSong(ctx, song); err != nil {
			return fmt.Errorf("seed demo song %q: %w", track.title, err)
		}
	}

	log.Info().Int("songs", len(tracks)).Str("artist", artistName).Msg("demo catalog seeded")
	return nil
}
