package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"melodia/internal/app/albums"
	"melodia/internal/app/artists"
	"melodia/internal/app/likes"
	"melodia/internal/app/playlists"
	"melodia/internal/app/songs"
	"melodia/internal/app/users"
	"melodia/internal/assets"
	"melodia/internal/http/middleware"
	"melodia/internal/httpapi"
	"melodia/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) (http.Handler, error) {
	artistSvc := artists.New(dataStore)
	albumSvc := albums.New(dataStore)
	songSvc := songs.New(dataStore)
	userSvc := users.New(dataStore)
	playlistSvc := playlists.New(dataStore)
	likeSvc := likes.New(dataStore)

	var uploader httpapi.AssetUploader
	if cfg.Assets.Enabled() {
		u, err := assets.New(cfg.Assets)
		if err != nil {
			return nil, err
		}
		uploader = u
		log.Info().Str("bucket", cfg.Assets.Bucket).Msg("asset uploads enabled")
	} else {
		log.Warn().Msg("asset configuration incomplete, file uploads disabled")
	}

	server := httpapi.New(artistSvc, albumSvc, songSvc, userSvc, playlistSvc, likeSvc, uploader, []byte(cfg.JWTSecret))

	handler := middleware.CORS(cfg.AllowedOrigins)(server.Routes())
	handler = middleware.RequestLogging()(handler)
	handler = middleware.Recovery()(handler)
	return handler, nil
}
