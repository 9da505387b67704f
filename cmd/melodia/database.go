package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"
)

const (
	dbPingTimeout    = 5 * time.Second
	dbMaxWait        = 30 * time.Second
	dbInitialBackoff = 500 * time.Millisecond
	dbMaxBackoff     = 5 * time.Second
)

// openDatabase opens a pgx-backed handle and waits for the instance to
// answer pings, backing off between attempts until dbMaxWait is spent.
func openDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	deadline := time.Now().Add(dbMaxWait)
	var lastErr error

	for attempt, backoff := 1, dbInitialBackoff; ; attempt, backoff = attempt+1, nextBackoff(backoff) {
		pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
		lastErr = db.PingContext(pingCtx)
		cancel()

		if lastErr == nil {
			return db, nil
		}
		if ctx.Err() != nil || time.Now().After(deadline) {
			break
		}

		log.Warn().
			Err(lastErr).
			Int("attempt", attempt).
			Dur("retry_in", backoff).
			Msg("database not ready")
		time.Sleep(backoff)
	}

	_ = db.Close()
	return nil, fmt.Errorf("ping database: %w", lastErr)
}

// nextBackoff doubles the wait up to dbMaxBackoff.
func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > dbMaxBackoff {
		return dbMaxBackoff
	}
	return next
}
