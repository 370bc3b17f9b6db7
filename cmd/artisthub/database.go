package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"

	"artisthub/internal/config"
	"artisthub/internal/store"
)

// catalogStore is what the server needs from either store implementation.
type catalogStore interface {
	seedStore
	Save(ctx context.Context, artist store.Artist) (store.Artist, error)
	FindAll(ctx context.Context) ([]store.Artist, error)
	FindByID(ctx context.Context, id int64) (store.Artist, bool, error)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openStore picks the store implementation named by the configuration. The
// returned closer releases the database handle, if any.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (catalogStore, io.Closer, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return store.NewMemory(), closerFunc(func() error { return nil }), nil
	case config.DriverPostgres:
		db, err := openDatabase(ctx, cfg.URL)
		if err != nil {
			return nil, nil, err
		}
		return store.New(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// openDatabase establishes a database connection and retries until the instance responds.
func openDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	const (
		pingTimeout    = 5 * time.Second
		maxWait        = 30 * time.Second
		initialBackoff = 500 * time.Millisecond
		maxBackoff     = 5 * time.Second
	)

	deadline := time.Now().Add(maxWait)
	backoff := initialBackoff
	var lastErr error

	for {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = db.PingContext(pingCtx)
		cancel()

		if lastErr == nil {
			return db, nil
		}

		// Respect caller cancellation.
		if ctx.Err() != nil {
			break
		}

		if time.Now().After(deadline) {
			break
		}

		log.Warn().Err(lastErr).Dur("retry_in", backoff).Msg("database not ready")
		time.Sleep(backoff)
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("ping database: %w", lastErr)
}
