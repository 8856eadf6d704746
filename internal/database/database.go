package database

import (
	"context"
	"fmt"
	"time"

	"quiz-seed/internal/config"

	_ "github.com/godror/godror" // Oracle driver (cgo, OCI)
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver (pure Go), registered as "oracle"
)

const pingTimeout = 10 * time.Second

// NewDB opens a connection pool with the configured Oracle driver and pings it.
func NewDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DB.Driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.DB.Driver, err)
	}

	// Writes are sequential.
	db.SetMaxOpenConns(2)
	return db, nil
}
