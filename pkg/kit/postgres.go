package kit

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type PostgresOptions struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// OpenPostgres connects through the pgx stdlib driver and applies the pool settings.
func OpenPostgres(ctx context.Context, opts PostgresOptions, log *zap.Logger) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlx.ConnectContext: %w", err)
	}

	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	log.Info("postgres connected",
		zap.Int("max_open_conns", opts.MaxOpenConns),
		zap.Duration("conn_max_lifetime", opts.ConnMaxLifetime),
	)
	return db, nil
}
