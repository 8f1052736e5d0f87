package database

import (
	"context"
	"database/sql"
	"time"
)

// PingTimeout bounds a health probe.
const PingTimeout = 2 * time.Second

// Ping checks that the database answers within PingTimeout.
func Ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	return db.PingContext(ctx)
}
