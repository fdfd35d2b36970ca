package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	appErrors "github.com/DanEinstein/E-commerce-CRUD-Operations/internal/errors"
)

// acquireTimeout bounds how long a request waits for a pooled connection
// before failing with an unavailable error instead of hanging.
const acquireTimeout = 5 * time.Second

// withConn borrows one dedicated connection from the pool, runs fn against
// it, and returns the connection to the pool on every exit path. The
// connection is exclusively owned by the request for the duration of fn.
func withConn(ctx context.Context, db *sql.DB, fn func(ctx context.Context, conn *sql.Conn) error) error {
	acquireCtx, cancel := context.WithTimeout(ctx, acquireTimeout)
	conn, err := db.Conn(acquireCtx)
	cancel()
	if err != nil {
		return appErrors.NewUnavailable(err)
	}
	defer conn.Close()
	return fn(ctx, conn)
}

// writeError classifies a driver error from an insert or update. Integrity
// violations (class 23: unique, not-null, check) become constraint errors.
func writeError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return appErrors.NewConstraint(err)
	}
	return err
}
