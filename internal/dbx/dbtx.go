// Package dbx holds the small database plumbing shared by every repository:
// the DBTX interface both *sql.DB and *sql.Tx satisfy, and a transaction
// wrapper.
package dbx

import (
	"context"
	"database/sql"
)

// TimeLayout is the timestamp format for sqlite TEXT columns. The fractional
// part is fixed-width so lexicographic ORDER BY matches chronological order;
// time.RFC3339Nano trims trailing zeros and does not sort correctly.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DBTX is the query surface repositories depend on. Passing a *sql.Tx swaps
// a repository into transactional mode without changing its code.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction: commit when fn returns nil, rollback
// when it returns an error or panics. A panic rolls back and then propagates.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	done := false
	defer func() {
		if !done {
			_ = tx.Rollback()
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	done = true
	return tx.Commit()
}
