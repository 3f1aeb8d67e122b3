package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/spiralogic/internal/db"
)

// FailOnNthExecUoW runs fn in a real transaction but makes the Nth write
// (counting from 1) return Err. Reads are not counted. Used to check that
// multi-row writes such as catalogue imports roll back as a whole.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &execTrap{DBTX: tx, failOn: u.FailOn, err: u.Err}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type execTrap struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (e *execTrap) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if e.writes.Add(1) == e.failOn {
		return nil, e.err
	}
	return e.DBTX.ExecContext(ctx, query, args...)
}
