package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/ember/internal/db"
)

// FailOnNthExecUoW runs the transaction for real but fails the FailOn-th
// write inside it with Err, so tests can check that a check-in leaves no
// record, answer or rotation change behind when any one write fails.
// Writes are counted from 1; reads are never counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	// Writes is the number of ExecContext calls seen by the last transaction.
	Writes int32
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failOnNthExec{DBTX: tx, failOn: u.FailOn, err: u.Err}
	defer func() { u.Writes = wrapped.count.Load() }()

	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.count.Add(1) == f.failOn {
		return nil, fmt.Errorf("injected failure on write %d: %w", f.failOn, f.err)
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
