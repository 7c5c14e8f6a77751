//go:build unit

package dbtest

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// FakeTx stands in for a live pgx transaction in unit tests. Only the
// lifecycle methods are overridden; anything else panics on the embedded nil
// interface, which is exactly what a test touching SQL through a fake
// deserves.
type FakeTx struct {
	pgx.Tx
	Committed  bool
	RolledBack bool
}

func (t *FakeTx) Commit(context.Context) error {
	t.Committed = true
	return nil
}

func (t *FakeTx) Rollback(context.Context) error {
	if t.Committed {
		return pgx.ErrTxClosed
	}
	t.RolledBack = true
	return nil
}

// FakeDB satisfies the transaction beginner used by the usecases.
type FakeDB struct {
	LastTx *FakeTx
}

func (db *FakeDB) Begin(context.Context) (pgx.Tx, error) {
	db.LastTx = &FakeTx{}
	return db.LastTx, nil
}
