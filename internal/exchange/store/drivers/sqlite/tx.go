package sqlite

import (
	"context"
	"database/sql"

	"github.com/astromitts/gifterator3000/internal/exchange/store"
	"github.com/astromitts/gifterator3000/internal/exchange/store/drivers/sqlite/gen"
)

type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  gen.New(tx),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller commits/rolls back; outer DB stays open

// Ping is a no-op for transactions, the connection is already held.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Exchanges() store.Exchanges       { return &exchangesRepo{q: t.q} }
func (t *txStore) Participants() store.Participants { return &participantsRepo{q: t.q} }
func (t *txStore) Assignments() store.Assignments   { return &assignmentsRepo{q: t.q} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations are applied before any tx starts
