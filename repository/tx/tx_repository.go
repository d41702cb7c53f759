package tx

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// TxRepository opens the ledger transactions that reservations, releases and
// global slot tasks run in.
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	// RollbackTx is safe to defer: a transaction already committed or rolled
	// back is not an error.
	RollbackTx(tx *sqlx.Tx) error
}

type ledgerTx struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &ledgerTx{db: db}
}

// BeginTx opens a READ COMMITTED transaction. Counter updates are single
// conditional statements, so they never depend on a repeatable snapshot.
func (r *ledgerTx) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

func (r *ledgerTx) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

func (r *ledgerTx) RollbackTx(tx *sqlx.Tx) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}
