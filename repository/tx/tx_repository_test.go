package tx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/repository/tx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerTx(t *testing.T) {
	tests := []struct {
		name   string
		finish func(repo tx.TxRepository, ltx *sqlx.Tx, mock sqlmock.Sqlmock) error
	}{
		{
			name: "commit then deferred rollback",
			finish: func(repo tx.TxRepository, ltx *sqlx.Tx, mock sqlmock.Sqlmock) error {
				mock.ExpectCommit()
				if err := repo.CommitTx(ltx); err != nil {
					return err
				}
				return repo.RollbackTx(ltx)
			},
		},
		{
			name: "rollback",
			finish: func(repo tx.TxRepository, ltx *sqlx.Tx, mock sqlmock.Sqlmock) error {
				mock.ExpectRollback()
				return repo.RollbackTx(ltx)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			repo := tx.NewTxRepository(sqlx.NewDb(db, "mysql"))

			mock.ExpectBegin()
			ltx, err := repo.BeginTx(context.Background())
			require.NoError(t, err)

			assert.NoError(t, tt.finish(repo, ltx, mock))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLedgerTx_RollbackFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := tx.NewTxRepository(sqlx.NewDb(db, "mysql"))

	mock.ExpectBegin()
	ltx, err := repo.BeginTx(context.Background())
	require.NoError(t, err)
	mock.ExpectRollback().WillReturnError(errors.New("connection reset"))

	assert.Error(t, repo.RollbackTx(ltx))
}
