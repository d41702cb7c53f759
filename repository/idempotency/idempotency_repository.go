package idempotency

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/repository/sqlbuilder"
)

const (
	table            = "global_slot_applied"
	mysqlDuplicateID = 1062
)

// IdempotencyRepository records which global timeslot applications already
// committed.
type IdempotencyRepository interface {
	// MarkAppliedTx claims key inside tx. It returns false when the key was
	// claimed by an earlier committed transaction.
	MarkAppliedTx(ctx context.Context, tx *sqlx.Tx, key string) (bool, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewIdempotencyRepository(conn *sqlx.DB) IdempotencyRepository {
	return &SQL{conn: conn}
}

func (r *SQL) MarkAppliedTx(ctx context.Context, tx *sqlx.Tx, key string) (bool, error) {
	query, args, err := sqlbuilder.Insert(table).
		Columns("idempotency_key").
		Values(key).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: MarkApplied: %v", sqlbuilder.ErrBuildQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateID {
			return false, nil
		}
		return false, fmt.Errorf("%w: MarkApplied: %v", sqlbuilder.ErrExecQuery, err)
	}
	return true, nil
}
