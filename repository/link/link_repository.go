package link

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/constant"
	"github.com/muhammadheryan/booking-capacity/model"
	"github.com/muhammadheryan/booking-capacity/repository/sqlbuilder"
)

const table = "order_booking_link"

type LinkRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, link *model.OrderBookingLink) (uint64, error)
	ListByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.LinkedRow, error)
	CountByRowTx(ctx context.Context, tx *sqlx.Tx, rowID uint64) (int64, error)
	UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewLinkRepository(conn *sqlx.DB) LinkRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, link *model.OrderBookingLink) (uint64, error) {
	query, args, err := sqlbuilder.Insert(table).
		Columns("order_id", "booking_id", "capacity_row_id", "quantity", "role").
		Values(link.OrderID, link.BookingID, link.CapacityRowID, link.Quantity, link.Role).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: InsertLink: %v", sqlbuilder.ErrBuildQuery, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: InsertLink: %v", sqlbuilder.ErrExecQuery, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByOrderTx returns the order's links joined with their rows, oldest
// first, and locks the links until the transaction ends. Shared links have no
// row and come back with zero row columns; other links whose row is gone are
// left out.
func (r *SQL) ListByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.LinkedRow, error) {
	query, args, err := sqlbuilder.Select(
		"l.id", "l.order_id", "l.booking_id", "l.capacity_row_id", "l.quantity", "l.role",
		"COALESCE(c.product_id, 0) AS product_id",
		"COALESCE(c.start_date, '') AS start_date",
		"COALESCE(c.end_date, '') AS end_date",
		"COALESCE(c.from_time, '') AS from_time",
		"COALESCE(c.to_time, '') AS to_time",
		"COALESCE(c.total_booking, 0) AS total_booking",
		"COALESCE(c.row_kind, '') AS row_kind",
	).
		From(table + " l").
		LeftJoin("capacity_row c ON c.id = l.capacity_row_id").
		Where(squirrel.Eq{"l.order_id": orderID}).
		Where(squirrel.Or{
			squirrel.NotEq{"c.id": nil},
			squirrel.Eq{"l.role": constant.LinkRoleShared},
		}).
		OrderBy("l.id").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLinksByOrder: %v", sqlbuilder.ErrBuildQuery, err)
	}
	links := make([]model.LinkedRow, 0)
	if err := tx.SelectContext(ctx, &links, query, args...); err != nil {
		return nil, fmt.Errorf("%w: ListLinksByOrder: %v", sqlbuilder.ErrExecQuery, err)
	}
	return links, nil
}

func (r *SQL) CountByRowTx(ctx context.Context, tx *sqlx.Tx, rowID uint64) (int64, error) {
	query, args, err := sqlbuilder.Select("COUNT(*)").From(table).
		Where(squirrel.Eq{"capacity_row_id": rowID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountLinksByRow: %v", sqlbuilder.ErrBuildQuery, err)
	}
	var total int64
	if err := tx.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("%w: CountLinksByRow: %v", sqlbuilder.ErrExecQuery, err)
	}
	return total, nil
}

func (r *SQL) UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error {
	query, args, err := sqlbuilder.Update(table).
		Set("quantity", quantity).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateLinkQuantity: %v", sqlbuilder.ErrBuildQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpdateLinkQuantity: %v", sqlbuilder.ErrExecQuery, err)
	}
	return nil
}

func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlbuilder.Delete(table).Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteLinks: %v", sqlbuilder.ErrBuildQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteLinks: %v", sqlbuilder.ErrExecQuery, err)
	}
	return nil
}
