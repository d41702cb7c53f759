package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/constant"
	"github.com/muhammadheryan/booking-capacity/model"
	"github.com/muhammadheryan/booking-capacity/repository/sqlbuilder"
)

const table = "booking"

var columns = []string{
	"id", "order_id", "product_id", "parent_id", "booking_type",
	"start_date", "end_date", "from_time", "to_time", "quantity", "status",
}

type SQL struct {
	conn *sqlx.DB
}

type BookingRepository interface {
	ListByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.Booking, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Booking, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.BookingStatus) error
	UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error
	UpdateSelectionTx(ctx context.Context, tx *sqlx.Tx, id uint64, sel model.Selection) error
}

func NewBookingRepository(conn *sqlx.DB) BookingRepository {
	return &SQL{conn: conn}
}

func (r *SQL) ListByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.Booking, error) {
	query, args, err := sqlbuilder.Select(columns...).From(table).
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("id").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookingsByOrder: %v", sqlbuilder.ErrBuildQuery, err)
	}
	bookings := make([]model.Booking, 0)
	if err := tx.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("%w: ListBookingsByOrder: %v", sqlbuilder.ErrExecQuery, err)
	}
	return bookings, nil
}

func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Booking, error) {
	query, args, err := sqlbuilder.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBooking: %v", sqlbuilder.ErrBuildQuery, err)
	}
	var b model.Booking
	if err := tx.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: GetBooking: %v", sqlbuilder.ErrExecQuery, err)
	}
	return &b, nil
}

func (r *SQL) update(ctx context.Context, tx *sqlx.Tx, id uint64, set map[string]interface{}, op string) error {
	query, args, err := sqlbuilder.Update(table).SetMap(set).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", sqlbuilder.ErrBuildQuery, op, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s: %v", sqlbuilder.ErrExecQuery, op, err)
	}
	return nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.BookingStatus) error {
	return r.update(ctx, tx, id, map[string]interface{}{"status": status}, "UpdateBookingStatus")
}

func (r *SQL) UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error {
	return r.update(ctx, tx, id, map[string]interface{}{"quantity": quantity}, "UpdateBookingQuantity")
}

func (r *SQL) UpdateSelectionTx(ctx context.Context, tx *sqlx.Tx, id uint64, sel model.Selection) error {
	return r.update(ctx, tx, id, map[string]interface{}{
		"start_date": sel.StartDate,
		"end_date":   sel.EndDate,
		"from_time":  sel.FromTime,
		"to_time":    sel.ToTime,
	}, "UpdateBookingSelection")
}
