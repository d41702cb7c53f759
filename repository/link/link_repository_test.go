package link_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/constant"
	"github.com/muhammadheryan/booking-capacity/model"
	"github.com/muhammadheryan/booking-capacity/repository/link"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTx(t *testing.T) (link.LinkRepository, *sqlx.Tx, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	conn := sqlx.NewDb(db, "mysql")
	mock.ExpectBegin()
	tx, err := conn.Beginx()
	require.NoError(t, err)
	return link.NewLinkRepository(conn), tx, mock
}

func TestSQL_InsertTx(t *testing.T) {
	repo, tx, mock := newTx(t)
	mock.ExpectExec(`INSERT INTO order_booking_link \(order_id,booking_id,capacity_row_id,quantity,role\)`).
		WithArgs(100, 11, 5, 2, "own").
		WillReturnResult(sqlmock.NewResult(31, 1))

	id, err := repo.InsertTx(context.Background(), tx, &model.OrderBookingLink{
		OrderID: 100, BookingID: 11, CapacityRowID: 5, Quantity: 2, Role: constant.LinkRoleOwn,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(31), id)
}

func TestSQL_ListByOrderTx(t *testing.T) {
	repo, tx, mock := newTx(t)
	mock.ExpectQuery(`FROM order_booking_link l LEFT JOIN capacity_row c ON c.id = l.capacity_row_id WHERE l.order_id = \? AND \(c.id IS NOT NULL OR l.role = \?\) ORDER BY l.id FOR UPDATE`).
		WithArgs(100, "shared").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "booking_id", "capacity_row_id", "quantity", "role",
			"product_id", "start_date", "end_date", "from_time", "to_time", "total_booking", "row_kind"}).
			AddRow(31, 100, 11, 5, 2, "own", 7, "2026-03-10", "", "09:00", "10:00", 5, "counter").
			AddRow(32, 100, 12, 9, 1, "unit", 8, "2026-03-10", "2026-03-12", "", "", 0, "unit").
			AddRow(33, 100, 13, 0, 2, "shared", 0, "", "", "", "", 0, ""))

	got, err := repo.ListByOrderTx(context.Background(), tx, 100)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, model.LinkedRow{
		OrderBookingLink: model.OrderBookingLink{ID: 31, OrderID: 100, BookingID: 11, CapacityRowID: 5, Quantity: 2, Role: constant.LinkRoleOwn},
		ProductID:        7,
		StartDate:        "2026-03-10",
		FromTime:         "09:00",
		ToTime:           "10:00",
		TotalBooking:     5,
		Kind:             constant.RowKindCounter,
	}, got[0])
	assert.Equal(t, constant.RowKindUnit, got[1].Kind)
	assert.Equal(t, "2026-03-12", got[1].EndDate)
	assert.Equal(t, constant.LinkRoleShared, got[2].Role)
	assert.Zero(t, got[2].CapacityRowID)
}

func TestSQL_CountByRowTx(t *testing.T) {
	repo, tx, mock := newTx(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM order_booking_link WHERE capacity_row_id = \?`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(3))

	n, err := repo.CountByRowTx(context.Background(), tx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestSQL_DeleteTx(t *testing.T) {
	t.Run("nothing to delete", func(t *testing.T) {
		repo, tx, _ := newTx(t)
		assert.NoError(t, repo.DeleteTx(context.Background(), tx, []uint64{}))
	})

	t.Run("by id", func(t *testing.T) {
		repo, tx, mock := newTx(t)
		mock.ExpectExec(`DELETE FROM order_booking_link WHERE id IN \(\?,\?\)`).
			WithArgs(31, 32).
			WillReturnResult(sqlmock.NewResult(0, 2))
		assert.NoError(t, repo.DeleteTx(context.Background(), tx, []uint64{31, 32}))
	})
}
