package peerhold

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/model"
	"github.com/muhammadheryan/booking-capacity/repository/sqlbuilder"
)

const table = "global_slot_hold"

// PeerHoldRepository keeps what global slot tasks took from peer rows, per
// booking, so a release never gives back more than was taken.
type PeerHoldRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, hold *model.PeerHold) (uint64, error)
	// ListTx returns the booking's holds on one peer slot, oldest first, and
	// locks them until the transaction ends.
	ListTx(ctx context.Context, tx *sqlx.Tx, orderID, bookingID, peerID uint64, selection string) ([]model.PeerHold, error)
	UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewPeerHoldRepository(conn *sqlx.DB) PeerHoldRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, hold *model.PeerHold) (uint64, error) {
	query, args, err := sqlbuilder.Insert(table).
		Columns("order_id", "booking_id", "peer_product_id", "selection", "capacity_row_id", "quantity").
		Values(hold.OrderID, hold.BookingID, hold.PeerID, hold.Selection, hold.CapacityRowID, hold.Quantity).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: InsertPeerHold: %v", sqlbuilder.ErrBuildQuery, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: InsertPeerHold: %v", sqlbuilder.ErrExecQuery, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) ListTx(ctx context.Context, tx *sqlx.Tx, orderID, bookingID, peerID uint64, selection string) ([]model.PeerHold, error) {
	query, args, err := sqlbuilder.Select(
		"id", "order_id", "booking_id", "peer_product_id", "selection", "capacity_row_id", "quantity",
	).
		From(table).
		Where(squirrel.Eq{
			"order_id":        orderID,
			"booking_id":      bookingID,
			"peer_product_id": peerID,
			"selection":       selection,
		}).
		OrderBy("id").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPeerHolds: %v", sqlbuilder.ErrBuildQuery, err)
	}
	holds := make([]model.PeerHold, 0)
	if err := tx.SelectContext(ctx, &holds, query, args...); err != nil {
		return nil, fmt.Errorf("%w: ListPeerHolds: %v", sqlbuilder.ErrExecQuery, err)
	}
	return holds, nil
}

func (r *SQL) UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error {
	query, args, err := sqlbuilder.Update(table).
		Set("quantity", quantity).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePeerHoldQuantity: %v", sqlbuilder.ErrBuildQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpdatePeerHoldQuantity: %v", sqlbuilder.ErrExecQuery, err)
	}
	return nil
}

func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlbuilder.Delete(table).Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeletePeerHolds: %v", sqlbuilder.ErrBuildQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeletePeerHolds: %v", sqlbuilder.ErrExecQuery, err)
	}
	return nil
}
