package capacity

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

const table = "capacity_row"

var columns = []string{
	"id",
	"product_id",
	"weekday",
	"start_date",
	"end_date",
	"from_time",
	"to_time",
	"total_booking",
	"available_booking",
	"status",
	"row_kind",
	"global_slot",
}

// CapacityRepository is the capacity store. Methods returning a single row
// return nil, nil when nothing matches.
type CapacityRepository interface {
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.CapacityRow, error)
	FindDateRowTx(ctx context.Context, tx *sqlx.Tx, key model.SlotKey) (*model.CapacityRow, error)
	FindTemplateTx(ctx context.Context, tx *sqlx.Tx, key model.SlotKey, weekday int, forUpdate bool) (*model.CapacityRow, error)
	ListSlotRowsTx(ctx context.Context, tx *sqlx.Tx, productID uint64, date string, weekday int) ([]model.CapacityRow, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, row *model.CapacityRow) (uint64, error)
	ReserveAtomicTx(ctx context.Context, tx *sqlx.Tx, rowID uint64, qty int64) (int64, error)
	ReleaseAtomicTx(ctx context.Context, tx *sqlx.Tx, rowID uint64, qty int64) (int64, error)
	InsertUnitRowsTx(ctx context.Context, tx *sqlx.Tx, req *model.UnitRowRequest) ([]uint64, error)
	ListUnitRowsTx(ctx context.Context, tx *sqlx.Tx, productID uint64, date string) ([]model.CapacityRow, error)
	DeleteTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) (int64, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.RowStatus) error
	UpdateTotalTx(ctx context.Context, tx *sqlx.Tx, id uint64, total int64, globalSlot bool) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewCapacityRepository(conn *sqlx.DB) CapacityRepository {
	return &SQL{conn: conn}
}

func (r *SQL) getOne(ctx context.Context, tx *sqlx.Tx, q squirrel.SelectBuilder, op string) (*model.CapacityRow, error) {
	query, args, err := q.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", sqlbuilder.ErrBuildQuery, op, err)
	}
	var row model.CapacityRow
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", sqlbuilder.ErrExecQuery, op, err)
	}
	return &row, nil
}

func (r *SQL) list(ctx context.Context, tx *sqlx.Tx, q squirrel.SelectBuilder, op string) ([]model.CapacityRow, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", sqlbuilder.ErrBuildQuery, op, err)
	}
	rows := make([]model.CapacityRow, 0)
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", sqlbuilder.ErrExecQuery, op, err)
	}
	return rows, nil
}

func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.CapacityRow, error) {
	q := sqlbuilder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	return r.getOne(ctx, tx, q, "GetByID")
}

// FindDateRowTx returns the date-specific counter row for the key, active or not.
func (r *SQL) FindDateRowTx(ctx context.Context, tx *sqlx.Tx, key model.SlotKey) (*model.CapacityRow, error) {
	q := sqlbuilder.Select(columns...).From(table).
		Where(squirrel.Eq{
			"product_id": key.ProductID,
			"start_date": key.Date,
			"from_time":  key.FromTime,
			"to_time":    key.ToTime,
			"row_kind":   constant.RowKindCounter,
		}).
		OrderBy("id")
	return r.getOne(ctx, tx, q, "FindDateRow")
}

// FindTemplateTx returns the weekday template for the key's product and
// times. With forUpdate the template row is locked until the transaction ends,
// which serializes concurrent materializations of the same date.
func (r *SQL) FindTemplateTx(ctx context.Context, tx *sqlx.Tx, key model.SlotKey, weekday int, forUpdate bool) (*model.CapacityRow, error) {
	q := sqlbuilder.Select(columns...).From(table).
		Where(squirrel.Eq{
			"product_id": key.ProductID,
			"weekday":    weekday,
			"start_date": "",
			"from_time":  key.FromTime,
			"to_time":    key.ToTime,
			"row_kind":   constant.RowKindCounter,
		}).
		OrderBy("id")
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	return r.getOne(ctx, tx, q, "FindTemplate")
}

// ListSlotRowsTx returns the timed counter rows that may apply to a date:
// rows for the date itself and the weekday templates of its weekday.
func (r *SQL) ListSlotRowsTx(ctx context.Context, tx *sqlx.Tx, productID uint64, date string, weekday int) ([]model.CapacityRow, error) {
	q := sqlbuilder.Select(columns...).From(table).
		Where(squirrel.Eq{"product_id": productID, "row_kind": constant.RowKindCounter}).
		Where(squirrel.NotEq{"from_time": ""}).
		Where(squirrel.Or{
			squirrel.Eq{"start_date": date},
			squirrel.Eq{"start_date": "", "weekday": weekday},
		}).
		OrderBy("from_time", "to_time", "id")
	return r.list(ctx, tx, q, "ListSlotRows")
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, row *model.CapacityRow) (uint64, error) {
	query, args, err := sqlbuilder.Insert(table).
		Columns("product_id", "weekday", "start_date", "end_date", "from_time", "to_time",
			"total_booking", "available_booking", "status", "row_kind", "global_slot").
		Values(row.ProductID, row.Weekday, row.StartDate, row.EndDate, row.FromTime, row.ToTime,
			row.TotalBooking, row.AvailableBooking, row.Status, row.Kind, row.GlobalSlot).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Insert: %v", sqlbuilder.ErrBuildQuery, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Insert: %v", sqlbuilder.ErrExecQuery, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ReserveAtomicTx takes qty from a limited, active counter in one statement.
// It only matches when enough capacity remains, so the returned affected-row
// count is 0 for an absent, inactive, unlimited or exhausted row.
func (r *SQL) ReserveAtomicTx(ctx context.Context, tx *sqlx.Tx, rowID uint64, qty int64) (int64, error) {
	query, args, err := sqlbuilder.Update(table).
		Set("available_booking", squirrel.Expr("available_booking - ?", qty)).
		Where(squirrel.Eq{"id": rowID, "status": constant.RowStatusActive, "row_kind": constant.RowKindCounter}).
		Where(squirrel.Gt{"total_booking": 0}).
		Where(squirrel.GtOrEq{"available_booking": qty}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ReserveAtomic: %v", sqlbuilder.ErrBuildQuery, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ReserveAtomic: %v", sqlbuilder.ErrExecQuery, err)
	}
	return res.RowsAffected()
}

// ReleaseAtomicTx gives qty back to a limited counter, never above its total.
func (r *SQL) ReleaseAtomicTx(ctx context.Context, tx *sqlx.Tx, rowID uint64, qty int64) (int64, error) {
	query, args, err := sqlbuilder.Update(table).
		Set("available_booking", squirrel.Expr("LEAST(available_booking + ?, total_booking)", qty)).
		Where(squirrel.Eq{"id": rowID, "row_kind": constant.RowKindCounter}).
		Where(squirrel.Gt{"total_booking": 0}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ReleaseAtomic: %v", sqlbuilder.ErrBuildQuery, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ReleaseAtomic: %v", sqlbuilder.ErrExecQuery, err)
	}
	return res.RowsAffected()
}

// InsertUnitRowsTx inserts req.Count unit rows and returns their ids in
// insertion order.
func (r *SQL) InsertUnitRowsTx(ctx context.Context, tx *sqlx.Tx, req *model.UnitRowRequest) ([]uint64, error) {
	ids := make([]uint64, 0, req.Count)
	for i := int64(0); i < req.Count; i++ {
		id, err := r.InsertTx(ctx, tx, &model.CapacityRow{
			ProductID: req.ProductID,
			StartDate: req.Date,
			EndDate:   req.EndDate,
			FromTime:  req.FromTime,
			ToTime:    req.ToTime,
			Status:    constant.RowStatusActive,
			Kind:      constant.RowKindUnit,
		})
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *SQL) ListUnitRowsTx(ctx context.Context, tx *sqlx.Tx, productID uint64, date string) ([]model.CapacityRow, error) {
	q := sqlbuilder.Select(columns...).From(table).
		Where(squirrel.Eq{
			"product_id": productID,
			"start_date": date,
			"row_kind":   constant.RowKindUnit,
			"status":     constant.RowStatusActive,
		}).
		OrderBy("id")
	return r.list(ctx, tx, q, "ListUnitRows")
}

// DeleteTx removes unit rows by id. Counter rows are never deleted here.
func (r *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query, args, err := sqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": ids, "row_kind": constant.RowKindUnit}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Delete: %v", sqlbuilder.ErrBuildQuery, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Delete: %v", sqlbuilder.ErrExecQuery, err)
	}
	return res.RowsAffected()
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.RowStatus) error {
	query, args, err := sqlbuilder.Update(table).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus: %v", sqlbuilder.ErrBuildQuery, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus: %v", sqlbuilder.ErrExecQuery, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateTotalTx changes a counter's ceiling and shifts its remaining capacity
// by the same amount, clamped to [0, total].
func (r *SQL) UpdateTotalTx(ctx context.Context, tx *sqlx.Tx, id uint64, total int64, globalSlot bool) error {
	query, args, err := sqlbuilder.Update(table).
		Set("available_booking", squirrel.Expr("LEAST(GREATEST(available_booking + (? - total_booking), 0), ?)", total, total)).
		Set("total_booking", total).
		Set("global_slot", globalSlot).
		Where(squirrel.Eq{"id": id, "row_kind": constant.RowKindCounter}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateTotal: %v", sqlbuilder.ErrBuildQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpdateTotal: %v", sqlbuilder.ErrExecQuery, err)
	}
	return nil
}
