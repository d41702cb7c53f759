package resolver

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/constant"
	"github.com/muhammadheryan/booking-capacity/model"
	capacityrepo "github.com/muhammadheryan/booking-capacity/repository/capacity"
	"github.com/muhammadheryan/booking-capacity/utils/logger"
	"github.com/muhammadheryan/booking-capacity/utils/metrics"
	"go.uber.org/zap"
)

// Resolver applies the one precedence rule of the ledger: a date row
// overrides the weekday template of that date.
type Resolver interface {
	// ResolveTx returns the active counter for the key, materializing a date
	// row from the weekday template when needed. A nil row means the slot is
	// unconfigured. Unlimited templates are returned unsaved (ID 0).
	ResolveTx(ctx context.Context, tx *sqlx.Tx, key model.SlotKey) (*model.CapacityRow, error)
	// PeekTx is the read-only variant: it never inserts, and returns template
	// values as an unsaved row.
	PeekTx(ctx context.Context, tx *sqlx.Tx, key model.SlotKey) (*model.CapacityRow, error)
}

type resolverImpl struct {
	capacityRepo capacityrepo.CapacityRepository
}

func NewResolver(capacityRepo capacityrepo.CapacityRepository) Resolver {
	return &resolverImpl{capacityRepo: capacityRepo}
}

func (s *resolverImpl) ResolveTx(ctx context.Context, tx *sqlx.Tx, key model.SlotKey) (*model.CapacityRow, error) {
	row, err := s.capacityRepo.FindDateRowTx(ctx, tx, key)
	if err != nil {
		return nil, err
	}
	if row != nil {
		return activeOrNil(row), nil
	}

	weekday, err := model.WeekdayOf(key.Date)
	if err != nil {
		return nil, err
	}
	tpl, err := s.capacityRepo.FindTemplateTx(ctx, tx, key, weekday, true)
	if err != nil {
		return nil, err
	}
	if tpl == nil || !tpl.Active() {
		return nil, nil
	}
	if tpl.Unlimited() {
		return dateCopy(tpl, key), nil
	}

	// another transaction may have materialized the date while we waited for the template lock
	row, err = s.capacityRepo.FindDateRowTx(ctx, tx, key)
	if err != nil {
		return nil, err
	}
	if row != nil {
		return activeOrNil(row), nil
	}

	row = dateCopy(tpl, key)
	id, err := s.capacityRepo.InsertTx(ctx, tx, row)
	if err != nil {
		return nil, err
	}
	row.ID = id
	metrics.Materializations.Inc()
	logger.Debug("[ResolveTx] materialized date row",
		zap.Uint64("product_id", key.ProductID),
		zap.String("date", key.Date),
		zap.String("from", key.FromTime),
		zap.String("to", key.ToTime),
		zap.Uint64("template_id", tpl.ID),
		zap.Uint64("row_id", id),
	)
	return row, nil
}

func (s *resolverImpl) PeekTx(ctx context.Context, tx *sqlx.Tx, key model.SlotKey) (*model.CapacityRow, error) {
	row, err := s.capacityRepo.FindDateRowTx(ctx, tx, key)
	if err != nil {
		return nil, err
	}
	if row != nil {
		return activeOrNil(row), nil
	}
	weekday, err := model.WeekdayOf(key.Date)
	if err != nil {
		return nil, err
	}
	tpl, err := s.capacityRepo.FindTemplateTx(ctx, tx, key, weekday, false)
	if err != nil {
		return nil, err
	}
	if tpl == nil || !tpl.Active() {
		return nil, nil
	}
	return dateCopy(tpl, key), nil
}

func activeOrNil(row *model.CapacityRow) *model.CapacityRow {
	if !row.Active() {
		return nil
	}
	return row
}

// dateCopy builds the date row a template materializes into.
func dateCopy(tpl *model.CapacityRow, key model.SlotKey) *model.CapacityRow {
	return &model.CapacityRow{
		ProductID:        key.ProductID,
		StartDate:        key.Date,
		FromTime:         key.FromTime,
		ToTime:           key.ToTime,
		TotalBooking:     tpl.TotalBooking,
		AvailableBooking: tpl.AvailableBooking,
		Status:           constant.RowStatusActive,
		Kind:             constant.RowKindCounter,
		GlobalSlot:       tpl.GlobalSlot,
	}
}
