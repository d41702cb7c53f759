package capacity

import (
	"context"
	"database/sql"
	"time"

	"github.com/muhammadheryan/booking-capacity/application/resolver"
	"github.com/muhammadheryan/booking-capacity/application/sanity"
	"github.com/muhammadheryan/booking-capacity/constant"
	"github.com/muhammadheryan/booking-capacity/model"
	capacityrepo "github.com/muhammadheryan/booking-capacity/repository/capacity"
	linkrepo "github.com/muhammadheryan/booking-capacity/repository/link"
	productrepo "github.com/muhammadheryan/booking-capacity/repository/product"
	txrepo "github.com/muhammadheryan/booking-capacity/repository/tx"
	"github.com/muhammadheryan/booking-capacity/utils/errors"
	"github.com/muhammadheryan/booking-capacity/utils/logger"
	"go.uber.org/zap"
)

type CapacityApp interface {
	Availability(ctx context.Context, productID uint64, date, fromTime, toTime string) (*model.Availability, error)
	ActivateRow(ctx context.Context, rowID uint64) error
	// DeactivateRow refuses rows that still carry reservations.
	DeactivateRow(ctx context.Context, rowID uint64) error
	// UpsertRow creates a weekday template or a date row, or changes the
	// total of the existing one.
	UpsertRow(ctx context.Context, adminID uint64, req *model.UpsertRowRequest) (*model.CapacityRow, error)
}

type capacityAppImpl struct {
	txRepo       txrepo.TxRepository
	capacityRepo capacityrepo.CapacityRepository
	linkRepo     linkrepo.LinkRepository
	productRepo  productrepo.ProductRepository
	resolver     resolver.Resolver
	sanity       sanity.SanityApp
}

func NewCapacityApp(txRepo txrepo.TxRepository, capacityRepo capacityrepo.CapacityRepository, linkRepo linkrepo.LinkRepository, productRepo productrepo.ProductRepository, resolver resolver.Resolver, sanity sanity.SanityApp) CapacityApp {
	return &capacityAppImpl{
		txRepo:       txRepo,
		capacityRepo: capacityRepo,
		linkRepo:     linkRepo,
		productRepo:  productRepo,
		resolver:     resolver,
		sanity:       sanity,
	}
}

func (s *capacityAppImpl) Availability(ctx context.Context, productID uint64, date, fromTime, toTime string) (*model.Availability, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[Availability] get product failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	sel := model.Selection{StartDate: date, FromTime: fromTime, ToTime: toTime}
	if product.BookingType == constant.BookingTypeMultiDay {
		// one night starting on date
		d, err := time.Parse(model.DateLayout, date)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		sel.EndDate = d.AddDate(0, 0, 1).Format(model.DateLayout)
	}
	if err := sel.Check(product.BookingType); err != nil {
		logger.Info("[Availability] invalid selection", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Availability] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	defer func() { _ = s.txRepo.RollbackTx(tx) }()

	key := model.SlotKey{ProductID: productID, Date: date}
	if product.BookingType.IsCounter() {
		key = sel.SlotKey(productID)
	}
	row, err := s.resolver.PeekTx(ctx, tx, key)
	if err != nil {
		logger.Error("[Availability] peek row failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	capacity, err := s.sanity.AvailableTx(ctx, tx, product, product.BookingType, sel)
	if err != nil {
		return nil, err
	}

	res := &model.Availability{
		ProductID: productID,
		Date:      date,
		FromTime:  fromTime,
		ToTime:    toTime,
		Unlimited: capacity.Unlimited,
		Available: capacity.Available,
	}
	if row != nil {
		res.Total = row.TotalBooking
	}
	return res, nil
}

func (s *capacityAppImpl) ActivateRow(ctx context.Context, rowID uint64) error {
	return s.setStatus(ctx, "ActivateRow", rowID, constant.RowStatusActive)
}

func (s *capacityAppImpl) DeactivateRow(ctx context.Context, rowID uint64) error {
	return s.setStatus(ctx, "DeactivateRow", rowID, constant.RowStatusInactive)
}

func (s *capacityAppImpl) setStatus(ctx context.Context, op string, rowID uint64, status constant.RowStatus) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("["+op+"] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	row, err := s.capacityRepo.GetByIDTx(ctx, tx, rowID)
	if err != nil {
		logger.Error("["+op+"] get row failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if row == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if row.Kind == constant.RowKindUnit {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if row.Status == status {
		return nil
	}

	if status == constant.RowStatusInactive {
		linked, err := s.linkRepo.CountByRowTx(ctx, tx, rowID)
		if err != nil {
			logger.Error("["+op+"] count links failed", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if linked > 0 {
			return errors.SetCustomError(constant.ErrRowHasReservations)
		}
	}

	if err := s.capacityRepo.UpdateStatusTx(ctx, tx, rowID, status); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("["+op+"] update status failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+op+"] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	logger.Info("["+op+"] row status changed", zap.Uint64("row_id", rowID), zap.String("status", string(status)))
	return nil
}

func (s *capacityAppImpl) UpsertRow(ctx context.Context, adminID uint64, req *model.UpsertRowRequest) (*model.CapacityRow, error) {
	template := req.Weekday != nil && req.StartDate == ""
	if !template && req.StartDate == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.ToTime != "" && req.FromTime == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.FromTime != "" {
		if _, err := model.ParseTimeRange(req.FromTime, req.ToTime); err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpsertRow] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	key := model.SlotKey{ProductID: req.ProductID, Date: req.StartDate, FromTime: req.FromTime, ToTime: req.ToTime}
	var existing *model.CapacityRow
	if template {
		existing, err = s.capacityRepo.FindTemplateTx(ctx, tx, key, *req.Weekday, true)
	} else {
		existing, err = s.capacityRepo.FindDateRowTx(ctx, tx, key)
	}
	if err != nil {
		logger.Error("[UpsertRow] find row failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var rowID uint64
	if existing != nil {
		rowID = existing.ID
		err = s.capacityRepo.UpdateTotalTx(ctx, tx, rowID, req.TotalBooking, req.GlobalSlot)
	} else {
		row := &model.CapacityRow{
			ProductID:        req.ProductID,
			StartDate:        req.StartDate,
			FromTime:         req.FromTime,
			ToTime:           req.ToTime,
			TotalBooking:     req.TotalBooking,
			AvailableBooking: req.TotalBooking,
			Status:           constant.RowStatusActive,
			Kind:             constant.RowKindCounter,
			GlobalSlot:       req.GlobalSlot,
		}
		if template {
			row.Weekday = req.Weekday
		}
		rowID, err = s.capacityRepo.InsertTx(ctx, tx, row)
	}
	if err != nil {
		logger.Error("[UpsertRow] save row failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	saved, err := s.capacityRepo.GetByIDTx(ctx, tx, rowID)
	if err != nil || saved == nil {
		logger.Error("[UpsertRow] reload row failed", zap.Uint64("row_id", rowID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpsertRow] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("[UpsertRow] row saved",
		zap.Uint64("admin_id", adminID),
		zap.Uint64("row_id", rowID),
		zap.Uint64("product_id", req.ProductID),
		zap.Int64("total_booking", req.TotalBooking),
	)
	return saved, nil
}
