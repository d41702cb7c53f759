package sanity

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/application/propagation"
	"github.com/muhammadheryan/booking-capacity/application/resolver"
	"github.com/muhammadheryan/booking-capacity/constant"
	"github.com/muhammadheryan/booking-capacity/model"
	bookingrepo "github.com/muhammadheryan/booking-capacity/repository/booking"
	capacityrepo "github.com/muhammadheryan/booking-capacity/repository/capacity"
	linkrepo "github.com/muhammadheryan/booking-capacity/repository/link"
	productrepo "github.com/muhammadheryan/booking-capacity/repository/product"
	txrepo "github.com/muhammadheryan/booking-capacity/repository/tx"
	"github.com/muhammadheryan/booking-capacity/utils/errors"
	"github.com/muhammadheryan/booking-capacity/utils/logger"
	"github.com/muhammadheryan/booking-capacity/utils/metrics"
	"go.uber.org/zap"
)

// Capacity is what a selection can still take.
type Capacity struct {
	Unlimited bool
	Available int64
}

func (c Capacity) limit(n int64) Capacity {
	if c.Unlimited || n < c.Available {
		return Capacity{Available: max(n, 0)}
	}
	return c
}

type SanityApp interface {
	// Validate checks a requested quantity against remaining capacity without
	// changing anything. Only the quantity above what the booking already
	// holds needs to fit.
	Validate(ctx context.Context, req *model.ValidateRequest) (*model.ValidateResponse, error)
	ValidateTx(ctx context.Context, tx *sqlx.Tx, req *model.ValidateRequest) (*model.ValidateResponse, error)
	AvailableTx(ctx context.Context, tx *sqlx.Tx, product *model.BookableProduct, t constant.BookingType, sel model.Selection) (Capacity, error)
}

type sanityAppImpl struct {
	txRepo       txrepo.TxRepository
	capacityRepo capacityrepo.CapacityRepository
	linkRepo     linkrepo.LinkRepository
	bookingRepo  bookingrepo.BookingRepository
	productRepo  productrepo.ProductRepository
	resolver     resolver.Resolver
	propagator   propagation.Propagator
}

func NewSanityApp(txRepo txrepo.TxRepository, capacityRepo capacityrepo.CapacityRepository, linkRepo linkrepo.LinkRepository, bookingRepo bookingrepo.BookingRepository, productRepo productrepo.ProductRepository, resolver resolver.Resolver, propagator propagation.Propagator) SanityApp {
	return &sanityAppImpl{
		txRepo:       txRepo,
		capacityRepo: capacityRepo,
		linkRepo:     linkRepo,
		bookingRepo:  bookingRepo,
		productRepo:  productRepo,
		resolver:     resolver,
		propagator:   propagator,
	}
}

func (s *sanityAppImpl) Validate(ctx context.Context, req *model.ValidateRequest) (*model.ValidateResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Validate] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	// nothing is written, the transaction only gives a consistent read
	defer func() { _ = s.txRepo.RollbackTx(tx) }()

	return s.ValidateTx(ctx, tx, req)
}

func (s *sanityAppImpl) ValidateTx(ctx context.Context, tx *sqlx.Tx, req *model.ValidateRequest) (*model.ValidateResponse, error) {
	if req.Quantity <= 0 || !req.BookingType.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := req.Selection.Check(req.BookingType); err != nil {
		logger.Info("[ValidateTx] invalid selection", zap.Uint64("product_id", req.ProductID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		logger.Error("[ValidateTx] get product", zap.Uint64("product_id", req.ProductID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		product = &model.BookableProduct{ID: req.ProductID, BookingType: req.BookingType}
	}

	held, err := s.heldTx(ctx, tx, req)
	if err != nil {
		return nil, err
	}
	delta := req.Quantity - held
	if delta <= 0 {
		return &model.ValidateResponse{Valid: true, Violations: []model.Violation{}}, nil
	}

	capacity, err := s.AvailableTx(ctx, tx, product, req.BookingType, req.Selection)
	if err != nil {
		return nil, err
	}
	if capacity.Unlimited || delta <= capacity.Available {
		return &model.ValidateResponse{Valid: true, Violations: []model.Violation{}}, nil
	}

	metrics.Violations.Inc()
	logger.Info("[ValidateTx] limited availability",
		zap.Uint64("product_id", req.ProductID),
		zap.String("selection", req.Selection.Key()),
		zap.Int64("delta", delta),
		zap.Int64("available", capacity.Available),
	)
	return &model.ValidateResponse{
		Valid: false,
		Violations: []model.Violation{{
			Code:      constant.ViolationLimitedAvailability,
			ProductID: req.ProductID,
			Selection: req.Selection,
			Requested: delta,
			Available: capacity.Available,
			Message:   fmt.Sprintf("only %d left for the selected date", capacity.Available),
		}},
	}, nil
}

// heldTx returns what the existing booking already holds for the requested
// selection: the quantities on its own links, or its recorded quantity when
// no link carries it.
func (s *sanityAppImpl) heldTx(ctx context.Context, tx *sqlx.Tx, req *model.ValidateRequest) (int64, error) {
	if req.BookingID == 0 {
		return 0, nil
	}
	b, err := s.bookingRepo.GetByIDTx(ctx, tx, req.BookingID)
	if err != nil {
		logger.Error("[ValidateTx] get booking", zap.Uint64("booking_id", req.BookingID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if b == nil || b.Cancelled() || b.ProductID != req.ProductID || b.Selection().Key() != req.Selection.Key() {
		return 0, nil
	}

	links, err := s.linkRepo.ListByOrderTx(ctx, tx, b.OrderID)
	if err != nil {
		logger.Error("[ValidateTx] list links", zap.Uint64("order_id", b.OrderID), zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	var counted int64
	nights := make(map[string]int64)
	found := false
	for _, l := range links {
		if l.BookingID != b.ID {
			continue
		}
		switch l.Role {
		case constant.LinkRoleOwn:
			counted += l.Quantity
			found = true
		case constant.LinkRoleUnit:
			nights[l.StartDate]++
			found = true
		}
	}
	for _, n := range nights {
		counted = max(counted, n)
	}
	if !found {
		return b.Quantity, nil
	}
	return counted, nil
}

// AvailableTx is the remaining capacity for a selection. Counters report the
// smallest remaining count over the own, overlapping and parent rows. Unit
// based types report the date ceiling minus the units already taken, the
// smallest over the covered dates.
func (s *sanityAppImpl) AvailableTx(ctx context.Context, tx *sqlx.Tx, product *model.BookableProduct, t constant.BookingType, sel model.Selection) (Capacity, error) {
	capacity := Capacity{Unlimited: true}
	var err error
	if t.IsCounter() {
		capacity, err = s.counterCapacity(ctx, tx, product, sel)
	} else {
		capacity, err = s.unitCapacity(ctx, tx, product, t, sel)
	}
	if err != nil {
		logger.Error("[AvailableTx] compute capacity",
			zap.Uint64("product_id", product.ID),
			zap.String("selection", sel.Key()),
			zap.String("error", err.Error()),
		)
		return Capacity{}, errors.SetCustomError(constant.ErrInternal)
	}
	return capacity, nil
}

func (s *sanityAppImpl) counterCapacity(ctx context.Context, tx *sqlx.Tx, product *model.BookableProduct, sel model.Selection) (Capacity, error) {
	key := sel.SlotKey(product.ID)
	keys := []model.SlotKey{key}
	if product.OverlapEnabled() && key.Timed() {
		overlapping, err := s.propagator.OverlappingKeysTx(ctx, tx, key)
		if err != nil {
			return Capacity{}, err
		}
		keys = append(keys, overlapping...)
	}
	if product.ParentID != 0 {
		keys = append(keys, key.WithProduct(product.ParentID))
	}

	capacity := Capacity{Unlimited: true}
	for _, k := range keys {
		row, err := s.resolver.PeekTx(ctx, tx, k)
		if err != nil {
			return Capacity{}, err
		}
		if row == nil || row.Unlimited() {
			continue
		}
		capacity = capacity.limit(row.AvailableBooking)
	}
	return capacity, nil
}

func (s *sanityAppImpl) unitCapacity(ctx context.Context, tx *sqlx.Tx, product *model.BookableProduct, t constant.BookingType, sel model.Selection) (Capacity, error) {
	dates, err := sel.Dates(t)
	if err != nil {
		return Capacity{}, err
	}
	owners := []uint64{product.ID}
	if product.ParentID != 0 {
		owners = append(owners, product.ParentID)
	}

	capacity := Capacity{Unlimited: true}
	for _, owner := range owners {
		for _, date := range dates {
			ceiling, err := s.resolver.PeekTx(ctx, tx, model.SlotKey{ProductID: owner, Date: date})
			if err != nil {
				return Capacity{}, err
			}
			if ceiling == nil || ceiling.Unlimited() {
				continue
			}
			units, err := s.capacityRepo.ListUnitRowsTx(ctx, tx, owner, date)
			if err != nil {
				return Capacity{}, err
			}
			var taken int64
			for _, u := range units {
				if t == constant.BookingTypeDuration && !model.RangesOverlap(u.FromTime, u.ToTime, sel.FromTime, sel.ToTime) {
					continue
				}
				taken++
			}
			capacity = capacity.limit(ceiling.TotalBooking - taken)
		}
	}
	return capacity, nil
}
