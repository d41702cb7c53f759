package reservation

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/application/globalslot"
	"github.com/muhammadheryan/booking-capacity/application/propagation"
	"github.com/muhammadheryan/booking-capacity/constant"
	"github.com/muhammadheryan/booking-capacity/model"
	capacityrepo "github.com/muhammadheryan/booking-capacity/repository/capacity"
	linkrepo "github.com/muhammadheryan/booking-capacity/repository/link"
	txrepo "github.com/muhammadheryan/booking-capacity/repository/tx"
	"github.com/muhammadheryan/booking-capacity/utils/errors"
	"github.com/muhammadheryan/booking-capacity/utils/logger"
	"github.com/muhammadheryan/booking-capacity/utils/metrics"
	"go.uber.org/zap"
)

type ReservationApp interface {
	// Reserve runs ReserveTx in its own transaction and dispatches the
	// resulting global slot tasks once committed.
	Reserve(ctx context.Context, req *model.ReserveRequest) (*model.ReserveResult, error)
	// ReserveTx takes req.Quantity for the selection inside tx. Global slot
	// tasks are returned, not dispatched, so the caller can send them after
	// its own commit.
	ReserveTx(ctx context.Context, tx *sqlx.Tx, req *model.ReserveRequest) (*model.ReserveResult, error)
	// ReservedBookingsTx returns the ids of the order's bookings that already
	// hold capacity.
	ReservedBookingsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (map[uint64]bool, error)
}

type reservationAppImpl struct {
	txRepo       txrepo.TxRepository
	capacityRepo capacityrepo.CapacityRepository
	linkRepo     linkrepo.LinkRepository
	propagator   propagation.Propagator
	dispatcher   globalslot.Dispatcher
}

func NewReservationApp(txRepo txrepo.TxRepository, capacityRepo capacityrepo.CapacityRepository, linkRepo linkrepo.LinkRepository, propagator propagation.Propagator, dispatcher globalslot.Dispatcher) ReservationApp {
	return &reservationAppImpl{
		txRepo:       txRepo,
		capacityRepo: capacityRepo,
		linkRepo:     linkRepo,
		propagator:   propagator,
		dispatcher:   dispatcher,
	}
}

func (s *reservationAppImpl) Reserve(ctx context.Context, req *model.ReserveRequest) (*model.ReserveResult, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Reserve] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	res, err := s.ReserveTx(ctx, tx, req)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Reserve] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.dispatcher.Dispatch(ctx, res.Tasks)
	return res, nil
}

func (s *reservationAppImpl) ReserveTx(ctx context.Context, tx *sqlx.Tx, req *model.ReserveRequest) (*model.ReserveResult, error) {
	if !req.BookingType.Valid() {
		return nil, errors.SetCustomError(constant.ErrUnsupportedBookingType)
	}
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := req.Selection.Check(req.BookingType); err != nil {
		logger.Info("[ReserveTx] invalid selection", zap.Uint64("booking_id", req.BookingID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if req.BookingType.IsCounter() {
		return s.reserveCounter(ctx, tx, req)
	}
	return s.reserveUnits(ctx, tx, req)
}

func (s *reservationAppImpl) reserveCounter(ctx context.Context, tx *sqlx.Tx, req *model.ReserveRequest) (*model.ReserveResult, error) {
	out, err := s.propagator.DecrementTx(ctx, tx, &propagation.Mutation{
		Key:      req.Selection.SlotKey(req.ProductID),
		ParentID: req.ParentID,
		Quantity: req.Quantity,
		Overlap:  req.Overlap,
	})
	if err != nil {
		logger.Error("[ReserveTx] decrement", zap.Uint64("booking_id", req.BookingID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	for _, a := range out.Applied {
		if _, err := s.linkRepo.InsertTx(ctx, tx, &model.OrderBookingLink{
			OrderID:       req.OrderID,
			BookingID:     req.BookingID,
			CapacityRowID: a.Row.ID,
			Quantity:      a.Quantity,
			Role:          a.Role,
		}); err != nil {
			logger.Error("[ReserveTx] insert link", zap.Uint64("row_id", a.Row.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		metrics.CapacityMutations.WithLabelValues("reserve", string(a.Role)).Inc()
	}

	res := &model.ReserveResult{Reserved: out.OwnQuantity()}
	if out.Own == nil {
		logger.Debug("[ReserveTx] slot not configured, nothing to reserve",
			zap.Uint64("product_id", req.ProductID),
			zap.String("selection", req.Selection.Key()),
		)
	}
	// peers mirror what the own slot actually gave up; an unlimited or
	// unconfigured own slot gives up the full quantity
	shared := req.Quantity
	if out.Own != nil && !out.Own.Unlimited() {
		shared = res.Reserved
	}
	if shared <= 0 || !req.BookingType.IsTimed() || !s.dispatcher.Enabled(out.Own) {
		return res, nil
	}
	if res.Reserved == 0 {
		// no own link records the share, so a marker does; it also keeps the
		// booking from being reserved again
		if _, err := s.linkRepo.InsertTx(ctx, tx, &model.OrderBookingLink{
			OrderID:   req.OrderID,
			BookingID: req.BookingID,
			Quantity:  shared,
			Role:      constant.LinkRoleShared,
		}); err != nil {
			logger.Error("[ReserveTx] insert shared link", zap.Uint64("booking_id", req.BookingID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}
	res.Tasks = append(res.Tasks, s.dispatcher.NewTask(req, shared, constant.SyncDirectionReserve))
	return res, nil
}

type unitOwner struct {
	productID uint64
	role      constant.LinkRole
}

// reserveUnits inserts one unit row per reserved unit and covered date, for
// the product and, in a grouped family, for its parent.
func (s *reservationAppImpl) reserveUnits(ctx context.Context, tx *sqlx.Tx, req *model.ReserveRequest) (*model.ReserveResult, error) {
	dates, err := req.Selection.Dates(req.BookingType)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	owners := []unitOwner{{req.ProductID, constant.LinkRoleUnit}}
	if req.ParentID != 0 {
		owners = append(owners, unitOwner{req.ParentID, constant.LinkRoleParent})
	}

	for _, owner := range owners {
		for _, date := range dates {
			ids, err := s.capacityRepo.InsertUnitRowsTx(ctx, tx, &model.UnitRowRequest{
				ProductID: owner.productID,
				Date:      date,
				EndDate:   req.Selection.EndDate,
				FromTime:  req.Selection.FromTime,
				ToTime:    req.Selection.ToTime,
				Count:     req.Quantity,
			})
			if err != nil {
				logger.Error("[ReserveTx] insert unit rows", zap.Uint64("product_id", owner.productID), zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
			for _, id := range ids {
				if _, err := s.linkRepo.InsertTx(ctx, tx, &model.OrderBookingLink{
					OrderID:       req.OrderID,
					BookingID:     req.BookingID,
					CapacityRowID: id,
					Quantity:      1,
					Role:          owner.role,
				}); err != nil {
					logger.Error("[ReserveTx] insert unit link", zap.Uint64("row_id", id), zap.String("error", err.Error()))
					return nil, errors.SetCustomError(constant.ErrInternal)
				}
			}
			metrics.CapacityMutations.WithLabelValues("reserve", string(owner.role)).Add(float64(len(ids)))
		}
	}

	return &model.ReserveResult{Reserved: req.Quantity}, nil
}

func (s *reservationAppImpl) ReservedBookingsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (map[uint64]bool, error) {
	links, err := s.linkRepo.ListByOrderTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[ReservedBookingsTx] list links", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	reserved := make(map[uint64]bool, len(links))
	for _, l := range links {
		if l.BookingID != 0 {
			reserved[l.BookingID] = true
		}
	}
	return reserved, nil
}
