package booking

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/application/globalslot"
	"github.com/muhammadheryan/booking-capacity/application/release"
	"github.com/muhammadheryan/booking-capacity/application/reservation"
	"github.com/muhammadheryan/booking-capacity/application/sanity"
	"github.com/muhammadheryan/booking-capacity/constant"
	"github.com/muhammadheryan/booking-capacity/model"
	bookingrepo "github.com/muhammadheryan/booking-capacity/repository/booking"
	productrepo "github.com/muhammadheryan/booking-capacity/repository/product"
	txrepo "github.com/muhammadheryan/booking-capacity/repository/tx"
	"github.com/muhammadheryan/booking-capacity/utils/errors"
	"github.com/muhammadheryan/booking-capacity/utils/logger"
	"go.uber.org/zap"
)

// EventPublisher announces bookings that now hold capacity.
type EventPublisher interface {
	PublishBookingFinalized(ctx context.Context, event model.BookingFinalizedEvent) error
}

// BookingApp reacts to order and booking events reported by the commerce
// platform and keeps the ledger in step with them.
type BookingApp interface {
	PlaceOrder(ctx context.Context, orderID uint64) (*model.LedgerResult, error)
	CancelOrder(ctx context.Context, orderID uint64) (*model.LedgerResult, error)
	RestoreOrder(ctx context.Context, orderID uint64) (*model.LedgerResult, error)
	TransitionOrderStatus(ctx context.Context, orderID uint64, req *model.StatusTransitionRequest) (*model.LedgerResult, error)
	ChangeItemQuantity(ctx context.Context, bookingID uint64, req *model.QuantityChangeRequest) (*model.LedgerResult, error)
	RefundItem(ctx context.Context, bookingID uint64, req *model.RefundItemRequest) (*model.LedgerResult, error)
	Reschedule(ctx context.Context, bookingID uint64, req *model.RescheduleRequest) (*model.LedgerResult, error)
	ApproveBooking(ctx context.Context, bookingID uint64, req *model.ApprovalRequest) (*model.LedgerResult, error)
}

type bookingAppImpl struct {
	txRepo      txrepo.TxRepository
	bookingRepo bookingrepo.BookingRepository
	productRepo productrepo.ProductRepository
	reservation reservation.ReservationApp
	release     release.ReleaseApp
	sanity      sanity.SanityApp
	dispatcher  globalslot.Dispatcher
	events      EventPublisher
}

func NewBookingApp(txRepo txrepo.TxRepository, bookingRepo bookingrepo.BookingRepository, productRepo productrepo.ProductRepository, reservation reservation.ReservationApp, release release.ReleaseApp, sanity sanity.SanityApp, dispatcher globalslot.Dispatcher, events EventPublisher) BookingApp {
	return &bookingAppImpl{
		txRepo:      txRepo,
		bookingRepo: bookingRepo,
		productRepo: productRepo,
		reservation: reservation,
		release:     release,
		sanity:      sanity,
		dispatcher:  dispatcher,
		events:      events,
	}
}

// outcome collects what a transaction produced that must be sent after commit.
type outcome struct {
	result *model.LedgerResult
	tasks  []model.GlobalSlotTask
	events []model.BookingFinalizedEvent
}

func (o *outcome) reserved(r *model.ReserveResult) {
	o.result.Reserved += r.Reserved
	o.tasks = append(o.tasks, r.Tasks...)
}

func (o *outcome) released(r *model.ReleaseResult) {
	o.result.Released += r.Released
	o.tasks = append(o.tasks, r.Tasks...)
}

func (s *bookingAppImpl) runTx(ctx context.Context, op string, orderID uint64, fn func(tx *sqlx.Tx, out *outcome) error) (*model.LedgerResult, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("["+op+"] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	out := &outcome{result: &model.LedgerResult{OrderID: orderID}}
	if err := fn(tx, out); err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+op+"] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	ctx = context.WithoutCancel(ctx)
	s.dispatcher.Dispatch(ctx, out.tasks)
	s.publish(ctx, out.events)
	return out.result, nil
}

func (s *bookingAppImpl) publish(ctx context.Context, events []model.BookingFinalizedEvent) {
	if s.events == nil {
		return
	}
	for _, e := range events {
		if err := s.events.PublishBookingFinalized(ctx, e); err != nil {
			logger.Error("[PublishBookingFinalized] publish", zap.Uint64("booking_id", e.BookingID), zap.String("error", err.Error()))
		}
	}
}

func (s *bookingAppImpl) PlaceOrder(ctx context.Context, orderID uint64) (*model.LedgerResult, error) {
	return s.runTx(ctx, "PlaceOrder", orderID, func(tx *sqlx.Tx, out *outcome) error {
		bookings, err := s.listBookings(ctx, tx, "PlaceOrder", orderID)
		if err != nil {
			return err
		}
		held, err := s.reservation.ReservedBookingsTx(ctx, tx, orderID)
		if err != nil {
			return err
		}

		for i := range bookings {
			b := &bookings[i]
			if b.Cancelled() || held[b.ID] {
				continue
			}
			if err := s.reserve(ctx, tx, b, b.Quantity, out); err != nil {
				return err
			}
			out.events = append(out.events, finalized(constant.EventBookingPlaced, b))
		}
		return nil
	})
}

func (s *bookingAppImpl) CancelOrder(ctx context.Context, orderID uint64) (*model.LedgerResult, error) {
	return s.runTx(ctx, "CancelOrder", orderID, func(tx *sqlx.Tx, out *outcome) error {
		return s.cancelOrderTx(ctx, tx, orderID, out)
	})
}

func (s *bookingAppImpl) cancelOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, out *outcome) error {
	bookings, err := s.listBookings(ctx, tx, "CancelOrder", orderID)
	if err != nil {
		return err
	}
	res, err := s.release.CancelAndReleaseTx(ctx, tx, orderID)
	if err != nil {
		return err
	}
	out.released(res)

	for _, b := range bookings {
		if b.Cancelled() {
			continue
		}
		if err := s.bookingRepo.UpdateStatusTx(ctx, tx, b.ID, constant.BookingStatusCancelled); err != nil {
			logger.Error("[CancelOrder] update booking status", zap.Uint64("booking_id", b.ID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	return nil
}

// RestoreOrder replays the reservation of every cancelled booking of an
// untrashed or restored order, using the recorded selection.
func (s *bookingAppImpl) RestoreOrder(ctx context.Context, orderID uint64) (*model.LedgerResult, error) {
	return s.runTx(ctx, "RestoreOrder", orderID, func(tx *sqlx.Tx, out *outcome) error {
		return s.replayTx(ctx, tx, orderID, constant.BookingStatusConfirmed, false, out)
	})
}

func (s *bookingAppImpl) TransitionOrderStatus(ctx context.Context, orderID uint64, req *model.StatusTransitionRequest) (*model.LedgerResult, error) {
	switch {
	case req.To.Releasing() && !req.From.Releasing():
		return s.CancelOrder(ctx, orderID)
	case req.From == constant.OrderStatusFailed && req.To.PaidEquivalent():
		status := constant.BookingStatusConfirmed
		if req.To == constant.OrderStatusProcessing || req.To == constant.OrderStatusCompleted {
			status = constant.BookingStatusPaid
		}
		return s.runTx(ctx, "TransitionOrderStatus", orderID, func(tx *sqlx.Tx, out *outcome) error {
			return s.replayTx(ctx, tx, orderID, status, true, out)
		})
	}
	logger.Debug("[TransitionOrderStatus] no ledger change",
		zap.Uint64("order_id", orderID),
		zap.String("from", string(req.From)),
		zap.String("to", string(req.To)),
	)
	return &model.LedgerResult{OrderID: orderID}, nil
}

// replayTx reserves the cancelled bookings of an order again. With validate
// set, every booking is checked first and a single shortage refuses the
// whole replay.
func (s *bookingAppImpl) replayTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.BookingStatus, validate bool, out *outcome) error {
	bookings, err := s.listBookings(ctx, tx, "ReplayOrder", orderID)
	if err != nil {
		return err
	}

	cancelled := make([]*model.Booking, 0, len(bookings))
	for i := range bookings {
		if bookings[i].Cancelled() && bookings[i].Quantity > 0 {
			cancelled = append(cancelled, &bookings[i])
		}
	}

	if validate {
		for _, b := range cancelled {
			if err := s.validate(ctx, tx, b, b.Selection(), b.Quantity, 0); err != nil {
				return err
			}
		}
	}

	for _, b := range cancelled {
		if err := s.reserve(ctx, tx, b, b.Quantity, out); err != nil {
			return err
		}
		if err := s.bookingRepo.UpdateStatusTx(ctx, tx, b.ID, status); err != nil {
			logger.Error("[ReplayOrder] update booking status", zap.Uint64("booking_id", b.ID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	return nil
}

func (s *bookingAppImpl) ChangeItemQuantity(ctx context.Context, bookingID uint64, req *model.QuantityChangeRequest) (*model.LedgerResult, error) {
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.runTx(ctx, "ChangeItemQuantity", 0, func(tx *sqlx.Tx, out *outcome) error {
		b, err := s.liveBooking(ctx, tx, "ChangeItemQuantity", bookingID)
		if err != nil {
			return err
		}
		out.result.OrderID = b.OrderID

		diff := req.Quantity - b.Quantity
		switch {
		case diff > 0:
			if err := s.validate(ctx, tx, b, b.Selection(), req.Quantity, b.ID); err != nil {
				return err
			}
			if err := s.reserve(ctx, tx, b, diff, out); err != nil {
				return err
			}
		case diff < 0:
			res, err := s.release.ReleaseTx(ctx, tx, b, -diff)
			if err != nil {
				return err
			}
			out.released(res)
		default:
			return nil
		}

		if err := s.bookingRepo.UpdateQuantityTx(ctx, tx, b.ID, req.Quantity); err != nil {
			logger.Error("[ChangeItemQuantity] update booking quantity", zap.Uint64("booking_id", b.ID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
}

// RefundItem gives back the refunded quantity. A full refund cancels the
// booking.
func (s *bookingAppImpl) RefundItem(ctx context.Context, bookingID uint64, req *model.RefundItemRequest) (*model.LedgerResult, error) {
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return s.runTx(ctx, "RefundItem", 0, func(tx *sqlx.Tx, out *outcome) error {
		b, err := s.liveBooking(ctx, tx, "RefundItem", bookingID)
		if err != nil {
			return err
		}
		out.result.OrderID = b.OrderID

		qty := min(req.Quantity, b.Quantity)
		res, err := s.release.ReleaseTx(ctx, tx, b, qty)
		if err != nil {
			return err
		}
		out.released(res)

		if remaining := b.Quantity - qty; remaining > 0 {
			err = s.bookingRepo.UpdateQuantityTx(ctx, tx, b.ID, remaining)
		} else {
			err = s.bookingRepo.UpdateStatusTx(ctx, tx, b.ID, constant.BookingStatusCancelled)
		}
		if err != nil {
			logger.Error("[RefundItem] update booking", zap.Uint64("booking_id", b.ID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
}

// Reschedule moves a booking to a new selection: the old capacity is given
// back and the new one taken in the same transaction, so a refused move
// leaves the booking where it was.
func (s *bookingAppImpl) Reschedule(ctx context.Context, bookingID uint64, req *model.RescheduleRequest) (*model.LedgerResult, error) {
	return s.runTx(ctx, "Reschedule", 0, func(tx *sqlx.Tx, out *outcome) error {
		b, err := s.liveBooking(ctx, tx, "Reschedule", bookingID)
		if err != nil {
			return err
		}
		out.result.OrderID = b.OrderID
		if err := req.Selection.Check(b.BookingType); err != nil {
			logger.Info("[Reschedule] invalid selection", zap.Uint64("booking_id", b.ID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}

		res, err := s.release.ReleaseTx(ctx, tx, b, b.Quantity)
		if err != nil {
			return err
		}
		out.released(res)

		if err := s.validate(ctx, tx, b, req.Selection, b.Quantity, 0); err != nil {
			return err
		}

		moved := *b
		moved.StartDate = req.Selection.StartDate
		moved.EndDate = req.Selection.EndDate
		moved.FromTime = req.Selection.FromTime
		moved.ToTime = req.Selection.ToTime
		if err := s.reserve(ctx, tx, &moved, moved.Quantity, out); err != nil {
			return err
		}

		if err := s.bookingRepo.UpdateSelectionTx(ctx, tx, b.ID, req.Selection); err != nil {
			logger.Error("[Reschedule] update booking selection", zap.Uint64("booking_id", b.ID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
}

// ApproveBooking settles a booking awaiting confirmation. A rejection gives
// its capacity back.
func (s *bookingAppImpl) ApproveBooking(ctx context.Context, bookingID uint64, req *model.ApprovalRequest) (*model.LedgerResult, error) {
	return s.runTx(ctx, "ApproveBooking", 0, func(tx *sqlx.Tx, out *outcome) error {
		b, err := s.getBooking(ctx, tx, "ApproveBooking", bookingID)
		if err != nil {
			return err
		}
		out.result.OrderID = b.OrderID
		if b.Status != constant.BookingStatusPendingConfirmation {
			return errors.SetCustomError(constant.ErrInvalidBookingStatus)
		}

		status := constant.BookingStatusConfirmed
		if req.Approve {
			b.Status = status
			out.events = append(out.events, finalized(constant.EventBookingApproved, b))
		} else {
			status = constant.BookingStatusCancelled
			res, err := s.release.ReleaseTx(ctx, tx, b, b.Quantity)
			if err != nil {
				return err
			}
			out.released(res)
		}

		if err := s.bookingRepo.UpdateStatusTx(ctx, tx, b.ID, status); err != nil {
			logger.Error("[ApproveBooking] update booking status", zap.Uint64("booking_id", b.ID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
}

func (s *bookingAppImpl) reserve(ctx context.Context, tx *sqlx.Tx, b *model.Booking, quantity int64, out *outcome) error {
	overlap, err := s.overlap(ctx, b.ProductID)
	if err != nil {
		return err
	}
	res, err := s.reservation.ReserveTx(ctx, tx, model.NewReserveRequest(b, quantity, overlap))
	if err != nil {
		return err
	}
	out.reserved(res)
	return nil
}

func (s *bookingAppImpl) validate(ctx context.Context, tx *sqlx.Tx, b *model.Booking, sel model.Selection, quantity int64, bookingID uint64) error {
	res, err := s.sanity.ValidateTx(ctx, tx, &model.ValidateRequest{
		ProductID:   b.ProductID,
		BookingType: b.BookingType,
		Selection:   sel,
		Quantity:    quantity,
		BookingID:   bookingID,
	})
	if err != nil {
		return err
	}
	if !res.Valid {
		logger.Info("[ValidateBooking] insufficient capacity", zap.Uint64("booking_id", b.ID), zap.Int("violations", len(res.Violations)))
		return errors.SetCustomError(constant.ErrInsufficientCapacity)
	}
	return nil
}

func (s *bookingAppImpl) overlap(ctx context.Context, productID uint64) (bool, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Error("[GetProduct] get product", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	return product != nil && product.OverlapEnabled(), nil
}

func (s *bookingAppImpl) listBookings(ctx context.Context, tx *sqlx.Tx, op string, orderID uint64) ([]model.Booking, error) {
	bookings, err := s.bookingRepo.ListByOrderTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("["+op+"] list bookings", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(bookings) == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return bookings, nil
}

func (s *bookingAppImpl) getBooking(ctx context.Context, tx *sqlx.Tx, op string, bookingID uint64) (*model.Booking, error) {
	b, err := s.bookingRepo.GetByIDTx(ctx, tx, bookingID)
	if err != nil {
		logger.Error("["+op+"] get booking", zap.Uint64("booking_id", bookingID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if b == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return b, nil
}

func (s *bookingAppImpl) liveBooking(ctx context.Context, tx *sqlx.Tx, op string, bookingID uint64) (*model.Booking, error) {
	b, err := s.getBooking(ctx, tx, op, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Cancelled() {
		return nil, errors.SetCustomError(constant.ErrInvalidBookingStatus)
	}
	return b, nil
}

func finalized(event string, b *model.Booking) model.BookingFinalizedEvent {
	return model.BookingFinalizedEvent{
		Event:       event,
		OrderID:     b.OrderID,
		BookingID:   b.ID,
		ProductID:   b.ProductID,
		BookingType: b.BookingType,
		Selection:   b.Selection(),
		Quantity:    b.Quantity,
		Status:      b.Status,
	}
}
