package release

import (
	"context"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/application/globalslot"
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

type ReleaseApp interface {
	// Release gives back quantity units of one booking in its own transaction.
	Release(ctx context.Context, orderID, bookingID uint64, quantity int64) (*model.ReleaseResult, error)
	// ReleaseTx undoes up to quantity units of what the booking reserved, using
	// the links written at reservation time.
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, b *model.Booking, quantity int64) (*model.ReleaseResult, error)
	CancelAndRelease(ctx context.Context, orderID uint64) (*model.ReleaseResult, error)
	// CancelAndReleaseTx releases every live booking of the order and then any
	// link still pointing at the order.
	CancelAndReleaseTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.ReleaseResult, error)
}

type releaseAppImpl struct {
	txRepo       txrepo.TxRepository
	capacityRepo capacityrepo.CapacityRepository
	linkRepo     linkrepo.LinkRepository
	bookingRepo  bookingrepo.BookingRepository
	productRepo  productrepo.ProductRepository
	resolver     resolver.Resolver
	propagator   propagation.Propagator
	dispatcher   globalslot.Dispatcher
}

func NewReleaseApp(txRepo txrepo.TxRepository, capacityRepo capacityrepo.CapacityRepository, linkRepo linkrepo.LinkRepository, bookingRepo bookingrepo.BookingRepository, productRepo productrepo.ProductRepository, resolver resolver.Resolver, propagator propagation.Propagator, dispatcher globalslot.Dispatcher) ReleaseApp {
	return &releaseAppImpl{
		txRepo:       txRepo,
		capacityRepo: capacityRepo,
		linkRepo:     linkRepo,
		bookingRepo:  bookingRepo,
		productRepo:  productRepo,
		resolver:     resolver,
		propagator:   propagator,
		dispatcher:   dispatcher,
	}
}

func (s *releaseAppImpl) Release(ctx context.Context, orderID, bookingID uint64, quantity int64) (*model.ReleaseResult, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Release] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	b, err := s.bookingRepo.GetByIDTx(ctx, tx, bookingID)
	if err != nil {
		logger.Error("[Release] get booking", zap.Uint64("booking_id", bookingID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if b == nil || b.OrderID != orderID {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	res, err := s.ReleaseTx(ctx, tx, b, quantity)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Release] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.dispatcher.Dispatch(ctx, res.Tasks)
	return res, nil
}

func (s *releaseAppImpl) ReleaseTx(ctx context.Context, tx *sqlx.Tx, b *model.Booking, quantity int64) (*model.ReleaseResult, error) {
	if quantity <= 0 || !b.BookingType.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	links, err := s.linkRepo.ListByOrderTx(ctx, tx, b.OrderID)
	if err != nil {
		logger.Error("[ReleaseTx] list links", zap.Uint64("order_id", b.OrderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	mine := bookingLinks(links, b)
	if len(mine) == 0 {
		return s.releaseUnlinked(ctx, tx, b, quantity)
	}

	res := &model.ReleaseResult{}
	var counters, units, markers []model.LinkedRow
	for _, l := range mine {
		switch {
		case l.Role == constant.LinkRoleShared:
			markers = append(markers, l)
		case l.Kind == constant.RowKindUnit:
			units = append(units, l)
		default:
			counters = append(counters, l)
		}
	}

	released, err := s.releaseCounters(ctx, tx, counters, quantity)
	if err != nil {
		return nil, err
	}
	res.Released = released

	if len(units) > 0 {
		n, err := s.releaseUnits(ctx, tx, units, quantity)
		if err != nil {
			return nil, err
		}
		if n > res.Released {
			res.Released = n
		}
	}

	unshared, err := s.releaseShared(ctx, tx, markers, quantity)
	if err != nil {
		return nil, err
	}

	if b.BookingType.IsCounter() {
		recorded := hasRole(counters, constant.LinkRoleOwn) || len(markers) > 0
		task, err := s.inverseTask(ctx, tx, b, quantity, released+unshared, recorded)
		if err != nil {
			return nil, err
		}
		if task != nil {
			res.Tasks = append(res.Tasks, *task)
		}
	}
	return res, nil
}

// releaseCounters gives back up to quantity on every counter row the links
// point at, newest link first, and returns the amount given back to the own
// row.
func (s *releaseAppImpl) releaseCounters(ctx context.Context, tx *sqlx.Tx, links []model.LinkedRow, quantity int64) (int64, error) {
	byRow := make(map[uint64][]model.LinkedRow)
	rows := make([]uint64, 0)
	for _, l := range links {
		if _, ok := byRow[l.CapacityRowID]; !ok {
			rows = append(rows, l.CapacityRowID)
		}
		byRow[l.CapacityRowID] = append(byRow[l.CapacityRowID], l)
	}

	var own int64
	var drop []uint64
	for _, rowID := range rows {
		group := byRow[rowID]
		sort.SliceStable(group, func(i, j int) bool { return group[i].ID > group[j].ID })

		remaining := quantity
		var taken int64
		for _, l := range group {
			if remaining == 0 {
				break
			}
			take := min(remaining, l.Quantity)
			if take <= 0 {
				continue
			}
			remaining -= take
			taken += take
			if take == l.Quantity {
				drop = append(drop, l.ID)
				continue
			}
			if err := s.linkRepo.UpdateQuantityTx(ctx, tx, l.ID, l.Quantity-take); err != nil {
				logger.Error("[ReleaseTx] update link", zap.Uint64("link_id", l.ID), zap.String("error", err.Error()))
				return 0, errors.SetCustomError(constant.ErrInternal)
			}
		}
		if taken == 0 {
			continue
		}

		affected, err := s.capacityRepo.ReleaseAtomicTx(ctx, tx, rowID, taken)
		if err != nil {
			logger.Error("[ReleaseTx] release row", zap.Uint64("row_id", rowID), zap.String("error", err.Error()))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}
		role := group[0].Role
		if affected == 0 {
			metrics.RowNotFound.WithLabelValues("release").Inc()
			logger.Warn("[ReleaseTx] linked row is gone, nothing given back", zap.Uint64("row_id", rowID))
			continue
		}
		metrics.CapacityMutations.WithLabelValues("release", string(role)).Inc()
		if role == constant.LinkRoleOwn {
			own += taken
		}
	}

	if err := s.linkRepo.DeleteTx(ctx, tx, drop); err != nil {
		logger.Error("[ReleaseTx] delete links", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return own, nil
}

// releaseShared consumes up to quantity from the booking's shared markers,
// newest first, and returns the amount consumed. Markers point at no row.
func (s *releaseAppImpl) releaseShared(ctx context.Context, tx *sqlx.Tx, markers []model.LinkedRow, quantity int64) (int64, error) {
	if len(markers) == 0 {
		return 0, nil
	}
	sort.SliceStable(markers, func(i, j int) bool { return markers[i].ID > markers[j].ID })

	remaining := quantity
	var drop []uint64
	for _, l := range markers {
		if remaining == 0 {
			break
		}
		take := min(remaining, l.Quantity)
		if take <= 0 {
			continue
		}
		remaining -= take
		if take == l.Quantity {
			drop = append(drop, l.ID)
			continue
		}
		if err := s.linkRepo.UpdateQuantityTx(ctx, tx, l.ID, l.Quantity-take); err != nil {
			logger.Error("[ReleaseTx] update shared link", zap.Uint64("link_id", l.ID), zap.String("error", err.Error()))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}
	}
	if len(drop) > 0 {
		if err := s.linkRepo.DeleteTx(ctx, tx, drop); err != nil {
			logger.Error("[ReleaseTx] delete shared links", zap.String("error", err.Error()))
			return 0, errors.SetCustomError(constant.ErrInternal)
		}
	}
	return quantity - remaining, nil
}

type unitGroup struct {
	productID uint64
	date      string
}

// releaseUnits deletes up to quantity unit rows per product and date, newest
// first, together with their links. It returns the largest count removed for
// a single night of the booked product.
func (s *releaseAppImpl) releaseUnits(ctx context.Context, tx *sqlx.Tx, links []model.LinkedRow, quantity int64) (int64, error) {
	groups := make(map[unitGroup][]model.LinkedRow)
	order := make([]unitGroup, 0)
	for _, l := range links {
		g := unitGroup{l.ProductID, l.StartDate}
		if _, ok := groups[g]; !ok {
			order = append(order, g)
		}
		groups[g] = append(groups[g], l)
	}

	var released int64
	var rowIDs, linkIDs []uint64
	for _, g := range order {
		group := groups[g]
		sort.SliceStable(group, func(i, j int) bool { return group[i].ID > group[j].ID })
		n := min(int64(len(group)), quantity)
		for _, l := range group[:n] {
			rowIDs = append(rowIDs, l.CapacityRowID)
			linkIDs = append(linkIDs, l.ID)
		}
		metrics.CapacityMutations.WithLabelValues("release", string(group[0].Role)).Add(float64(n))
		if group[0].Role == constant.LinkRoleUnit && n > released {
			released = n
		}
	}

	if err := s.linkRepo.DeleteTx(ctx, tx, linkIDs); err != nil {
		logger.Error("[ReleaseTx] delete unit links", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if _, err := s.capacityRepo.DeleteTx(ctx, tx, rowIDs); err != nil {
		logger.Error("[ReleaseTx] delete unit rows", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return released, nil
}

// releaseUnlinked handles bookings reserved before links carried a booking
// id: counters are matched on the recorded date and time values. Unit rows
// are never guessed.
func (s *releaseAppImpl) releaseUnlinked(ctx context.Context, tx *sqlx.Tx, b *model.Booking, quantity int64) (*model.ReleaseResult, error) {
	res := &model.ReleaseResult{}
	if !b.BookingType.IsCounter() {
		metrics.RowNotFound.WithLabelValues("release").Inc()
		logger.Warn("[ReleaseTx] no unit rows linked to booking", zap.Uint64("booking_id", b.ID), zap.Uint64("order_id", b.OrderID))
		return res, nil
	}

	overlap := false
	product, err := s.productRepo.GetByID(ctx, b.ProductID)
	if err != nil {
		logger.Error("[ReleaseTx] get product", zap.Uint64("product_id", b.ProductID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product != nil {
		overlap = product.OverlapEnabled()
	}

	sel := b.Selection()
	out, err := s.propagator.IncrementTx(ctx, tx, &propagation.Mutation{
		Key:      sel.SlotKey(b.ProductID),
		ParentID: b.ParentID,
		Quantity: quantity,
		Overlap:  overlap,
	})
	if err != nil {
		logger.Error("[ReleaseTx] increment", zap.Uint64("booking_id", b.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(out.Applied) == 0 {
		metrics.RowNotFound.WithLabelValues("release").Inc()
		logger.Warn("[ReleaseTx] no capacity row found for booking",
			zap.Uint64("booking_id", b.ID),
			zap.Uint64("product_id", b.ProductID),
			zap.String("selection", sel.Key()),
		)
	}
	for _, a := range out.Applied {
		metrics.CapacityMutations.WithLabelValues("release", string(a.Role)).Inc()
	}
	res.Released = out.OwnQuantity()

	task, err := s.inverseTask(ctx, tx, b, quantity, res.Released, res.Released > 0)
	if err != nil {
		return nil, err
	}
	if task != nil {
		res.Tasks = append(res.Tasks, *task)
	}
	return res, nil
}

// inverseTask builds the global slot release mirroring what the reservation
// shared, as recorded by the own and shared links. Without a record the full
// quantity is shared when the own slot is unlimited or unconfigured.
func (s *releaseAppImpl) inverseTask(ctx context.Context, tx *sqlx.Tx, b *model.Booking, quantity, sharedReleased int64, recorded bool) (*model.GlobalSlotTask, error) {
	if !b.BookingType.IsTimed() {
		return nil, nil
	}
	own, err := s.resolver.PeekTx(ctx, tx, b.Selection().SlotKey(b.ProductID))
	if err != nil {
		logger.Error("[ReleaseTx] peek own slot", zap.Uint64("booking_id", b.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !s.dispatcher.Enabled(own) {
		return nil, nil
	}

	shared := sharedReleased
	if !recorded && (own == nil || own.Unlimited()) {
		shared = quantity
	}
	if shared <= 0 {
		return nil, nil
	}
	task := s.dispatcher.NewTask(model.NewReserveRequest(b, shared, false), shared, constant.SyncDirectionRelease)
	return &task, nil
}

func (s *releaseAppImpl) CancelAndRelease(ctx context.Context, orderID uint64) (*model.ReleaseResult, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelAndRelease] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	res, err := s.CancelAndReleaseTx(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelAndRelease] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.dispatcher.Dispatch(ctx, res.Tasks)
	return res, nil
}

func (s *releaseAppImpl) CancelAndReleaseTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.ReleaseResult, error) {
	bookings, err := s.bookingRepo.ListByOrderTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CancelAndReleaseTx] list bookings", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := &model.ReleaseResult{}
	for i := range bookings {
		b := &bookings[i]
		if b.Cancelled() || b.Quantity <= 0 {
			continue
		}
		r, err := s.ReleaseTx(ctx, tx, b, b.Quantity)
		if err != nil {
			return nil, err
		}
		res.Released += r.Released
		res.Tasks = append(res.Tasks, r.Tasks...)
	}

	leftover, err := s.linkRepo.ListByOrderTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("[CancelAndReleaseTx] list links", zap.Uint64("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(leftover) > 0 {
		logger.Warn("[CancelAndReleaseTx] releasing links without a live booking",
			zap.Uint64("order_id", orderID), zap.Int("links", len(leftover)))
		if err := s.releaseOrphans(ctx, tx, leftover); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *releaseAppImpl) releaseOrphans(ctx context.Context, tx *sqlx.Tx, links []model.LinkedRow) error {
	var linkIDs, unitRows []uint64
	for _, l := range links {
		linkIDs = append(linkIDs, l.ID)
		if l.Kind == constant.RowKindUnit {
			unitRows = append(unitRows, l.CapacityRowID)
			continue
		}
		if l.Role == constant.LinkRoleShared || l.Quantity <= 0 {
			continue
		}
		if _, err := s.capacityRepo.ReleaseAtomicTx(ctx, tx, l.CapacityRowID, l.Quantity); err != nil {
			logger.Error("[CancelAndReleaseTx] release row", zap.Uint64("row_id", l.CapacityRowID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		metrics.CapacityMutations.WithLabelValues("release", string(l.Role)).Inc()
	}
	if err := s.linkRepo.DeleteTx(ctx, tx, linkIDs); err != nil {
		logger.Error("[CancelAndReleaseTx] delete links", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if _, err := s.capacityRepo.DeleteTx(ctx, tx, unitRows); err != nil {
		logger.Error("[CancelAndReleaseTx] delete unit rows", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// bookingLinks picks the links written for b. Links without a booking id are
// matched on the product, parent and recorded date/time values.
func bookingLinks(links []model.LinkedRow, b *model.Booking) []model.LinkedRow {
	sel := b.Selection()
	mine := make([]model.LinkedRow, 0)
	for _, l := range links {
		if l.BookingID != 0 {
			if l.BookingID == b.ID {
				mine = append(mine, l)
			}
			continue
		}
		switch l.Role {
		case constant.LinkRoleOwn, constant.LinkRoleUnit:
			if l.Matches(b.ProductID, sel) {
				mine = append(mine, l)
			}
		case constant.LinkRoleParent:
			if b.ParentID != 0 && l.Matches(b.ParentID, sel) {
				mine = append(mine, l)
			}
		case constant.LinkRoleOverlap:
			if l.ProductID == b.ProductID && l.StartDate == sel.StartDate {
				mine = append(mine, l)
			}
		}
	}
	return mine
}

func hasRole(links []model.LinkedRow, role constant.LinkRole) bool {
	for _, l := range links {
		if l.Role == role {
			return true
		}
	}
	return false
}
