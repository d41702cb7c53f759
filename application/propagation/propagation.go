package propagation

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/application/resolver"
	"github.com/muhammadheryan/booking-capacity/constant"
	"github.com/muhammadheryan/booking-capacity/model"
	capacityrepo "github.com/muhammadheryan/booking-capacity/repository/capacity"
	"github.com/muhammadheryan/booking-capacity/utils/logger"
	"github.com/muhammadheryan/booking-capacity/utils/metrics"
	"go.uber.org/zap"
)

// Mutation is a counter change on one slot and its mirrors.
type Mutation struct {
	Key      model.SlotKey
	ParentID uint64
	Quantity int64
	// Overlap cascades the change to every other time range of the same
	// date that intersects Key.
	Overlap bool
}

// Applied is one counter row a mutation changed.
type Applied struct {
	Row      model.CapacityRow
	Role     constant.LinkRole
	Quantity int64
}

type Outcome struct {
	// Own is the product's own counter as resolved, nil when unconfigured.
	Own     *model.CapacityRow
	Applied []Applied
}

// OwnQuantity is the quantity actually taken from or given back to the
// product's own row.
func (o *Outcome) OwnQuantity() int64 {
	var n int64
	for _, a := range o.Applied {
		if a.Role == constant.LinkRoleOwn {
			n += a.Quantity
		}
	}
	return n
}

type Propagator interface {
	DecrementTx(ctx context.Context, tx *sqlx.Tx, m *Mutation) (*Outcome, error)
	IncrementTx(ctx context.Context, tx *sqlx.Tx, m *Mutation) (*Outcome, error)
	OverlappingKeysTx(ctx context.Context, tx *sqlx.Tx, key model.SlotKey) ([]model.SlotKey, error)
}

type propagatorImpl struct {
	capacityRepo capacityrepo.CapacityRepository
	resolver     resolver.Resolver
}

func NewPropagator(capacityRepo capacityrepo.CapacityRepository, resolver resolver.Resolver) Propagator {
	return &propagatorImpl{capacityRepo: capacityRepo, resolver: resolver}
}

type target struct {
	key  model.SlotKey
	role constant.LinkRole
}

// mirrors lists the slots that follow the own slot: the intersecting ranges
// when overlap is on, then the parent's slot.
func (s *propagatorImpl) mirrors(ctx context.Context, tx *sqlx.Tx, m *Mutation) ([]target, error) {
	targets := make([]target, 0)
	if m.Overlap && m.Key.Timed() {
		keys, err := s.OverlappingKeysTx(ctx, tx, m.Key)
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			targets = append(targets, target{key: k, role: constant.LinkRoleOverlap})
		}
	}
	if m.ParentID != 0 {
		targets = append(targets, target{key: m.Key.WithProduct(m.ParentID), role: constant.LinkRoleParent})
	}
	return targets, nil
}

func (s *propagatorImpl) targets(ctx context.Context, tx *sqlx.Tx, m *Mutation) ([]target, error) {
	mirrors, err := s.mirrors(ctx, tx, m)
	if err != nil {
		return nil, err
	}
	return append([]target{{key: m.Key, role: constant.LinkRoleOwn}}, mirrors...), nil
}

// DecrementTx takes m.Quantity from the own row first. A limited own row that
// cannot cover it refuses the whole mutation and nothing else is touched.
// Otherwise the overlapping rows and the parent row follow with the same
// quantity; a mirror row without enough capacity is skipped and reported,
// never driven negative.
func (s *propagatorImpl) DecrementTx(ctx context.Context, tx *sqlx.Tx, m *Mutation) (*Outcome, error) {
	own, ok, err := s.decrement(ctx, tx, m.Key, constant.LinkRoleOwn, m.Quantity)
	if err != nil {
		return nil, err
	}
	out := &Outcome{Own: own}
	if own != nil && !own.Unlimited() {
		if !ok {
			return out, nil
		}
		out.Applied = append(out.Applied, Applied{Row: *own, Role: constant.LinkRoleOwn, Quantity: m.Quantity})
	}

	mirrors, err := s.mirrors(ctx, tx, m)
	if err != nil {
		return nil, err
	}
	for _, t := range mirrors {
		row, ok, err := s.decrement(ctx, tx, t.key, t.role, m.Quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out.Applied = append(out.Applied, Applied{Row: *row, Role: t.role, Quantity: m.Quantity})
	}
	return out, nil
}

// decrement resolves key and takes qty from its row with the conditional
// update. ok is false when the slot is unconfigured, unlimited or short.
func (s *propagatorImpl) decrement(ctx context.Context, tx *sqlx.Tx, key model.SlotKey, role constant.LinkRole, qty int64) (*model.CapacityRow, bool, error) {
	row, err := s.resolver.ResolveTx(ctx, tx, key)
	if err != nil {
		return nil, false, err
	}
	if row == nil || row.Unlimited() {
		return row, false, nil
	}
	affected, err := s.capacityRepo.ReserveAtomicTx(ctx, tx, row.ID, qty)
	if err != nil {
		return nil, false, err
	}
	if affected == 0 {
		// the row may have been replaced since it was resolved
		row, err = s.resolver.ResolveTx(ctx, tx, key)
		if err != nil {
			return nil, false, err
		}
		if row == nil || row.Unlimited() {
			return row, false, nil
		}
		affected, err = s.capacityRepo.ReserveAtomicTx(ctx, tx, row.ID, qty)
		if err != nil {
			return nil, false, err
		}
	}
	if affected == 0 {
		metrics.InsufficientCapacity.WithLabelValues(string(role)).Inc()
		logger.Warn("[DecrementTx] insufficient capacity, row left unchanged",
			zap.Uint64("row_id", row.ID),
			zap.Uint64("product_id", key.ProductID),
			zap.String("date", key.Date),
			zap.String("role", string(role)),
			zap.Int64("quantity", qty),
		)
		return row, false, nil
	}
	row.AvailableBooking -= qty
	return row, true, nil
}

// IncrementTx gives m.Quantity back to the date rows of the own, overlapping
// and parent slots. Templates are never incremented: a slot without a date
// row was never decremented.
func (s *propagatorImpl) IncrementTx(ctx context.Context, tx *sqlx.Tx, m *Mutation) (*Outcome, error) {
	targets, err := s.targets(ctx, tx, m)
	if err != nil {
		return nil, err
	}
	out := &Outcome{}
	for _, t := range targets {
		row, err := s.capacityRepo.FindDateRowTx(ctx, tx, t.key)
		if err != nil {
			return nil, err
		}
		if t.role == constant.LinkRoleOwn {
			out.Own = row
		}
		if row == nil || row.Unlimited() {
			continue
		}
		affected, err := s.capacityRepo.ReleaseAtomicTx(ctx, tx, row.ID, m.Quantity)
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			continue
		}
		out.Applied = append(out.Applied, Applied{Row: *row, Role: t.role, Quantity: m.Quantity})
	}
	return out, nil
}

// OverlappingKeysTx lists the other time ranges configured for the key's
// date, through a date row or the weekday template, that intersect the key's
// range. Ranges disabled by an inactive date row are left out.
func (s *propagatorImpl) OverlappingKeysTx(ctx context.Context, tx *sqlx.Tx, key model.SlotKey) ([]model.SlotKey, error) {
	own, err := model.ParseTimeRange(key.FromTime, key.ToTime)
	if err != nil {
		return nil, err
	}
	weekday, err := model.WeekdayOf(key.Date)
	if err != nil {
		return nil, err
	}
	rows, err := s.capacityRepo.ListSlotRowsTx(ctx, tx, key.ProductID, key.Date, weekday)
	if err != nil {
		return nil, err
	}

	type slot struct{ from, to string }
	chosen := make(map[slot]model.CapacityRow)
	order := make([]slot, 0, len(rows))
	for _, r := range rows {
		sl := slot{r.FromTime, r.ToTime}
		prev, seen := chosen[sl]
		if !seen {
			order = append(order, sl)
			chosen[sl] = r
			continue
		}
		if prev.IsTemplate() && !r.IsTemplate() {
			chosen[sl] = r
		}
	}

	keys := make([]model.SlotKey, 0)
	for _, sl := range order {
		r := chosen[sl]
		if !r.Active() {
			continue
		}
		if sl.from == key.FromTime && sl.to == key.ToTime {
			continue
		}
		rng, err := model.ParseTimeRange(sl.from, sl.to)
		if err != nil {
			logger.Warn("[OverlappingKeysTx] skipping unparsable slot",
				zap.Uint64("row_id", r.ID), zap.String("from", sl.from), zap.String("to", sl.to))
			continue
		}
		if rng.Overlaps(own) {
			keys = append(keys, model.SlotKey{ProductID: key.ProductID, Date: key.Date, FromTime: sl.from, ToTime: sl.to})
		}
	}
	return keys, nil
}
