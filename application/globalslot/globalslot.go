package globalslot

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/application/propagation"
	"github.com/muhammadheryan/booking-capacity/cmd/config"
	"github.com/muhammadheryan/booking-capacity/constant"
	"github.com/muhammadheryan/booking-capacity/model"
	capacityrepo "github.com/muhammadheryan/booking-capacity/repository/capacity"
	idempotencyrepo "github.com/muhammadheryan/booking-capacity/repository/idempotency"
	peerholdrepo "github.com/muhammadheryan/booking-capacity/repository/peerhold"
	productrepo "github.com/muhammadheryan/booking-capacity/repository/product"
	redisrepo "github.com/muhammadheryan/booking-capacity/repository/redis"
	txrepo "github.com/muhammadheryan/booking-capacity/repository/tx"
	"github.com/muhammadheryan/booking-capacity/utils/logger"
	"github.com/muhammadheryan/booking-capacity/utils/metrics"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

// TaskPublisher puts a task on the background queue, delivered after delay.
type TaskPublisher interface {
	PublishGlobalSlotTask(ctx context.Context, task model.GlobalSlotTask, delay time.Duration) error
}

// Dispatcher hands committed reservations and releases to the background
// worker. Dispatch is best effort and never fails the caller.
type Dispatcher interface {
	Enabled(own *model.CapacityRow) bool
	NewTask(req *model.ReserveRequest, quantity int64, direction constant.SyncDirection) model.GlobalSlotTask
	Dispatch(ctx context.Context, tasks []model.GlobalSlotTask)
}

type GlobalSlotApp interface {
	Dispatcher
	// Process mirrors the task on every peer product. Peers already applied
	// are skipped, so a redelivered task never decrements twice.
	Process(ctx context.Context, task model.GlobalSlotTask) error
	// Handle processes a delivery and schedules a delayed retry on failure.
	// It returns an error only when the retry could not be scheduled.
	Handle(ctx context.Context, task model.GlobalSlotTask) error
}

type globalSlotAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	capacityRepo    capacityrepo.CapacityRepository
	productRepo     productrepo.ProductRepository
	idempotencyRepo idempotencyrepo.IdempotencyRepository
	peerHoldRepo    peerholdrepo.PeerHoldRepository
	redisRepo       redisrepo.Repository
	propagator      propagation.Propagator
	publisher       TaskPublisher
}

func NewGlobalSlotApp(config *config.Config, txRepo txrepo.TxRepository, capacityRepo capacityrepo.CapacityRepository, productRepo productrepo.ProductRepository, idempotencyRepo idempotencyrepo.IdempotencyRepository, peerHoldRepo peerholdrepo.PeerHoldRepository, redisRepo redisrepo.Repository, propagator propagation.Propagator, publisher TaskPublisher) GlobalSlotApp {
	return &globalSlotAppImpl{
		config:          config,
		txRepo:          txRepo,
		capacityRepo:    capacityRepo,
		productRepo:     productRepo,
		idempotencyRepo: idempotencyRepo,
		peerHoldRepo:    peerHoldRepo,
		redisRepo:       redisRepo,
		propagator:      propagator,
		publisher:       publisher,
	}
}

// Enabled reports whether a reservation on the slot must be shared: the store
// runs in global timeslot mode or the slot opted in.
func (s *globalSlotAppImpl) Enabled(own *model.CapacityRow) bool {
	if s.config.Booking.GlobalTimeslot {
		return true
	}
	return own != nil && own.GlobalSlot
}

func (s *globalSlotAppImpl) NewTask(req *model.ReserveRequest, quantity int64, direction constant.SyncDirection) model.GlobalSlotTask {
	return model.GlobalSlotTask{
		TaskID:      uuid.NewString(),
		OrderID:     req.OrderID,
		BookingID:   req.BookingID,
		ProductID:   req.ProductID,
		ParentID:    req.ParentID,
		Quantity:    quantity,
		BookingType: req.BookingType,
		Selection:   req.Selection,
		Direction:   direction,
	}
}

// Dispatch publishes each task for the worker. It runs after the caller's
// commit, so it ignores cancellation of ctx. A task that cannot be published
// is applied inline.
func (s *globalSlotAppImpl) Dispatch(ctx context.Context, tasks []model.GlobalSlotTask) {
	ctx = context.WithoutCancel(ctx)
	for _, task := range tasks {
		if s.publish(ctx, task) {
			metrics.GlobalSlotTasks.WithLabelValues("published").Inc()
			continue
		}
		if err := s.Process(ctx, task); err != nil {
			logger.Error("[Dispatch] global slot task dropped",
				zap.String("task_id", task.TaskID),
				zap.Uint64("order_id", task.OrderID),
				zap.String("error", err.Error()),
			)
			metrics.GlobalSlotTasks.WithLabelValues("dropped").Inc()
			continue
		}
		metrics.GlobalSlotTasks.WithLabelValues("applied_inline").Inc()
	}
}

func (s *globalSlotAppImpl) publish(ctx context.Context, task model.GlobalSlotTask) bool {
	if s.publisher == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := s.publisher.PublishGlobalSlotTask(ctx, task, 0); err != nil {
		logger.Warn("[Dispatch] publish global slot task, applying inline",
			zap.String("task_id", task.TaskID),
			zap.Uint64("order_id", task.OrderID),
			zap.String("error", err.Error()),
		)
		metrics.GlobalSlotTasks.WithLabelValues("publish_failed").Inc()
		return false
	}
	return true
}

func (s *globalSlotAppImpl) Process(ctx context.Context, task model.GlobalSlotTask) error {
	products, err := s.productRepo.ListTimeEnabled(ctx)
	if err != nil {
		logger.Error("[Process] list time enabled products", zap.String("error", err.Error()))
		return err
	}

	var firstErr error
	for i := range products {
		peer := &products[i]
		if peer.ID == task.ProductID || (task.ParentID != 0 && peer.ID == task.ParentID) {
			continue
		}
		if err := s.applyToPeer(ctx, &task, peer); err != nil {
			logger.Error("[Process] apply to peer",
				zap.String("task_id", task.TaskID),
				zap.Uint64("peer_id", peer.ID),
				zap.String("error", err.Error()),
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *globalSlotAppImpl) applyToPeer(ctx context.Context, task *model.GlobalSlotTask, peer *model.BookableProduct) error {
	key := task.IdempotencyKey(peer.ID)
	if done, err := s.redisRepo.IsTaskDone(ctx, key); err == nil && done {
		return nil
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	fresh, err := s.idempotencyRepo.MarkAppliedTx(ctx, tx, key)
	if err != nil {
		return err
	}
	if fresh {
		if task.Direction == constant.SyncDirectionRelease {
			err = s.releasePeerTx(ctx, tx, task, peer)
		} else {
			err = s.reservePeerTx(ctx, tx, task, peer)
		}
		if err != nil {
			return err
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return err
	}
	committed = true

	if err := s.redisRepo.MarkTaskDone(ctx, key, s.config.Booking.DoneMarkerTTL); err != nil {
		logger.Warn("[applyToPeer] mark task done", zap.String("error", err.Error()))
	}
	return nil
}

// reservePeerTx takes the task quantity from the peer's slot and records a
// hold for every row it moved.
func (s *globalSlotAppImpl) reservePeerTx(ctx context.Context, tx *sqlx.Tx, task *model.GlobalSlotTask, peer *model.BookableProduct) error {
	out, err := s.propagator.DecrementTx(ctx, tx, &propagation.Mutation{
		Key:      task.Selection.SlotKey(peer.ID),
		Quantity: task.Quantity,
		Overlap:  peer.OverlapEnabled(),
	})
	if err != nil {
		return err
	}
	for _, a := range out.Applied {
		if _, err := s.peerHoldRepo.InsertTx(ctx, tx, &model.PeerHold{
			OrderID:       task.OrderID,
			BookingID:     task.BookingID,
			PeerID:        peer.ID,
			Selection:     task.Selection.Key(),
			CapacityRowID: a.Row.ID,
			Quantity:      a.Quantity,
		}); err != nil {
			return err
		}
		metrics.CapacityMutations.WithLabelValues("global_reserve", string(a.Role)).Inc()
	}
	return nil
}

// releasePeerTx gives back to each peer row at most the task quantity, and
// never more than the booking's holds on that row. A peer that skipped the
// reservation has no holds and is left alone.
func (s *globalSlotAppImpl) releasePeerTx(ctx context.Context, tx *sqlx.Tx, task *model.GlobalSlotTask, peer *model.BookableProduct) error {
	holds, err := s.peerHoldRepo.ListTx(ctx, tx, task.OrderID, task.BookingID, peer.ID, task.Selection.Key())
	if err != nil {
		return err
	}
	if len(holds) == 0 {
		logger.Debug("[releasePeerTx] nothing held on peer",
			zap.String("task_id", task.TaskID),
			zap.Uint64("peer_id", peer.ID),
		)
		return nil
	}

	remaining := make(map[uint64]int64)
	given := make(map[uint64]int64)
	order := make([]uint64, 0)
	drop := make([]uint64, 0)
	for i := len(holds) - 1; i >= 0; i-- {
		h := holds[i]
		left, seen := remaining[h.CapacityRowID]
		if !seen {
			left = task.Quantity
			order = append(order, h.CapacityRowID)
		}
		take := min(left, h.Quantity)
		if take <= 0 {
			continue
		}
		remaining[h.CapacityRowID] = left - take
		given[h.CapacityRowID] += take
		if take == h.Quantity {
			drop = append(drop, h.ID)
			continue
		}
		if err := s.peerHoldRepo.UpdateQuantityTx(ctx, tx, h.ID, h.Quantity-take); err != nil {
			return err
		}
	}
	if err := s.peerHoldRepo.DeleteTx(ctx, tx, drop); err != nil {
		return err
	}

	for _, rowID := range order {
		if given[rowID] == 0 {
			continue
		}
		if _, err := s.capacityRepo.ReleaseAtomicTx(ctx, tx, rowID, given[rowID]); err != nil {
			return err
		}
		metrics.CapacityMutations.WithLabelValues("global_release", "peer").Inc()
	}
	return nil
}

func (s *globalSlotAppImpl) Handle(ctx context.Context, task model.GlobalSlotTask) error {
	err := s.Process(ctx, task)
	if err == nil {
		metrics.GlobalSlotTasks.WithLabelValues("applied").Inc()
		return nil
	}
	if task.Attempt >= s.config.Booking.MaxRetries {
		logger.Error("[Handle] global slot task exhausted retries",
			zap.String("task_id", task.TaskID),
			zap.Int("attempt", task.Attempt),
			zap.String("error", err.Error()),
		)
		metrics.GlobalSlotTasks.WithLabelValues("exhausted").Inc()
		return nil
	}
	if s.publisher == nil {
		return err
	}
	task.Attempt++
	delay := Backoff(s.config.Booking.RetryBackoff, s.config.Booking.MaxBackoff, task.Attempt)
	logger.Warn("[Handle] retrying global slot task",
		zap.String("task_id", task.TaskID),
		zap.Int("attempt", task.Attempt),
		zap.Duration("delay", delay),
	)
	metrics.GlobalSlotTasks.WithLabelValues("retried").Inc()
	return s.publisher.PublishGlobalSlotTask(ctx, task, delay)
}

// Backoff doubles base for every attempt after the first, capped at ceiling.
func Backoff(base, ceiling time.Duration, attempt int) time.Duration {
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= ceiling {
			return ceiling
		}
	}
	if delay > ceiling {
		return ceiling
	}
	return delay
}
