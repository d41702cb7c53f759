package globalslot_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/application/booking"
	"github.com/muhammadheryan/booking-capacity/application/globalslot"
	"github.com/muhammadheryan/booking-capacity/application/propagation"
	"github.com/muhammadheryan/booking-capacity/application/release"
	"github.com/muhammadheryan/booking-capacity/application/reservation"
	"github.com/muhammadheryan/booking-capacity/application/resolver"
	"github.com/muhammadheryan/booking-capacity/application/sanity"
	"github.com/muhammadheryan/booking-capacity/cmd/config"
	"github.com/muhammadheryan/booking-capacity/constant"
	globalslotmocks "github.com/muhammadheryan/booking-capacity/mocks/application/globalslot"
	propagationmocks "github.com/muhammadheryan/booking-capacity/mocks/application/propagation"
	"github.com/muhammadheryan/booking-capacity/mocks/memory"
	capacitymocks "github.com/muhammadheryan/booking-capacity/mocks/repository/capacity"
	idempotencymocks "github.com/muhammadheryan/booking-capacity/mocks/repository/idempotency"
	peerholdmocks "github.com/muhammadheryan/booking-capacity/mocks/repository/peerhold"
	productmocks "github.com/muhammadheryan/booking-capacity/mocks/repository/product"
	redismocks "github.com/muhammadheryan/booking-capacity/mocks/repository/redis"
	txmocks "github.com/muhammadheryan/booking-capacity/mocks/repository/tx"
	"github.com/muhammadheryan/booking-capacity/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig(global bool) *config.Config {
	return &config.Config{Booking: config.BookingConfig{
		GlobalTimeslot: global,
		MaxRetries:     3,
		RetryBackoff:   2 * time.Second,
		MaxBackoff:     10 * time.Second,
		DoneMarkerTTL:  time.Hour,
	}}
}

func TestBackoff(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 0, want: 2 * time.Second},
		{attempt: 1, want: 2 * time.Second},
		{attempt: 2, want: 4 * time.Second},
		{attempt: 3, want: 8 * time.Second},
		{attempt: 4, want: 10 * time.Second},
		{attempt: 20, want: 10 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, globalslot.Backoff(2*time.Second, 10*time.Second, tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestGlobalSlotApp_Enabled(t *testing.T) {
	store := globalslot.NewGlobalSlotApp(testConfig(true), nil, nil, nil, nil, nil, nil, nil, nil)
	assert.True(t, store.Enabled(nil))

	perSlot := globalslot.NewGlobalSlotApp(testConfig(false), nil, nil, nil, nil, nil, nil, nil, nil)
	assert.False(t, perSlot.Enabled(nil))
	assert.False(t, perSlot.Enabled(&model.CapacityRow{}))
	assert.True(t, perSlot.Enabled(&model.CapacityRow{GlobalSlot: true}))
}

type fields struct {
	txRepo          *txmocks.TxRepository
	capacityRepo    *capacitymocks.CapacityRepository
	productRepo     *productmocks.ProductRepository
	idempotencyRepo *idempotencymocks.IdempotencyRepository
	peerHoldRepo    *peerholdmocks.PeerHoldRepository
	redisRepo       *redismocks.Repository
	propagator      *propagationmocks.Propagator
	publisher       *globalslotmocks.TaskPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:          txmocks.NewTxRepository(t),
		capacityRepo:    capacitymocks.NewCapacityRepository(t),
		productRepo:     productmocks.NewProductRepository(t),
		idempotencyRepo: idempotencymocks.NewIdempotencyRepository(t),
		peerHoldRepo:    peerholdmocks.NewPeerHoldRepository(t),
		redisRepo:       redismocks.NewRepository(t),
		propagator:      propagationmocks.NewPropagator(t),
		publisher:       globalslotmocks.NewTaskPublisher(t),
	}
}

func (f fields) app() globalslot.GlobalSlotApp {
	return globalslot.NewGlobalSlotApp(testConfig(true), f.txRepo, f.capacityRepo, f.productRepo, f.idempotencyRepo,
		f.peerHoldRepo, f.redisRepo, f.propagator, f.publisher)
}

// withoutPublisher builds the app with no queue at all.
func (f fields) withoutPublisher() globalslot.GlobalSlotApp {
	return globalslot.NewGlobalSlotApp(testConfig(true), f.txRepo, f.capacityRepo, f.productRepo, f.idempotencyRepo,
		f.peerHoldRepo, f.redisRepo, f.propagator, nil)
}

func task(attempt int) model.GlobalSlotTask {
	return model.GlobalSlotTask{
		TaskID:      "task-1",
		OrderID:     100,
		BookingID:   11,
		ProductID:   7,
		Quantity:    1,
		BookingType: constant.BookingTypeFixedTime,
		Selection:   model.Selection{StartDate: "2026-03-09", FromTime: "09:00", ToTime: "10:00"},
		Direction:   constant.SyncDirectionReserve,
		Attempt:     attempt,
	}
}

func TestGlobalSlotApp_Process(t *testing.T) {
	peers := []model.BookableProduct{
		{ID: 7, BookingType: constant.BookingTypeFixedTime, TimeEnabled: true},
		{ID: 8, BookingType: constant.BookingTypeFixedTime, TimeEnabled: true},
		{ID: 9, BookingType: constant.BookingTypeOverlappingTime, TimeEnabled: true},
	}
	tk := task(0)

	tests := []struct {
		name     string
		mockCall func(f fields, tx *sqlx.Tx)
		wantErr  bool
	}{
		{
			name: "success: every peer but the source is decremented",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.productRepo.On("ListTimeEnabled", mock.Anything).Return(peers, nil).Once()
				for _, p := range peers[1:] {
					key := tk.IdempotencyKey(p.ID)
					f.redisRepo.On("IsTaskDone", mock.Anything, key).Return(false, nil).Once()
					f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
					f.idempotencyRepo.On("MarkAppliedTx", mock.Anything, tx, key).Return(true, nil).Once()
					f.propagator.On("DecrementTx", mock.Anything, tx, &propagation.Mutation{
						Key: tk.Selection.SlotKey(p.ID), Quantity: 1, Overlap: p.OverlapEnabled(),
					}).Return(&propagation.Outcome{}, nil).Once()
					f.txRepo.On("CommitTx", tx).Return(nil).Once()
					f.redisRepo.On("MarkTaskDone", mock.Anything, key, time.Hour).Return(nil).Once()
				}
			},
		},
		{
			name: "success: applied peer rows are recorded as holds",
			mockCall: func(f fields, tx *sqlx.Tx) {
				key := tk.IdempotencyKey(8)
				f.productRepo.On("ListTimeEnabled", mock.Anything).Return(peers[:2], nil).Once()
				f.redisRepo.On("IsTaskDone", mock.Anything, key).Return(false, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.idempotencyRepo.On("MarkAppliedTx", mock.Anything, tx, key).Return(true, nil).Once()
				f.propagator.On("DecrementTx", mock.Anything, tx, mock.Anything).Return(&propagation.Outcome{
					Applied: []propagation.Applied{{Row: model.CapacityRow{ID: 40}, Role: constant.LinkRoleOwn, Quantity: 1}},
				}, nil).Once()
				f.peerHoldRepo.On("InsertTx", mock.Anything, tx, &model.PeerHold{
					OrderID: 100, BookingID: 11, PeerID: 8, Selection: tk.Selection.Key(), CapacityRowID: 40, Quantity: 1,
				}).Return(uint64(1), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.redisRepo.On("MarkTaskDone", mock.Anything, key, time.Hour).Return(nil).Once()
			},
		},
		{
			name: "success: peers marked done in redis are skipped",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.productRepo.On("ListTimeEnabled", mock.Anything).Return(peers[:2], nil).Once()
				f.redisRepo.On("IsTaskDone", mock.Anything, tk.IdempotencyKey(8)).Return(true, nil).Once()
			},
		},
		{
			name: "success: peer already applied commits without decrementing",
			mockCall: func(f fields, tx *sqlx.Tx) {
				key := tk.IdempotencyKey(8)
				f.productRepo.On("ListTimeEnabled", mock.Anything).Return(peers[:2], nil).Once()
				f.redisRepo.On("IsTaskDone", mock.Anything, key).Return(false, errors.New("redis down")).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.idempotencyRepo.On("MarkAppliedTx", mock.Anything, tx, key).Return(false, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.redisRepo.On("MarkTaskDone", mock.Anything, key, time.Hour).Return(errors.New("redis down")).Once()
			},
		},
		{
			name: "error: failed peer is rolled back and reported",
			mockCall: func(f fields, tx *sqlx.Tx) {
				key := tk.IdempotencyKey(8)
				f.productRepo.On("ListTimeEnabled", mock.Anything).Return(peers[:2], nil).Once()
				f.redisRepo.On("IsTaskDone", mock.Anything, key).Return(false, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.idempotencyRepo.On("MarkAppliedTx", mock.Anything, tx, key).Return(true, nil).Once()
				f.propagator.On("DecrementTx", mock.Anything, tx, mock.Anything).Return(nil, errors.New("deadlock")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tx := &sqlx.Tx{}
			tt.mockCall(f, tx)

			err := f.app().Process(context.Background(), tk)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Process() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGlobalSlotApp_Handle(t *testing.T) {
	tests := []struct {
		name     string
		task     model.GlobalSlotTask
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name: "failure is republished with backoff",
			task: task(1),
			mockCall: func(f fields) {
				f.productRepo.On("ListTimeEnabled", mock.Anything).Return(nil, errors.New("db down")).Once()
				f.publisher.On("PublishGlobalSlotTask", mock.Anything, mock.MatchedBy(func(tk model.GlobalSlotTask) bool {
					return tk.Attempt == 2 && tk.TaskID == "task-1"
				}), 4*time.Second).Return(nil).Once()
			},
		},
		{
			name: "exhausted task is dropped",
			task: task(3),
			mockCall: func(f fields) {
				f.productRepo.On("ListTimeEnabled", mock.Anything).Return(nil, errors.New("db down")).Once()
			},
		},
		{
			name: "retry that cannot be scheduled is reported",
			task: task(0),
			mockCall: func(f fields) {
				f.productRepo.On("ListTimeEnabled", mock.Anything).Return(nil, errors.New("db down")).Once()
				f.publisher.On("PublishGlobalSlotTask", mock.Anything, mock.Anything, 2*time.Second).Return(errors.New("channel closed")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			err := f.app().Handle(context.Background(), tt.task)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Handle() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGlobalSlotApp_ProcessRelease(t *testing.T) {
	peers := []model.BookableProduct{{ID: 8, BookingType: constant.BookingTypeFixedTime, TimeEnabled: true}}
	tk := task(0)
	tk.Direction = constant.SyncDirectionRelease
	tk.Quantity = 2
	key := tk.IdempotencyKey(8)
	sel := tk.Selection.Key()

	tests := []struct {
		name     string
		holds    []model.PeerHold
		mockCall func(f fields, tx *sqlx.Tx)
	}{
		{
			name: "peer that skipped the reservation gets nothing back",
		},
		{
			name: "holds are consumed newest first per row",
			holds: []model.PeerHold{
				{ID: 1, CapacityRowID: 40, Quantity: 1},
				{ID: 2, CapacityRowID: 41, Quantity: 3},
				{ID: 3, CapacityRowID: 40, Quantity: 3},
			},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.peerHoldRepo.On("UpdateQuantityTx", mock.Anything, tx, uint64(3), int64(1)).Return(nil).Once()
				f.peerHoldRepo.On("UpdateQuantityTx", mock.Anything, tx, uint64(2), int64(1)).Return(nil).Once()
				f.peerHoldRepo.On("DeleteTx", mock.Anything, tx, []uint64{}).Return(nil).Once()
				f.capacityRepo.On("ReleaseAtomicTx", mock.Anything, tx, uint64(40), int64(2)).Return(int64(1), nil).Once()
				f.capacityRepo.On("ReleaseAtomicTx", mock.Anything, tx, uint64(41), int64(2)).Return(int64(1), nil).Once()
			},
		},
		{
			name:  "release never exceeds what was held",
			holds: []model.PeerHold{{ID: 1, CapacityRowID: 40, Quantity: 1}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.peerHoldRepo.On("DeleteTx", mock.Anything, tx, []uint64{1}).Return(nil).Once()
				f.capacityRepo.On("ReleaseAtomicTx", mock.Anything, tx, uint64(40), int64(1)).Return(int64(1), nil).Once()
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tx := &sqlx.Tx{}
			f.productRepo.On("ListTimeEnabled", mock.Anything).Return(peers, nil).Once()
			f.redisRepo.On("IsTaskDone", mock.Anything, key).Return(false, nil).Once()
			f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
			f.idempotencyRepo.On("MarkAppliedTx", mock.Anything, tx, key).Return(true, nil).Once()
			f.peerHoldRepo.On("ListTx", mock.Anything, tx, uint64(100), uint64(11), uint64(8), sel).Return(tt.holds, nil).Once()
			if tt.mockCall != nil {
				tt.mockCall(f, tx)
			}
			f.txRepo.On("CommitTx", tx).Return(nil).Once()
			f.redisRepo.On("MarkTaskDone", mock.Anything, key, time.Hour).Return(nil).Once()

			require.NoError(t, f.app().Process(context.Background(), tk))
		})
	}
}

func TestGlobalSlotApp_Dispatch(t *testing.T) {
	t.Run("failed publish is applied inline", func(t *testing.T) {
		f := newFields(t)
		tasks := []model.GlobalSlotTask{task(0), task(0)}
		tasks[1].TaskID = "task-2"
		f.publisher.On("PublishGlobalSlotTask", mock.Anything, tasks[0], time.Duration(0)).Return(errors.New("closed")).Once()
		f.publisher.On("PublishGlobalSlotTask", mock.Anything, tasks[1], time.Duration(0)).Return(nil).Once()
		f.productRepo.On("ListTimeEnabled", mock.Anything).Return([]model.BookableProduct{}, nil).Once()

		f.app().Dispatch(context.Background(), tasks)
	})

	t.Run("no publisher applies inline", func(t *testing.T) {
		f := newFields(t)
		f.productRepo.On("ListTimeEnabled", mock.Anything).Return(nil, errors.New("db down")).Once()

		f.withoutPublisher().Dispatch(context.Background(), []model.GlobalSlotTask{task(0)})
	})

	t.Run("cancelled request still publishes", func(t *testing.T) {
		f := newFields(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		f.publisher.On("PublishGlobalSlotTask", mock.MatchedBy(func(ctx context.Context) bool {
			return ctx.Err() == nil
		}), mock.Anything, time.Duration(0)).Return(nil).Once()

		f.app().Dispatch(ctx, []model.GlobalSlotTask{task(0)})
	})
}

// Two products share a Monday template in global timeslot mode. A
// reservation on one is mirrored on the other by the background task, once.
func TestGlobalSlotApp_SharedSlotScenario(t *testing.T) {
	store := memory.NewStore()
	store.AddProduct(model.BookableProduct{ID: 7, BookingType: constant.BookingTypeFixedTime, TimeEnabled: true})
	store.AddProduct(model.BookableProduct{ID: 8, BookingType: constant.BookingTypeFixedTime, TimeEnabled: true})
	store.AddTemplate(7, 1, "09:00", "10:00", 3)
	tplB := store.AddTemplate(8, 1, "09:00", "10:00", 3)

	capacityRepo := store.CapacityRepository()
	prop := propagation.NewPropagator(capacityRepo, resolver.NewResolver(capacityRepo))

	redisRepo := redismocks.NewRepository(t)
	redisRepo.On("IsTaskDone", mock.Anything, mock.Anything).Return(false, nil)
	redisRepo.On("MarkTaskDone", mock.Anything, mock.Anything, time.Hour).Return(nil)

	var queued []model.GlobalSlotTask
	publisher := globalslotmocks.NewTaskPublisher(t)
	publisher.On("PublishGlobalSlotTask", mock.Anything, mock.Anything, time.Duration(0)).
		Run(func(args mock.Arguments) { queued = append(queued, args.Get(1).(model.GlobalSlotTask)) }).
		Return(nil)

	app := globalslot.NewGlobalSlotApp(testConfig(true), store.TxRepository(), capacityRepo, store.ProductRepository(),
		store.IdempotencyRepository(), store.PeerHoldRepository(), redisRepo, prop, publisher)
	reservations := reservation.NewReservationApp(store.TxRepository(), capacityRepo, store.LinkRepository(), prop, app)

	req := &model.ReserveRequest{
		OrderID: 100, BookingID: 11, ProductID: 7, Quantity: 1,
		BookingType: constant.BookingTypeFixedTime,
		Selection:   model.Selection{StartDate: "2026-03-09", FromTime: "09:00", ToTime: "10:00"},
	}
	_, err := reservations.Reserve(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, queued, 1)

	keyB := model.SlotKey{ProductID: 8, Date: "2026-03-09", FromTime: "09:00", ToTime: "10:00"}
	assert.Nil(t, store.DateRow(keyB), "peer untouched until the worker runs")

	require.NoError(t, app.Handle(context.Background(), queued[0]))
	rowB := store.DateRow(keyB)
	require.NotNil(t, rowB)
	assert.Equal(t, int64(2), rowB.AvailableBooking)
	assert.Equal(t, int64(3), store.Row(tplB).AvailableBooking)

	// redelivery
	require.NoError(t, app.Handle(context.Background(), queued[0]))
	assert.Equal(t, int64(2), store.DateRow(keyB).AvailableBooking)

	ownRow := store.DateRow(model.SlotKey{ProductID: 7, Date: "2026-03-09", FromTime: "09:00", ToTime: "10:00"})
	assert.Equal(t, int64(2), ownRow.AvailableBooking, "source is not mirrored onto itself")
}

type sharedLedger struct {
	store       *memory.Store
	app         globalslot.GlobalSlotApp
	reservation reservation.ReservationApp
	release     release.ReleaseApp
	booking     booking.BookingApp
	queued      *[]model.GlobalSlotTask
}

func newSharedLedger(t *testing.T) sharedLedger {
	store := memory.NewStore()
	capacityRepo := store.CapacityRepository()
	res := resolver.NewResolver(capacityRepo)
	prop := propagation.NewPropagator(capacityRepo, res)

	redisRepo := redismocks.NewRepository(t)
	redisRepo.On("IsTaskDone", mock.Anything, mock.Anything).Return(false, nil).Maybe()
	redisRepo.On("MarkTaskDone", mock.Anything, mock.Anything, time.Hour).Return(nil).Maybe()

	queued := make([]model.GlobalSlotTask, 0)
	publisher := globalslotmocks.NewTaskPublisher(t)
	publisher.On("PublishGlobalSlotTask", mock.Anything, mock.Anything, time.Duration(0)).
		Run(func(args mock.Arguments) { queued = append(queued, args.Get(1).(model.GlobalSlotTask)) }).
		Return(nil).Maybe()

	app := globalslot.NewGlobalSlotApp(testConfig(true), store.TxRepository(), capacityRepo, store.ProductRepository(),
		store.IdempotencyRepository(), store.PeerHoldRepository(), redisRepo, prop, publisher)
	reservations := reservation.NewReservationApp(store.TxRepository(), capacityRepo, store.LinkRepository(), prop, app)
	releases := release.NewReleaseApp(store.TxRepository(), capacityRepo, store.LinkRepository(), store.BookingRepository(),
		store.ProductRepository(), res, prop, app)
	sanityApp := sanity.NewSanityApp(store.TxRepository(), capacityRepo, store.LinkRepository(), store.BookingRepository(),
		store.ProductRepository(), res, prop)

	return sharedLedger{
		store:       store,
		app:         app,
		reservation: reservations,
		release:     releases,
		booking: booking.NewBookingApp(store.TxRepository(), store.BookingRepository(), store.ProductRepository(),
			reservations, releases, sanityApp, app, nil),
		queued: &queued,
	}
}

func (l sharedLedger) drain(t *testing.T, from int) {
	t.Helper()
	for _, tk := range (*l.queued)[from:] {
		require.NoError(t, l.app.Handle(context.Background(), tk))
	}
}

func mondaySlot(productID uint64) model.SlotKey {
	return model.SlotKey{ProductID: productID, Date: "2026-03-09", FromTime: "09:00", ToTime: "10:00"}
}

// A peer whose slot was full skipped the reservation; the release that
// follows gives back only what each peer actually gave up.
func TestGlobalSlotApp_ReleaseSkippedPeerScenario(t *testing.T) {
	l := newSharedLedger(t)
	for _, id := range []uint64{7, 8, 9} {
		l.store.AddProduct(model.BookableProduct{ID: id, BookingType: constant.BookingTypeFixedTime, TimeEnabled: true})
	}
	l.store.AddTemplate(7, 1, "09:00", "10:00", 3)
	l.store.AddTemplate(8, 1, "09:00", "10:00", 3)
	l.store.AddRow(model.CapacityRow{
		ProductID: 9, StartDate: "2026-03-09", FromTime: "09:00", ToTime: "10:00", TotalBooking: 2, AvailableBooking: 0,
		Status: constant.RowStatusActive, Kind: constant.RowKindCounter,
	})
	b := model.Booking{ID: 11, OrderID: 100, ProductID: 7, BookingType: constant.BookingTypeFixedTime,
		StartDate: "2026-03-09", FromTime: "09:00", ToTime: "10:00", Quantity: 1, Status: constant.BookingStatusPaid}
	l.store.AddBooking(b)

	_, err := l.reservation.Reserve(context.Background(), model.NewReserveRequest(&b, 1, false))
	require.NoError(t, err)
	require.Len(t, *l.queued, 1)
	l.drain(t, 0)
	assert.Equal(t, int64(2), l.store.DateRow(mondaySlot(8)).AvailableBooking)
	assert.Equal(t, int64(0), l.store.DateRow(mondaySlot(9)).AvailableBooking, "full peer skipped")
	require.Len(t, l.store.Holds(), 1)
	assert.Equal(t, uint64(8), l.store.Holds()[0].PeerID)

	_, err = l.release.Release(context.Background(), 100, 11, 1)
	require.NoError(t, err)
	require.Len(t, *l.queued, 2)
	l.drain(t, 1)
	assert.Equal(t, int64(3), l.store.DateRow(mondaySlot(8)).AvailableBooking)
	assert.Equal(t, int64(0), l.store.DateRow(mondaySlot(9)).AvailableBooking, "nothing given to a peer that gave nothing")
	assert.Empty(t, l.store.Holds())
}

// Placing an order twice whose own slot is unconfigured shares the booking
// with the peers once, and cancelling it gives the share back.
func TestGlobalSlotApp_RepeatedPlaceOrderScenario(t *testing.T) {
	l := newSharedLedger(t)
	l.store.AddProduct(model.BookableProduct{ID: 7, BookingType: constant.BookingTypeFixedTime, TimeEnabled: true})
	l.store.AddProduct(model.BookableProduct{ID: 8, BookingType: constant.BookingTypeFixedTime, TimeEnabled: true})
	l.store.AddTemplate(8, 1, "09:00", "10:00", 3)
	l.store.AddBooking(model.Booking{ID: 11, OrderID: 100, ProductID: 7, BookingType: constant.BookingTypeFixedTime,
		StartDate: "2026-03-09", FromTime: "09:00", ToTime: "10:00", Quantity: 1, Status: constant.BookingStatusPaid})

	_, err := l.booking.PlaceOrder(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, *l.queued, 1)
	l.drain(t, 0)
	assert.Equal(t, int64(2), l.store.DateRow(mondaySlot(8)).AvailableBooking)
	links := l.store.Links()
	require.Len(t, links, 1)
	assert.Equal(t, constant.LinkRoleShared, links[0].Role)

	// the placed event arrives again
	_, err = l.booking.PlaceOrder(context.Background(), 100)
	require.NoError(t, err)
	assert.Len(t, *l.queued, 1, "no second task")
	assert.Equal(t, int64(2), l.store.DateRow(mondaySlot(8)).AvailableBooking)

	_, err = l.booking.CancelOrder(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, *l.queued, 2)
	l.drain(t, 1)
	assert.Equal(t, int64(3), l.store.DateRow(mondaySlot(8)).AvailableBooking)
	assert.Empty(t, l.store.Links())
	assert.Nil(t, l.store.DateRow(mondaySlot(7)), "unconfigured slot never materialized")
}

// Without a queue the task is mirrored before Dispatch returns.
func TestGlobalSlotApp_InlineFallbackScenario(t *testing.T) {
	store := memory.NewStore()
	store.AddProduct(model.BookableProduct{ID: 7, BookingType: constant.BookingTypeFixedTime, TimeEnabled: true})
	store.AddProduct(model.BookableProduct{ID: 8, BookingType: constant.BookingTypeFixedTime, TimeEnabled: true})
	store.AddTemplate(7, 1, "09:00", "10:00", 3)
	store.AddTemplate(8, 1, "09:00", "10:00", 3)

	capacityRepo := store.CapacityRepository()
	prop := propagation.NewPropagator(capacityRepo, resolver.NewResolver(capacityRepo))
	redisRepo := redismocks.NewRepository(t)
	redisRepo.On("IsTaskDone", mock.Anything, mock.Anything).Return(false, nil)
	redisRepo.On("MarkTaskDone", mock.Anything, mock.Anything, time.Hour).Return(nil)

	app := globalslot.NewGlobalSlotApp(testConfig(true), store.TxRepository(), capacityRepo, store.ProductRepository(),
		store.IdempotencyRepository(), store.PeerHoldRepository(), redisRepo, prop, nil)
	reservations := reservation.NewReservationApp(store.TxRepository(), capacityRepo, store.LinkRepository(), prop, app)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := reservations.Reserve(ctx, &model.ReserveRequest{
		OrderID: 100, BookingID: 11, ProductID: 7, Quantity: 1,
		BookingType: constant.BookingTypeFixedTime,
		Selection:   model.Selection{StartDate: "2026-03-09", FromTime: "09:00", ToTime: "10:00"},
	})
	cancel()
	require.NoError(t, err)
	require.NotNil(t, store.DateRow(mondaySlot(8)))
	assert.Equal(t, int64(2), store.DateRow(mondaySlot(8)).AvailableBooking)
}
