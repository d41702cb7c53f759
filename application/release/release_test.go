package release_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/application/propagation"
	"github.com/muhammadheryan/booking-capacity/application/release"
	"github.com/muhammadheryan/booking-capacity/application/reservation"
	"github.com/muhammadheryan/booking-capacity/application/resolver"
	"github.com/muhammadheryan/booking-capacity/constant"
	globalslotmocks "github.com/muhammadheryan/booking-capacity/mocks/application/globalslot"
	propagationmocks "github.com/muhammadheryan/booking-capacity/mocks/application/propagation"
	resolvermocks "github.com/muhammadheryan/booking-capacity/mocks/application/resolver"
	"github.com/muhammadheryan/booking-capacity/mocks/memory"
	bookingmocks "github.com/muhammadheryan/booking-capacity/mocks/repository/booking"
	capacitymocks "github.com/muhammadheryan/booking-capacity/mocks/repository/capacity"
	linkmocks "github.com/muhammadheryan/booking-capacity/mocks/repository/link"
	productmocks "github.com/muhammadheryan/booking-capacity/mocks/repository/product"
	txmocks "github.com/muhammadheryan/booking-capacity/mocks/repository/tx"
	"github.com/muhammadheryan/booking-capacity/model"
	cerr "github.com/muhammadheryan/booking-capacity/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	txRepo       *txmocks.TxRepository
	capacityRepo *capacitymocks.CapacityRepository
	linkRepo     *linkmocks.LinkRepository
	bookingRepo  *bookingmocks.BookingRepository
	productRepo  *productmocks.ProductRepository
	resolver     *resolvermocks.Resolver
	propagator   *propagationmocks.Propagator
	dispatcher   *globalslotmocks.Dispatcher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:       txmocks.NewTxRepository(t),
		capacityRepo: capacitymocks.NewCapacityRepository(t),
		linkRepo:     linkmocks.NewLinkRepository(t),
		bookingRepo:  bookingmocks.NewBookingRepository(t),
		productRepo:  productmocks.NewProductRepository(t),
		resolver:     resolvermocks.NewResolver(t),
		propagator:   propagationmocks.NewPropagator(t),
		dispatcher:   globalslotmocks.NewDispatcher(t),
	}
}

func (f fields) app() release.ReleaseApp {
	return release.NewReleaseApp(f.txRepo, f.capacityRepo, f.linkRepo, f.bookingRepo, f.productRepo, f.resolver, f.propagator, f.dispatcher)
}

func link(id, bookingID, rowID uint64, qty int64, role constant.LinkRole, kind constant.RowKind, productID uint64, date string) model.LinkedRow {
	return model.LinkedRow{
		OrderBookingLink: model.OrderBookingLink{ID: id, OrderID: 100, BookingID: bookingID, CapacityRowID: rowID, Quantity: qty, Role: role},
		ProductID:        productID,
		StartDate:        date,
		Kind:             kind,
	}
}

func TestReleaseApp_ReleaseTx(t *testing.T) {
	singleDay := &model.Booking{ID: 11, OrderID: 100, ProductID: 7, ParentID: 3, BookingType: constant.BookingTypeSingleDay, StartDate: "2026-03-10", Quantity: 2}
	timed := &model.Booking{ID: 12, OrderID: 100, ProductID: 7, BookingType: constant.BookingTypeFixedTime, StartDate: "2026-03-10", FromTime: "09:00", ToTime: "10:00", Quantity: 2}
	stay := &model.Booking{ID: 13, OrderID: 100, ProductID: 8, BookingType: constant.BookingTypeMultiDay, StartDate: "2026-03-10", EndDate: "2026-03-12", Quantity: 2}

	tests := []struct {
		name         string
		booking      *model.Booking
		qty          int64
		mockCall     func(f fields, tx *sqlx.Tx)
		wantReleased int64
		wantTasks    int
		wantErr      bool
		errCode      constant.ErrorType
	}{
		{
			name:    "success: partial release shrinks own and parent links",
			booking: singleDay,
			qty:     1,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.linkRepo.On("ListByOrderTx", mock.Anything, tx, uint64(100)).Return([]model.LinkedRow{
					link(1, 11, 5, 2, constant.LinkRoleOwn, constant.RowKindCounter, 7, "2026-03-10"),
					link(2, 11, 9, 2, constant.LinkRoleParent, constant.RowKindCounter, 3, "2026-03-10"),
					link(3, 99, 5, 1, constant.LinkRoleOwn, constant.RowKindCounter, 7, "2026-03-10"),
				}, nil).Once()
				f.linkRepo.On("UpdateQuantityTx", mock.Anything, tx, uint64(1), int64(1)).Return(nil).Once()
				f.capacityRepo.On("ReleaseAtomicTx", mock.Anything, tx, uint64(5), int64(1)).Return(int64(1), nil).Once()
				f.linkRepo.On("UpdateQuantityTx", mock.Anything, tx, uint64(2), int64(1)).Return(nil).Once()
				f.capacityRepo.On("ReleaseAtomicTx", mock.Anything, tx, uint64(9), int64(1)).Return(int64(1), nil).Once()
				f.linkRepo.On("DeleteTx", mock.Anything, tx, []uint64(nil)).Return(nil).Once()
			},
			wantReleased: 1,
		},
		{
			name:    "success: full release of a shared slot emits the inverse task",
			booking: timed,
			qty:     2,
			mockCall: func(f fields, tx *sqlx.Tx) {
				own := &model.CapacityRow{ID: 5, TotalBooking: 4, AvailableBooking: 4, Status: constant.RowStatusActive, GlobalSlot: true}
				f.linkRepo.On("ListByOrderTx", mock.Anything, tx, uint64(100)).Return([]model.LinkedRow{
					link(1, 12, 5, 2, constant.LinkRoleOwn, constant.RowKindCounter, 7, "2026-03-10"),
				}, nil).Once()
				f.capacityRepo.On("ReleaseAtomicTx", mock.Anything, tx, uint64(5), int64(2)).Return(int64(1), nil).Once()
				f.linkRepo.On("DeleteTx", mock.Anything, tx, []uint64{1}).Return(nil).Once()
				f.resolver.On("PeekTx", mock.Anything, tx, timed.Selection().SlotKey(7)).Return(own, nil).Once()
				f.dispatcher.On("Enabled", own).Return(true).Once()
				f.dispatcher.On("NewTask", mock.MatchedBy(func(r *model.ReserveRequest) bool {
					return r.BookingID == 12 && r.Quantity == 2
				}), int64(2), constant.SyncDirectionRelease).Return(model.GlobalSlotTask{TaskID: "t1"}).Once()
			},
			wantReleased: 2,
			wantTasks:    1,
		},
		{
			name:    "success: shared marker sizes the inverse task of an unconfigured slot",
			booking: timed,
			qty:     1,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.linkRepo.On("ListByOrderTx", mock.Anything, tx, uint64(100)).Return([]model.LinkedRow{
					link(1, 12, 0, 2, constant.LinkRoleShared, "", 0, ""),
				}, nil).Once()
				f.linkRepo.On("DeleteTx", mock.Anything, tx, []uint64(nil)).Return(nil).Once()
				f.linkRepo.On("UpdateQuantityTx", mock.Anything, tx, uint64(1), int64(1)).Return(nil).Once()
				f.resolver.On("PeekTx", mock.Anything, tx, timed.Selection().SlotKey(7)).Return(nil, nil).Once()
				f.dispatcher.On("Enabled", (*model.CapacityRow)(nil)).Return(true).Once()
				f.dispatcher.On("NewTask", mock.Anything, int64(1), constant.SyncDirectionRelease).
					Return(model.GlobalSlotTask{TaskID: "t2"}).Once()
			},
			wantReleased: 0,
			wantTasks:    1,
		},
		{
			name:    "success: vanished row gives nothing back",
			booking: timed,
			qty:     2,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.linkRepo.On("ListByOrderTx", mock.Anything, tx, uint64(100)).Return([]model.LinkedRow{
					link(1, 12, 5, 2, constant.LinkRoleOwn, constant.RowKindCounter, 7, "2026-03-10"),
				}, nil).Once()
				f.capacityRepo.On("ReleaseAtomicTx", mock.Anything, tx, uint64(5), int64(2)).Return(int64(0), nil).Once()
				f.linkRepo.On("DeleteTx", mock.Anything, tx, []uint64{1}).Return(nil).Once()
				f.resolver.On("PeekTx", mock.Anything, tx, mock.Anything).Return(nil, nil).Once()
				f.dispatcher.On("Enabled", (*model.CapacityRow)(nil)).Return(false).Once()
			},
			wantReleased: 0,
		},
		{
			name:    "success: unit rows removed newest first per night",
			booking: stay,
			qty:     1,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.linkRepo.On("ListByOrderTx", mock.Anything, tx, uint64(100)).Return([]model.LinkedRow{
					link(1, 13, 20, 1, constant.LinkRoleUnit, constant.RowKindUnit, 8, "2026-03-10"),
					link(2, 13, 21, 1, constant.LinkRoleUnit, constant.RowKindUnit, 8, "2026-03-10"),
					link(3, 13, 22, 1, constant.LinkRoleUnit, constant.RowKindUnit, 8, "2026-03-11"),
					link(4, 13, 23, 1, constant.LinkRoleUnit, constant.RowKindUnit, 8, "2026-03-11"),
				}, nil).Once()
				f.linkRepo.On("DeleteTx", mock.Anything, tx, []uint64(nil)).Return(nil).Once()
				f.linkRepo.On("DeleteTx", mock.Anything, tx, []uint64{2, 4}).Return(nil).Once()
				f.capacityRepo.On("DeleteTx", mock.Anything, tx, []uint64{21, 23}).Return(int64(2), nil).Once()
			},
			wantReleased: 1,
		},
		{
			name:    "success: unlinked counter booking falls back to its recorded slot",
			booking: singleDay,
			qty:     2,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.linkRepo.On("ListByOrderTx", mock.Anything, tx, uint64(100)).Return([]model.LinkedRow{}, nil).Once()
				f.productRepo.On("GetByID", mock.Anything, uint64(7)).
					Return(&model.BookableProduct{ID: 7, BookingType: constant.BookingTypeSingleDay}, nil).Once()
				f.propagator.On("IncrementTx", mock.Anything, tx, &propagation.Mutation{
					Key: model.SlotKey{ProductID: 7, Date: "2026-03-10"}, ParentID: 3, Quantity: 2,
				}).Return(&propagation.Outcome{Applied: []propagation.Applied{
					{Row: model.CapacityRow{ID: 5}, Role: constant.LinkRoleOwn, Quantity: 2},
					{Row: model.CapacityRow{ID: 9}, Role: constant.LinkRoleParent, Quantity: 2},
				}}, nil).Once()
			},
			wantReleased: 2,
		},
		{
			name:    "success: unlinked unit booking is never guessed",
			booking: stay,
			qty:     2,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.linkRepo.On("ListByOrderTx", mock.Anything, tx, uint64(100)).Return([]model.LinkedRow{}, nil).Once()
			},
			wantReleased: 0,
		},
		{
			name:    "error: zero quantity",
			booking: timed,
			qty:     0,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: link lookup fails",
			booking: timed,
			qty:     1,
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.linkRepo.On("ListByOrderTx", mock.Anything, tx, uint64(100)).Return(nil, errors.New("lock wait timeout")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tx := &sqlx.Tx{}
			if tt.mockCall != nil {
				tt.mockCall(f, tx)
			}

			got, err := f.app().ReleaseTx(context.Background(), tx, tt.booking, tt.qty)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReleaseTx() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			assert.Equal(t, tt.wantReleased, got.Released)
			assert.Len(t, got.Tasks, tt.wantTasks)
		})
	}
}

func TestReleaseApp_Release(t *testing.T) {
	t.Run("error: booking of another order", func(t *testing.T) {
		f := newFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.bookingRepo.On("GetByIDTx", mock.Anything, tx, uint64(11)).Return(&model.Booking{ID: 11, OrderID: 200}, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		_, err := f.app().Release(context.Background(), 100, 11, 1)
		assert.True(t, cerr.IsType(err, constant.ErrNotFound))
	})
}

func TestReleaseApp_CancelAndReleaseTx(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}
	f.bookingRepo.On("ListByOrderTx", mock.Anything, tx, uint64(100)).Return([]model.Booking{
		{ID: 11, OrderID: 100, ProductID: 7, BookingType: constant.BookingTypeSingleDay, StartDate: "2026-03-10", Quantity: 1, Status: constant.BookingStatusCancelled},
		{ID: 12, OrderID: 100, ProductID: 7, BookingType: constant.BookingTypeSingleDay, StartDate: "2026-03-10", Quantity: 1, Status: constant.BookingStatusPaid},
	}, nil).Once()
	f.linkRepo.On("ListByOrderTx", mock.Anything, tx, uint64(100)).Return([]model.LinkedRow{
		link(1, 12, 5, 1, constant.LinkRoleOwn, constant.RowKindCounter, 7, "2026-03-10"),
		link(2, 11, 5, 1, constant.LinkRoleOwn, constant.RowKindCounter, 7, "2026-03-10"),
	}, nil).Once()
	f.capacityRepo.On("ReleaseAtomicTx", mock.Anything, tx, uint64(5), int64(1)).Return(int64(1), nil).Once()
	f.linkRepo.On("DeleteTx", mock.Anything, tx, []uint64{1}).Return(nil).Once()
	// the cancelled booking's link is still there and is released as an orphan
	f.linkRepo.On("ListByOrderTx", mock.Anything, tx, uint64(100)).Return([]model.LinkedRow{
		link(2, 11, 5, 1, constant.LinkRoleOwn, constant.RowKindCounter, 7, "2026-03-10"),
	}, nil).Once()
	f.capacityRepo.On("ReleaseAtomicTx", mock.Anything, tx, uint64(5), int64(1)).Return(int64(1), nil).Once()
	f.linkRepo.On("DeleteTx", mock.Anything, tx, []uint64{2}).Return(nil).Once()
	f.capacityRepo.On("DeleteTx", mock.Anything, tx, []uint64(nil)).Return(int64(0), nil).Once()

	res, err := f.app().CancelAndReleaseTx(context.Background(), tx, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Released)
}

type ledger struct {
	store       *memory.Store
	reservation reservation.ReservationApp
	release     release.ReleaseApp
}

func newLedger(t *testing.T) ledger {
	store := memory.NewStore()
	capacityRepo := store.CapacityRepository()
	res := resolver.NewResolver(capacityRepo)
	prop := propagation.NewPropagator(capacityRepo, res)
	dispatcher := globalslotmocks.NewDispatcher(t)
	dispatcher.On("Enabled", mock.Anything).Return(false).Maybe()
	dispatcher.On("Dispatch", mock.Anything, mock.Anything).Maybe()
	return ledger{
		store:       store,
		reservation: reservation.NewReservationApp(store.TxRepository(), capacityRepo, store.LinkRepository(), prop, dispatcher),
		release: release.NewReleaseApp(store.TxRepository(), capacityRepo, store.LinkRepository(), store.BookingRepository(),
			store.ProductRepository(), res, prop, dispatcher),
	}
}

// Reserving and then cancelling restores every counter the reservation
// touched, through overlap and parent mirrors.
func TestReleaseApp_RoundTrip(t *testing.T) {
	l := newLedger(t)
	l.store.AddProduct(model.BookableProduct{ID: 7, ParentID: 3, BookingType: constant.BookingTypeOverlappingTime, TimeEnabled: true})
	l.store.AddTemplate(7, 2, "09:00", "11:00", 5)
	l.store.AddTemplate(7, 2, "10:00", "12:00", 5)
	l.store.AddTemplate(3, 2, "10:00", "12:00", 8)

	b := model.Booking{ID: 11, OrderID: 100, ProductID: 7, ParentID: 3, BookingType: constant.BookingTypeOverlappingTime,
		StartDate: "2026-03-10", FromTime: "10:00", ToTime: "12:00", Quantity: 3, Status: constant.BookingStatusPaid}
	l.store.AddBooking(b)

	_, err := l.reservation.Reserve(context.Background(), model.NewReserveRequest(&b, 3, true))
	require.NoError(t, err)

	own := model.SlotKey{ProductID: 7, Date: "2026-03-10", FromTime: "10:00", ToTime: "12:00"}
	overlap := model.SlotKey{ProductID: 7, Date: "2026-03-10", FromTime: "09:00", ToTime: "11:00"}
	parent := model.SlotKey{ProductID: 3, Date: "2026-03-10", FromTime: "10:00", ToTime: "12:00"}
	assert.Equal(t, int64(2), l.store.DateRow(own).AvailableBooking)
	assert.Equal(t, int64(2), l.store.DateRow(overlap).AvailableBooking)
	assert.Equal(t, int64(5), l.store.DateRow(parent).AvailableBooking)
	assert.Len(t, l.store.Links(), 3)

	res, err := l.release.CancelAndRelease(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Released)
	assert.Equal(t, int64(5), l.store.DateRow(own).AvailableBooking)
	assert.Equal(t, int64(5), l.store.DateRow(overlap).AvailableBooking)
	assert.Equal(t, int64(8), l.store.DateRow(parent).AvailableBooking)
	assert.Empty(t, l.store.Links())
}

func TestReleaseApp_MultiDayRoundTrip(t *testing.T) {
	l := newLedger(t)
	b := model.Booking{ID: 21, OrderID: 200, ProductID: 8, BookingType: constant.BookingTypeMultiDay,
		StartDate: "2026-03-10", EndDate: "2026-03-13", Quantity: 2, Status: constant.BookingStatusPaid}
	l.store.AddBooking(b)

	_, err := l.reservation.Reserve(context.Background(), model.NewReserveRequest(&b, 2, false))
	require.NoError(t, err)
	for _, d := range []string{"2026-03-10", "2026-03-11", "2026-03-12"} {
		assert.Equal(t, 2, l.store.UnitRows(8, d), "night %s", d)
	}
	assert.Equal(t, 0, l.store.UnitRows(8, "2026-03-13"), "checkout day is free")

	res, err := l.release.Release(context.Background(), 200, 21, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Released)
	for _, d := range []string{"2026-03-10", "2026-03-11", "2026-03-12"} {
		assert.Equal(t, 1, l.store.UnitRows(8, d), "night %s", d)
	}

	_, err = l.release.Release(context.Background(), 200, 21, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, l.store.UnitRows(8, "2026-03-11"))
	assert.Empty(t, l.store.Links())
}
