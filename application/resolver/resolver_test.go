package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/application/resolver"
	"github.com/muhammadheryan/booking-capacity/constant"
	capacitymocks "github.com/muhammadheryan/booking-capacity/mocks/repository/capacity"
	"github.com/muhammadheryan/booking-capacity/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// 2026-03-10 is a Tuesday
const tuesday = 2

func template(total, available int64) *model.CapacityRow {
	wd := tuesday
	return &model.CapacityRow{
		ID:               1,
		ProductID:        7,
		Weekday:          &wd,
		FromTime:         "09:00",
		ToTime:           "10:00",
		TotalBooking:     total,
		AvailableBooking: available,
		Status:           constant.RowStatusActive,
		Kind:             constant.RowKindCounter,
		GlobalSlot:       true,
	}
}

func TestResolver_ResolveTx(t *testing.T) {
	key := model.SlotKey{ProductID: 7, Date: "2026-03-10", FromTime: "09:00", ToTime: "10:00"}

	type fields struct {
		capacityRepo *capacitymocks.CapacityRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields, tx *sqlx.Tx)
		want     *model.CapacityRow
		wantErr  bool
	}{
		{
			name:   "date row wins over template",
			fields: fields{capacityRepo: capacitymocks.NewCapacityRepository(t)},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.capacityRepo.On("FindDateRowTx", mock.Anything, tx, key).
					Return(&model.CapacityRow{ID: 9, TotalBooking: 4, AvailableBooking: 2, Status: constant.RowStatusActive}, nil).Once()
			},
			want: &model.CapacityRow{ID: 9, TotalBooking: 4, AvailableBooking: 2, Status: constant.RowStatusActive},
		},
		{
			name:   "inactive date row disables the slot",
			fields: fields{capacityRepo: capacitymocks.NewCapacityRepository(t)},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.capacityRepo.On("FindDateRowTx", mock.Anything, tx, key).
					Return(&model.CapacityRow{ID: 9, TotalBooking: 4, Status: constant.RowStatusInactive}, nil).Once()
			},
			want: nil,
		},
		{
			name:   "no date row and no template",
			fields: fields{capacityRepo: capacitymocks.NewCapacityRepository(t)},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.capacityRepo.On("FindDateRowTx", mock.Anything, tx, key).Return(nil, nil).Once()
				f.capacityRepo.On("FindTemplateTx", mock.Anything, tx, key, tuesday, true).Return(nil, nil).Once()
			},
			want: nil,
		},
		{
			name:   "unlimited template is returned unsaved",
			fields: fields{capacityRepo: capacitymocks.NewCapacityRepository(t)},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.capacityRepo.On("FindDateRowTx", mock.Anything, tx, key).Return(nil, nil).Once()
				f.capacityRepo.On("FindTemplateTx", mock.Anything, tx, key, tuesday, true).Return(template(0, 0), nil).Once()
			},
			want: &model.CapacityRow{
				ProductID: 7, StartDate: "2026-03-10", FromTime: "09:00", ToTime: "10:00",
				Status: constant.RowStatusActive, Kind: constant.RowKindCounter, GlobalSlot: true,
			},
		},
		{
			name:   "limited template is materialized",
			fields: fields{capacityRepo: capacitymocks.NewCapacityRepository(t)},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.capacityRepo.On("FindDateRowTx", mock.Anything, tx, key).Return(nil, nil).Twice()
				f.capacityRepo.On("FindTemplateTx", mock.Anything, tx, key, tuesday, true).Return(template(5, 5), nil).Once()
				f.capacityRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(r *model.CapacityRow) bool {
					return r.Weekday == nil && r.StartDate == "2026-03-10" && r.TotalBooking == 5 && r.AvailableBooking == 5 &&
						r.Kind == constant.RowKindCounter && r.GlobalSlot
				})).Return(uint64(21), nil).Once()
			},
			want: &model.CapacityRow{
				ID: 21, ProductID: 7, StartDate: "2026-03-10", FromTime: "09:00", ToTime: "10:00",
				TotalBooking: 5, AvailableBooking: 5,
				Status: constant.RowStatusActive, Kind: constant.RowKindCounter, GlobalSlot: true,
			},
		},
		{
			name:   "row materialized concurrently is reused",
			fields: fields{capacityRepo: capacitymocks.NewCapacityRepository(t)},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.capacityRepo.On("FindDateRowTx", mock.Anything, tx, key).Return(nil, nil).Once()
				f.capacityRepo.On("FindTemplateTx", mock.Anything, tx, key, tuesday, true).Return(template(5, 5), nil).Once()
				f.capacityRepo.On("FindDateRowTx", mock.Anything, tx, key).
					Return(&model.CapacityRow{ID: 30, TotalBooking: 5, AvailableBooking: 3, Status: constant.RowStatusActive}, nil).Once()
			},
			want: &model.CapacityRow{ID: 30, TotalBooking: 5, AvailableBooking: 3, Status: constant.RowStatusActive},
		},
		{
			name:   "lookup error",
			fields: fields{capacityRepo: capacitymocks.NewCapacityRepository(t)},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.capacityRepo.On("FindDateRowTx", mock.Anything, tx, key).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tx := &sqlx.Tx{}
			if tt.mockCall != nil {
				tt.mockCall(tt.fields, tx)
			}
			r := resolver.NewResolver(tt.fields.capacityRepo)

			got, err := r.ResolveTx(context.Background(), tx, key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveTx() error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_PeekTx(t *testing.T) {
	key := model.SlotKey{ProductID: 7, Date: "2026-03-10", FromTime: "09:00", ToTime: "10:00"}
	tx := &sqlx.Tx{}

	repo := capacitymocks.NewCapacityRepository(t)
	repo.On("FindDateRowTx", mock.Anything, tx, key).Return(nil, nil).Once()
	repo.On("FindTemplateTx", mock.Anything, tx, key, tuesday, false).Return(template(5, 5), nil).Once()

	got, err := resolver.NewResolver(repo).PeekTx(context.Background(), tx, key)
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), got.ID, "peek never saves")
	assert.Equal(t, int64(5), got.AvailableBooking)
	repo.AssertNotCalled(t, "InsertTx", mock.Anything, mock.Anything, mock.Anything)
}
