package propagation_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/muhammadheryan/booking-capacity/application/propagation"
	"github.com/muhammadheryan/booking-capacity/application/resolver"
	"github.com/muhammadheryan/booking-capacity/constant"
	"github.com/muhammadheryan/booking-capacity/mocks/memory"
	"github.com/muhammadheryan/booking-capacity/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	date    = "2026-03-10"
	tuesday = 2
)

func newPropagator(store *memory.Store) propagation.Propagator {
	repo := store.CapacityRepository()
	return propagation.NewPropagator(repo, resolver.NewResolver(repo))
}

func slot(productID uint64, from, to string) model.SlotKey {
	return model.SlotKey{ProductID: productID, Date: date, FromTime: from, ToTime: to}
}

func TestPropagator_DecrementTx(t *testing.T) {
	tests := []struct {
		name       string
		seed       func(s *memory.Store)
		mutation   propagation.Mutation
		wantOwnQty int64
		wantRoles  []constant.LinkRole
		wantAvail  map[model.SlotKey]int64
	}{
		{
			name: "overlap cascades to intersecting ranges only",
			seed: func(s *memory.Store) {
				s.AddTemplate(7, tuesday, "09:00", "11:00", 5)
				s.AddTemplate(7, tuesday, "10:00", "12:00", 5)
				s.AddTemplate(7, tuesday, "12:00", "13:00", 5)
			},
			mutation:   propagation.Mutation{Key: slot(7, "10:00", "12:00"), Quantity: 2, Overlap: true},
			wantOwnQty: 2,
			wantRoles:  []constant.LinkRole{constant.LinkRoleOwn, constant.LinkRoleOverlap},
			wantAvail: map[model.SlotKey]int64{
				slot(7, "10:00", "12:00"): 3,
				slot(7, "09:00", "11:00"): 3,
			},
		},
		{
			name: "overlap disabled touches the own slot only",
			seed: func(s *memory.Store) {
				s.AddTemplate(7, tuesday, "09:00", "11:00", 5)
				s.AddTemplate(7, tuesday, "10:00", "12:00", 5)
			},
			mutation:   propagation.Mutation{Key: slot(7, "10:00", "12:00"), Quantity: 2},
			wantOwnQty: 2,
			wantRoles:  []constant.LinkRole{constant.LinkRoleOwn},
			wantAvail:  map[model.SlotKey]int64{slot(7, "10:00", "12:00"): 3},
		},
		{
			name: "inactive date row removes a range from the cascade",
			seed: func(s *memory.Store) {
				s.AddTemplate(7, tuesday, "09:00", "11:00", 5)
				s.AddTemplate(7, tuesday, "10:00", "12:00", 5)
				s.AddRow(model.CapacityRow{
					ProductID: 7, StartDate: date, FromTime: "09:00", ToTime: "11:00",
					TotalBooking: 5, AvailableBooking: 5, Status: constant.RowStatusInactive, Kind: constant.RowKindCounter,
				})
			},
			mutation:   propagation.Mutation{Key: slot(7, "10:00", "12:00"), Quantity: 1, Overlap: true},
			wantOwnQty: 1,
			wantRoles:  []constant.LinkRole{constant.LinkRoleOwn},
			wantAvail:  map[model.SlotKey]int64{slot(7, "10:00", "12:00"): 4},
		},
		{
			name: "grouped product decrements its parent",
			seed: func(s *memory.Store) {
				s.AddDateRow(7, date, "", "", 4)
				s.AddDateRow(3, date, "", "", 10)
			},
			mutation:   propagation.Mutation{Key: model.SlotKey{ProductID: 7, Date: date}, ParentID: 3, Quantity: 2},
			wantOwnQty: 2,
			wantRoles:  []constant.LinkRole{constant.LinkRoleOwn, constant.LinkRoleParent},
			wantAvail: map[model.SlotKey]int64{
				{ProductID: 7, Date: date}: 2,
				{ProductID: 3, Date: date}: 8,
			},
		},
		{
			name: "insufficient row is left unchanged",
			seed: func(s *memory.Store) {
				s.AddDateRow(7, date, "", "", 1)
			},
			mutation:   propagation.Mutation{Key: model.SlotKey{ProductID: 7, Date: date}, Quantity: 2},
			wantOwnQty: 0,
			wantAvail:  map[model.SlotKey]int64{{ProductID: 7, Date: date}: 1},
		},
		{
			name: "exhausted child leaves its parent untouched",
			seed: func(s *memory.Store) {
				s.AddRow(model.CapacityRow{
					ProductID: 7, StartDate: date, TotalBooking: 2, AvailableBooking: 0,
					Status: constant.RowStatusActive, Kind: constant.RowKindCounter,
				})
				s.AddDateRow(70, date, "", "", 5)
			},
			mutation:   propagation.Mutation{Key: model.SlotKey{ProductID: 7, Date: date}, ParentID: 70, Quantity: 1},
			wantOwnQty: 0,
			wantAvail: map[model.SlotKey]int64{
				{ProductID: 7, Date: date}:  0,
				{ProductID: 70, Date: date}: 5,
			},
		},
		{
			name: "short own slot leaves overlapping ranges untouched",
			seed: func(s *memory.Store) {
				s.AddDateRow(7, date, "09:00", "11:00", 5)
				s.AddRow(model.CapacityRow{
					ProductID: 7, StartDate: date, FromTime: "10:00", ToTime: "12:00", TotalBooking: 3, AvailableBooking: 1,
					Status: constant.RowStatusActive, Kind: constant.RowKindCounter,
				})
				s.AddDateRow(3, date, "10:00", "12:00", 5)
			},
			mutation:   propagation.Mutation{Key: slot(7, "10:00", "12:00"), ParentID: 3, Quantity: 2, Overlap: true},
			wantOwnQty: 0,
			wantAvail: map[model.SlotKey]int64{
				slot(7, "10:00", "12:00"): 1,
				slot(7, "09:00", "11:00"): 5,
				slot(3, "10:00", "12:00"): 5,
			},
		},
		{
			name: "short parent is skipped while the child moves",
			seed: func(s *memory.Store) {
				s.AddDateRow(7, date, "", "", 4)
				s.AddRow(model.CapacityRow{
					ProductID: 3, StartDate: date, TotalBooking: 5, AvailableBooking: 1,
					Status: constant.RowStatusActive, Kind: constant.RowKindCounter,
				})
			},
			mutation:   propagation.Mutation{Key: model.SlotKey{ProductID: 7, Date: date}, ParentID: 3, Quantity: 2},
			wantOwnQty: 2,
			wantRoles:  []constant.LinkRole{constant.LinkRoleOwn},
			wantAvail: map[model.SlotKey]int64{
				{ProductID: 7, Date: date}: 2,
				{ProductID: 3, Date: date}: 1,
			},
		},
		{
			name: "unconfigured child still moves its parent",
			seed: func(s *memory.Store) {
				s.AddDateRow(3, date, "", "", 5)
			},
			mutation:   propagation.Mutation{Key: model.SlotKey{ProductID: 7, Date: date}, ParentID: 3, Quantity: 2},
			wantOwnQty: 0,
			wantRoles:  []constant.LinkRole{constant.LinkRoleParent},
			wantAvail:  map[model.SlotKey]int64{{ProductID: 3, Date: date}: 3},
		},
		{
			name: "unlimited slot is never stored",
			seed: func(s *memory.Store) {
				s.AddTemplate(7, tuesday, "", "", 0)
			},
			mutation:   propagation.Mutation{Key: model.SlotKey{ProductID: 7, Date: date}, Quantity: 3},
			wantOwnQty: 0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			tt.seed(store)

			out, err := newPropagator(store).DecrementTx(context.Background(), nil, &tt.mutation)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwnQty, out.OwnQuantity())

			roles := make([]constant.LinkRole, 0)
			for _, a := range out.Applied {
				roles = append(roles, a.Role)
			}
			if tt.wantRoles == nil {
				tt.wantRoles = []constant.LinkRole{}
			}
			assert.Equal(t, tt.wantRoles, roles)

			for key, want := range tt.wantAvail {
				row := store.DateRow(key)
				require.NotNil(t, row, "date row for %+v", key)
				assert.Equal(t, want, row.AvailableBooking, "available for %+v", key)
			}
		})
	}
}

func TestPropagator_IncrementTx(t *testing.T) {
	store := memory.NewStore()
	tpl := store.AddTemplate(7, tuesday, "09:00", "10:00", 5)
	p := newPropagator(store)
	key := slot(7, "09:00", "10:00")

	// nothing materialized yet, so nothing to give back
	out, err := p.IncrementTx(context.Background(), nil, &propagation.Mutation{Key: key, Quantity: 1})
	require.NoError(t, err)
	assert.Empty(t, out.Applied)
	assert.Nil(t, store.DateRow(key))

	_, err = p.DecrementTx(context.Background(), nil, &propagation.Mutation{Key: key, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), store.DateRow(key).AvailableBooking)

	out, err = p.IncrementTx(context.Background(), nil, &propagation.Mutation{Key: key, Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.OwnQuantity())
	assert.Equal(t, int64(5), store.DateRow(key).AvailableBooking, "never above total")
	assert.Equal(t, int64(5), store.Row(tpl).AvailableBooking, "template untouched")
}

func TestPropagator_OverlappingKeysTx(t *testing.T) {
	store := memory.NewStore()
	store.AddTemplate(7, tuesday, "08:00", "09:00", 5)
	store.AddTemplate(7, tuesday, "09:00", "11:00", 5)
	store.AddTemplate(7, tuesday, "10:00", "12:00", 5)
	store.AddTemplate(7, tuesday+1, "10:30", "11:30", 5)
	// date-only range without a template
	store.AddDateRow(7, date, "11:00", "13:00", 5)

	keys, err := newPropagator(store).OverlappingKeysTx(context.Background(), nil, slot(7, "10:00", "12:00"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.SlotKey{
		slot(7, "09:00", "11:00"),
		slot(7, "11:00", "13:00"),
	}, keys)
}

// Random reserve and release sequences never drive a counter below zero or
// above its total, and never touch the weekday templates.
func TestPropagator_CountersStayWithinBounds(t *testing.T) {
	store := memory.NewStore()
	ranges := [][2]string{{"09:00", "11:00"}, {"10:00", "12:00"}, {"11:00", "13:00"}}
	templates := make([]uint64, 0, len(ranges))
	for _, r := range ranges {
		templates = append(templates, store.AddTemplate(7, tuesday, r[0], r[1], 4))
	}
	p := newPropagator(store)
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		r := ranges[rnd.Intn(len(ranges))]
		m := &propagation.Mutation{Key: slot(7, r[0], r[1]), Quantity: int64(rnd.Intn(3) + 1), Overlap: rnd.Intn(2) == 0}
		var err error
		if rnd.Intn(2) == 0 {
			_, err = p.DecrementTx(context.Background(), nil, m)
		} else {
			_, err = p.IncrementTx(context.Background(), nil, m)
		}
		require.NoError(t, err)

		for _, r := range ranges {
			if row := store.DateRow(slot(7, r[0], r[1])); row != nil {
				if row.AvailableBooking < 0 || row.AvailableBooking > row.TotalBooking {
					t.Fatalf("step %d: row %s-%s available %d out of [0, %d]", i, r[0], r[1], row.AvailableBooking, row.TotalBooking)
				}
			}
		}
	}
	for _, id := range templates {
		assert.Equal(t, int64(4), store.Row(id).AvailableBooking)
	}
}
