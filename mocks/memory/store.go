// Package memory is an in-memory ledger used by the scenario tests. It
// implements every repository the applications depend on over one shared
// state. Transactions are serialized and a rollback restores the state seen
// at BeginTx.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/booking-capacity/constant"
	"github.com/muhammadheryan/booking-capacity/model"
	bookingrepo "github.com/muhammadheryan/booking-capacity/repository/booking"
	capacityrepo "github.com/muhammadheryan/booking-capacity/repository/capacity"
	idempotencyrepo "github.com/muhammadheryan/booking-capacity/repository/idempotency"
	linkrepo "github.com/muhammadheryan/booking-capacity/repository/link"
	peerholdrepo "github.com/muhammadheryan/booking-capacity/repository/peerhold"
	productrepo "github.com/muhammadheryan/booking-capacity/repository/product"
	txrepo "github.com/muhammadheryan/booking-capacity/repository/tx"
)

type state struct {
	rows     map[uint64]model.CapacityRow
	links    map[uint64]model.OrderBookingLink
	bookings map[uint64]model.Booking
	applied  map[string]bool
	holds    map[uint64]model.PeerHold
	nextRow  uint64
	nextLink uint64
	nextHold uint64
}

func (s state) clone() state {
	c := state{
		rows:     make(map[uint64]model.CapacityRow, len(s.rows)),
		links:    make(map[uint64]model.OrderBookingLink, len(s.links)),
		bookings: make(map[uint64]model.Booking, len(s.bookings)),
		applied:  make(map[string]bool, len(s.applied)),
		holds:    make(map[uint64]model.PeerHold, len(s.holds)),
		nextRow:  s.nextRow,
		nextLink: s.nextLink,
		nextHold: s.nextHold,
	}
	for k, v := range s.rows {
		c.rows[k] = v
	}
	for k, v := range s.links {
		c.links[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.applied {
		c.applied[k] = v
	}
	for k, v := range s.holds {
		c.holds[k] = v
	}
	return c
}

type Store struct {
	txLock sync.Mutex

	mu        sync.Mutex
	st        state
	snapshots map[*sqlx.Tx]state
	products  map[uint64]model.BookableProduct
}

func NewStore() *Store {
	return &Store{
		st:        state{}.clone(),
		snapshots: make(map[*sqlx.Tx]state),
		products:  make(map[uint64]model.BookableProduct),
	}
}

func (s *Store) TxRepository() txrepo.TxRepository                   { return txView{s} }
func (s *Store) CapacityRepository() capacityrepo.CapacityRepository { return capacityView{s} }
func (s *Store) LinkRepository() linkrepo.LinkRepository             { return linkView{s} }
func (s *Store) BookingRepository() bookingrepo.BookingRepository    { return bookingView{s} }
func (s *Store) ProductRepository() productrepo.ProductRepository    { return productView{s} }
func (s *Store) IdempotencyRepository() idempotencyrepo.IdempotencyRepository {
	return idempotencyView{s}
}
func (s *Store) PeerHoldRepository() peerholdrepo.PeerHoldRepository { return peerHoldView{s} }

// AddRow seeds a capacity row and returns its id.
func (s *Store) AddRow(row model.CapacityRow) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertRow(row)
}

// AddTemplate seeds an active weekday template.
func (s *Store) AddTemplate(productID uint64, weekday int, from, to string, total int64) uint64 {
	wd := weekday
	return s.AddRow(model.CapacityRow{
		ProductID:        productID,
		Weekday:          &wd,
		FromTime:         from,
		ToTime:           to,
		TotalBooking:     total,
		AvailableBooking: total,
		Status:           constant.RowStatusActive,
		Kind:             constant.RowKindCounter,
	})
}

// AddDateRow seeds an active date row with its full total available.
func (s *Store) AddDateRow(productID uint64, date, from, to string, total int64) uint64 {
	return s.AddRow(model.CapacityRow{
		ProductID:        productID,
		StartDate:        date,
		FromTime:         from,
		ToTime:           to,
		TotalBooking:     total,
		AvailableBooking: total,
		Status:           constant.RowStatusActive,
		Kind:             constant.RowKindCounter,
	})
}

func (s *Store) AddProduct(p model.BookableProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Status == "" {
		p.Status = "publish"
	}
	s.products[p.ID] = p
}

func (s *Store) AddBooking(b model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.bookings[b.ID] = b
}

func (s *Store) Row(id uint64) model.CapacityRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.rows[id]
}

// DateRow returns the counter date row of the key, nil when not materialized.
func (s *Store) DateRow(key model.SlotKey) *model.CapacityRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findDateRow(key)
}

func (s *Store) Booking(id uint64) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.bookings[id]
}

// Links returns every link, oldest first.
func (s *Store) Links() []model.OrderBookingLink {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.OrderBookingLink, 0, len(s.st.links))
	for _, id := range sortedKeys(s.st.links) {
		out = append(out, s.st.links[id])
	}
	return out
}

// Holds returns every peer hold, oldest first.
func (s *Store) Holds() []model.PeerHold {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.PeerHold, 0, len(s.st.holds))
	for _, id := range sortedKeys(s.st.holds) {
		out = append(out, s.st.holds[id])
	}
	return out
}

// UnitRows counts the active unit rows of a product on a date.
func (s *Store) UnitRows(productID uint64, date string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.unitRows(productID, date))
}

func (s *Store) insertRow(row model.CapacityRow) uint64 {
	s.st.nextRow++
	row.ID = s.st.nextRow
	if row.Weekday != nil {
		wd := *row.Weekday
		row.Weekday = &wd
	}
	s.st.rows[row.ID] = row
	return row.ID
}

func (s *Store) findDateRow(key model.SlotKey) *model.CapacityRow {
	for _, id := range sortedKeys(s.st.rows) {
		r := s.st.rows[id]
		if r.Kind == constant.RowKindCounter && r.ProductID == key.ProductID && r.StartDate == key.Date &&
			r.FromTime == key.FromTime && r.ToTime == key.ToTime {
			return &r
		}
	}
	return nil
}

func (s *Store) unitRows(productID uint64, date string) []model.CapacityRow {
	out := make([]model.CapacityRow, 0)
	for _, id := range sortedKeys(s.st.rows) {
		r := s.st.rows[id]
		if r.Kind == constant.RowKindUnit && r.Status == constant.RowStatusActive && r.ProductID == productID && r.StartDate == date {
			out = append(out, r)
		}
	}
	return out
}

func sortedKeys[V any](m map[uint64]V) []uint64 {
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

type txView struct{ *Store }

func (v txView) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	v.txLock.Lock()
	tx := &sqlx.Tx{}
	v.mu.Lock()
	v.snapshots[tx] = v.st.clone()
	v.mu.Unlock()
	return tx, nil
}

func (v txView) CommitTx(tx *sqlx.Tx) error {
	v.mu.Lock()
	if _, ok := v.snapshots[tx]; !ok {
		v.mu.Unlock()
		return sql.ErrTxDone
	}
	delete(v.snapshots, tx)
	v.mu.Unlock()
	v.txLock.Unlock()
	return nil
}

func (v txView) RollbackTx(tx *sqlx.Tx) error {
	v.mu.Lock()
	snap, ok := v.snapshots[tx]
	if !ok {
		v.mu.Unlock()
		return sql.ErrTxDone
	}
	v.st = snap
	delete(v.snapshots, tx)
	v.mu.Unlock()
	v.txLock.Unlock()
	return nil
}

type capacityView struct{ *Store }

func (v capacityView) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.CapacityRow, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	r, ok := v.st.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (v capacityView) FindDateRowTx(ctx context.Context, tx *sqlx.Tx, key model.SlotKey) (*model.CapacityRow, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.findDateRow(key), nil
}

func (v capacityView) FindTemplateTx(ctx context.Context, tx *sqlx.Tx, key model.SlotKey, weekday int, forUpdate bool) (*model.CapacityRow, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, id := range sortedKeys(v.st.rows) {
		r := v.st.rows[id]
		if r.Kind == constant.RowKindCounter && r.ProductID == key.ProductID && r.StartDate == "" &&
			r.Weekday != nil && *r.Weekday == weekday && r.FromTime == key.FromTime && r.ToTime == key.ToTime {
			return &r, nil
		}
	}
	return nil, nil
}

func (v capacityView) ListSlotRowsTx(ctx context.Context, tx *sqlx.Tx, productID uint64, date string, weekday int) ([]model.CapacityRow, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]model.CapacityRow, 0)
	for _, id := range sortedKeys(v.st.rows) {
		r := v.st.rows[id]
		if r.Kind != constant.RowKindCounter || r.ProductID != productID || r.FromTime == "" {
			continue
		}
		if r.StartDate == date || (r.StartDate == "" && r.Weekday != nil && *r.Weekday == weekday) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FromTime != out[j].FromTime {
			return out[i].FromTime < out[j].FromTime
		}
		return out[i].ToTime < out[j].ToTime
	})
	return out, nil
}

func (v capacityView) InsertTx(ctx context.Context, tx *sqlx.Tx, row *model.CapacityRow) (uint64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.insertRow(*row), nil
}

func (v capacityView) ReserveAtomicTx(ctx context.Context, tx *sqlx.Tx, rowID uint64, qty int64) (int64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	r, ok := v.st.rows[rowID]
	if !ok || r.Kind != constant.RowKindCounter || !r.Active() || r.TotalBooking <= 0 || r.AvailableBooking < qty {
		return 0, nil
	}
	r.AvailableBooking -= qty
	v.st.rows[rowID] = r
	return 1, nil
}

func (v capacityView) ReleaseAtomicTx(ctx context.Context, tx *sqlx.Tx, rowID uint64, qty int64) (int64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	r, ok := v.st.rows[rowID]
	if !ok || r.Kind != constant.RowKindCounter || r.TotalBooking <= 0 {
		return 0, nil
	}
	r.AvailableBooking = min(r.AvailableBooking+qty, r.TotalBooking)
	v.st.rows[rowID] = r
	return 1, nil
}

func (v capacityView) InsertUnitRowsTx(ctx context.Context, tx *sqlx.Tx, req *model.UnitRowRequest) ([]uint64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	ids := make([]uint64, 0, req.Count)
	for i := int64(0); i < req.Count; i++ {
		ids = append(ids, v.insertRow(model.CapacityRow{
			ProductID: req.ProductID,
			StartDate: req.Date,
			EndDate:   req.EndDate,
			FromTime:  req.FromTime,
			ToTime:    req.ToTime,
			Status:    constant.RowStatusActive,
			Kind:      constant.RowKindUnit,
		}))
	}
	return ids, nil
}

func (v capacityView) ListUnitRowsTx(ctx context.Context, tx *sqlx.Tx, productID uint64, date string) ([]model.CapacityRow, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.unitRows(productID, date), nil
}

func (v capacityView) DeleteTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) (int64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var n int64
	for _, id := range ids {
		if r, ok := v.st.rows[id]; ok && r.Kind == constant.RowKindUnit {
			delete(v.st.rows, id)
			n++
		}
	}
	return n, nil
}

func (v capacityView) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.RowStatus) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	r, ok := v.st.rows[id]
	if !ok {
		return sql.ErrNoRows
	}
	r.Status = status
	v.st.rows[id] = r
	return nil
}

func (v capacityView) UpdateTotalTx(ctx context.Context, tx *sqlx.Tx, id uint64, total int64, globalSlot bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	r, ok := v.st.rows[id]
	if !ok || r.Kind != constant.RowKindCounter {
		return nil
	}
	r.AvailableBooking = min(max(r.AvailableBooking+(total-r.TotalBooking), 0), total)
	r.TotalBooking = total
	r.GlobalSlot = globalSlot
	v.st.rows[id] = r
	return nil
}

type linkView struct{ *Store }

func (v linkView) InsertTx(ctx context.Context, tx *sqlx.Tx, link *model.OrderBookingLink) (uint64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.st.nextLink++
	l := *link
	l.ID = v.st.nextLink
	v.st.links[l.ID] = l
	return l.ID, nil
}

func (v linkView) ListByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.LinkedRow, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]model.LinkedRow, 0)
	for _, id := range sortedKeys(v.st.links) {
		l := v.st.links[id]
		if l.OrderID != orderID {
			continue
		}
		r, ok := v.st.rows[l.CapacityRowID]
		if !ok && l.Role != constant.LinkRoleShared {
			continue
		}
		out = append(out, model.LinkedRow{
			OrderBookingLink: l,
			ProductID:        r.ProductID,
			StartDate:        r.StartDate,
			EndDate:          r.EndDate,
			FromTime:         r.FromTime,
			ToTime:           r.ToTime,
			TotalBooking:     r.TotalBooking,
			Kind:             r.Kind,
		})
	}
	return out, nil
}

func (v linkView) CountByRowTx(ctx context.Context, tx *sqlx.Tx, rowID uint64) (int64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	var n int64
	for _, l := range v.st.links {
		if l.CapacityRowID == rowID {
			n++
		}
	}
	return n, nil
}

func (v linkView) UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if l, ok := v.st.links[id]; ok {
		l.Quantity = quantity
		v.st.links[id] = l
	}
	return nil
}

func (v linkView) DeleteTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, id := range ids {
		delete(v.st.links, id)
	}
	return nil
}

type bookingView struct{ *Store }

func (v bookingView) ListByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.Booking, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]model.Booking, 0)
	for _, id := range sortedKeys(v.st.bookings) {
		if b := v.st.bookings[id]; b.OrderID == orderID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (v bookingView) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Booking, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	b, ok := v.st.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (v bookingView) update(id uint64, fn func(b *model.Booking)) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	b, ok := v.st.bookings[id]
	if !ok {
		return nil
	}
	fn(&b)
	v.st.bookings[id] = b
	return nil
}

func (v bookingView) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.BookingStatus) error {
	return v.update(id, func(b *model.Booking) { b.Status = status })
}

func (v bookingView) UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error {
	return v.update(id, func(b *model.Booking) { b.Quantity = quantity })
}

func (v bookingView) UpdateSelectionTx(ctx context.Context, tx *sqlx.Tx, id uint64, sel model.Selection) error {
	return v.update(id, func(b *model.Booking) {
		b.StartDate, b.EndDate, b.FromTime, b.ToTime = sel.StartDate, sel.EndDate, sel.FromTime, sel.ToTime
	})
}

type productView struct{ *Store }

func (v productView) GetByID(ctx context.Context, id uint64) (*model.BookableProduct, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	p, ok := v.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (v productView) ListTimeEnabled(ctx context.Context) ([]model.BookableProduct, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]model.BookableProduct, 0)
	for _, id := range sortedKeys(v.products) {
		if p := v.products[id]; p.TimeEnabled && p.Status == "publish" {
			out = append(out, p)
		}
	}
	return out, nil
}

type idempotencyView struct{ *Store }

func (v idempotencyView) MarkAppliedTx(ctx context.Context, tx *sqlx.Tx, key string) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.st.applied[key] {
		return false, nil
	}
	v.st.applied[key] = true
	return true, nil
}

type peerHoldView struct{ *Store }

func (v peerHoldView) InsertTx(ctx context.Context, tx *sqlx.Tx, hold *model.PeerHold) (uint64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.st.nextHold++
	h := *hold
	h.ID = v.st.nextHold
	v.st.holds[h.ID] = h
	return h.ID, nil
}

func (v peerHoldView) ListTx(ctx context.Context, tx *sqlx.Tx, orderID, bookingID, peerID uint64, selection string) ([]model.PeerHold, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]model.PeerHold, 0)
	for _, id := range sortedKeys(v.st.holds) {
		h := v.st.holds[id]
		if h.OrderID == orderID && h.BookingID == bookingID && h.PeerID == peerID && h.Selection == selection {
			out = append(out, h)
		}
	}
	return out, nil
}

func (v peerHoldView) UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, id uint64, quantity int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if h, ok := v.st.holds[id]; ok {
		h.Quantity = quantity
		v.st.holds[id] = h
	}
	return nil
}

func (v peerHoldView) DeleteTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, id := range ids {
		delete(v.st.holds, id)
	}
	return nil
}
