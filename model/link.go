package model

import "github.com/muhammadheryan/booking-capacity/constant"

// OrderBookingLink records a capacity row consumed by an order.
type OrderBookingLink struct {
	ID            uint64            `db:"id"`
	OrderID       uint64            `db:"order_id"`
	BookingID     uint64            `db:"booking_id"`
	CapacityRowID uint64            `db:"capacity_row_id"`
	Quantity      int64             `db:"quantity"`
	Role          constant.LinkRole `db:"role"`
}

// LinkedRow is a link joined with the capacity row it points at.
type LinkedRow struct {
	OrderBookingLink
	ProductID    uint64           `db:"product_id"`
	StartDate    string           `db:"start_date"`
	EndDate      string           `db:"end_date"`
	FromTime     string           `db:"from_time"`
	ToTime       string           `db:"to_time"`
	TotalBooking int64            `db:"total_booking"`
	Kind         constant.RowKind `db:"row_kind"`
}

// Matches reports whether the linked row carries the booking's recorded
// product and date/time values.
func (l *LinkedRow) Matches(productID uint64, sel Selection) bool {
	if l.ProductID != productID || l.FromTime != sel.FromTime || l.ToTime != sel.ToTime {
		return false
	}
	if l.Kind == constant.RowKindUnit && sel.EndDate != "" {
		// multi-day unit rows carry one night each
		return l.EndDate == sel.EndDate && l.StartDate >= sel.StartDate && l.StartDate < sel.EndDate
	}
	return l.StartDate == sel.StartDate
}
