package model

import "github.com/muhammadheryan/booking-capacity/constant"

type BookableProduct struct {
	ID                uint64               `db:"id" json:"id"`
	ParentID          uint64               `db:"parent_id" json:"parent_id"`
	BookingType       constant.BookingType `db:"booking_type" json:"booking_type"`
	TimeEnabled       bool                 `db:"time_enabled" json:"time_enabled"`
	OverlapProtection bool                 `db:"overlap_protection" json:"overlap_protection"`
	Status            string               `db:"status" json:"status"`
}

// OverlapEnabled reports whether reservations on this product cascade to
// every intersecting time range of the same date.
func (p *BookableProduct) OverlapEnabled() bool {
	return p.BookingType == constant.BookingTypeOverlappingTime ||
		(p.OverlapProtection && p.BookingType == constant.BookingTypeFixedTime)
}
