package model

import "github.com/muhammadheryan/booking-capacity/constant"

// CapacityRow is one ledger record: the remaining bookable units of a
// product for a weekday template, a concrete date, or a date and time range.
type CapacityRow struct {
	ID               uint64             `db:"id" json:"id"`
	ProductID        uint64             `db:"product_id" json:"product_id"`
	Weekday          *int               `db:"weekday" json:"weekday,omitempty"`
	StartDate        string             `db:"start_date" json:"start_date,omitempty"`
	EndDate          string             `db:"end_date" json:"end_date,omitempty"`
	FromTime         string             `db:"from_time" json:"from_time,omitempty"`
	ToTime           string             `db:"to_time" json:"to_time,omitempty"`
	TotalBooking     int64              `db:"total_booking" json:"total_booking"`
	AvailableBooking int64              `db:"available_booking" json:"available_booking"`
	Status           constant.RowStatus `db:"status" json:"status"`
	Kind             constant.RowKind   `db:"row_kind" json:"row_kind"`
	GlobalSlot       bool               `db:"global_slot" json:"global_slot"`
}

func (r *CapacityRow) Active() bool {
	return r.Status == constant.RowStatusActive
}

// Unlimited reports whether the row puts no ceiling on bookings.
func (r *CapacityRow) Unlimited() bool {
	return r.TotalBooking == 0
}

func (r *CapacityRow) IsTemplate() bool {
	return r.Weekday != nil && r.StartDate == ""
}

// SlotKey addresses a counter row for a concrete date.
type SlotKey struct {
	ProductID uint64
	Date      string
	FromTime  string
	ToTime    string
}

func (k SlotKey) WithProduct(productID uint64) SlotKey {
	k.ProductID = productID
	return k
}

func (k SlotKey) Timed() bool {
	return k.FromTime != ""
}

// UnitRowRequest describes the per-unit rows inserted for multi-day and
// duration bookings.
type UnitRowRequest struct {
	ProductID uint64
	Date      string
	EndDate   string
	FromTime  string
	ToTime    string
	Count     int64
}

type UpsertRowRequest struct {
	ProductID    uint64 `json:"product_id" validate:"required"`
	Weekday      *int   `json:"weekday,omitempty" validate:"omitempty,min=0,max=6"`
	StartDate    string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	FromTime     string `json:"from_time,omitempty" validate:"omitempty,datetime=15:04"`
	ToTime       string `json:"to_time,omitempty" validate:"omitempty,datetime=15:04"`
	TotalBooking int64  `json:"total_booking" validate:"gte=0"`
	GlobalSlot   bool   `json:"global_slot"`
}

type Availability struct {
	ProductID uint64 `json:"product_id"`
	Date      string `json:"date"`
	FromTime  string `json:"from_time,omitempty"`
	ToTime    string `json:"to_time,omitempty"`
	Unlimited bool   `json:"unlimited"`
	Total     int64  `json:"total"`
	Available int64  `json:"available"`
}
