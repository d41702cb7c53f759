package model

import "github.com/muhammadheryan/booking-capacity/constant"

// Booking is the order item as recorded by the commerce platform.
type Booking struct {
	ID          uint64                 `db:"id" json:"id"`
	OrderID     uint64                 `db:"order_id" json:"order_id"`
	ProductID   uint64                 `db:"product_id" json:"product_id"`
	ParentID    uint64                 `db:"parent_id" json:"parent_id"`
	BookingType constant.BookingType   `db:"booking_type" json:"booking_type"`
	StartDate   string                 `db:"start_date" json:"start_date"`
	EndDate     string                 `db:"end_date" json:"end_date,omitempty"`
	FromTime    string                 `db:"from_time" json:"from_time,omitempty"`
	ToTime      string                 `db:"to_time" json:"to_time,omitempty"`
	Quantity    int64                  `db:"quantity" json:"quantity"`
	Status      constant.BookingStatus `db:"status" json:"status"`
}

func (b *Booking) Selection() Selection {
	return Selection{
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		FromTime:  b.FromTime,
		ToTime:    b.ToTime,
	}
}

func (b *Booking) Cancelled() bool {
	return b.Status == constant.BookingStatusCancelled
}

type ReserveRequest struct {
	OrderID     uint64
	BookingID   uint64
	ProductID   uint64
	ParentID    uint64
	Quantity    int64
	BookingType constant.BookingType
	Selection   Selection
	Overlap     bool
}

func NewReserveRequest(b *Booking, quantity int64, overlap bool) *ReserveRequest {
	return &ReserveRequest{
		OrderID:     b.OrderID,
		BookingID:   b.ID,
		ProductID:   b.ProductID,
		ParentID:    b.ParentID,
		Quantity:    quantity,
		BookingType: b.BookingType,
		Selection:   b.Selection(),
		Overlap:     overlap,
	}
}

type ReserveResult struct {
	// Reserved is the quantity taken from the product's own counter, or the
	// number of unit rows inserted.
	Reserved int64
	Tasks    []GlobalSlotTask
}

type ReleaseResult struct {
	Released int64
	Tasks    []GlobalSlotTask
}

type Violation struct {
	Code      string    `json:"code"`
	ProductID uint64    `json:"product_id"`
	Selection Selection `json:"selection"`
	Requested int64     `json:"requested"`
	Available int64     `json:"available"`
	Message   string    `json:"message"`
}

type ValidateRequest struct {
	ProductID   uint64               `json:"product_id" validate:"required"`
	BookingType constant.BookingType `json:"booking_type" validate:"required,booking_type"`
	Selection   Selection            `json:"selection"`
	Quantity    int64                `json:"quantity" validate:"required,gt=0"`
	BookingID   uint64               `json:"booking_id"`
}

type ValidateResponse struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations"`
}

type QuantityChangeRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

type RefundItemRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

type RescheduleRequest struct {
	Selection Selection `json:"selection"`
}

type StatusTransitionRequest struct {
	From constant.OrderStatus `json:"from" validate:"required"`
	To   constant.OrderStatus `json:"to" validate:"required"`
}

type ApprovalRequest struct {
	Approve bool `json:"approve"`
}

// LedgerResult summarizes the capacity moved by an order event.
type LedgerResult struct {
	OrderID  uint64 `json:"order_id"`
	Reserved int64  `json:"reserved"`
	Released int64  `json:"released"`
}

// BookingFinalizedEvent is published once a booking holds its capacity, for
// read-only consumers such as calendar sync.
type BookingFinalizedEvent struct {
	Event       string                 `json:"event"`
	OrderID     uint64                 `json:"order_id"`
	BookingID   uint64                 `json:"booking_id"`
	ProductID   uint64                 `json:"product_id"`
	BookingType constant.BookingType   `json:"booking_type"`
	Selection   Selection              `json:"selection"`
	Quantity    int64                  `json:"quantity"`
	Status      constant.BookingStatus `json:"status"`
}
