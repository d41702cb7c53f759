package transport

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/booking-capacity/model"
)

// PlaceOrder handler
// @Summary Reserve capacity for a placed order
// @Description Reserves every live booking of the order. Bookings already holding capacity are skipped.
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.LedgerResult
// @Failure 404 {object} Response
// @Security BearerAuth
// @Router /internal/v1/orders/{id}/placed [post]
func (s *RestHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	s.orderEvent(w, r, s.BookingApp.PlaceOrder)
}

// CancelOrder handler
// @Summary Release the capacity of a cancelled order
// @Description Used for cancelled, refunded, failed and trashed orders.
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.LedgerResult
// @Failure 404 {object} Response
// @Security BearerAuth
// @Router /internal/v1/orders/{id}/cancel [post]
func (s *RestHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	s.orderEvent(w, r, s.BookingApp.CancelOrder)
}

// RestoreOrder handler
// @Summary Replay the reservations of a restored order
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} model.LedgerResult
// @Failure 404 {object} Response
// @Security BearerAuth
// @Router /internal/v1/orders/{id}/restore [post]
func (s *RestHandler) RestoreOrder(w http.ResponseWriter, r *http.Request) {
	s.orderEvent(w, r, s.BookingApp.RestoreOrder)
}

func (s *RestHandler) orderEvent(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, orderID uint64) (*model.LedgerResult, error)) {
	orderID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := fn(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// TransitionOrderStatus handler
// @Summary React to an order status change
// @Description Entering cancelled, refunded, failed or trash releases capacity. Reviving a failed order checks and replays its reservations.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.StatusTransitionRequest true "Status transition"
// @Success 200 {object} model.LedgerResult
// @Failure 409 {object} Response
// @Security BearerAuth
// @Router /internal/v1/orders/{id}/status [post]
func (s *RestHandler) TransitionOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.StatusTransitionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BookingApp.TransitionOrderStatus(r.Context(), orderID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ChangeItemQuantity handler
// @Summary Change the quantity of a booking
// @Description An increase is validated and reserved, a decrease is released.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body model.QuantityChangeRequest true "New quantity"
// @Success 200 {object} model.LedgerResult
// @Failure 409 {object} Response
// @Security BearerAuth
// @Router /internal/v1/bookings/{id}/quantity [patch]
func (s *RestHandler) ChangeItemQuantity(w http.ResponseWriter, r *http.Request) {
	bookingID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.QuantityChangeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BookingApp.ChangeItemQuantity(r.Context(), bookingID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RefundItem handler
// @Summary Release refunded units of a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body model.RefundItemRequest true "Refunded quantity"
// @Success 200 {object} model.LedgerResult
// @Failure 409 {object} Response
// @Security BearerAuth
// @Router /internal/v1/bookings/{id}/refund [post]
func (s *RestHandler) RefundItem(w http.ResponseWriter, r *http.Request) {
	bookingID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.RefundItemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BookingApp.RefundItem(r.Context(), bookingID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Reschedule handler
// @Summary Move a booking to another date or time
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body model.RescheduleRequest true "New selection"
// @Success 200 {object} model.LedgerResult
// @Failure 409 {object} Response
// @Security BearerAuth
// @Router /internal/v1/bookings/{id}/reschedule [post]
func (s *RestHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	bookingID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.RescheduleRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BookingApp.Reschedule(r.Context(), bookingID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ApproveBooking handler
// @Summary Confirm or reject a booking awaiting confirmation
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body model.ApprovalRequest true "Decision"
// @Success 200 {object} model.LedgerResult
// @Failure 409 {object} Response
// @Security BearerAuth
// @Router /internal/v1/bookings/{id}/approval [post]
func (s *RestHandler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ApprovalRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BookingApp.ApproveBooking(r.Context(), bookingID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
