package transport

import (
	"net/http"

	"github.com/muhammadheryan/booking-capacity/constant"
	"github.com/muhammadheryan/booking-capacity/model"
	utilsContext "github.com/muhammadheryan/booking-capacity/utils/context"
	"github.com/muhammadheryan/booking-capacity/utils/errors"
)

// ValidateBooking handler
// @Summary Check a quantity against remaining capacity
// @Description Nothing is reserved. With booking_id set, only the quantity above what the booking already holds must fit.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.ValidateRequest true "Validate Request"
// @Success 200 {object} model.ValidateResponse
// @Failure 400 {object} Response
// @Security BearerAuth
// @Router /admin/v1/bookings/validate [post]
func (s *RestHandler) ValidateBooking(w http.ResponseWriter, r *http.Request) {
	var req model.ValidateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.SanityApp.Validate(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpsertRow handler
// @Summary Create or update a capacity row
// @Description A weekday without start_date addresses the weekday template, a start_date addresses the date row.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.UpsertRowRequest true "Capacity row"
// @Success 200 {object} model.CapacityRow
// @Failure 400 {object} Response
// @Security BearerAuth
// @Router /admin/v1/capacity-rows [put]
func (s *RestHandler) UpsertRow(w http.ResponseWriter, r *http.Request) {
	var req model.UpsertRowRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	adminID, _ := utilsContext.GetAdminID(r.Context())
	res, err := s.CapacityApp.UpsertRow(r.Context(), adminID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ActivateRow handler
// @Summary Activate a capacity row
// @Tags Admin
// @Produce json
// @Param id path int true "Capacity row ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Security BearerAuth
// @Router /admin/v1/capacity-rows/{id}/activate [post]
func (s *RestHandler) ActivateRow(w http.ResponseWriter, r *http.Request) {
	rowID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.CapacityApp.ActivateRow(r.Context(), rowID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// DeactivateRow handler
// @Summary Deactivate a capacity row
// @Description Rows still linked to reservations cannot be deactivated.
// @Tags Admin
// @Produce json
// @Param id path int true "Capacity row ID"
// @Success 200 {object} Response
// @Failure 409 {object} Response
// @Security BearerAuth
// @Router /admin/v1/capacity-rows/{id}/deactivate [post]
func (s *RestHandler) DeactivateRow(w http.ResponseWriter, r *http.Request) {
	rowID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.CapacityApp.DeactivateRow(r.Context(), rowID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// Logout handler
// @Summary Revoke the current admin token
// @Tags Admin
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Security BearerAuth
// @Router /admin/v1/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	if err := s.AuthApp.RevokeToken(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
