package transport

import (
	"net/http"

	"github.com/muhammadheryan/booking-capacity/constant"
	"github.com/muhammadheryan/booking-capacity/utils/errors"
)

// Availability handler
// @Summary Remaining capacity of a product
// @Description Read only. Timed products need from (and optionally to) in HH:MM.
// @Tags Public
// @Produce json
// @Param id path int true "Product ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param from query string false "From time (HH:MM)"
// @Param to query string false "To time (HH:MM)"
// @Success 200 {object} model.Availability
// @Failure 400 {object} Response
// @Router /products/{id}/availability [get]
func (s *RestHandler) Availability(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	date := q.Get("date")
	if date == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CapacityApp.Availability(r.Context(), productID, date, q.Get("from"), q.Get("to"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
