package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInsufficientCapacity
	ErrInvalidBookingStatus
	ErrRowHasReservations
	ErrUnsupportedBookingType
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrNotFound:               "data not found",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "unauthorize request",
	ErrInsufficientCapacity:   "limited or no availability for the selected slot",
	ErrInvalidBookingStatus:   "booking status does not allow this change",
	ErrRowHasReservations:     "capacity row still has reservations",
	ErrUnsupportedBookingType: "unsupported booking type",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrNotFound:               http.StatusNotFound,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrInsufficientCapacity:   http.StatusConflict,
	ErrInvalidBookingStatus:   http.StatusConflict,
	ErrRowHasReservations:     http.StatusConflict,
	ErrUnsupportedBookingType: http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrNotFound:               "0002",
	ErrInvalidRequest:         "0003",
	ErrUnauthorize:            "0004",
	ErrInsufficientCapacity:   "0005",
	ErrInvalidBookingStatus:   "0006",
	ErrRowHasReservations:     "0007",
	ErrUnsupportedBookingType: "0008",
}
