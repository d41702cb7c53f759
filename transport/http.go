package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	authapp "github.com/muhammadheryan/booking-capacity/application/auth"
	bookingapp "github.com/muhammadheryan/booking-capacity/application/booking"
	capacityapp "github.com/muhammadheryan/booking-capacity/application/capacity"
	sanityapp "github.com/muhammadheryan/booking-capacity/application/sanity"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	BookingApp  bookingapp.BookingApp
	SanityApp   sanityapp.SanityApp
	CapacityApp capacityapp.CapacityApp
	AuthApp     authapp.AuthApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)

	// Public routes
	router.HandleFunc("/products/{id:[0-9]+}/availability", rh.Availability).Methods(http.MethodGet)

	// order events reported by the commerce platform
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.HandleFunc("/orders/{id:[0-9]+}/placed", rh.PlaceOrder).Methods(http.MethodPost)
	internal.HandleFunc("/orders/{id:[0-9]+}/cancel", rh.CancelOrder).Methods(http.MethodPost)
	internal.HandleFunc("/orders/{id:[0-9]+}/restore", rh.RestoreOrder).Methods(http.MethodPost)
	internal.HandleFunc("/orders/{id:[0-9]+}/status", rh.TransitionOrderStatus).Methods(http.MethodPost)
	internal.HandleFunc("/bookings/{id:[0-9]+}/quantity", rh.ChangeItemQuantity).Methods(http.MethodPatch)
	internal.HandleFunc("/bookings/{id:[0-9]+}/refund", rh.RefundItem).Methods(http.MethodPost)
	internal.HandleFunc("/bookings/{id:[0-9]+}/reschedule", rh.Reschedule).Methods(http.MethodPost)
	internal.HandleFunc("/bookings/{id:[0-9]+}/approval", rh.ApproveBooking).Methods(http.MethodPost)
	internal.Use(InternalMiddleware(internalAPIKey))

	// admin routes
	admin := router.PathPrefix("/admin/v1").Subrouter()
	admin.HandleFunc("/bookings/validate", rh.ValidateBooking).Methods(http.MethodPost)
	admin.HandleFunc("/capacity-rows", rh.UpsertRow).Methods(http.MethodPut)
	admin.HandleFunc("/capacity-rows/{id:[0-9]+}/activate", rh.ActivateRow).Methods(http.MethodPost)
	admin.HandleFunc("/capacity-rows/{id:[0-9]+}/deactivate", rh.DeactivateRow).Methods(http.MethodPost)
	admin.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	admin.Use(AuthMiddleware(rh.AuthApp))

	// middleware
	router.Use(LoggingMiddleware())

	return router
}

func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}
