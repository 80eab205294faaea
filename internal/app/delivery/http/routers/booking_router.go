package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/delivery/http/controllers"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/delivery/http/middlewares"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.Route("/booking", func(r chi.Router) {
		r.Post("/", bookingController.CreateBooking)
		r.With(middlewares.Authenticate).Get("/", bookingController.ListBookingsByPatient)
		r.With(middlewares.Authenticate).Get("/{booking_id}", bookingController.GetBookingByID)
		r.With(middlewares.Authenticate).Patch("/{booking_id}", bookingController.ConfirmPayment)
	})
}
