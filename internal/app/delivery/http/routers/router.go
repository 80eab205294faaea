package routers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/config"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/delivery/http/controllers"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/delivery/http/middlewares"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	serviceController *controllers.ServiceController,
	bookingController *controllers.BookingController,
	userController *controllers.UserController,
	doctorController *controllers.DoctorController,
	paymentController *controllers.PaymentController,
) {
	// The client is served from a different origin, so CORS stays fully open.
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.RequestLogger(logrus.StandardLogger()))
	router.Use(middlewares.ErrorHandler)

	attachServiceRoutes(router, serviceController)
	attachBookingRoutes(router, middlewares, bookingController)
	attachUserRoutes(router, middlewares, userController)
	attachDoctorRoutes(router, middlewares, doctorController)
	attachPaymentRoutes(router, middlewares, paymentController)
}
