package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/delivery/http/controllers"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/delivery/http/middlewares"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.With(middlewares.Authenticate).Post("/create-payment-intent", paymentController.CreatePaymentIntent)
}
