package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/delivery/http/controllers"
)

func attachServiceRoutes(router chi.Router, serviceController *controllers.ServiceController) {
	router.Get("/services", serviceController.ListServices)
	router.Get("/available", serviceController.GetAvailability)
}
