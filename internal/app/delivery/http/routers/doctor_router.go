package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/delivery/http/controllers"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/delivery/http/middlewares"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Route("/doctor", func(r chi.Router) {
		r.Use(middlewares.Authenticate, middlewares.RequireAdmin)
		r.Get("/", doctorController.ListDoctors)
		r.Post("/", doctorController.AddDoctor)
		r.Delete("/{email}", doctorController.RemoveDoctor)
	})
}
