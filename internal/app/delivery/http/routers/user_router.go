package routers

import (
	"github.com/go-chi/chi/v5"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/delivery/http/controllers"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/delivery/http/middlewares"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Route("/user", func(r chi.Router) {
		r.With(middlewares.Authenticate).Get("/", userController.ListUsers)
		r.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/admin/{email}", userController.PromoteToAdmin)
		// Upsert stays open: the client calls it right after social login,
		// before it holds any token of ours.
		r.Put("/{email}", userController.UpsertUser)
	})
}
