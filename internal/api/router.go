package api

import (
	"net/http"

	"feastly-be/internal/config"
	"feastly-be/internal/logger"
	"feastly-be/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// NewRouter assembles the public surface: the /api tree plus static serving
// of uploaded images under /images/.
func NewRouter(cfg *config.Config, foodH *FoodHandler, userH *UserHandler, cartH *CartHandler, orderH *OrderHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.CORS(cfg.FrontendURL))
	r.Use(middleware.Auth)
	r.Use(middleware.RateLimit)

	r.Route("/api", func(r chi.Router) {
		r.Route("/food", func(r chi.Router) {
			r.Get("/list", foodH.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/add", foodH.Add)
				r.Post("/remove", foodH.Remove)
				r.Put("/update", foodH.Update)
			})
		})

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", userH.Register)
			r.Post("/login", userH.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/profile/{userId}", userH.Profile)
				r.Put("/profile", userH.UpdateProfile)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/add", cartH.Add)
			r.Post("/remove", cartH.Remove)
			r.Post("/get", cartH.Get)
		})

		r.Route("/order", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/place", orderH.Place)
				r.Post("/userorders", orderH.UserOrders)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/list", orderH.List)
				r.Post("/status", orderH.UpdateStatus)
				r.Post("/delete", orderH.Delete)
			})
		})
	})

	fileServer := http.FileServer(http.Dir(cfg.UploadDir))
	r.Handle("/images/*", http.StripPrefix("/images/", fileServer))

	return r
}
