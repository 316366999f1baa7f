package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/AnshRaj112/profile-api/internal/handlers"
	"github.com/AnshRaj112/profile-api/internal/middleware"
	"github.com/AnshRaj112/profile-api/internal/services"
)

func SetupRoutes(r chi.Router, h *handlers.Handler, verifier *services.TokenVerifier) {
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// Health check (no auth)
	r.Get("/health", handlers.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireToken(verifier))

		// Profiles
		r.Get("/id/{document}", h.GetProfileByID)
		r.Get("/nickname/{nickname}", h.GetProfilesByNickname)
		r.Get("/username/{username}", h.GetProfilesByUsername)

		// Pictures
		r.Get("/picture/record/{document}", h.GetPictureRecord)
		r.Get("/picture/raw/{document}", h.GetPictureRaw)
	})
}
