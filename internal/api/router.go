// Package api wires the resource services to HTTP routes.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	go_jobboard "github.com/openhire/go-jobboard"
	"github.com/openhire/go-jobboard/internal/auth"
)

// NewRouter builds the full route tree. Listing and single reads on
// companies and jobs are public; everything else needs a token.
func NewRouter(svc *go_jobboard.JobBoardService, issuer *auth.TokenIssuer, logger *slog.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(RequestLogger(logger))
	router.Use(Authenticate(issuer))

	authHandlers := NewAuthHandlers(svc.Users, issuer)
	router.Post("/auth/register", authHandlers.Register)
	router.Post("/auth/token", authHandlers.Token)

	companyHandlers := NewCompanyHandlers(svc.Companies)
	router.Route("/companies", func(r chi.Router) {
		r.Get("/", companyHandlers.List)
		r.Get("/{handle}", companyHandlers.Get)
		r.With(RequireAdmin).Post("/", companyHandlers.Create)
		r.With(RequireAdmin).Patch("/{handle}", companyHandlers.Update)
		r.With(RequireAdmin).Delete("/{handle}", companyHandlers.Delete)
	})

	jobHandlers := NewJobHandlers(svc.Jobs)
	router.Route("/jobs", func(r chi.Router) {
		r.Get("/", jobHandlers.List)
		r.Get("/{id}", jobHandlers.Get)
		r.With(RequireAdmin).Post("/", jobHandlers.Create)
		r.With(RequireAdmin).Patch("/{id}", jobHandlers.Update)
		r.With(RequireAdmin).Delete("/{id}", jobHandlers.Delete)
	})

	userHandlers := NewUserHandlers(svc.Users)
	router.Route("/users", func(r chi.Router) {
		r.With(RequireAdmin).Get("/", userHandlers.List)
		r.With(RequireAdminOrSelf).Get("/{username}", userHandlers.Get)
		r.With(RequireAdminOrSelf).Patch("/{username}", userHandlers.Update)
		r.With(RequireAdminOrSelf).Delete("/{username}", userHandlers.Delete)
		r.With(RequireAdminOrSelf).Post("/{username}/jobs/{id}", userHandlers.Apply)
	})

	return router
}
