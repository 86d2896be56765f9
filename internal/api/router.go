package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Portfolio collections.
	r.Get("/landlords", h.ListLandlords)
	r.Post("/landlords", h.CreateLandlord)
	r.Get("/properties", h.ListProperties)
	r.Post("/properties", h.CreateProperty)
	r.Get("/units", h.ListUnits)
	r.Post("/units", h.CreateUnit)
	r.Get("/tenants", h.ListTenants)
	r.Post("/tenants", h.CreateTenant)

	// Per-property lookups.
	r.Get("/properties/{propertyID}/units", h.PropertyUnits)
	r.Get("/properties/{propertyID}/vacancies", h.PropertyVacancies)

	// Payments.
	r.Get("/payments", h.ListPayments)
	r.Patch("/payments/{paymentID}/status", h.UpdatePaymentStatus)

	// Dashboard aggregates.
	r.Get("/dashboard", h.Dashboard)

	// Assistant.
	r.Post("/assistant/chat", h.Chat)
	r.Get("/assistant/messages", h.Messages)
	r.Post("/assistant/notices", h.DraftNotice)

	// Address lookup.
	r.Get("/address-search", h.SearchAddress)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
