package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/estateflow/estateflow/internal/apperr"
)

// Handler holds API route handlers.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return false
	}
	return true
}

// ListLandlords handles GET /api/landlords.
//
//	@Summary		List landlords
//	@Tags			landlords
//	@Produce		json
//	@Success		200	{array}	models.Landlord
//	@Security		BearerAuth
//	@Router			/landlords [get]
func (h *Handler) ListLandlords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Landlords(r.Context()))
}

// CreateLandlord handles POST /api/landlords.
//
//	@Summary		Register a landlord
//	@Tags			landlords
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateLandlordRequest	true	"Landlord to register"
//	@Success		201		{object}	models.Landlord
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/landlords [post]
func (h *Handler) CreateLandlord(w http.ResponseWriter, r *http.Request) {
	var req CreateLandlordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusCreated, h.svc.CreateLandlord(r.Context(), req))
}

// ListProperties handles GET /api/properties.
//
//	@Summary		List properties
//	@Tags			properties
//	@Produce		json
//	@Success		200	{array}	models.Property
//	@Security		BearerAuth
//	@Router			/properties [get]
func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Properties(r.Context()))
}

// CreateProperty handles POST /api/properties.
//
//	@Summary		Register a property under a landlord
//	@Tags			properties
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreatePropertyRequest	true	"Property to register"
//	@Success		201		{object}	models.Property
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/properties [post]
func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req CreatePropertyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	property, err := h.svc.CreateProperty(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("landlord not found"))
		} else {
			slog.Error("create property failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

// ListUnits handles GET /api/units.
//
//	@Summary		List all units
//	@Tags			units
//	@Produce		json
//	@Success		200	{array}	models.Unit
//	@Security		BearerAuth
//	@Router			/units [get]
func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Units(r.Context()))
}

// CreateUnit handles POST /api/units.
//
//	@Summary		Register a unit under a property
//	@Tags			units
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateUnitRequest	true	"Unit to register"
//	@Success		201		{object}	models.Unit
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/units [post]
func (h *Handler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var req CreateUnitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	unit, err := h.svc.CreateUnit(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("property not found"))
		} else {
			slog.Error("create unit failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusCreated, unit)
}

// ListTenants handles GET /api/tenants.
//
//	@Summary		List tenants
//	@Tags			tenants
//	@Produce		json
//	@Success		200	{array}	models.Tenant
//	@Security		BearerAuth
//	@Router			/tenants [get]
func (h *Handler) ListTenants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Tenants(r.Context()))
}

// CreateTenant handles POST /api/tenants.
//
//	@Summary		Register a tenant in a unit
//	@Tags			tenants
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateTenantRequest	true	"Tenant to register"
//	@Success		201		{object}	models.Tenant
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/tenants [post]
func (h *Handler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var req CreateTenantRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	tenant, err := h.svc.CreateTenant(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("unit not found"))
		case errors.Is(err, apperr.ErrInvalid):
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		default:
			slog.Error("create tenant failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusCreated, tenant)
}

// PropertyUnits handles GET /api/properties/{propertyID}/units.
//
//	@Summary		List a property's units, top floor first
//	@Tags			properties
//	@Produce		json
//	@Param			propertyID	path		string	true	"Property ID"
//	@Success		200			{array}		models.Unit
//	@Failure		404			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/properties/{propertyID}/units [get]
func (h *Handler) PropertyUnits(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")
	units, err := h.svc.PropertyUnits(r.Context(), propertyID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("property not found"))
		return
	}
	writeJSON(w, http.StatusOK, units)
}

// PropertyVacancies handles GET /api/properties/{propertyID}/vacancies.
//
//	@Summary		List a property's vacant units
//	@Tags			properties
//	@Produce		json
//	@Param			propertyID	path		string	true	"Property ID"
//	@Success		200			{array}		models.Unit
//	@Failure		404			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/properties/{propertyID}/vacancies [get]
func (h *Handler) PropertyVacancies(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")
	units, err := h.svc.PropertyVacancies(r.Context(), propertyID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("property not found"))
		return
	}
	writeJSON(w, http.StatusOK, units)
}

// ListPayments handles GET /api/payments.
//
//	@Summary		List payment records with resolved tenant, unit, and property names
//	@Tags			payments
//	@Produce		json
//	@Success		200	{array}	PaymentView
//	@Security		BearerAuth
//	@Router			/payments [get]
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Payments(r.Context()))
}

// UpdatePaymentStatus handles PATCH /api/payments/{paymentID}/status.
//
//	@Summary		Change a payment record's status
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			paymentID	path		string						true	"Payment ID"
//	@Param			body		body		UpdatePaymentStatusRequest	true	"New status"
//	@Success		200			{object}	models.PaymentRecord
//	@Failure		400			{object}	errResponse
//	@Failure		404			{object}	errResponse
//	@Security		BearerAuth
//	@Router			/payments/{paymentID}/status [patch]
func (h *Handler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentID")
	var req UpdatePaymentStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	updated, err := h.svc.UpdatePaymentStatus(r.Context(), paymentID, req.Status)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("payment not found"))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Dashboard handles GET /api/dashboard.
//
//	@Summary		Portfolio stats plus recent overdue payments
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	DashboardResponse
//	@Security		BearerAuth
//	@Router			/dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Dashboard(r.Context()))
}

// Chat handles POST /api/assistant/chat.
//
//	@Summary		Send a prompt to the management assistant
//	@Tags			assistant
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ChatRequest	true	"Prompt"
//	@Success		200		{object}	Message
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/assistant/chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Chat(r.Context(), req.Prompt))
}

// Messages handles GET /api/assistant/messages.
//
//	@Summary		Conversation log for the current process
//	@Tags			assistant
//	@Produce		json
//	@Success		200	{array}	Message
//	@Security		BearerAuth
//	@Router			/assistant/messages [get]
func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Messages(r.Context()))
}

// DraftNotice handles POST /api/assistant/notices.
//
//	@Summary		Draft an overdue-payment notice for a payment record
//	@Tags			assistant
//	@Accept			json
//	@Produce		json
//	@Param			body	body		DraftNoticeRequest	true	"Payment to draft a notice for"
//	@Success		200		{object}	Message
//	@Failure		400		{object}	errResponse
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/assistant/notices [post]
func (h *Handler) DraftNotice(w http.ResponseWriter, r *http.Request) {
	var req DraftNoticeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	msg, err := h.svc.DraftNotice(r.Context(), req.PaymentID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("payment not found"))
		} else {
			slog.Error("draft notice failed", slog.String("payment", req.PaymentID), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// SearchAddress handles GET /api/address-search.
//
//	@Summary		Look up a road address
//	@Tags			address
//	@Produce		json
//	@Param			q	query		string	true	"Search query"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	errResponse
//	@Failure		501	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/address-search [get]
func (h *Handler) SearchAddress(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	address, err := h.svc.SearchAddress(r.Context(), q)
	if err != nil {
		if errors.Is(err, apperr.ErrUnavailable) {
			writeJSON(w, http.StatusNotImplemented, errorBody("address search not configured"))
		} else {
			slog.Error("address search failed", slog.String("query", q), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"address": address})
}
