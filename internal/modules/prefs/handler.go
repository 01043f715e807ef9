package prefs

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amardimiaty/storefront-backend/internal/platform/session"
)

// Handler exposes session preference endpoints.
type Handler struct {
	stores *session.Registry[*Store]
}

func NewHandler(stores *session.Registry[*Store]) *Handler {
	return &Handler{stores: stores}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/prefs", func(r chi.Router) {
		r.Get("/consent", h.getConsent)
		r.Put("/consent", h.setConsent)
		r.Post("/newsletter-seen", h.markSeen)
		r.Get("/newsletter-prompt", h.prompt)
	})
}

func (h *Handler) store(r *http.Request) *Store {
	return h.stores.Get(session.IDFromContext(r.Context()))
}

func (h *Handler) getConsent(w http.ResponseWriter, r *http.Request) {
	choice, err := h.store(r).Consent(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"consent": string(choice)})
}

func (h *Handler) setConsent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Consent Consent `json:"consent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.store(r).SetConsent(r.Context(), req.Consent); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"consent": string(req.Consent)})
}

func (h *Handler) markSeen(w http.ResponseWriter, r *http.Request) {
	if err := h.store(r).MarkNewsletterSeen(r.Context()); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) prompt(w http.ResponseWriter, r *http.Request) {
	show, err := h.store(r).ShouldPrompt(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]bool{"show": show})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
