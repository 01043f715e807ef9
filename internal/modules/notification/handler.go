package notification

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the public banner feed and the admin CRUD endpoints.
type Handler struct{ manager *Manager }

func NewHandler(manager *Manager) *Handler { return &Handler{manager: manager} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/v1/notifications", h.listActive)

	r.Route("/api/v1/admin/notifications", func(r chi.Router) {
		r.Get("/", h.listAll)
		r.Post("/", h.create)
		r.Put("/{id}", h.update)
		r.Post("/{id}/toggle", h.toggle)
		r.Delete("/{id}", h.remove)
		r.Get("/color", h.getColor)
		r.Put("/color", h.setColor)
	})
}

type notificationRequest struct {
	Text      string `json:"text"`
	Highlight string `json:"highlight,omitempty"`
}

func (h *Handler) listActive(w http.ResponseWriter, r *http.Request) {
	items, err := h.manager.Active(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	color, err := h.manager.Color(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"notifications": items, "color": color})
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.manager.List(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req notificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	n, err := h.manager.Add(r.Context(), req.Text, req.Highlight)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, n)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req notificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	n, err := h.manager.Update(r.Context(), chi.URLParam(r, "id"), req.Text, req.Highlight)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, n)
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	n, err := h.manager.Toggle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, n)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getColor(w http.ResponseWriter, r *http.Request) {
	color, err := h.manager.Color(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"color": color})
}

func (h *Handler) setColor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Color string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.manager.SetColor(r.Context(), req.Color); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"color": req.Color})
}

func statusFor(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
