package layout

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the landing-page manifest: read-only to the
// storefront, editable under the admin prefix.
type Handler struct{ manager *Manager }

func NewHandler(manager *Manager) *Handler { return &Handler{manager: manager} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/v1/layout/sections", h.getSections)
	r.Get("/api/v1/layout/featured-categories", h.getFeatured)

	r.Route("/api/v1/admin/layout", func(r chi.Router) {
		r.Get("/sections", h.getSections)
		r.Get("/featured-categories", h.getFeatured)
		r.Put("/sections", h.reorder)
		r.Patch("/sections/{id}", h.setVisible)
		r.Post("/sections/reset", h.reset)
		r.Put("/featured-categories", h.setFeatured)
	})
}

func (h *Handler) getSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.manager.Manifest(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, sections)
}

func (h *Handler) reorder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Order []SectionID `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.manager.Reorder(r.Context(), req.Order); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.getSections(w, r)
}

func (h *Handler) setVisible(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Visible bool `json:"visible"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	id := SectionID(chi.URLParam(r, "id"))
	if err := h.manager.SetVisible(r.Context(), id, req.Visible); err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "unknown section") {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	h.getSections(w, r)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Reset(r.Context()); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.getSections(w, r)
}

func (h *Handler) getFeatured(w http.ResponseWriter, r *http.Request) {
	fc, err := h.manager.Featured(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, fc)
}

func (h *Handler) setFeatured(w http.ResponseWriter, r *http.Request) {
	var fc FeaturedCategories
	if err := json.NewDecoder(r.Body).Decode(&fc); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.manager.SetFeatured(r.Context(), fc); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, fc)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
