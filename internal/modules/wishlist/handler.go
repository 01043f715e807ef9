package wishlist

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amardimiaty/storefront-backend/internal/platform/session"
)

// Handler exposes the session wishlist over HTTP.
type Handler struct {
	stores *session.Registry[*Store]
}

func NewHandler(stores *session.Registry[*Store]) *Handler {
	return &Handler{stores: stores}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/wishlist", func(r chi.Router) {
		r.Get("/", h.list)
		r.Delete("/", h.clear)
		r.Put("/{productID}", h.add)
		r.Get("/{productID}", h.has)
		r.Delete("/{productID}", h.remove)
	})
}

func (h *Handler) store(r *http.Request) *Store {
	return h.stores.Get(session.IDFromContext(r.Context()))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.store(r).Items(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"items": items, "count": len(items)})
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var item Item
	// The product identity comes from the URL; a body with display
	// snapshots is optional.
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil && !errors.Is(err, io.EOF) {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	item.ProductID = chi.URLParam(r, "productID")
	if err := h.store(r).Add(r.Context(), item); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]bool{"saved": true})
}

func (h *Handler) has(w http.ResponseWriter, r *http.Request) {
	saved, err := h.store(r).Has(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]bool{"saved": saved})
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.store(r).Remove(r.Context(), chi.URLParam(r, "productID")); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]bool{"saved": false})
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store(r).Clear(r.Context()); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]int{"count": 0})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
