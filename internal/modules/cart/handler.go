package cart

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amardimiaty/storefront-backend/internal/platform/session"
)

// Handler exposes the session cart over HTTP. Each request resolves the
// caller's store through the session registry.
type Handler struct {
	stores *session.Registry[*Store]
}

func NewHandler(stores *session.Registry[*Store]) *Handler {
	return &Handler{stores: stores}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.getCart)
		r.Delete("/", h.clearCart)
		r.Post("/items", h.addItem)
		r.Patch("/items", h.setQuantity)
		r.Delete("/items", h.removeItem)
	})
}

func (h *Handler) store(r *http.Request) *Store {
	return h.stores.Get(session.IDFromContext(r.Context()))
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	summary, err := h.store(r).Summary(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, summary)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var item LineItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	summary, err := h.store(r).Add(r.Context(), item)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, summary)
}

// lineRef addresses one cart row by its composite identity.
type lineRef struct {
	ProductID string  `json:"product_id"`
	VariantID *string `json:"variant_id,omitempty"`
	Quantity  int     `json:"quantity,omitempty"`
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) {
	var ref lineRef
	if err := json.NewDecoder(r.Body).Decode(&ref); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	summary, err := h.store(r).SetQuantity(r.Context(), ref.ProductID, ref.VariantID, ref.Quantity)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, summary)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	var ref lineRef
	if err := json.NewDecoder(r.Body).Decode(&ref); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	summary, err := h.store(r).Remove(r.Context(), ref.ProductID, ref.VariantID)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, summary)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	summary, err := h.store(r).Clear(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, summary)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
