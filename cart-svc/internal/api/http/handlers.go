package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"restoran/cart-svc/internal/domain"
	"restoran/cart-svc/internal/service"
)

type Handler struct {
	Cart      service.CartServiceInterface
	Languages service.LanguageServiceInterface
	logger    zerolog.Logger
	secure    bool
}

func NewHandler(cartSvc service.CartServiceInterface, langSvc service.LanguageServiceInterface, logger zerolog.Logger, secureCookies bool) *Handler {
	return &Handler{
		Cart:      cartSvc,
		Languages: langSvc,
		logger:    logger,
		secure:    secureCookies,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(withSession(h.secure))

	api.HandleFunc("/cart/", h.getCart).Methods("GET")
	api.HandleFunc("/cart/", h.clearCart).Methods("DELETE")
	api.HandleFunc("/cart/items/", h.addItem).Methods("POST")
	api.HandleFunc("/cart/items/{id}/", h.updateQuantity).Methods("PATCH")
	api.HandleFunc("/cart/items/{id}/", h.removeItem).Methods("DELETE")
	api.HandleFunc("/cart/promotions/", h.addPromotion).Methods("POST")
	api.HandleFunc("/cart/checkout/", h.checkout).Methods("POST")

	api.HandleFunc("/language/", h.getLanguage).Methods("GET")
	api.HandleFunc("/language/", h.setLanguage).Methods("PUT")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "cart-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Cart.View(r.Context(), sessionFrom(r)))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req domain.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	view, err := h.Cart.AddMenuItem(r.Context(), sessionFrom(r), req.MenuItemID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) addPromotion(w http.ResponseWriter, r *http.Request) {
	var req domain.AddPromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	view, err := h.Cart.AddPromotion(r.Context(), sessionFrom(r), req.PromotionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity == nil {
		http.Error(w, "quantity is required", http.StatusBadRequest)
		return
	}
	view := h.Cart.UpdateQuantity(r.Context(), sessionFrom(r), mux.Vars(r)["id"], *req.Quantity)
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	view := h.Cart.RemoveItem(r.Context(), sessionFrom(r), mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Cart.Clear(r.Context(), sessionFrom(r)))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Cart.Checkout(r.Context(), sessionFrom(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getLanguage(w http.ResponseWriter, r *http.Request) {
	lang := h.Languages.Get(r.Context(), sessionFrom(r))
	writeJSON(w, http.StatusOK, domain.LanguageResponse{Language: lang})
}

func (h *Handler) setLanguage(w http.ResponseWriter, r *http.Request) {
	var req domain.LanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	lang, err := h.Languages.Set(r.Context(), sessionFrom(r), req.Language)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.LanguageResponse{Language: lang})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Int("status", status).Msg("cart request failed")
	}
	http.Error(w, err.Error(), status)
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusConflict
	case errors.Is(err, service.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
