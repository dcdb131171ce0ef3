package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"restoran/menu-svc/internal/domain"
	"restoran/menu-svc/internal/service"
)

type Services struct {
	Categories service.CategoryServiceInterface
	MenuItems  service.MenuItemServiceInterface
	Promotions service.PromotionServiceInterface
	Contents   service.ContentServiceInterface
	Orders     service.OrderServiceInterface
}

type Handler struct {
	Services
	Uploads Uploader
	logger  zerolog.Logger
}

func NewHandler(svcs Services, uploads Uploader, logger zerolog.Logger) *Handler {
	return &Handler{Services: svcs, Uploads: uploads, logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/categories/", h.listCategories).Methods("GET")
	api.HandleFunc("/categories/", h.createCategory).Methods("POST")
	api.HandleFunc("/categories/{id:[0-9]+}/", h.getCategory).Methods("GET")
	api.HandleFunc("/categories/{id:[0-9]+}/", h.updateCategory).Methods("PATCH")
	api.HandleFunc("/categories/{id:[0-9]+}/", h.deleteCategory).Methods("DELETE")

	api.HandleFunc("/menu-items/", h.listMenuItems).Methods("GET")
	api.HandleFunc("/menu-items/", h.createMenuItem).Methods("POST")
	api.HandleFunc("/menu-items/{id:[0-9]+}/", h.getMenuItem).Methods("GET")
	api.HandleFunc("/menu-items/{id:[0-9]+}/", h.updateMenuItem).Methods("PATCH")
	api.HandleFunc("/menu-items/{id:[0-9]+}/", h.deleteMenuItem).Methods("DELETE")

	api.HandleFunc("/promotions/", h.listPromotions).Methods("GET")
	api.HandleFunc("/promotions/", h.createPromotion).Methods("POST")
	api.HandleFunc("/promotions/{id:[0-9]+}/", h.getPromotion).Methods("GET")
	api.HandleFunc("/promotions/{id:[0-9]+}/", h.updatePromotion).Methods("PATCH")
	api.HandleFunc("/promotions/{id:[0-9]+}/", h.deletePromotion).Methods("DELETE")

	api.HandleFunc("/content/", h.listContents).Methods("GET")
	api.HandleFunc("/content/", h.createContent).Methods("POST")
	api.HandleFunc("/content/{key}/", h.getContent).Methods("GET")
	api.HandleFunc("/content/{key}/", h.updateContent).Methods("PATCH")
	api.HandleFunc("/content/{key}/", h.deleteContent).Methods("DELETE")

	api.HandleFunc("/orders/", h.listOrders).Methods("GET")
	api.HandleFunc("/orders/", h.createOrder).Methods("POST")
	api.HandleFunc("/orders/{id:[0-9]+}/", h.getOrder).Methods("GET")
	api.HandleFunc("/orders/{id:[0-9]+}/qrcode/", h.getOrderQRCode).Methods("GET")

	r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.Uploads.Dir)))).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeList wraps a collection the way every list endpoint returns it.
func writeList[T any](w http.ResponseWriter, items []T) {
	writeJSON(w, http.StatusOK, map[string]any{
		"results": items,
		"count":   len(items),
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := httpStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("request failed")
		http.Error(w, "Internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
