package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"restoran/feedback-svc/internal/domain"
	"restoran/feedback-svc/internal/service"
)

type Handler struct {
	Feedback service.FeedbackServiceInterface
	logger   zerolog.Logger
}

func NewHandler(feedback service.FeedbackServiceInterface, logger zerolog.Logger) *Handler {
	return &Handler{Feedback: feedback, logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/feedback/", h.submitFeedback).Methods("POST")
	r.HandleFunc("/api/feedback/", h.listFeedback).Methods("GET")
	r.HandleFunc("/api/feedback/stats/", h.feedbackStats).Methods("GET")
	r.HandleFunc("/api/feedback/{id:[0-9]+}/", h.markFeedback).Methods("PATCH")
	r.HandleFunc("/api/feedback/{id:[0-9]+}/", h.deleteFeedback).Methods("DELETE")
}

func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	var feedback domain.Feedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Feedback.Submit(r.Context(), &feedback); err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, feedback)
}

func (h *Handler) listFeedback(w http.ResponseWriter, r *http.Request) {
	filter := domain.FeedbackFilter{UnreadOnly: r.URL.Query().Get("unread") == "true"}

	feedback, err := h.Feedback.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": feedback,
		"count":   len(feedback),
	})
}

func (h *Handler) markFeedback(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	var payload struct {
		IsRead *bool `json:"is_read"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.IsRead == nil {
		http.Error(w, "is_read is required", http.StatusBadRequest)
		return
	}

	feedback, err := h.Feedback.MarkRead(r.Context(), id, *payload.IsRead)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, feedback)
}

func (h *Handler) deleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)

	if err := h.Feedback.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) feedbackStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Feedback.Stats(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "feedback-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrDuplicateFeedback):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error().Err(err).Msg("request failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
