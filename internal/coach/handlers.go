package coach

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleListRecommendations handles GET /v1/coach/recommendations.
func (h *Handler) HandleListRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.GetRecommendations(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RecommendationsResponse{Recommendations: recs})
}

// HandleMarkRead handles POST /v1/coach/recommendations/{id}/read.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := extractID(r.URL.Path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid recommendation ID")
		return
	}

	if err := h.service.MarkRecommendationAsRead(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleMotivationalMessage handles GET /v1/coach/message.
func (h *Handler) HandleMotivationalMessage(w http.ResponseWriter, r *http.Request) {
	msg, err := h.service.GetMotivationalMessage(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, msg)
}

// HandleGenerateTip handles POST /v1/coach/tip.
func (h *Handler) HandleGenerateTip(w http.ResponseWriter, r *http.Request) {
	tip, err := h.service.GeneratePersonalizedTip(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TipResponse{Tip: tip})
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Recommendation not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}

// extractID pulls the UUID out of /v1/coach/recommendations/{id}/read.
func extractID(path string) (uuid.UUID, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 4 {
		return uuid.Nil, errors.New("invalid path")
	}

	return uuid.Parse(parts[3])
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
