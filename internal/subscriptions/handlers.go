package subscriptions

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

// HandleUpgrade handles POST /v1/subscription/upgrade.
func (h *Handler) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	var req UpgradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	res, err := h.service.UpgradeSubscription(r.Context(), req.Plan)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// HandleCancel handles POST /v1/subscription/cancel.
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.CancelSubscription(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// HandleListFeatures handles GET /v1/subscription/features.
func (h *Handler) HandleListFeatures(w http.ResponseWriter, r *http.Request) {
	features, err := h.service.ListFeatures(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, FeaturesResponse{Features: features})
}

// HandleCheckAccess handles GET /v1/subscription/features/{id}/access.
func (h *Handler) HandleCheckAccess(w http.ResponseWriter, r *http.Request) {
	id, err := extractFeatureID(r.URL.Path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid feature ID")
		return
	}

	hasAccess, err := h.service.CheckFeatureAccess(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AccessResponse{
		FeatureID: id.String(),
		HasAccess: hasAccess,
	})
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Feature not found")
	case errors.Is(err, ErrPaymentFailed):
		writeError(w, http.StatusBadGateway, "upstream_unavailable", "Payment provider failed")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}

// extractFeatureID pulls the UUID out of /v1/subscription/features/{id}/access.
func extractFeatureID(path string) (uuid.UUID, error) {
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
