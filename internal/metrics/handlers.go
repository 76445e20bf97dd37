package metrics

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleList handles GET /v1/metrics?days=N.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid days")
			return
		}
		days = parsed
	}

	snapshots, err := h.service.GetHealthMetrics(r.Context(), days)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MetricsResponse{Metrics: snapshots})
}

// HandleAdd handles POST /v1/metrics.
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req AddMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	metric, err := h.service.AddHealthMetric(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, metric)
}

// HandleListDevices handles GET /v1/devices.
func (h *Handler) HandleListDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.service.GetDevices(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DevicesResponse{Devices: devices})
}

// HandleSync handles POST /v1/devices/{id}/sync.
func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	id, err := extractDeviceID(r.URL.Path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid device ID")
		return
	}

	resp, err := h.service.SyncWearableData(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Device not found")
	case errors.Is(err, ErrDeviceOffline):
		writeError(w, http.StatusBadGateway, "upstream_unavailable", "Device is not connected")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}

// extractDeviceID pulls the UUID out of /v1/devices/{id}/sync.
func extractDeviceID(path string) (uuid.UUID, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 {
		return uuid.Nil, errors.New("invalid path")
	}

	return uuid.Parse(parts[2])
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
