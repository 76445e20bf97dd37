package metrics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/vitacoach/server/internal/simulate"
	"github.com/vitacoach/server/internal/storage/memory"
)

func newTestHandler() *Handler {
	store := memory.New()
	return NewHandler(NewService(store, store, &simulate.Manual{}))
}

func TestHandleListReturnsSnapshots(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics?days=7", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var resp MetricsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(resp.Metrics) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(resp.Metrics))
	}
}

func TestHandleListRejectsBadDays(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics?days=-2", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestHandleSyncOfflineDeviceReturns502(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/devices/"+memory.FixtureDeviceTrackerID.String()+"/sync", nil)
	rec := httptest.NewRecorder()
	h.HandleSync(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Error.Code != "upstream_unavailable" {
		t.Fatalf("unexpected error code: %s", resp.Error.Code)
	}
}

func TestHandleSyncUnknownDeviceReturns404(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/devices/"+uuid.New().String()+"/sync", nil)
	rec := httptest.NewRecorder()
	h.HandleSync(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
