package workouts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vitacoach/server/internal/simulate"
	"github.com/vitacoach/server/internal/storage/memory"
)

func newTestHandler() *Handler {
	store := memory.New()
	return NewHandler(NewService(store, store, &simulate.Manual{}))
}

func TestHandleListRejectsBadLimit(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/workouts?limit=lots", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestHandleListReturnsWorkouts(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/workouts", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var resp WorkoutsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(resp.Workouts) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(resp.Workouts))
	}
}

func TestHandleGeneratePlan(t *testing.T) {
	h := newTestHandler()

	body := `{"goals":["endurance"],"difficulty":"beginner","days_per_week":3}`
	req := httptest.NewRequest(http.MethodPost, "/v1/workouts/plans", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleGeneratePlan(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body=%s", rec.Code, rec.Body.String())
	}

	var plan map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &plan); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if plan["name"] != "Custom Beginner Plan" {
		t.Fatalf("unexpected plan name: %v", plan["name"])
	}
}

func TestHandleGeneratePlanRejectsBadDays(t *testing.T) {
	h := newTestHandler()

	body := `{"goals":["endurance"],"difficulty":"beginner","days_per_week":9}`
	req := httptest.NewRequest(http.MethodPost, "/v1/workouts/plans", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleGeneratePlan(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
