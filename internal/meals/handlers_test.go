package meals

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/vitacoach/server/internal/simulate"
	"github.com/vitacoach/server/internal/storage/memory"
)

func newTestHandler() *Handler {
	store := memory.New()
	return NewHandler(NewService(store, store, &simulate.Manual{}))
}

func TestHandleListFiltersByDate(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/meals?date=2024-03-15", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var resp MealsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(resp.Meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(resp.Meals))
	}
}

func TestHandleListRejectsBadDate(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/meals?date=yesterday", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestHandleAddCreatesMeal(t *testing.T) {
	h := newTestHandler()

	body := `{"name":"Protein Shake","type":"snack","foods":[{"name":"Whey","quantity":30,"unit":"g","calories":120}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/meals", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleAdd(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status: %d, body=%s", rec.Code, rec.Body.String())
	}

	var meal map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &meal); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if meal["total_calories"] != float64(120) {
		t.Fatalf("unexpected total_calories: %v", meal["total_calories"])
	}
}

func TestHandleAddRejectsUnknownType(t *testing.T) {
	h := newTestHandler()

	body := `{"name":"Brunch","type":"brunch","foods":[{"name":"Eggs","calories":150}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/meals", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleAdd(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Error.Code != "invalid_request" {
		t.Fatalf("unexpected error code: %s", resp.Error.Code)
	}
}

func TestHandleDeleteMissingMealReturns404(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/v1/meals/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestHandleDeleteSeededMeal(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/v1/meals/"+memory.FixtureMealLunchID.String(), nil)
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
