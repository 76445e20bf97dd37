package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vitacoach/server/internal/config"
	"github.com/vitacoach/server/internal/storage/memory"
)

// Zero latency scale makes simulated waits return immediately.
func newTestServer() *Server {
	return New(&config.Config{Port: 8080})
}

func TestHealthz(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("expected status=ok, got %s", resp["status"])
	}
}

func TestHealthzMethodNotAllowed(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/healthz", nil)
	w := httptest.NewRecorder()

	srv.mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestRouteSmoke(t *testing.T) {
	srv := newTestServer()

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"get user", http.MethodGet, "/v1/user", "", http.StatusOK},
		{"patch user", http.MethodPatch, "/v1/user", `{"name":"Sarah J."}`, http.StatusOK},
		{"list meals", http.MethodGet, "/v1/meals", "", http.StatusOK},
		{"add meal", http.MethodPost, "/v1/meals", `{"name":"Snack","type":"snack","foods":[{"name":"Apple","quantity":1,"unit":"piece","calories":95}]}`, http.StatusCreated},
		{"delete meal", http.MethodDelete, "/v1/meals/" + memory.FixtureMealLunchID.String(), "", http.StatusNoContent},
		{"delete unknown meal", http.MethodDelete, "/v1/meals/" + memory.FixtureUserID.String(), "", http.StatusNotFound},
		{"list workouts", http.MethodGet, "/v1/workouts", "", http.StatusOK},
		{"list workout plans", http.MethodGet, "/v1/workouts/plans", "", http.StatusOK},
		{"generate workout plan", http.MethodPost, "/v1/workouts/plans", `{"goals":["strength"],"difficulty":"beginner","days_per_week":3}`, http.StatusOK},
		{"list metrics", http.MethodGet, "/v1/metrics", "", http.StatusOK},
		{"list devices", http.MethodGet, "/v1/devices", "", http.StatusOK},
		{"sync connected device", http.MethodPost, "/v1/devices/" + memory.FixtureDeviceWatchID.String() + "/sync", "", http.StatusOK},
		{"sync offline device", http.MethodPost, "/v1/devices/" + memory.FixtureDeviceTrackerID.String() + "/sync", "", http.StatusBadGateway},
		{"list recommendations", http.MethodGet, "/v1/coach/recommendations", "", http.StatusOK},
		{"mark recommendation read", http.MethodPost, "/v1/coach/recommendations/" + memory.FixtureRecProteinID.String() + "/read", "", http.StatusNoContent},
		{"motivational message", http.MethodGet, "/v1/coach/message", "", http.StatusOK},
		{"personal tip", http.MethodPost, "/v1/coach/tip", "", http.StatusOK},
		{"chat message", http.MethodPost, "/v1/chat/messages", `{"content":"hello there"}`, http.StatusOK},
		{"chat empty message", http.MethodPost, "/v1/chat/messages", `{"content":"  "}`, http.StatusBadRequest},
		{"upgrade subscription", http.MethodPost, "/v1/subscription/upgrade", `{"plan":"pro"}`, http.StatusOK},
		{"cancel subscription", http.MethodPost, "/v1/subscription/cancel", "", http.StatusOK},
		{"list features", http.MethodGet, "/v1/subscription/features", "", http.StatusOK},
		{"check feature access", http.MethodGet, "/v1/subscription/features/" + memory.FixtureFeatureAnalyticsID.String() + "/access", "", http.StatusOK},
		{"progress report", http.MethodPost, "/v1/reports/progress", `{"format":"csv"}`, http.StatusOK},
		{"unknown route", http.MethodGet, "/v1/nope", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var body *strings.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tc.method, tc.path, body)
			w := httptest.NewRecorder()

			srv.mux.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Errorf("%s %s: expected status %d, got %d, body=%s", tc.method, tc.path, tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestErrorEnvelopeShape(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodDelete, "/v1/meals/"+memory.FixtureUserID.String(), nil)
	w := httptest.NewRecorder()

	srv.mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Code != "not_found" {
		t.Errorf("expected code not_found, got %s", resp.Error.Code)
	}
}
