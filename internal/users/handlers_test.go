package users

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vitacoach/server/internal/blob"
	"github.com/vitacoach/server/internal/simulate"
	"github.com/vitacoach/server/internal/storage/memory"
)

func newTestHandler() *Handler {
	svc := NewService(memory.New(), blob.NewMemoryStore(), &simulate.Manual{}, 1)
	return NewHandler(svc)
}

func TestHandleGetReturnsUser(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/user", nil)
	rec := httptest.NewRecorder()
	h.HandleGet(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["email"] != "sarah.johnson@example.com" {
		t.Fatalf("unexpected email: %v", body["email"])
	}
}

func TestHandleUpdateRejectsInvalidJSON(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPatch, "/v1/user", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, req)

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

func TestHandleUpdateMergesFields(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPatch, "/v1/user", strings.NewReader(`{"name":"Sarah M. Johnson"}`))
	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body=%s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["name"] != "Sarah M. Johnson" {
		t.Fatalf("unexpected name: %v", body["name"])
	}
}

func TestHandleUploadAvatar(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/user/avatar", bytes.NewReader(pngHeader))
	rec := httptest.NewRecorder()
	h.HandleUploadAvatar(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d, body=%s", rec.Code, rec.Body.String())
	}

	var resp UploadAvatarResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if !strings.HasPrefix(resp.AvatarURL, "/uploads/avatars/") {
		t.Fatalf("unexpected avatar URL: %s", resp.AvatarURL)
	}
}

func TestHandleUploadAvatarRejectsNonImage(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/user/avatar", strings.NewReader("plain text payload"))
	rec := httptest.NewRecorder()
	h.HandleUploadAvatar(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
