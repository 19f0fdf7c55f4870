package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSONWritesPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]string{"name": "North Yard"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"name":"North Yard"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestJSONNilPayloadIsNull(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, nil)

	if strings.TrimSpace(rec.Body.String()) != "null" {
		t.Fatalf("expected null body, got %s", rec.Body.String())
	}
}

func TestErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusNotFound, "Employee not found")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"error":"Employee not found"}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
