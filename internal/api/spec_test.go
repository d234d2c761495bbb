package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, path := range []string{
		"/channels",
		"/channels/featured",
		"/channels/{id}",
		"/categories",
		"/catalog/refresh",
		"/favorites",
		"/favorites/{id}",
		"/favorites/{id}/toggle",
		"/health",
		"/openapi.json",
	} {
		if doc.Paths.Find(path) == nil {
			t.Errorf("expected path %s to be documented", path)
		}
	}

	param := doc.Components.Parameters["ChannelID"]
	if param == nil || param.Value == nil || !strings.Contains(param.Value.Description, `"featured"`) {
		t.Error("expected the channel id parameter to document the reserved featured id")
	}

	// Callers get independent copies.
	doc.Servers = nil
	again, err := GetSwagger()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(again.Servers) != 1 || again.Servers[0].URL != "/api" {
		t.Errorf("expected fresh document to keep its server, got %v", again.Servers)
	}
}

func TestRequestValidator(t *testing.T) {
	doc, err := GetSwagger()
	if err != nil {
		t.Fatalf("failed to load document: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := RequestValidator(doc)(next)

	tests := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
	}{
		{
			name:           "valid list request passes",
			method:         http.MethodGet,
			target:         "/channels?q=news&adult=true",
			expectedStatus: http.StatusTeapot,
		},
		{
			name:           "valid toggle passes",
			method:         http.MethodPost,
			target:         "/favorites/abc/toggle",
			expectedStatus: http.StatusTeapot,
		},
		{
			name:           "non boolean adult flag is rejected",
			method:         http.MethodGet,
			target:         "/channels?adult=maybe",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown path is rejected",
			method:         http.MethodGet,
			target:         "/streams",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus != http.StatusTeapot {
				if ct := w.Header().Get("Content-Type"); ct != "application/json" {
					t.Errorf("expected JSON error, got content type %q", ct)
				}
				if !strings.Contains(w.Body.String(), `"error"`) {
					t.Errorf("expected error body, got %s", w.Body.String())
				}
			}
		})
	}
}
