package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandler_CORS_AllowedOrigin(t *testing.T) {
	h := New(nil, []string{"https://www.alaama.co", "http://localhost:3000"})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/public/services", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.CORS(next).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected origin echoed, got %q", got)
	}
	if rec.Header().Get("Vary") != "Origin" {
		t.Error("expected Vary: Origin on allowed origins")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected request forwarded to next, got %d", rec.Code)
	}
}

func TestHandler_CORS_DisallowedOrigin(t *testing.T) {
	h := New(nil, []string{"https://www.alaama.co"})

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/public/services", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.CORS(next).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin header for unknown origin, got %q", got)
	}
	// The request itself still goes through; the browser enforces CORS.
	if !nextCalled {
		t.Error("expected next handler to run")
	}
}

func TestHandler_CORS_Preflight(t *testing.T) {
	h := New(nil, []string{"https://www.alaama.co"})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight must not reach the next handler")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://www.alaama.co")
	rec := httptest.NewRecorder()
	h.CORS(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("expected allow-methods header on preflight")
	}
}

func TestHandler_Root(t *testing.T) {
	h := New(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	rec := httptest.NewRecorder()
	h.Root(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp rootResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Alaama Creative Studio API" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.Status != "active" {
		t.Errorf("unexpected status: %q", resp.Status)
	}
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{"remote addr with port", "203.0.113.7:51234", "", "203.0.113.7"},
		{"forwarded single", "10.0.0.1:1", "198.51.100.9", "198.51.100.9"},
		{"forwarded chain", "10.0.0.1:1", "198.51.100.9, 10.0.0.1, 10.0.0.2", "198.51.100.9"},
		{"forwarded with spaces", "10.0.0.1:1", "  198.51.100.9 , 10.0.0.1", "198.51.100.9"},
		{"remote addr without port", "203.0.113.7", "", "203.0.113.7"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if got := clientIP(req); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
