package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Handler carries the cross-cutting HTTP pieces: CORS, health, and the API
// root.
type Handler struct {
	db          *pgxpool.Pool
	corsOrigins []string
}

// New creates a Handler. corsOrigins is the list of allowed browser origins.
func New(db *pgxpool.Pool, corsOrigins []string) *Handler {
	return &Handler{db: db, corsOrigins: corsOrigins}
}

// CORS allows the configured origins and answers preflight requests.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		for _, allowed := range h.corsOrigins {
			if origin == allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
				break
			}
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// Root handles GET /api/.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rootResponse{
		Message: "Alaama Creative Studio API",
		Version: "1.0.0",
		Status:  "active",
	})
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
	Version  string `json:"version"`
}

// Health handles GET /health with a database ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := h.db.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
			Version:  "1.0.0",
		})
		return
	}
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:   "healthy",
		Database: "connected",
		Version:  "1.0.0",
	})
}

// clientIP returns the originating client address: the first X-Forwarded-For
// entry when present, otherwise the connection's remote host.
func clientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		parts := strings.Split(xf, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
