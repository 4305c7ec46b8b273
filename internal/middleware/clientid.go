package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
)

type contextKey string

const ClientIPKey contextKey = "client_ip"

// ClientIdentifier stores the caller's IP in the request context. It is the
// key used by the per-IP rate limit on public endpoints.
func ClientIdentifier(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ClientIPKey, getClientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getClientIP returns the hop appended by the nearest proxy: the right-most
// X-Forwarded-For entry, or the peer address when there is none. Left-hand
// entries and X-Real-IP are client controlled and are ignored.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		for i := len(ips) - 1; i >= 0; i-- {
			if ip := strings.TrimSpace(ips[i]); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// GetClientIP retrieves the client IP from context
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ClientIPKey).(string); ok {
		return ip
	}
	return "unknown"
}

// KeyByClientIP is an httprate key function backed by ClientIdentifier.
func KeyByClientIP(r *http.Request) (string, error) {
	return GetClientIP(r.Context()), nil
}
