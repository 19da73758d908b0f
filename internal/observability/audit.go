package observability

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
)

// Audit emits a structured audit line tied to the request context so the
// trace handler can attach span identifiers.
func Audit(r *http.Request, event string, attrs ...any) {
	base := []any{
		"event", event,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", r.Header.Get("X-Request-Id"),
		"remote_ip", clientIP(r),
	}
	slog.InfoContext(r.Context(), "audit", append(base, attrs...)...)
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
