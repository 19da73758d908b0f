package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// JSON writes a success envelope. Payload keys sit next to "success" and
// "message" rather than under a data field, matching what existing clients read.
func JSON(w http.ResponseWriter, r *http.Request, status int, message string, payload map[string]any) {
	body := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		body[k] = v
	}
	body["success"] = true
	if message != "" {
		body["message"] = message
	}
	write(w, r, status, body)
}

// Error writes a failure envelope. Only client-safe text belongs in message.
func Error(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	body := map[string]any{
		"success": false,
		"message": message,
		"code":    code,
	}
	if details != nil {
		body["details"] = details
	}
	if reqID := chimiddleware.GetReqID(r.Context()); reqID != "" {
		body["request_id"] = reqID
	}
	write(w, r, status, body)
}

func write(w http.ResponseWriter, r *http.Request, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.WarnContext(r.Context(), "write response body failed", "path", r.URL.Path, "error", err)
	}
}
