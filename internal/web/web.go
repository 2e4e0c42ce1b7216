package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Bharathisthe/Testing/internal/api/types"
)

func JSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("json encode", "err", err)
	}
}

func Error(w http.ResponseWriter, code int, err error) {
	ErrorCode(w, code, "error", err.Error())
}

// ErrorCode writes the service's error body. The message field is what
// callers match on, so it always carries a human-readable reason.
func ErrorCode(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, types.MessageBody{Message: message, Code: code})
}

// StatusWriter wraps ResponseWriter to capture the status code.
type StatusWriter struct {
	http.ResponseWriter
	Code int
}

func (w *StatusWriter) WriteHeader(code int) {
	w.Code = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *StatusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
