package httpx

import (
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/hanko-field/emoji/internal/platform/requestctx"
)

const (
	codeLimit    = 80
	messageLimit = 512
	idLimit      = 80
)

// Error is the JSON error body every endpoint answers with:
// {"error", "message", "status", "request_id", "trace_id", ...details}.
type Error struct {
	Code    string
	Message string
	Status  int
	Details map[string]any
}

// NewError builds an Error; a zero status becomes 500.
func NewError(code, message string, status int) Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return Error{
		Code:    clean(code, codeLimit),
		Message: clean(message, messageLimit),
		Status:  status,
	}
}

// BadRequest is a 400 invalid_request error.
func BadRequest(message string) Error {
	return NewError("invalid_request", message, http.StatusBadRequest)
}

// NotFound is a 404 error with the given code.
func NotFound(code, message string) Error {
	return NewError(code, message, http.StatusNotFound)
}

// Unavailable is a 503 error with the given code.
func Unavailable(code, message string) Error {
	return NewError(code, message, http.StatusServiceUnavailable)
}

func (e Error) Error() string {
	return e.Code + ": " + e.Message
}

// WithDetails merges extra fields into the body. Reserved keys are ignored.
func (e Error) WithDetails(details map[string]any) Error {
	if len(details) == 0 {
		return e
	}
	merged := maps.Clone(e.Details)
	if merged == nil {
		merged = make(map[string]any, len(details))
	}
	for k, v := range details {
		switch k {
		case "error", "message", "status", "request_id", "trace_id":
			continue
		}
		merged[k] = v
	}
	e.Details = merged
	return e
}

// WriteError writes err with the request and trace ids found on ctx.
func WriteError(ctx context.Context, w http.ResponseWriter, err Error) {
	status := err.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	body := make(map[string]any, len(err.Details)+5)
	for k, v := range err.Details {
		body[k] = v
	}
	body["error"] = err.Code
	body["message"] = err.Message
	body["status"] = status
	if id := clean(middleware.GetReqID(ctx), idLimit); id != "" {
		body["request_id"] = id
	}
	if id := clean(requestctx.TraceID(ctx), idLimit); id != "" {
		body["trace_id"] = id
	}
	WriteJSON(w, status, body)
}

// WriteJSON encodes payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// NotModified sets the ETag header and, when the request's If-None-Match
// names etag (or "*"), answers 304 and returns true.
func NotModified(w http.ResponseWriter, r *http.Request, etag string) bool {
	if etag == "" {
		return false
	}
	w.Header().Set("ETag", etag)
	header := r.Header.Get("If-None-Match")
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == strings.TrimPrefix(etag, "W/") {
			w.WriteHeader(http.StatusNotModified)
			return true
		}
	}
	return false
}

func clean(value string, limit int) string {
	value = strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, value))
	if len(value) > limit {
		value = value[:limit]
	}
	return value
}
