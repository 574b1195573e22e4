package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hanko-field/emoji/internal/platform/requestctx"
)

func TestWriteError(t *testing.T) {
	ctx := requestctx.WithTrace(context.Background(), requestctx.TraceInfo{TraceID: "trace-1"})
	rr := httptest.NewRecorder()

	WriteError(ctx, rr, NotFound("emoji_not_found", "no emoji\nfor sequence").WithDetails(map[string]any{"sequence": "x"}))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["error"] != "emoji_not_found" {
		t.Fatalf("unexpected code %v", body["error"])
	}
	if body["message"] != "no emoji for sequence" {
		t.Fatalf("expected sanitised message, got %v", body["message"])
	}
	if body["trace_id"] != "trace-1" {
		t.Fatalf("expected trace id, got %v", body["trace_id"])
	}
	if body["sequence"] != "x" {
		t.Fatalf("expected details to be merged, got %v", body)
	}
	if _, ok := body["request_id"]; ok {
		t.Fatalf("expected no request id without middleware")
	}
}

func TestNewErrorDefaultsStatus(t *testing.T) {
	if NewError("boom", "boom", 0).Status != http.StatusInternalServerError {
		t.Fatalf("expected default status 500")
	}
	if BadRequest("bad").Status != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
}

func TestWithDetailsKeepsReservedKeys(t *testing.T) {
	err := Unavailable("index_unavailable", "down").WithDetails(map[string]any{"status": 200, "language": "de"})
	rr := httptest.NewRecorder()
	WriteError(context.Background(), rr, err)

	var body map[string]any
	if jsonErr := json.Unmarshal(rr.Body.Bytes(), &body); jsonErr != nil {
		t.Fatalf("failed to parse response: %v", jsonErr)
	}
	if body["status"] != float64(http.StatusServiceUnavailable) || body["language"] != "de" {
		t.Fatalf("unexpected body %v", body)
	}
	if err.Error() != "index_unavailable: down" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestNotModified(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   bool
	}{
		{name: "no header", header: "", want: false},
		{name: "exact", header: `"01HX"`, want: true},
		{name: "weak in list", header: `"other", W/"01HX"`, want: true},
		{name: "wildcard", header: "*", want: true},
		{name: "mismatch", header: `"other"`, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/emoji/index", nil)
			if tc.header != "" {
				req.Header.Set("If-None-Match", tc.header)
			}
			rr := httptest.NewRecorder()
			got := NotModified(rr, req, `"01HX"`)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if rr.Header().Get("ETag") != `"01HX"` {
				t.Fatalf("expected ETag header to be set")
			}
			if got && rr.Code != http.StatusNotModified {
				t.Fatalf("expected 304, got %d", rr.Code)
			}
		})
	}
}
