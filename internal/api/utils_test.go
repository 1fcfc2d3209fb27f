package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONBody(t *testing.T) {
	type body struct {
		Prompt string `json:"prompt"`
	}

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"valid", `{"prompt":"goa","extra":true}`, ""},
		{"empty", ``, "body must not be empty"},
		{"malformed", `{"prompt":`, "badly-formed JSON"},
		{"wrong type", `{"prompt":7}`, `incorrect JSON type for field "prompt"`},
		{"two values", `{"prompt":"a"}{"prompt":"b"}`, "single JSON value"},
		{"too large", `{"prompt":"` + strings.Repeat("x", maxBodyBytes) + `"}`, "must not be larger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst body
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))
			err := DecodeJSONBody(httptest.NewRecorder(), r, &dst)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "goa", dst.Prompt)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestErrorResponse(t *testing.T) {
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, r, http.StatusNotFound, "Trip not found")
	})
	handler = middleware.RequestID(handler)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/trips/x", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Trip not found", resp["error"])
	assert.NotEmpty(t, resp["request_id"])
}

func TestWriteJSONResponse_NoContent(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONResponse(w, httptest.NewRequest(http.MethodDelete, "/", nil), http.StatusNoContent, map[string]string{"a": "b"})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
