package handlers

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var uuidV4Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		config         RequestIDConfig
		incomingHeader string
		wantHeader     string
		wantGenerated  bool
	}{
		{
			name:          "generates UUID v4 by default",
			config:        RequestIDConfig{},
			wantGenerated: true,
		},
		{
			name:           "does not trust incoming by default",
			config:         RequestIDConfig{},
			incomingHeader: "existing-id",
			wantGenerated:  true,
		},
		{
			name:           "trusts incoming when configured",
			config:         RequestIDConfig{TrustIncoming: true},
			incomingHeader: "existing-id",
			wantHeader:     "existing-id",
		},
		{
			name:          "generates when trust incoming but no header",
			config:        RequestIDConfig{TrustIncoming: true},
			wantGenerated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotContextID string

			h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotContextID = RequestIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/", nil)
			if tt.incomingHeader != "" {
				req.Header.Set("X-Request-ID", tt.incomingHeader)
			}

			rec := httptest.NewRecorder()
			RequestIDMiddleware(tt.config)(h).ServeHTTP(rec, req)

			got := rec.Header().Get("X-Request-ID")

			if tt.wantGenerated {
				assert.Regexp(t, uuidV4Regex, got)
				assert.NotEqual(t, tt.incomingHeader, got)
			} else {
				assert.Equal(t, tt.wantHeader, got)
			}

			assert.Equal(t, got, gotContextID)
		})
	}

	t.Run("custom header name", func(t *testing.T) {
		h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)

		RequestIDMiddleware(RequestIDConfig{HeaderName: "X-Trace-ID"})(h).ServeHTTP(rec, req)

		assert.Regexp(t, uuidV4Regex, rec.Header().Get("X-Trace-ID"))
		assert.Empty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("custom generator", func(t *testing.T) {
		h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)

		RequestIDMiddleware(RequestIDConfig{
			GenerateFunc: func(*http.Request) string { return "static-id" },
		})(h).ServeHTTP(rec, req)

		assert.Equal(t, "static-id", rec.Header().Get("X-Request-ID"))
	})
}

func TestRequestIDFromContext(t *testing.T) {
	t.Run("empty without middleware", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)

		assert.Empty(t, RequestIDFromContext(req.Context()))
	})
}
