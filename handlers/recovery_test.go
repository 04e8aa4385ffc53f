package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		logFunc       func(r *http.Request, err any)
		wantCode      int
		wantLogCalled bool
	}{
		{
			name: "no panic passes through",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "panic returns 500",
			handler: func(_ http.ResponseWriter, _ *http.Request) {
				panic("something went wrong")
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "panic with LogFunc calls logger",
			handler: func(_ http.ResponseWriter, _ *http.Request) {
				panic("log this")
			},
			logFunc:       func(_ *http.Request, _ any) {},
			wantCode:      http.StatusInternalServerError,
			wantLogCalled: true,
		},
		{
			name: "panic with integer value",
			handler: func(_ http.ResponseWriter, _ *http.Request) {
				panic(42)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logCalled bool

			cfg := RecoveryConfig{}
			if tt.logFunc != nil {
				cfg.LogFunc = func(r *http.Request, err any) {
					logCalled = true
					tt.logFunc(r, err)
				}
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/", nil)

			RecoveryMiddleware(cfg)(tt.handler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantLogCalled, logCalled)
		})
	}
}
