package dta1

import (
	"net/http"

	"github.com/vitalvas/dtasig/handlers"
)

// MiddlewareConfig configures the server-side verification middleware.
type MiddlewareConfig struct {
	// Verify configures how signatures are verified.
	Verify VerifyConfig

	// OnError is called when verification fails. When nil, a plain 403
	// Forbidden response is sent.
	OnError func(w http.ResponseWriter, r *http.Request)
}

// Middleware returns a handlers.MiddlewareFunc that verifies the DTA1
// signature on incoming requests before dispatching to the next
// handler.
//
// It returns ErrNoKeyStore if VerifyConfig.Keys is nil.
func Middleware(cfg MiddlewareConfig) (handlers.MiddlewareFunc, error) {
	if cfg.Verify.Keys == nil {
		return nil, ErrNoKeyStore
	}

	onError := cfg.OnError
	if onError == nil {
		onError = defaultOnError
	}

	verifyCfg := cfg.Verify

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !VerifyRequest(r, verifyCfg) {
				onError(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// defaultOnError writes a 403 Forbidden response with no body.
func defaultOnError(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusForbidden)
}
