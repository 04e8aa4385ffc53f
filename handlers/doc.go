// Package handlers provides the HTTP plumbing around a DTA1-verified
// vendor endpoint: middleware composition, panic recovery, request ID
// propagation, JSON responses, and a connection-capped listener.
//
// # Middleware Composition
//
// Middleware is expressed as MiddlewareFunc, a plain
// func(http.Handler) http.Handler, and composed with Chain. The first
// middleware passed to Chain is the outermost:
//
//	handler := handlers.Chain(operationHandler,
//	    handlers.RecoveryMiddleware(handlers.RecoveryConfig{}),
//	    requestID,
//	    authMiddleware,
//	)
//
// # Recovery Middleware
//
// RecoveryMiddleware converts panics in downstream handlers into a
// 500 Internal Server Error response, optionally reporting the
// recovered value through a callback:
//
//	mw := handlers.RecoveryMiddleware(handlers.RecoveryConfig{
//	    LogFunc: func(r *http.Request, err any) {
//	        log.Printf("panic serving %s: %v", r.URL.Path, err)
//	    },
//	})
//
// # Request ID Middleware
//
// RequestIDMiddleware generates or propagates an X-Request-ID header
// and stores the ID in the request context for handlers to read via
// RequestIDFromContext.
//
// # Serving
//
// Listen opens a TCP listener, optionally capped to a maximum number
// of concurrent connections, and Serve runs an http.Server on it with
// graceful shutdown when the context is cancelled:
//
//	cfg := handlers.ServerConfig{
//	    Addr:           ":8443",
//	    MaxConnections: 256,
//	}
//
//	ln, err := handlers.Listen(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := handlers.Serve(ctx, ln, handler, cfg); err != nil {
//	    log.Fatal(err)
//	}
package handlers
