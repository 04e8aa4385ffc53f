package handlers

import "net/http"

// MiddlewareFunc wraps an http.Handler with additional behaviour.
type MiddlewareFunc func(http.Handler) http.Handler

// Chain wraps h with the given middlewares. The first middleware is
// the outermost, so it sees the request first and the response last.
func Chain(h http.Handler, middlewares ...MiddlewareFunc) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}

	return h
}
