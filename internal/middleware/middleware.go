package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

// Wrap applies middlewares so that the first one listed handles the
// request outermost.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}
