package middleware

import (
	"io"
	"net/http"
)

// the app client sends small JSON bodies; anything bigger than this is
// not worth draining for connection reuse, just close it
const maxDrainBytes = 1 << 20

// DrainAndCloseRequest drains what the handler left of the request body
// so the connection can be reused, then closes it.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil {
				return
			}
			_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, maxDrainBytes))
			_ = r.Body.Close()
		})
	}
}
