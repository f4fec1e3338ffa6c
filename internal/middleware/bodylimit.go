package middleware

import "net/http"

// BodyLimit caps the readable request body at maxBytes using
// http.MaxBytesReader, so oversized payloads fail during decode
// instead of being buffered in full.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
