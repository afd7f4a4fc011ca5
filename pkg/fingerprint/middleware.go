package fingerprint

import "net/http"

// Middleware computes the request fingerprint once and stores it in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := SetToContext(r.Context(), generate(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
