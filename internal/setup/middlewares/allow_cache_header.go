package middlewares

import "net/http"

// AllowCacheHeader lets the browser reuse a response briefly; reports carry personal
// data, so shared caches must not keep them.
func AllowCacheHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "private, max-age=60")
		next.ServeHTTP(w, r)
	})
}
