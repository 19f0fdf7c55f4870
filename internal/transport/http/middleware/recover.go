package middleware

import (
	"log"
	"net/http"

	"sitecrew/internal/transport/http/api"
)

func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic recovered: %v (requestId=%s)", rec, GetRequestID(r.Context()))
				api.InternalError(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
