package server

import (
	"net/http"
	"time"

	"github.com/admpub/log"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			format := `[%s] %s %s %d %dB %s`
			args := []interface{}{middleware.GetReqID(r.Context()), r.Method, r.URL.Path, status, ww.BytesWritten(), time.Since(start)}
			if status >= http.StatusInternalServerError {
				log.Errorf(format, args...)
			} else {
				log.Infof(format, args...)
			}
		}()
		next.ServeHTTP(ww, r)
	})
}
