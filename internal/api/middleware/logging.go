package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
)

// statusRecorder запоминает код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// AccessLog пишет строку лога на каждый запрос
func AccessLog(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			format := "%s %s - status=%d duration=%s request_id=%s"
			args := []interface{}{r.Method, r.URL.Path, rec.status, time.Since(start), GetRequestID(r.Context())}
			if rec.status >= http.StatusInternalServerError {
				log.Error(format, args...)
				return
			}
			log.Info(format, args...)
		})
	}
}

// Recover перехватывает панику в обработчике и отвечает 500
func Recover(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					log.Error("%s %s - panic recovered: %v\n%s", r.Method, r.URL.Path, p, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
