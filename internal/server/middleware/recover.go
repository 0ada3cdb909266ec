package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/siteauth/internal/shared/logger"
)

// sentWriter запоминает, ушли ли клиенту заголовки.
type sentWriter struct {
	http.ResponseWriter
	sent bool
}

func (w *sentWriter) WriteHeader(status int) {
	w.sent = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *sentWriter) Write(b []byte) (int, error) {
	w.sent = true
	return w.ResponseWriter.Write(b)
}

// RecoverMiddleware превращает панику в хендлере в 500 {"ok":false,"message":"Server error"}.
// Сама паника и стек пишутся в лог, клиенту детали не уходят.
// Если ответ уже начат, статус не поменять: паника только логируется.
func RecoverMiddleware(log *logger.HTTPLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			w := &sentWriter{ResponseWriter: rw}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// штатный способ оборвать ответ, не наша ошибка
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic in handler",
					zap.String("method", r.Method),
					zap.String("uri", r.RequestURI),
					zap.String("request_id", r.Header.Get(RequestIDHeader)),
					zap.String("panic", fmt.Sprint(rec)),
					zap.Bool("response_started", w.sent),
					zap.ByteString("stack", debug.Stack()),
				)

				if w.sent {
					return
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]any{"ok": false, "message": "Server error"})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
