package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/pribylovaa/go-filmorate/pkg/log"
)

// Timeout ограничивает обработку запроса бюджетом d.
// Более ранний дедлайн родительского контекста сохраняется; d<=0 отключает ограничение.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				log.From(ctx).Warn("request_deadline_exceeded",
					"path", r.URL.Path,
					"budget", d,
				)
			}
		})
	}
}
