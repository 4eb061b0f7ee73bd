package middleware

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/GunaPalanivel/arenaview/internal/model"
	"github.com/GunaPalanivel/arenaview/internal/respond"
)

// NewThrottleMiddleware はプロセス全体のトークンバケットによる
// 流量制限ミドルウェアを返す。クライアント単位の固定ウィンドウ制限とは
// 独立に、プロセスが受け付ける総リクエスト量を抑える。
func NewThrottleMiddleware(rps float64, burst int) func(next http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				slog.Warn("process throttle exceeded",
					slog.String("path", r.URL.Path),
				)
				w.Header().Set("Retry-After", "1")
				respond.APIError(w, model.NewRateLimitedError(1))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
