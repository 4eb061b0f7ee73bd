package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/GunaPalanivel/arenaview/internal/respond"
)

// NewRecoveryMiddleware はpanic発生時にプロセスクラッシュを防ぎ、
// 500レスポンスを返すミドルウェアを生成する。
// panicの内容はログにのみ出力し、レスポンスには含めない。
func NewRecoveryMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("panic recovered",
						slog.Any("panic", rec),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())),
					)
					respond.Error(w, http.StatusInternalServerError, "サーバー内部でエラーが発生しました。")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
