package middleware

import (
	"log/slog"
	"net/http"

	"github.com/GunaPalanivel/arenaview/internal/respond"
)

// NewCORSMiddleware は許可オリジンに対するCORSミドルウェアを返す。
// Originヘッダーのないリクエスト（同一オリジン、curl等）は許可する。
// 許可オリジンと一致しないOriginを持つリクエストは403で拒否する。
// OPTIONSプリフライトリクエストには204で応答する。
func NewCORSMiddleware(allowedOrigin string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" {
				if origin != allowedOrigin {
					slog.Warn("cross-origin request rejected",
						slog.String("origin", origin),
					)
					respond.Error(w, http.StatusForbidden, "許可されていないオリジンからのリクエストです。")
					return
				}

				w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
