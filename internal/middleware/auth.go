package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/GunaPalanivel/arenaview/internal/auth"
	"github.com/GunaPalanivel/arenaview/internal/metrics"
	"github.com/GunaPalanivel/arenaview/internal/model"
	"github.com/GunaPalanivel/arenaview/internal/respond"
)

const bearerPrefix = "Bearer "

// 認証失敗理由。ログとメトリクスでのみ区別し、レスポンスは常に汎用の401。
const (
	authFailMissingHeader   = "missing_header"
	authFailMalformedHeader = "malformed_header"
	authFailInvalidToken    = "invalid_token"
	authFailExpiredToken    = "expired_token"
	authFailUserNotFound    = "user_not_found"
)

// TokenVerifier はトークン検証に必要なインターフェース。
// auth.TokenServiceの部分集合として定義する。
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserFinder はユーザー存在確認に必要なインターフェース。
// repository.UserRepositoryの部分集合として定義する。
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// NewAuthMiddleware はBearerトークンを検証し、認証済みユーザーIDを
// リクエストコンテキストに注入するミドルウェアを返す。
// トークンが有効でもユーザー行が存在しなければ認証失敗とする。
// 失敗理由は内部で区別するが、レスポンスは常に汎用の401を返す。
func NewAuthMiddleware(tokens TokenVerifier, users UserFinder, collector metrics.MetricsCollector) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, reason := authenticate(r, tokens, users)
			if reason != "" {
				slog.Warn("authentication failed",
					slog.String("reason", reason),
					slog.String("path", r.URL.Path),
				)
				collector.RecordAuthFailure(reason)
				respond.APIError(w, model.NewUnauthorizedError())
				return
			}

			ctx := context.WithValue(r.Context(), userIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewOptionalAuthMiddleware は認証を試み、成功した場合のみユーザーIDを
// コンテキストに注入するミドルウェアを返す。失敗時は拒否せず
// 匿名リクエストとして後段へ進める。認証済みなら出力をパーソナライズし、
// 匿名でも応答するルート用。現時点で匿名時に出力が変わるルートは無いため
// どこにも配線されていない。カタログ応答にお気に入り済みフラグを
// 付与する際はこれをゲーム一覧ルートに差し込む。
func NewOptionalAuthMiddleware(tokens TokenVerifier, users UserFinder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, reason := authenticate(r, tokens, users)
			if reason != "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authenticate はリクエストの認証を行い、ユーザーIDまたは失敗理由を返す。
// 状態遷移: 未認証 → ヘッダー形式確認 → トークン検証 → ユーザー存在確認 → 認証済み。
func authenticate(r *http.Request, tokens TokenVerifier, users UserFinder) (userID, failReason string) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", authFailMissingHeader
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", authFailMalformedHeader
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", authFailMalformedHeader
	}

	id, err := tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return "", authFailExpiredToken
		}
		return "", authFailInvalidToken
	}

	user, err := users.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to find user during authentication",
			slog.String("error", err.Error()),
		)
		return "", authFailUserNotFound
	}
	if user == nil {
		return "", authFailUserNotFound
	}

	return id, ""
}
