package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/GunaPalanivel/arenaview/internal/metrics"
	"github.com/GunaPalanivel/arenaview/internal/middleware"
	"github.com/GunaPalanivel/arenaview/internal/validation"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	CORSAllowedOrigin string
	ThrottleRPS       float64
	ThrottleBurst     int
	TokenVerifier     middleware.TokenVerifier
	UserFinder        middleware.UserFinder

	// クライアント単位のレートリミッター
	AuthLimiter      *middleware.RateLimiter
	RegisterLimiter  *middleware.RateLimiter
	CatalogLimiter   *middleware.RateLimiter
	FavoritesLimiter *middleware.RateLimiter

	// サービス
	AuthService      AuthServiceInterface
	CatalogService   CatalogServiceInterface
	FavoritesService FavoritesServiceInterface

	// 可観測性
	Logger    *slog.Logger
	Collector metrics.MetricsCollector
	Gatherer  prometheus.Gatherer

	// 本番環境では偽にし、内部エラーの詳細をレスポンスから除外する
	ShowInternalDetail bool
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// 全ルート共通のミドルウェアスタック（外側から順に）:
//
//	Recovery → SecurityHeaders → CORS → Throttle → Logging
//
// ルート単位のパイプラインは レート制限 → バリデーション → 認証 → ハンドラー の順。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewThrottleMiddleware(deps.ThrottleRPS, deps.ThrottleBurst))
	r.Use(middleware.NewLoggingMiddleware(deps.Logger, deps.Collector))

	authHandler := NewAuthHandler(deps.AuthService, deps.Collector, deps.ShowInternalDetail)
	gameHandler := NewGameHandler(deps.CatalogService, deps.ShowInternalDetail)
	favoriteHandler := NewFavoriteHandler(deps.FavoritesService, deps.Collector, deps.ShowInternalDetail)

	authenticate := middleware.NewAuthMiddleware(deps.TokenVerifier, deps.UserFinder, deps.Collector)

	// --- 認証不要のルート ---

	r.Get("/health", Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))

	r.Route("/api/auth", func(r chi.Router) {
		r.With(
			deps.RegisterLimiter.Middleware(),
			validation.Middleware(validation.RegisterBody),
		).Post("/register", authHandler.Register)

		r.With(
			deps.AuthLimiter.Middleware(),
			validation.Middleware(validation.LoginBody),
		).Post("/login", authHandler.Login)
	})

	// --- 認証が必要なルート ---

	r.Route("/api/games", func(r chi.Router) {
		r.With(
			deps.CatalogLimiter.Middleware(),
			validation.Middleware(validation.GamesQuery),
			authenticate,
		).Get("/", gameHandler.ListGames)

		r.With(
			validation.Middleware(validation.GameIDPath),
			authenticate,
		).Get("/{id}", gameHandler.GetGame)
	})

	r.Route("/api/favorites", func(r chi.Router) {
		r.With(authenticate).Get("/", favoriteHandler.ListFavorites)

		r.Group(func(r chi.Router) {
			r.Use(
				deps.FavoritesLimiter.Middleware(),
				validation.Middleware(validation.FavoriteGameIDPath),
				authenticate,
			)
			r.Post("/{gameId}", favoriteHandler.AddFavorite)
			r.Delete("/{gameId}", favoriteHandler.RemoveFavorite)
		})
	})

	return r
}
