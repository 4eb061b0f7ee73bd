// Package app はアプリケーションの起動と依存関係のワイヤリングを提供する。
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/GunaPalanivel/arenaview/internal/auth"
	"github.com/GunaPalanivel/arenaview/internal/catalog"
	"github.com/GunaPalanivel/arenaview/internal/config"
	"github.com/GunaPalanivel/arenaview/internal/database"
	"github.com/GunaPalanivel/arenaview/internal/favorites"
	"github.com/GunaPalanivel/arenaview/internal/handler"
	"github.com/GunaPalanivel/arenaview/internal/logger"
	"github.com/GunaPalanivel/arenaview/internal/metrics"
	"github.com/GunaPalanivel/arenaview/internal/middleware"
	"github.com/GunaPalanivel/arenaview/internal/repository"
	"github.com/GunaPalanivel/arenaview/internal/security"
)

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
// JWTシークレットの長さ検証もここで行われ、不正な設定では起動に失敗する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "3001"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("env", cfg.Env),
	)

	switch cmd {
	case CommandServe:
		return runServe(cfg)
	case CommandMigrate:
		return runMigrate(cfg)
	case CommandSeed:
		return runSeed(cfg)
	default:
		return runServe(cfg)
	}
}

// runServe はAPIサーバーモードで起動する。
// DB接続を開き、全依存関係をワイヤリングし、HTTPサーバーを起動する。
// SIGINTまたはSIGTERMシグナルを受信するとグレースフルシャットダウンを行う。
func runServe(cfg *config.Config) error {
	// 1. DB接続
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established")

	// 2. リポジトリの初期化
	userRepo := repository.NewPostgresUserRepo(db)
	gameRepo := repository.NewPostgresGameRepo(db)
	favoriteRepo := repository.NewPostgresFavoriteRepo(db)

	// 3. ドメインサービスの初期化
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := auth.NewService(
		userRepo,
		auth.NewPasswordHasher(cfg.BcryptCost),
		tokenService,
		security.NewNameSanitizer(),
	)
	catalogService := catalog.NewService(gameRepo)
	favoritesService := favorites.NewService(favoriteRepo, gameRepo)

	// 4. 可観測性
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// 5. レートリミッター
	// カウンタはプロセスローカルであり、複数プロセス構成では制限が
	// プロセス単位になる。共有が必要な場合はCounterStoreを差し替える。
	counterStore := middleware.NewMemoryCounterStore(5 * time.Minute)
	defer counterStore.Stop()

	deps := &handler.RouterDeps{
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		ThrottleRPS:       cfg.ThrottleRPS,
		ThrottleBurst:     cfg.ThrottleBurst,
		TokenVerifier:     tokenService,
		UserFinder:        userRepo,

		AuthLimiter:      middleware.NewRateLimiter("auth", cfg.AuthRateMax, cfg.AuthRateWindow, counterStore, collector),
		RegisterLimiter:  middleware.NewRateLimiter("register", cfg.RegisterRateMax, cfg.RegisterRateWindow, counterStore, collector),
		CatalogLimiter:   middleware.NewRateLimiter("catalog", cfg.CatalogRateMax, cfg.CatalogRateWindow, counterStore, collector),
		FavoritesLimiter: middleware.NewRateLimiter("favorites", cfg.FavoritesRateMax, cfg.FavoritesRateWindow, counterStore, collector),

		AuthService:      authService,
		CatalogService:   catalogService,
		FavoritesService: favoritesService,

		Logger:    slog.Default(),
		Collector: collector,
		Gatherer:  registry,

		ShowInternalDetail: !cfg.IsProduction(),
	}

	router := handler.NewRouter(deps)

	// 6. HTTPサーバーの起動
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// グレースフルシャットダウンのためのシグナルハンドリング
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("API server starting",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server listen error", slog.String("error", err.Error()))
		}
	}()

	<-stop
	slog.Info("shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runMigrate はデータベースマイグレーションを実行する。
// すべての未適用マイグレーションを順番に適用する。
func runMigrate(cfg *config.Config) error {
	slog.Info("running database migrations",
		slog.String("database_url", maskDatabaseURL(cfg.DatabaseURL)),
	)

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database migrations completed successfully")
	return nil
}

// runHealthcheck はヘルスチェックを実行する。
// distroless環境でのDockerヘルスチェック用サブコマンド。
// /health エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// maskDatabaseURL はデータベースURLの認証情報をマスクする。
func maskDatabaseURL(url string) string {
	if len(url) > 20 {
		return url[:12] + "***@..."
	}
	return "***"
}
