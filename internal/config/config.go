// Package config は環境変数からのアプリケーション設定読み込みを提供する。
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// minJWTSecretLength はJWT署名鍵の最小長。
// これを下回る鍵での起動は拒否する。
const minJWTSecretLength = 32

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Database
	DatabaseURL string

	// Auth
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	// Rate Limit（固定ウィンドウ方式）
	AuthRateWindow      time.Duration
	AuthRateMax         int
	RegisterRateWindow  time.Duration
	RegisterRateMax     int
	CatalogRateWindow   time.Duration
	CatalogRateMax      int
	FavoritesRateWindow time.Duration
	FavoritesRateMax    int

	// Throttle（プロセス全体のトークンバケット）
	ThrottleRPS   float64
	ThrottleBurst int

	// Server
	ServerPort string
	Env        string

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
// カレントディレクトリに.envがあれば先に読み込む（未存在は無視）。
// 必須環境変数が未設定の場合、およびJWT_SECRETが32文字未満の場合はエラーを返す。
// 署名鍵の長さ検証は起動時不変条件であり、リクエスト時エラーにはしない。
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	// Required fields
	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	if len(cfg.JWTSecret) < minJWTSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters long", minJWTSecretLength)
	}

	// Optional fields with defaults
	cfg.TokenTTL = getEnvDuration("TOKEN_TTL", 7*24*time.Hour)
	cfg.BcryptCost = getEnvInt("BCRYPT_COST", 12)

	cfg.AuthRateWindow = getEnvDuration("RATE_AUTH_WINDOW", 15*time.Minute)
	cfg.AuthRateMax = getEnvInt("RATE_AUTH_MAX", 5)
	cfg.RegisterRateWindow = getEnvDuration("RATE_REGISTER_WINDOW", 60*time.Minute)
	cfg.RegisterRateMax = getEnvInt("RATE_REGISTER_MAX", 3)
	cfg.CatalogRateWindow = getEnvDuration("RATE_CATALOG_WINDOW", time.Minute)
	cfg.CatalogRateMax = getEnvInt("RATE_CATALOG_MAX", 100)
	cfg.FavoritesRateWindow = getEnvDuration("RATE_FAVORITES_WINDOW", time.Minute)
	cfg.FavoritesRateMax = getEnvInt("RATE_FAVORITES_MAX", 30)

	cfg.ThrottleRPS = getEnvFloat("THROTTLE_RPS", 200)
	cfg.ThrottleBurst = getEnvInt("THROTTLE_BURST", 400)

	cfg.ServerPort = getEnvString("SERVER_PORT", "3001")
	cfg.Env = getEnvString("ENV", "development")
	cfg.CORSAllowedOrigin = getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:5173")

	return cfg, nil
}

// IsProduction は本番環境向け設定かどうかを返す。
// 本番では内部エラーの詳細メッセージをレスポンスに含めない。
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
