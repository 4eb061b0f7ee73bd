package handler

import (
	"context"
	"net/http"

	"github.com/GunaPalanivel/arenaview/internal/auth"
	"github.com/GunaPalanivel/arenaview/internal/metrics"
	"github.com/GunaPalanivel/arenaview/internal/respond"
	"github.com/GunaPalanivel/arenaview/internal/validation"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	// Register は新規ユーザーを作成し、セッショントークンを発行する。
	Register(ctx context.Context, name, email, password string) (*auth.AuthResult, error)
	// Login は資格情報を検証し、セッショントークンを発行する。
	Login(ctx context.Context, email, password string) (*auth.AuthResult, error)
}

// AuthHandler はユーザー登録・ログインのHTTPハンドラー。
type AuthHandler struct {
	service            AuthServiceInterface
	collector          metrics.MetricsCollector
	showInternalDetail bool
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AuthServiceInterface, collector metrics.MetricsCollector, showInternalDetail bool) *AuthHandler {
	return &AuthHandler{
		service:            service,
		collector:          collector,
		showInternalDetail: showInternalDetail,
	}
}

// authResultData は登録・ログイン成功時のレスポンスデータ。
type authResultData struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

// Register はユーザー登録を処理する。
// POST /api/auth/register
// ボディはバリデーションミドルウェアで検証済み。
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	body := validation.FromContext(r.Context(), validation.TargetBody)

	result, err := h.service.Register(r.Context(), body.String("name"), body.String("email"), body.String("password"))
	if err != nil {
		handleServiceError(w, err, h.showInternalDetail)
		return
	}

	h.collector.RecordRegistration()
	respond.Success(w, http.StatusCreated, "ユーザー登録が完了しました。", authResultData{
		User:  toUserResponse(result.User),
		Token: result.Token,
	})
}

// Login はログインを処理する。
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	body := validation.FromContext(r.Context(), validation.TargetBody)

	result, err := h.service.Login(r.Context(), body.String("email"), body.String("password"))
	if err != nil {
		handleServiceError(w, err, h.showInternalDetail)
		return
	}

	respond.Success(w, http.StatusOK, "ログインしました。", authResultData{
		User:  toUserResponse(result.User),
		Token: result.Token,
	})
}
