package handler

import (
	"context"
	"net/http"

	"github.com/GunaPalanivel/arenaview/internal/metrics"
	"github.com/GunaPalanivel/arenaview/internal/middleware"
	"github.com/GunaPalanivel/arenaview/internal/model"
	"github.com/GunaPalanivel/arenaview/internal/respond"
	"github.com/GunaPalanivel/arenaview/internal/validation"
)

// FavoritesServiceInterface はお気に入りハンドラーが必要とするサービスインターフェース。
type FavoritesServiceInterface interface {
	// List はユーザーのお気に入り一覧をゲーム情報付きで返す。
	List(ctx context.Context, userID string) ([]model.FavoriteWithGame, error)
	// Add はゲームをお気に入りに追加する。
	Add(ctx context.Context, userID, gameID string) (*model.FavoriteWithGame, error)
	// Remove はお気に入りを削除する。
	Remove(ctx context.Context, userID, gameID string) error
}

// FavoriteHandler はお気に入り管理のHTTPハンドラー。
// 全ルートが認証必須のため、コンテキストにユーザーIDが存在する前提で動作する。
type FavoriteHandler struct {
	service            FavoritesServiceInterface
	collector          metrics.MetricsCollector
	showInternalDetail bool
}

// NewFavoriteHandler はFavoriteHandlerを生成する。
func NewFavoriteHandler(service FavoritesServiceInterface, collector metrics.MetricsCollector, showInternalDetail bool) *FavoriteHandler {
	return &FavoriteHandler{
		service:            service,
		collector:          collector,
		showInternalDetail: showInternalDetail,
	}
}

// ListFavorites はお気に入り一覧取得を処理する。
// GET /api/favorites
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		respond.APIError(w, model.NewUnauthorizedError())
		return
	}

	favorites, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err, h.showInternalDetail)
		return
	}

	respond.Success(w, http.StatusOK, "お気に入り一覧を取得しました。", map[string][]favoriteResponse{
		"favorites": toFavoriteResponses(favorites),
	})
}

// AddFavorite はお気に入り追加を処理する。
// POST /api/favorites/{gameId}
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		respond.APIError(w, model.NewUnauthorizedError())
		return
	}

	path := validation.FromContext(r.Context(), validation.TargetPath)

	favorite, err := h.service.Add(r.Context(), userID, path.String("gameId"))
	if err != nil {
		handleServiceError(w, err, h.showInternalDetail)
		return
	}

	h.collector.RecordFavoriteAdded()
	respond.Success(w, http.StatusCreated, "お気に入りに追加しました。", map[string]favoriteResponse{
		"favorite": toFavoriteResponse(favorite),
	})
}

// RemoveFavorite はお気に入り削除を処理する。
// DELETE /api/favorites/{gameId}
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		respond.APIError(w, model.NewUnauthorizedError())
		return
	}

	path := validation.FromContext(r.Context(), validation.TargetPath)

	if err := h.service.Remove(r.Context(), userID, path.String("gameId")); err != nil {
		handleServiceError(w, err, h.showInternalDetail)
		return
	}

	respond.Success(w, http.StatusOK, "お気に入りから削除しました。", nil)
}
