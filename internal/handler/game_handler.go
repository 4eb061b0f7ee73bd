package handler

import (
	"context"
	"net/http"

	"github.com/GunaPalanivel/arenaview/internal/catalog"
	"github.com/GunaPalanivel/arenaview/internal/model"
	"github.com/GunaPalanivel/arenaview/internal/respond"
	"github.com/GunaPalanivel/arenaview/internal/validation"
)

// CatalogServiceInterface はゲームハンドラーが必要とするサービスインターフェース。
type CatalogServiceInterface interface {
	// ListGames はフィルタに一致するゲームをページングして返す。
	ListGames(ctx context.Context, filters catalog.ListFilters) ([]model.Game, catalog.Pagination, error)
	// GetGameByID は指定IDのゲームを取得する。
	GetGameByID(ctx context.Context, id string) (*model.Game, error)
}

// GameHandler はゲームカタログのHTTPハンドラー。
type GameHandler struct {
	service            CatalogServiceInterface
	showInternalDetail bool
}

// NewGameHandler はGameHandlerを生成する。
func NewGameHandler(service CatalogServiceInterface, showInternalDetail bool) *GameHandler {
	return &GameHandler{
		service:            service,
		showInternalDetail: showInternalDetail,
	}
}

// gameListData はゲーム一覧のレスポンスデータ。
type gameListData struct {
	Games      []gameResponse     `json:"games"`
	Pagination catalog.Pagination `json:"pagination"`
}

// ListGames はゲーム一覧取得を処理する。
// GET /api/games
// クエリパラメータはバリデーションミドルウェアで検証・正規化済み。
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	query := validation.FromContext(r.Context(), validation.TargetQuery)

	games, pagination, err := h.service.ListGames(r.Context(), catalog.ListFilters{
		Type:     query.String("type"),
		Sport:    query.String("sport"),
		Provider: query.String("provider"),
		Search:   query.String("search"),
		Page:     query.Int("page"),
		Limit:    query.Int("limit"),
	})
	if err != nil {
		handleServiceError(w, err, h.showInternalDetail)
		return
	}

	respond.Success(w, http.StatusOK, "ゲーム一覧を取得しました。", gameListData{
		Games:      toGameResponses(games),
		Pagination: pagination,
	})
}

// GetGame はゲーム詳細取得を処理する。
// GET /api/games/{id}
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	path := validation.FromContext(r.Context(), validation.TargetPath)

	game, err := h.service.GetGameByID(r.Context(), path.String("id"))
	if err != nil {
		handleServiceError(w, err, h.showInternalDetail)
		return
	}

	respond.Success(w, http.StatusOK, "ゲームを取得しました。", map[string]gameResponse{
		"game": toGameResponse(game),
	})
}
