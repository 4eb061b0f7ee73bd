// Package catalog はゲームカタログの検索・取得ロジックを提供する。
package catalog

import (
	"context"

	"github.com/GunaPalanivel/arenaview/internal/model"
	"github.com/GunaPalanivel/arenaview/internal/repository"
)

// ページングのデフォルト値と上限。
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListFilters はゲーム一覧取得の検索条件を表す。
// Page/Limitはバリデーション済みの値を想定する（Page>=1、1<=Limit<=100）。
type ListFilters struct {
	Type     string
	Sport    string
	Provider string
	Search   string
	Page     int
	Limit    int
}

// Pagination はページング情報を表す。
// Totalはページングを無視したフィルタ一致総数、TotalPagesはceil(Total/Limit)。
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Service はゲームカタログの検索・取得ロジックを提供する。
// フィルタ状態からデータアクセスクエリへの純粋な変換であり、状態を持たない。
type Service struct {
	games repository.GameRepository
}

// NewService はServiceを生成する。
func NewService(games repository.GameRepository) *Service {
	return &Service{games: games}
}

// ListGames はフィルタに一致するゲームをcreated_at降順でページングして返す。
// 最終ページを超えるページ指定はエラーではなく空の結果を返す。
func (s *Service) ListGames(ctx context.Context, filters ListFilters) ([]model.Game, Pagination, error) {
	page := filters.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := filters.Limit
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	repoFilter := repository.GameFilter{
		Type:     filters.Type,
		Sport:    filters.Sport,
		Provider: filters.Provider,
		Search:   filters.Search,
	}

	total, err := s.games.Count(ctx, repoFilter)
	if err != nil {
		return nil, Pagination{}, err
	}

	repoFilter.Limit = limit
	repoFilter.Offset = (page - 1) * limit

	games, err := s.games.List(ctx, repoFilter)
	if err != nil {
		return nil, Pagination{}, err
	}

	pagination := Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}

	return games, pagination, nil
}

// GetGameByID は指定IDのゲームを取得する。
// 見つからない場合はNOT_FOUNDのAPIErrorを返す。
func (s *Service) GetGameByID(ctx context.Context, id string) (*model.Game, error) {
	game, err := s.games.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, model.NewGameNotFoundError()
	}

	return game, nil
}
