// Package favorites はお気に入りの追加・削除・一覧のビジネスロジックを提供する。
package favorites

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GunaPalanivel/arenaview/internal/model"
	"github.com/GunaPalanivel/arenaview/internal/repository"
)

// Service はお気に入りのビジネスロジックを提供する。
// (userID, gameID)の一意性はストアの一意制約が最終的に保証する。
// プロセス内ロックは使用しない。
type Service struct {
	favorites repository.FavoriteRepository
	games     repository.GameRepository
}

// NewService はServiceを生成する。
func NewService(favorites repository.FavoriteRepository, games repository.GameRepository) *Service {
	return &Service{
		favorites: favorites,
		games:     games,
	}
}

// List はユーザーのお気に入り一覧をゲーム情報付きで
// お気に入り作成日時の降順で返す。
func (s *Service) List(ctx context.Context, userID string) ([]model.FavoriteWithGame, error) {
	return s.favorites.ListByUserID(ctx, userID)
}

// Add はゲームをお気に入りに追加し、ゲーム情報付きで返す。
// ゲームが存在しない場合はNOT_FOUND、既に追加済みの場合はCONFLICTを返す。
// 事前チェックと書き込みの間の競合ウィンドウは実在するため、
// チェックをすり抜けた同時リクエストの一意制約違反も
// リポジトリ境界で同一のCONFLICTに変換される。
func (s *Service) Add(ctx context.Context, userID, gameID string) (*model.FavoriteWithGame, error) {
	game, err := s.games.FindByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, model.NewGameNotFoundError()
	}

	existing, err := s.favorites.FindByUserAndGame(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.NewDuplicateFavoriteError()
	}

	favorite := &model.Favorite{
		ID:        uuid.NewString(),
		UserID:    userID,
		GameID:    gameID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.favorites.Create(ctx, favorite); err != nil {
		return nil, err
	}

	return &model.FavoriteWithGame{Favorite: *favorite, Game: *game}, nil
}

// Remove はお気に入りを削除する。
// 該当するお気に入りが存在しない場合はNOT_FOUNDを返す。
// 成功後のリトライもNOT_FOUNDになるため、呼び出し側は
// 削除のNOT_FOUNDを「すでに存在しない」として扱うこと。
func (s *Service) Remove(ctx context.Context, userID, gameID string) error {
	deleted, err := s.favorites.Delete(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if !deleted {
		return model.NewFavoriteNotFoundError()
	}

	return nil
}
