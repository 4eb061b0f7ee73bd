package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GunaPalanivel/arenaview/internal/model"
)

// PostgresFavoriteRepo はPostgreSQLを使用したお気に入りリポジトリ。
type PostgresFavoriteRepo struct {
	db *sql.DB
}

// NewPostgresFavoriteRepo はPostgresFavoriteRepoを生成する。
func NewPostgresFavoriteRepo(db *sql.DB) *PostgresFavoriteRepo {
	return &PostgresFavoriteRepo{db: db}
}

// ListByUserID はユーザーのお気に入り一覧をゲーム情報と結合して
// お気に入り作成日時の降順で返す。
func (r *PostgresFavoriteRepo) ListByUserID(ctx context.Context, userID string) ([]model.FavoriteWithGame, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT f.id, f.user_id, f.game_id, f.created_at,
		        g.id, g.name, g.type, g.sport, g.league, g.team_a, g.team_b, g.start_time,
		        g.provider, g.category, g.image_url, g.created_at
		 FROM favorites f
		 JOIN games g ON g.id = f.game_id
		 WHERE f.user_id = $1
		 ORDER BY f.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	favorites := []model.FavoriteWithGame{}
	for rows.Next() {
		var fav model.FavoriteWithGame
		err := rows.Scan(
			&fav.ID, &fav.UserID, &fav.GameID, &fav.CreatedAt,
			&fav.Game.ID, &fav.Game.Name, &fav.Game.Type,
			&fav.Game.Sport, &fav.Game.League, &fav.Game.TeamA, &fav.Game.TeamB, &fav.Game.StartTime,
			&fav.Game.Provider, &fav.Game.Category, &fav.Game.ImageURL, &fav.Game.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}

	return favorites, nil
}

// FindByUserAndGame は(userID, gameID)のお気に入りを取得する。見つからない場合はnilを返す。
func (r *PostgresFavoriteRepo) FindByUserAndGame(ctx context.Context, userID, gameID string) (*model.Favorite, error) {
	fav := &model.Favorite{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, game_id, created_at FROM favorites WHERE user_id = $1 AND game_id = $2`,
		userID, gameID,
	).Scan(&fav.ID, &fav.UserID, &fav.GameID, &fav.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find favorite: %w", err)
	}

	return fav, nil
}

// Create はお気に入りを作成する。
// 一意制約違反・外部キー違反はドメインエラー（CONFLICT / NOT_FOUND）に変換される。
// 存在チェックと書き込みの間の競合ウィンドウはこの変換で塞ぐ。
func (r *PostgresFavoriteRepo) Create(ctx context.Context, favorite *model.Favorite) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO favorites (id, user_id, game_id, created_at) VALUES ($1, $2, $3, $4)`,
		favorite.ID, favorite.UserID, favorite.GameID, favorite.CreatedAt,
	)
	if err != nil {
		if translated := translateConstraintError(err); translated != err {
			return translated
		}
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	return nil
}

// Delete は(userID, gameID)のお気に入りを削除する。
// 削除された場合はtrue、該当行が存在しない場合はfalseを返す。
func (r *PostgresFavoriteRepo) Delete(ctx context.Context, userID, gameID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND game_id = $2`,
		userID, gameID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete favorite: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// compile-time interface check
var _ FavoriteRepository = (*PostgresFavoriteRepo)(nil)
