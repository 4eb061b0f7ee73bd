// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/GunaPalanivel/arenaview/internal/model"
)

// GameFilter はゲーム一覧取得の絞り込み条件を表す。
// Sport/Provider/Searchは大文字小文字を区別しない部分一致。
// Searchはname/team_a/team_b/leagueのいずれかへのOR一致で、
// 他のフィルタ条件とはANDで結合される。
type GameFilter struct {
	Type     string
	Sport    string
	Provider string
	Search   string
	Limit    int
	Offset   int
}

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// Create はユーザーを作成する。
	// メールアドレスが既に存在する場合はCONFLICTのAPIErrorを返す。
	Create(ctx context.Context, user *model.User) error

	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmail は指定メールアドレスのユーザーを取得する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// GameRepository はゲームカタログの永続化インターフェース。
type GameRepository interface {
	// FindByID は指定IDのゲームを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Game, error)

	// List はフィルタに一致するゲームをcreated_at降順で返す。
	// Limit/Offsetによるページングを適用する。
	List(ctx context.Context, filter GameFilter) ([]model.Game, error)

	// Count はフィルタに一致するゲームの総数を返す。Limit/Offsetは無視する。
	Count(ctx context.Context, filter GameFilter) (int, error)

	// Create はゲームを作成する。シードデータ投入用。
	Create(ctx context.Context, game *model.Game) error
}

// FavoriteRepository はお気に入りの永続化インターフェース。
type FavoriteRepository interface {
	// ListByUserID はユーザーのお気に入り一覧をゲーム情報と結合して
	// お気に入り作成日時の降順で返す。
	ListByUserID(ctx context.Context, userID string) ([]model.FavoriteWithGame, error)

	// FindByUserAndGame は(userID, gameID)のお気に入りを取得する。見つからない場合はnilを返す。
	FindByUserAndGame(ctx context.Context, userID, gameID string) (*model.Favorite, error)

	// Create はお気に入りを作成する。
	// 一意制約違反はCONFLICT、外部キー違反はNOT_FOUNDのAPIErrorに変換される。
	// 事前チェックをすり抜けた競合はこの変換で同一のドメインエラーになる。
	Create(ctx context.Context, favorite *model.Favorite) error

	// Delete は(userID, gameID)のお気に入りを削除する。
	// 削除された場合はtrue、該当行が存在しない場合はfalseを返す。
	Delete(ctx context.Context, userID, gameID string) (bool, error)
}
