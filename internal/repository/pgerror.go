package repository

import (
	"errors"

	"github.com/lib/pq"

	"github.com/GunaPalanivel/arenaview/internal/model"
)

// PostgreSQLのエラークラスコード
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

// constraintErrors は制約名からドメインエラーへの明示的なマッピングテーブル。
// ストア固有のエラーコード解釈はこの境界に閉じ込め、呼び出し側には
// ドメインエラーのみを伝播させる。
var constraintErrors = map[string]func() *model.APIError{
	// users.email の一意制約
	"users_email_key": model.NewDuplicateEmailError,
	// favorites (user_id, game_id) の一意制約。
	// 存在チェックをすり抜けた同時リクエストもここでCONFLICTに揃える
	"favorites_user_game_unique": model.NewDuplicateFavoriteError,
	// favorites.game_id の外部キー制約（ゲームが先に削除された場合）
	"favorites_game_id_fkey": model.NewGameNotFoundError,
}

// translateConstraintError はPostgreSQLの制約違反をドメインエラーに変換する。
// 一意制約違反・外部キー違反以外、および未知の制約はそのまま返す
// （呼び出し側でINTERNAL扱いになる）。
func translateConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	code := string(pqErr.Code)
	if code != pgCodeUniqueViolation && code != pgCodeForeignKeyViolation {
		return err
	}

	if newErr, ok := constraintErrors[pqErr.Constraint]; ok {
		return newErr()
	}

	return err
}
