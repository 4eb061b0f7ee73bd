package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"

	"github.com/GunaPalanivel/arenaview/internal/model"
)

// users.emailの一意制約違反はCONFLICTに変換されることを検証
func TestTranslateConstraintError_DuplicateEmail(t *testing.T) {
	err := translateConstraintError(&pq.Error{
		Code:       pq.ErrorCode(pgCodeUniqueViolation),
		Constraint: "users_email_key",
	})

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeConflict {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeConflict)
	}
}

// favoritesの一意制約違反はCONFLICTに変換されることを検証
// （事前チェックをすり抜けた同時リクエストと同じエラーになる）
func TestTranslateConstraintError_DuplicateFavorite(t *testing.T) {
	err := translateConstraintError(&pq.Error{
		Code:       pq.ErrorCode(pgCodeUniqueViolation),
		Constraint: "favorites_user_game_unique",
	})

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeConflict {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeConflict)
	}
}

// favorites.game_idの外部キー違反はNOT_FOUNDに変換されることを検証
func TestTranslateConstraintError_MissingGame(t *testing.T) {
	err := translateConstraintError(&pq.Error{
		Code:       pq.ErrorCode(pgCodeForeignKeyViolation),
		Constraint: "favorites_game_id_fkey",
	})

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeNotFound {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeNotFound)
	}
}

// 未知の制約名はそのまま返されることを検証（呼び出し側でINTERNAL扱い）
func TestTranslateConstraintError_UnknownConstraint_PassesThrough(t *testing.T) {
	orig := &pq.Error{
		Code:       pq.ErrorCode(pgCodeUniqueViolation),
		Constraint: "some_other_constraint",
	}

	err := translateConstraintError(orig)
	if err != error(orig) {
		t.Errorf("expected original error to pass through, got %v", err)
	}
}

// 制約違反以外のpqエラーはそのまま返されることを検証
func TestTranslateConstraintError_OtherPGError_PassesThrough(t *testing.T) {
	orig := &pq.Error{Code: "57014"} // query_canceled

	err := translateConstraintError(orig)
	if err != error(orig) {
		t.Errorf("expected original error to pass through, got %v", err)
	}
}

// pq.Error以外のエラーはそのまま返されることを検証
func TestTranslateConstraintError_NonPGError_PassesThrough(t *testing.T) {
	orig := errors.New("connection refused")

	err := translateConstraintError(orig)
	if err != orig {
		t.Errorf("expected original error to pass through, got %v", err)
	}
}
