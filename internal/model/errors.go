package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// CodeはHTTPステータスへの変換に使用し、ハンドラー境界でのみ解釈する。
// Fieldsはバリデーション失敗時のフィールドパス→メッセージのマッピング。
type APIError struct {
	Code    string
	Message string
	Fields  map[string]string
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeInternal         = "INTERNAL"
)

// NewValidationError はバリデーション失敗エラーを生成する。
// fieldErrorsは全フィールドのエラーを集約したマッピング（fail-fastしない）。
func NewValidationError(fieldErrors map[string]string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "入力内容に誤りがあります。",
		Fields:  fieldErrors,
	}
}

// NewUnauthorizedError は認証エラーを生成する。
// どの資格情報が誤っていたかを漏らさないよう、メッセージは常に汎用的にする。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: "認証に失敗しました。",
	}
}

// NewGameNotFoundError はゲーム未検出エラーを生成する。
func NewGameNotFoundError() *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: "指定されたゲームが見つかりません。",
	}
}

// NewFavoriteNotFoundError はお気に入り未検出エラーを生成する。
// 削除リトライ時の「すでに存在しない」もこのエラーで表現する。
func NewFavoriteNotFoundError() *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: "お気に入りが見つかりません。",
	}
}

// NewDuplicateEmailError はメールアドレス重複エラーを生成する。
func NewDuplicateEmailError() *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: "このメールアドレスは既に登録されています。",
	}
}

// NewDuplicateFavoriteError はお気に入り重複エラーを生成する。
// 事前チェックとストアの一意制約違反の両方がこのエラーに写像される。
func NewDuplicateFavoriteError() *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: "このゲームは既にお気に入りに登録されています。",
	}
}

// NewRateLimitedError はレート制限超過エラーを生成する。
// retryAfterSecはウィンドウの残り秒数。
func NewRateLimitedError(retryAfterSec int) *APIError {
	return &APIError{
		Code:    ErrCodeRateLimited,
		Message: fmt.Sprintf("リクエストが多すぎます。%d秒後に再度お試しください。", retryAfterSec),
	}
}
