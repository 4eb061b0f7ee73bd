// Package respond はAPIレスポンスエンベロープの書き出しを提供する。
// 全レスポンスは {success, message, data?} の形式に統一される。
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/GunaPalanivel/arenaview/internal/model"
)

// Envelope はAPIレスポンスの共通形式を表す。
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// JSON はエンベロープを指定ステータスで書き出す。
func JSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Success は成功レスポンスを書き出す。
func Success(w http.ResponseWriter, status int, message string, data any) {
	JSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

// Error は失敗レスポンスを書き出す。
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: false, Message: message})
}

// ValidationError はフィールド単位の詳細付きで400を書き出す。
func ValidationError(w http.ResponseWriter, message string, fields map[string]string) {
	JSON(w, http.StatusBadRequest, Envelope{Success: false, Message: message, Errors: fields})
}

// StatusForCode はドメインエラーコードをHTTPステータスへ変換する。
// 未知のコードは500として扱う。
func StatusForCode(code string) int {
	switch code {
	case model.ErrCodeValidationFailed:
		return http.StatusBadRequest
	case model.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeConflict:
		return http.StatusConflict
	case model.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// APIError はAPIErrorをHTTPレスポンスへ変換して書き出す。
func APIError(w http.ResponseWriter, apiErr *model.APIError) {
	status := StatusForCode(apiErr.Code)
	if len(apiErr.Fields) > 0 {
		JSON(w, status, Envelope{Success: false, Message: apiErr.Message, Errors: apiErr.Fields})
		return
	}
	Error(w, status, apiErr.Message)
}
