package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/GunaPalanivel/arenaview/internal/model"
	"github.com/GunaPalanivel/arenaview/internal/respond"
)

// handleServiceError はサービス層のエラーをHTTPレスポンスへ変換する。
// ドメインエラーからHTTPステータスへの変換はこの1点でのみ行う。
// APIError以外のエラーは500として扱い、showInternalDetailが偽の場合
// （本番環境）はエラー内容をレスポンスに含めない。
func handleServiceError(w http.ResponseWriter, err error, showInternalDetail bool) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		respond.APIError(w, apiErr)
		return
	}

	slog.Error("internal server error", slog.String("error", err.Error()))

	message := "内部エラーが発生しました。"
	if showInternalDetail {
		message = err.Error()
	}
	respond.Error(w, http.StatusInternalServerError, message)
}
