package handler

import (
	"net/http"
	"time"

	"github.com/GunaPalanivel/arenaview/internal/respond"
)

// healthData はヘルスチェックのレスポンスデータ。
type healthData struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health はヘルスチェックを処理する。認証不要。
// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	respond.Success(w, http.StatusOK, "サーバーは稼働中です。", healthData{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}
