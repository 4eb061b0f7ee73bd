package validation

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GunaPalanivel/arenaview/internal/respond"
)

type contextKey string

// Middleware はスキーマ検証を行うHTTPミドルウェアを返す。
// 検証に失敗した場合は400で短絡し、成功した場合は正規化済みの値が
// 生入力を置き換えてコンテキスト経由で後段に渡る。
func Middleware(schema Schema) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := extract(schema, r)
			if err != nil {
				respond.Error(w, http.StatusBadRequest, "リクエストボディのJSONが不正です。")
				return
			}

			values, fieldErrors := schema.Validate(raw)
			if fieldErrors != nil {
				respond.ValidationError(w, "入力内容に誤りがあります。", fieldErrors)
				return
			}

			ctx := context.WithValue(r.Context(), contextKey(schema.Target), values)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext はコンテキストから検証済みの値を取り出す。
// 対応するMiddlewareを経由していないルートでは空のValuesを返す。
func FromContext(ctx context.Context, target Target) Values {
	if values, ok := ctx.Value(contextKey(target)).(Values); ok {
		return values
	}
	return Values{}
}

// extract はスキーマの対象部位から生入力を取り出す。
func extract(schema Schema, r *http.Request) (map[string]any, error) {
	raw := map[string]any{}

	switch schema.Target {
	case TargetBody:
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, err
		}
	case TargetQuery:
		query := r.URL.Query()
		for _, f := range schema.Fields {
			if query.Has(f.Name) {
				raw[f.Name] = query.Get(f.Name)
			}
		}
	case TargetPath:
		for _, f := range schema.Fields {
			if v := chi.URLParam(r, f.Name); v != "" {
				raw[f.Name] = v
			}
		}
	}

	return raw, nil
}
