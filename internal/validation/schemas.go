package validation

import "github.com/GunaPalanivel/arenaview/internal/model"

// ルートごとのスキーマ定義。
var (
	// RegisterBody はユーザー登録リクエストボディのスキーマ。
	RegisterBody = Schema{
		Target: TargetBody,
		Fields: []Field{
			{Name: "name", Kind: KindString, Required: true, MinLen: 2, MaxLen: 50},
			{Name: "email", Kind: KindEmail, Required: true},
			{Name: "password", Kind: KindString, Required: true, MinLen: 6, MaxLen: 100},
		},
	}

	// LoginBody はログインリクエストボディのスキーマ。
	LoginBody = Schema{
		Target: TargetBody,
		Fields: []Field{
			{Name: "email", Kind: KindEmail, Required: true},
			{Name: "password", Kind: KindString, Required: true},
		},
	}

	// GamesQuery はゲーム一覧クエリパラメータのスキーマ。
	// page/limitは欠落時にデフォルトへ変換される。
	GamesQuery = Schema{
		Target: TargetQuery,
		Fields: []Field{
			{Name: "type", Kind: KindEnum, Choices: []string{string(model.GameTypeSports), string(model.GameTypeCasino)}},
			{Name: "sport", Kind: KindString, MaxLen: 100},
			{Name: "provider", Kind: KindString, MaxLen: 100},
			{Name: "search", Kind: KindString, MaxLen: 100},
			{Name: "page", Kind: KindInt, Min: 1, Max: 1000000, Default: 1},
			{Name: "limit", Kind: KindInt, Min: 1, Max: 100, Default: 20},
		},
	}

	// GameIDPath はゲーム取得パスパラメータのスキーマ。
	GameIDPath = Schema{
		Target: TargetPath,
		Fields: []Field{
			{Name: "id", Kind: KindUUID, Required: true},
		},
	}

	// FavoriteGameIDPath はお気に入り追加・削除パスパラメータのスキーマ。
	FavoriteGameIDPath = Schema{
		Target: TargetPath,
		Fields: []Field{
			{Name: "gameId", Kind: KindUUID, Required: true},
		},
	}
)
