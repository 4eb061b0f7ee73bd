package model

import "time"

// GameType はゲームの種別を表す。SPORTSまたはCASINOのいずれか。
type GameType string

const (
	// GameTypeSports はスポーツの試合（fixture）を示す。
	GameTypeSports GameType = "SPORTS"
	// GameTypeCasino はカジノタイトルを示す。
	GameTypeCasino GameType = "CASINO"
)

// IsValid は既知のゲーム種別かどうかを返す。
func (t GameType) IsValid() bool {
	return t == GameTypeSports || t == GameTypeCasino
}

// Game はカタログ上の1ゲームを表す。
// 種別に応じて意味を持つ属性が異なる:
// SPORTSはSport/League/TeamA/TeamB/StartTime、CASINOはProvider/Category。
// ストアは属性グループの排他を強制しない（両グループともNULL許容カラム）。
type Game struct {
	ID        string
	Name      string
	Type      GameType
	Sport     *string
	League    *string
	TeamA     *string
	TeamB     *string
	StartTime *time.Time
	Provider  *string
	Category  *string
	ImageURL  *string
	CreatedAt time.Time
}

// Favorite はユーザーとゲームの結合エンティティを表す。
// (UserID, GameID)の組はストアの一意制約で高々1件に保たれる。
type Favorite struct {
	ID        string
	UserID    string
	GameID    string
	CreatedAt time.Time
}

// FavoriteWithGame はお気に入りとそのゲームを結合した構造体。
type FavoriteWithGame struct {
	Favorite
	Game Game
}
