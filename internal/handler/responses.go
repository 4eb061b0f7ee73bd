// Package handler はHTTP APIのハンドラーとルーティングを提供する。
package handler

import (
	"time"

	"github.com/GunaPalanivel/arenaview/internal/model"
)

// userResponse はユーザー情報のAPIレスポンス。
// パスワードハッシュは含めない。
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// gameResponse はゲーム情報のAPIレスポンス。
// 種別に応じて意味を持たない属性はnullになる。
type gameResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Sport     *string    `json:"sport"`
	League    *string    `json:"league"`
	TeamA     *string    `json:"teamA"`
	TeamB     *string    `json:"teamB"`
	StartTime *time.Time `json:"startTime"`
	Provider  *string    `json:"provider"`
	Category  *string    `json:"category"`
	ImageURL  *string    `json:"imageUrl"`
	CreatedAt time.Time  `json:"createdAt"`
}

// favoriteResponse はお気に入り情報のAPIレスポンス。
type favoriteResponse struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	GameID    string       `json:"gameId"`
	CreatedAt time.Time    `json:"createdAt"`
	Game      gameResponse `json:"game"`
}

func toUserResponse(user *model.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func toGameResponse(game *model.Game) gameResponse {
	return gameResponse{
		ID:        game.ID,
		Name:      game.Name,
		Type:      string(game.Type),
		Sport:     game.Sport,
		League:    game.League,
		TeamA:     game.TeamA,
		TeamB:     game.TeamB,
		StartTime: game.StartTime,
		Provider:  game.Provider,
		Category:  game.Category,
		ImageURL:  game.ImageURL,
		CreatedAt: game.CreatedAt,
	}
}

func toGameResponses(games []model.Game) []gameResponse {
	out := make([]gameResponse, 0, len(games))
	for i := range games {
		out = append(out, toGameResponse(&games[i]))
	}
	return out
}

func toFavoriteResponse(favorite *model.FavoriteWithGame) favoriteResponse {
	return favoriteResponse{
		ID:        favorite.ID,
		UserID:    favorite.UserID,
		GameID:    favorite.GameID,
		CreatedAt: favorite.Favorite.CreatedAt,
		Game:      toGameResponse(&favorite.Game),
	}
}

func toFavoriteResponses(favorites []model.FavoriteWithGame) []favoriteResponse {
	out := make([]favoriteResponse, 0, len(favorites))
	for i := range favorites {
		out = append(out, toFavoriteResponse(&favorites[i]))
	}
	return out
}
