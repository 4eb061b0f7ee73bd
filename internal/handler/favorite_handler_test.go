package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GunaPalanivel/arenaview/internal/middleware"
	"github.com/GunaPalanivel/arenaview/internal/model"
	"github.com/GunaPalanivel/arenaview/internal/validation"
)

const testGameID = "4f6c1a52-9b13-4f0e-8a3d-2f9c7b1e5d44"

// mockFavoritesService はFavoritesServiceInterfaceのモック。
type mockFavoritesService struct {
	listFn   func(ctx context.Context, userID string) ([]model.FavoriteWithGame, error)
	addFn    func(ctx context.Context, userID, gameID string) (*model.FavoriteWithGame, error)
	removeFn func(ctx context.Context, userID, gameID string) error
}

func (m *mockFavoritesService) List(ctx context.Context, userID string) ([]model.FavoriteWithGame, error) {
	return m.listFn(ctx, userID)
}

func (m *mockFavoritesService) Add(ctx context.Context, userID, gameID string) (*model.FavoriteWithGame, error) {
	return m.addFn(ctx, userID, gameID)
}

func (m *mockFavoritesService) Remove(ctx context.Context, userID, gameID string) error {
	return m.removeFn(ctx, userID, gameID)
}

func testFavorite() *model.FavoriteWithGame {
	return &model.FavoriteWithGame{
		Favorite: model.Favorite{
			ID:        "fav-1",
			UserID:    "user-1",
			GameID:    testGameID,
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Game: testGame(testGameID),
	}
}

// favoritesRouter はお気に入りルートをルート単位のパイプライン込みで構成する。
func favoritesRouter(service FavoritesServiceInterface, collector *fakeCollector) http.Handler {
	h := NewFavoriteHandler(service, collector, true)
	router := chi.NewRouter()
	router.Get("/api/favorites", h.ListFavorites)
	router.With(validation.Middleware(validation.FavoriteGameIDPath)).Post("/api/favorites/{gameId}", h.AddFavorite)
	router.With(validation.Middleware(validation.FavoriteGameIDPath)).Delete("/api/favorites/{gameId}", h.RemoveFavorite)
	return router
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(middleware.ContextWithUserID(req.Context(), "user-1"))
}

func TestFavoriteHandler_ListFavorites_Returns200(t *testing.T) {
	service := &mockFavoritesService{
		listFn: func(ctx context.Context, userID string) ([]model.FavoriteWithGame, error) {
			if userID != "user-1" {
				t.Errorf("userID = %q, want user-1", userID)
			}
			return []model.FavoriteWithGame{*testFavorite()}, nil
		},
	}

	rec := httptest.NewRecorder()
	favoritesRouter(service, newFakeCollector()).ServeHTTP(rec, authedRequest(http.MethodGet, "/api/favorites"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Data struct {
			Favorites []map[string]any `json:"favorites"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.Favorites) != 1 {
		t.Fatalf("favorites length = %d, want 1", len(resp.Data.Favorites))
	}
	if _, ok := resp.Data.Favorites[0]["game"]; !ok {
		t.Error("expected joined game in favorite response")
	}
}

// 認証コンテキストのないリクエストは401になることを検証
func TestFavoriteHandler_ListFavorites_NoUserID_Returns401(t *testing.T) {
	service := &mockFavoritesService{
		listFn: func(ctx context.Context, userID string) ([]model.FavoriteWithGame, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	favoritesRouter(service, newFakeCollector()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/favorites", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestFavoriteHandler_AddFavorite_Returns201(t *testing.T) {
	service := &mockFavoritesService{
		addFn: func(ctx context.Context, userID, gameID string) (*model.FavoriteWithGame, error) {
			if userID != "user-1" || gameID != testGameID {
				t.Errorf("arguments = %q/%q, want user-1/%s", userID, gameID, testGameID)
			}
			return testFavorite(), nil
		},
	}
	collector := newFakeCollector()

	rec := httptest.NewRecorder()
	favoritesRouter(service, collector).ServeHTTP(rec, authedRequest(http.MethodPost, "/api/favorites/"+testGameID))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if collector.favoritesAdded != 1 {
		t.Errorf("favoritesAdded metric = %d, want 1", collector.favoritesAdded)
	}
}

func TestFavoriteHandler_AddFavorite_Duplicate_Returns409(t *testing.T) {
	service := &mockFavoritesService{
		addFn: func(ctx context.Context, userID, gameID string) (*model.FavoriteWithGame, error) {
			return nil, model.NewDuplicateFavoriteError()
		},
	}

	rec := httptest.NewRecorder()
	favoritesRouter(service, newFakeCollector()).ServeHTTP(rec, authedRequest(http.MethodPost, "/api/favorites/"+testGameID))

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestFavoriteHandler_AddFavorite_GameMissing_Returns404(t *testing.T) {
	service := &mockFavoritesService{
		addFn: func(ctx context.Context, userID, gameID string) (*model.FavoriteWithGame, error) {
			return nil, model.NewGameNotFoundError()
		},
	}

	rec := httptest.NewRecorder()
	favoritesRouter(service, newFakeCollector()).ServeHTTP(rec, authedRequest(http.MethodPost, "/api/favorites/"+testGameID))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestFavoriteHandler_AddFavorite_MalformedGameID_Returns400(t *testing.T) {
	service := &mockFavoritesService{
		addFn: func(ctx context.Context, userID, gameID string) (*model.FavoriteWithGame, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	favoritesRouter(service, newFakeCollector()).ServeHTTP(rec, authedRequest(http.MethodPost, "/api/favorites/not-a-uuid"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestFavoriteHandler_RemoveFavorite_Returns200(t *testing.T) {
	service := &mockFavoritesService{
		removeFn: func(ctx context.Context, userID, gameID string) error {
			return nil
		},
	}

	rec := httptest.NewRecorder()
	favoritesRouter(service, newFakeCollector()).ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/favorites/"+testGameID))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestFavoriteHandler_RemoveFavorite_NotFavorited_Returns404(t *testing.T) {
	service := &mockFavoritesService{
		removeFn: func(ctx context.Context, userID, gameID string) error {
			return model.NewFavoriteNotFoundError()
		},
	}

	rec := httptest.NewRecorder()
	favoritesRouter(service, newFakeCollector()).ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/favorites/"+testGameID))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
