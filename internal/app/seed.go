package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/GunaPalanivel/arenaview/internal/auth"
	"github.com/GunaPalanivel/arenaview/internal/config"
	"github.com/GunaPalanivel/arenaview/internal/database"
	"github.com/GunaPalanivel/arenaview/internal/model"
	"github.com/GunaPalanivel/arenaview/internal/repository"
)

// sportsFixture はスポーツのシードゲームを構築する。
func sportsFixture(name, sport, league, teamA, teamB, startTime, imageURL string) model.Game {
	start, err := time.Parse(time.RFC3339, startTime)
	if err != nil {
		panic(fmt.Sprintf("invalid seed start time %q: %v", startTime, err))
	}
	return model.Game{
		Name:      name,
		Type:      model.GameTypeSports,
		Sport:     &sport,
		League:    &league,
		TeamA:     &teamA,
		TeamB:     &teamB,
		StartTime: &start,
		ImageURL:  &imageURL,
	}
}

// casinoTitle はカジノのシードゲームを構築する。
func casinoTitle(name, provider, category, imageURL string) model.Game {
	return model.Game{
		Name:     name,
		Type:     model.GameTypeCasino,
		Provider: &provider,
		Category: &category,
		ImageURL: &imageURL,
	}
}

// seedGames はローカル開発用のサンプルカタログ。
func seedGames() []model.Game {
	return []model.Game{
		// クリケット - IPL
		sportsFixture("Mumbai Indians vs Chennai Super Kings", "Cricket", "IPL", "Mumbai Indians", "Chennai Super Kings", "2026-04-15T19:30:00Z", "https://images.unsplash.com/photo-1540747913346-19e32dc3e97e?w=400"),
		sportsFixture("Royal Challengers Bangalore vs Kolkata Knight Riders", "Cricket", "IPL", "Royal Challengers Bangalore", "Kolkata Knight Riders", "2026-04-16T15:30:00Z", "https://images.unsplash.com/photo-1531415074968-036ba1b575da?w=400"),
		sportsFixture("Delhi Capitals vs Punjab Kings", "Cricket", "IPL", "Delhi Capitals", "Punjab Kings", "2026-04-17T19:30:00Z", "https://images.unsplash.com/photo-1512719994953-eabf50895df7?w=400"),

		// クリケット - BBL
		sportsFixture("Sydney Thunder vs Melbourne Stars", "Cricket", "BBL", "Sydney Thunder", "Melbourne Stars", "2026-01-10T09:15:00Z", "https://images.unsplash.com/photo-1624526267942-ab0ff8a3e972?w=400"),
		sportsFixture("Perth Scorchers vs Adelaide Strikers", "Cricket", "BBL", "Perth Scorchers", "Adelaide Strikers", "2026-01-11T08:30:00Z", "https://images.unsplash.com/photo-1593341646782-e0b495cff86d?w=400"),
		sportsFixture("Brisbane Heat vs Hobart Hurricanes", "Cricket", "BBL", "Brisbane Heat", "Hobart Hurricanes", "2026-01-12T09:45:00Z", "https://images.unsplash.com/photo-1531415074968-036ba1b575da?w=400"),
		sportsFixture("Sydney Sixers vs Melbourne Renegades", "Cricket", "BBL", "Sydney Sixers", "Melbourne Renegades", "2026-01-13T10:00:00Z", "https://images.unsplash.com/photo-1540747913346-19e32dc3e97e?w=400"),

		// フットボール - EPL
		sportsFixture("Manchester United vs Liverpool", "Football", "EPL", "Manchester United", "Liverpool", "2026-02-08T15:00:00Z", "https://images.unsplash.com/photo-1579952363873-27f3bade9f55?w=400"),
		sportsFixture("Arsenal vs Chelsea", "Football", "EPL", "Arsenal", "Chelsea", "2026-02-09T17:30:00Z", "https://images.unsplash.com/photo-1574629810360-7efbbe195018?w=400"),
		sportsFixture("Manchester City vs Tottenham", "Football", "EPL", "Manchester City", "Tottenham", "2026-02-10T12:30:00Z", "https://images.unsplash.com/photo-1522778119026-d647f0596c20?w=400"),
		sportsFixture("Newcastle vs Aston Villa", "Football", "EPL", "Newcastle", "Aston Villa", "2026-02-11T15:00:00Z", "https://images.unsplash.com/photo-1517466787929-bc90951d0974?w=400"),
		sportsFixture("West Ham vs Brighton", "Football", "EPL", "West Ham", "Brighton", "2026-02-12T19:45:00Z", "https://images.unsplash.com/photo-1606925797300-0b35e9d1794e?w=400"),

		// フットボール - La Liga
		sportsFixture("Real Madrid vs Barcelona", "Football", "La Liga", "Real Madrid", "Barcelona", "2026-03-20T20:00:00Z", "https://images.unsplash.com/photo-1553778263-73a83bab9b0c?w=400"),
		sportsFixture("Atletico Madrid vs Sevilla", "Football", "La Liga", "Atletico Madrid", "Sevilla", "2026-03-21T18:30:00Z", "https://images.unsplash.com/photo-1579952363873-27f3bade9f55?w=400"),
		sportsFixture("Valencia vs Real Sociedad", "Football", "La Liga", "Valencia", "Real Sociedad", "2026-03-22T16:15:00Z", "https://images.unsplash.com/photo-1574629810360-7efbbe195018?w=400"),

		// テニス - ATP
		sportsFixture("Australian Open - Men's Final", "Tennis", "ATP", "Novak Djokovic", "Carlos Alcaraz", "2026-01-28T08:30:00Z", "https://images.unsplash.com/photo-1622279457486-62dcc4a431d6?w=400"),
		sportsFixture("Miami Open - Quarter Final", "Tennis", "ATP", "Jannik Sinner", "Daniil Medvedev", "2026-03-28T19:00:00Z", "https://images.unsplash.com/photo-1554068865-24cecd4e34b8?w=400"),
		sportsFixture("Indian Wells - Semi Final", "Tennis", "ATP", "Rafael Nadal", "Stefanos Tsitsipas", "2026-03-15T22:00:00Z", "https://images.unsplash.com/photo-1595435934249-5df7ed86e1c0?w=400"),
		sportsFixture("Madrid Open - Final", "Tennis", "ATP", "Alexander Zverev", "Andrey Rublev", "2026-05-05T14:00:00Z", "https://images.unsplash.com/photo-1622279457486-62dcc4a431d6?w=400"),

		// カジノ - Evolution（ライブカジノ）
		casinoTitle("Lightning Roulette", "Evolution", "Live Casino", "https://images.unsplash.com/photo-1596838132731-3301c3fd4317?w=400"),
		casinoTitle("Crazy Time", "Evolution", "Live Casino", "https://images.unsplash.com/photo-1511193311914-0346f16efe90?w=400"),
		casinoTitle("Monopoly Live", "Evolution", "Live Casino", "https://images.unsplash.com/photo-1605522324893-7a0fc55da0c1?w=400"),
		casinoTitle("Mega Ball", "Evolution", "Live Casino", "https://images.unsplash.com/photo-1516975080664-ed2fc6a32937?w=400"),
		casinoTitle("Deal or No Deal", "Evolution", "Live Casino", "https://images.unsplash.com/photo-1601933470096-c5948abfeba0?w=400"),
		casinoTitle("Dream Catcher", "Evolution", "Live Casino", "https://images.unsplash.com/photo-1629155689241-c8b0c6e8d9c0?w=400"),
		casinoTitle("Lightning Blackjack", "Evolution", "Live Casino", "https://images.unsplash.com/photo-1541278107931-e006523892df?w=400"),

		// カジノ - Pragmatic Play（スロット）
		casinoTitle("Gates of Olympus", "Pragmatic Play", "Slots", "https://images.unsplash.com/photo-1606177639279-3652f1225562?w=400"),
		casinoTitle("Sweet Bonanza", "Pragmatic Play", "Slots", "https://images.unsplash.com/photo-1615887023516-4d7e7a7ffaeb?w=400"),
		casinoTitle("The Dog House Megaways", "Pragmatic Play", "Slots", "https://images.unsplash.com/photo-1583511655857-d19b40a7a54e?w=400"),
		casinoTitle("Wolf Gold", "Pragmatic Play", "Slots", "https://images.unsplash.com/photo-1602491453631-e2a5ad90a131?w=400"),
		casinoTitle("Great Rhino Megaways", "Pragmatic Play", "Slots", "https://images.unsplash.com/photo-1549366021-9f761d450615?w=400"),
		casinoTitle("John Hunter and the Book of Tut", "Pragmatic Play", "Slots", "https://images.unsplash.com/photo-1512699355324-f07e3106dae5?w=400"),
		casinoTitle("Starlight Princess", "Pragmatic Play", "Slots", "https://images.unsplash.com/photo-1518895949257-7621c3c786d7?w=400"),

		// カジノ - NetEnt（スロット）
		casinoTitle("Starburst", "NetEnt", "Slots", "https://images.unsplash.com/photo-1605522324893-7a0fc55da0c1?w=400"),
		casinoTitle("Gonzo's Quest", "NetEnt", "Slots", "https://images.unsplash.com/photo-1516975080664-ed2fc6a32937?w=400"),
		casinoTitle("Dead or Alive 2", "NetEnt", "Slots", "https://images.unsplash.com/photo-1596838132731-3301c3fd4317?w=400"),
		casinoTitle("Blood Suckers", "NetEnt", "Slots", "https://images.unsplash.com/photo-1601933470096-c5948abfeba0?w=400"),
		casinoTitle("Divine Fortune", "NetEnt", "Slots", "https://images.unsplash.com/photo-1511193311914-0346f16efe90?w=400"),
		casinoTitle("Jack and the Beanstalk", "NetEnt", "Slots", "https://images.unsplash.com/photo-1541278107931-e006523892df?w=400"),
	}
}

// runSeed は既存データを削除し、ローカル開発用のサンプルカタログと
// テストユーザー（test@example.com / Test1234）を投入する。
func runSeed(cfg *config.Config) error {
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx := context.Background()

	// 既存データの削除（外部キーの依存順）
	for _, table := range []string{"favorites", "games", "users"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	slog.Info("cleared existing data")

	// テストユーザーの作成
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	hash, err := hasher.Hash("Test1234")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	userRepo := repository.NewPostgresUserRepo(db)
	testUser := &model.User{
		ID:           uuid.NewString(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := userRepo.Create(ctx, testUser); err != nil {
		return fmt.Errorf("failed to create test user: %w", err)
	}
	slog.Info("created test user", slog.String("email", testUser.Email))

	// サンプルカタログの投入
	gameRepo := repository.NewPostgresGameRepo(db)
	sports, casino := 0, 0
	for _, game := range seedGames() {
		game.ID = uuid.NewString()
		game.CreatedAt = time.Now().UTC()
		if err := gameRepo.Create(ctx, &game); err != nil {
			return fmt.Errorf("failed to create game %q: %w", game.Name, err)
		}
		if game.Type == model.GameTypeSports {
			sports++
		} else {
			casino++
		}
	}

	slog.Info("seed completed",
		slog.Int("sports_games", sports),
		slog.Int("casino_games", casino),
	)
	return nil
}
