package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/GunaPalanivel/arenaview/internal/model"
)

// PostgresGameRepo はPostgreSQLを使用したゲームカタログリポジトリ。
type PostgresGameRepo struct {
	db *sql.DB
}

// NewPostgresGameRepo はPostgresGameRepoを生成する。
func NewPostgresGameRepo(db *sql.DB) *PostgresGameRepo {
	return &PostgresGameRepo{db: db}
}

const gameColumns = `id, name, type, sport, league, team_a, team_b, start_time, provider, category, image_url, created_at`

// likeEscaper はILIKEパターン内で特別な意味を持つ文字をエスケープする。
// ユーザー入力の `%` や `_` がワイルドカードとして解釈されるのを防ぐ。
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern は入力をリテラルとして扱う部分一致パターンを構築する。
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// buildFilterClause はフィルタからWHERE句とバインド引数を構築する。
// type/sport/providerはANDで結合し、searchは
// (name OR team_a OR team_b OR league) のOR一致を1条件として他とANDで結合する。
// 条件が1つもない場合は空文字列を返す。
func buildFilterClause(filter GameFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Type != "" {
		conds = append(conds, fmt.Sprintf("type = %s", arg(filter.Type)))
	}
	if filter.Sport != "" {
		conds = append(conds, fmt.Sprintf("sport ILIKE %s", arg(likePattern(filter.Sport))))
	}
	if filter.Provider != "" {
		conds = append(conds, fmt.Sprintf("provider ILIKE %s", arg(likePattern(filter.Provider))))
	}
	if filter.Search != "" {
		p := arg(likePattern(filter.Search))
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE %[1]s OR team_a ILIKE %[1]s OR team_b ILIKE %[1]s OR league ILIKE %[1]s)", p))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// FindByID は指定IDのゲームを取得する。見つからない場合はnilを返す。
func (r *PostgresGameRepo) FindByID(ctx context.Context, id string) (*model.Game, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+gameColumns+` FROM games WHERE id = $1`, id)

	game, err := scanGame(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find game by ID: %w", err)
	}

	return game, nil
}

// List はフィルタに一致するゲームをcreated_at降順で返す。
func (r *PostgresGameRepo) List(ctx context.Context, filter GameFilter) ([]model.Game, error) {
	where, args := buildFilterClause(filter)

	query := `SELECT ` + gameColumns + ` FROM games` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	games := []model.Game{}
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, *game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %w", err)
	}

	return games, nil
}

// Count はフィルタに一致するゲームの総数を返す。Limit/Offsetは適用しない。
func (r *PostgresGameRepo) Count(ctx context.Context, filter GameFilter) (int, error) {
	where, args := buildFilterClause(filter)

	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}

	return total, nil
}

// Create はゲームを作成する。シードデータ投入用。
func (r *PostgresGameRepo) Create(ctx context.Context, game *model.Game) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO games (id, name, type, sport, league, team_a, team_b, start_time, provider, category, image_url, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		game.ID, game.Name, game.Type, game.Sport, game.League, game.TeamA, game.TeamB,
		game.StartTime, game.Provider, game.Category, game.ImageURL, game.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}

	return nil
}

// rowScanner はsql.Rowとsql.Rowsの共通Scanインターフェース。
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanGame は1行をmodel.Gameに読み込む。
func scanGame(row rowScanner) (*model.Game, error) {
	game := &model.Game{}
	err := row.Scan(
		&game.ID, &game.Name, &game.Type,
		&game.Sport, &game.League, &game.TeamA, &game.TeamB, &game.StartTime,
		&game.Provider, &game.Category, &game.ImageURL, &game.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return game, nil
}

// compile-time interface check
var _ GameRepository = (*PostgresGameRepo)(nil)
