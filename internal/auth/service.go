package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GunaPalanivel/arenaview/internal/model"
	"github.com/GunaPalanivel/arenaview/internal/repository"
	"github.com/GunaPalanivel/arenaview/internal/security"
)

// Service は登録・ログインのビジネスロジックを提供する。
type Service struct {
	users     repository.UserRepository
	hasher    *PasswordHasher
	tokens    *TokenService
	sanitizer security.NameSanitizer
}

// NewService はServiceを生成する。
func NewService(
	users repository.UserRepository,
	hasher *PasswordHasher,
	tokens *TokenService,
	sanitizer security.NameSanitizer,
) *Service {
	return &Service{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		sanitizer: sanitizer,
	}
}

// AuthResult は登録・ログイン成功時の結果。
type AuthResult struct {
	User  *model.User
	Token string
}

// NormalizeEmail はメールアドレスを小文字に正規化する。
// 一意性判定は常に正規化後の値で行う。
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register は新規ユーザーを作成し、セッショントークンを発行する。
// メールアドレスが既に登録済みの場合はCONFLICTのAPIErrorを返す
// （一意制約違反はリポジトリ境界で変換済み）。
func (s *Service) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         s.sanitizer.Sanitize(name),
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login は資格情報を検証し、セッショントークンを発行する。
// ユーザー不在とパスワード不一致はどちらも同一のUNAUTHORIZEDを返し、
// どちらが誤っていたかを漏らさない。
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.NewUnauthorizedError()
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, model.NewUnauthorizedError()
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}
