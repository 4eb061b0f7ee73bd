package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GunaPalanivel/arenaview/internal/model"
	"github.com/GunaPalanivel/arenaview/internal/security"
)

// fakeUserRepo はUserRepositoryのインメモリ実装。
// メールアドレスの一意制約をエミュレートする。
type fakeUserRepo struct {
	byEmail map[string]*model.User
	byID    map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*model.User{},
		byID:    map[string]*model.User{},
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return model.NewDuplicateEmailError()
	}
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.byEmail[email], nil
}

func newTestService(repo *fakeUserRepo) *Service {
	return NewService(
		repo,
		NewPasswordHasher(4),
		NewTokenService(testSecret, 7*24*time.Hour),
		security.NewNameSanitizer(),
	)
}

// 登録後に同じ資格情報でログインでき、トークンの検証結果が
// 登録したユーザーと一致することを検証
func TestService_RegisterThenLogin_RoundTrip(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Test User", "Test@Example.com", "password123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if reg.Token == "" {
		t.Fatal("expected non-empty token")
	}

	login, err := svc.Login(ctx, "test@example.com", "password123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("login user ID = %q, want %q", login.User.ID, reg.User.ID)
	}

	// トークンが登録ユーザーのIDを主張していること
	tokens := NewTokenService(testSecret, time.Hour)
	userID, err := tokens.Verify(login.Token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if userID != reg.User.ID {
		t.Errorf("token userID = %q, want %q", userID, reg.User.ID)
	}
}

// メールアドレスは小文字に正規化されて保存されることを検証
func TestService_Register_NormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	reg, err := svc.Register(context.Background(), "Test User", "  MiXeD@Example.COM ", "password123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if reg.User.Email != "mixed@example.com" {
		t.Errorf("email = %q, want %q", reg.User.Email, "mixed@example.com")
	}
}

// 表示名からHTMLタグが除去されることを検証
func TestService_Register_SanitizesName(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	reg, err := svc.Register(context.Background(), `<script>alert(1)</script>Alice`, "a@example.com", "password123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if reg.User.Name != "Alice" {
		t.Errorf("name = %q, want %q", reg.User.Name, "Alice")
	}
}

// 同一メールアドレスの2回目の登録はCONFLICTになることを検証
func TestService_Register_DuplicateEmail_ReturnsConflict(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "First", "dup@example.com", "password123"); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	_, err := svc.Register(ctx, "Second", "DUP@example.com", "password456")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != model.ErrCodeConflict {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeConflict)
	}
}

// 未登録メールアドレスでのログインはUNAUTHORIZEDになることを検証
func TestService_Login_UnknownEmail_ReturnsUnauthorized(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != model.ErrCodeUnauthorized {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeUnauthorized)
	}
}

// パスワード不一致でのログインはUNAUTHORIZEDになることを検証
// （ユーザー不在と同じエラーで、どちらが誤りかを漏らさない）
func TestService_Login_WrongPassword_ReturnsUnauthorized(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "User", "user@example.com", "correct-password"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, err := svc.Login(ctx, "user@example.com", "wrong-password")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != model.ErrCodeUnauthorized {
		t.Errorf("code = %q, want %q", apiErr.Code, model.ErrCodeUnauthorized)
	}
	if apiErr.Message != model.NewUnauthorizedError().Message {
		t.Errorf("message should be identical for unknown email and wrong password")
	}
}
