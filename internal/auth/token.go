package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// トークン検証の失敗理由。
// 認証ミドルウェアはどちらも401に写像するが、ログ上は区別する。
var (
	// ErrInvalidToken は署名または構造が不正なトークンを示す。
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken は有効期限切れのトークンを示す。
	ErrExpiredToken = errors.New("expired token")
)

// TokenService は署名付きセッショントークンの発行と検証を提供する。
// トークンは永続化せず、各リクエストでステートレスに検証する。
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService はTokenServiceを生成する。
// secretの長さ検証はconfig.Loadが起動時に行う。
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue はユーザーIDと有効期限を埋め込んだHS256署名トークンを発行する。
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify はトークンを検証し、埋め込まれたユーザーIDを返す。
// 期限切れはErrExpiredToken、それ以外の検証失敗はErrInvalidTokenを返す。
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
