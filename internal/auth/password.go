// Package auth は資格情報の検証、トークン発行、登録・ログインのビジネスロジックを提供する。
package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher はbcryptによるパスワードのハッシュ化と検証を提供する。
// ハッシュ化は意図的に計算コストが高く、同一入力でもソルトにより毎回異なる出力になる。
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher はPasswordHasherを生成する。
// costがbcryptの許容範囲外の場合はデフォルトコストを使用する。
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash はパスワードをソルト付きでハッシュ化する。
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify はパスワードがハッシュと一致するかを返す。
// ハッシュが不正な形式の場合もエラーではなく不一致として扱う。
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
