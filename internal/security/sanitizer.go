// Package security はアプリケーションのセキュリティ機能を提供する。
//
// NameSanitizer はユーザーが入力した表示名をサニタイズし、
// 格納値がそのままUIに描画された場合のXSSを防ぐ。
// bluemondayの厳格ポリシーで全HTMLタグを除去する。
package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// NameSanitizer はユーザー表示名のサニタイズ機能のインターフェースを定義する。
type NameSanitizer interface {
	// Sanitize は表示名から全HTMLタグを除去し、前後の空白を取り除いて返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(name string) string
}

// nameSanitizer はNameSanitizerの実装。
// bluemondayのStrictPolicyを保持し、スレッドセーフにサニタイズ処理を行う。
type nameSanitizer struct {
	policy *bluemonday.Policy
}

// NewNameSanitizer はNameSanitizerの新しいインスタンスを生成する。
// StrictPolicyは全タグ・全属性を除去し、テキストのみを通過させる。
func NewNameSanitizer() *nameSanitizer {
	return &nameSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize は表示名から全HTMLタグを除去し、前後の空白を取り除いて返す。
func (s *nameSanitizer) Sanitize(name string) string {
	return strings.TrimSpace(s.policy.Sanitize(name))
}

// compile-time interface check
var _ NameSanitizer = (*nameSanitizer)(nil)
