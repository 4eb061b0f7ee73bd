// Package validation は宣言的スキーマによるリクエスト入力の検証と正規化を提供する。
// ルートごとの手書きチェックではなく、フィールドの記述（型・必須性・境界・
// 変換規則）を1つの汎用ルーチンで解釈する。
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Target は検証対象のリクエスト部位を表す。
type Target string

const (
	TargetBody  Target = "body"
	TargetQuery Target = "query"
	TargetPath  Target = "path"
)

// Kind はフィールドの型と変換規則を表す。
type Kind int

const (
	// KindString は前後空白を除去した文字列。
	KindString Kind = iota
	// KindEmail はメールアドレス形式の文字列。
	KindEmail
	// KindEnum はChoicesのいずれかに一致する文字列。
	KindEnum
	// KindInt は数字列から境界付き整数への変換。欠落時はDefaultを適用する。
	KindInt
	// KindUUID はUUID形式の文字列。
	KindUUID
)

// Field は1フィールドの検証規則を表す。
type Field struct {
	Name     string
	Kind     Kind
	Required bool

	// KindString用の文字数境界。0は無制限。
	MinLen int
	MaxLen int

	// KindEnum用の許可値。
	Choices []string

	// KindInt用の値域とデフォルト。
	Min     int
	Max     int
	Default int
}

// Schema は1つのリクエスト部位に対するフィールド規則の集合を表す。
type Schema struct {
	Target Target
	Fields []Field
}

// Values は検証・正規化済みの値を保持する。
// 値はstringまたはint。
type Values map[string]any

// String は正規化済み文字列を返す。未設定の場合は空文字列。
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int は正規化済み整数を返す。未設定の場合は0。
func (v Values) Int(name string) int {
	n, _ := v[name].(int)
	return n
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate は生入力をスキーマに従って検証・正規化する。
// 最初のエラーで打ち切らず、全フィールドのエラーを集約して返す。
// fieldErrorsが空でない場合、Valuesは使用してはならない。
func (s Schema) Validate(raw map[string]any) (Values, map[string]string) {
	values := Values{}
	fieldErrors := map[string]string{}

	for _, f := range s.Fields {
		value, present := raw[f.Name]
		str, isStr := value.(string)
		if isStr {
			str = strings.TrimSpace(str)
		}
		if !present || (isStr && str == "") {
			if f.Required {
				fieldErrors[f.Name] = "必須項目です。"
				continue
			}
			if f.Kind == KindInt {
				values[f.Name] = f.Default
			}
			continue
		}

		switch f.Kind {
		case KindString:
			if !isStr {
				fieldErrors[f.Name] = "文字列を指定してください。"
				continue
			}
			if f.MinLen > 0 && len([]rune(str)) < f.MinLen {
				fieldErrors[f.Name] = fmt.Sprintf("%d文字以上で入力してください。", f.MinLen)
				continue
			}
			if f.MaxLen > 0 && len([]rune(str)) > f.MaxLen {
				fieldErrors[f.Name] = fmt.Sprintf("%d文字以内で入力してください。", f.MaxLen)
				continue
			}
			values[f.Name] = str

		case KindEmail:
			if !isStr || !emailPattern.MatchString(str) {
				fieldErrors[f.Name] = "メールアドレスの形式が正しくありません。"
				continue
			}
			values[f.Name] = str

		case KindEnum:
			if !isStr {
				fieldErrors[f.Name] = "文字列を指定してください。"
				continue
			}
			ok := false
			for _, c := range f.Choices {
				if str == c {
					ok = true
					break
				}
			}
			if !ok {
				fieldErrors[f.Name] = fmt.Sprintf("次のいずれかを指定してください: %s", strings.Join(f.Choices, ", "))
				continue
			}
			values[f.Name] = str

		case KindInt:
			n, err := coerceInt(value)
			if err != nil {
				fieldErrors[f.Name] = "整数を指定してください。"
				continue
			}
			if n < f.Min || n > f.Max {
				fieldErrors[f.Name] = fmt.Sprintf("%d以上%d以下で指定してください。", f.Min, f.Max)
				continue
			}
			values[f.Name] = n

		case KindUUID:
			if !isStr {
				fieldErrors[f.Name] = "文字列を指定してください。"
				continue
			}
			if _, err := uuid.Parse(str); err != nil {
				fieldErrors[f.Name] = "IDの形式が正しくありません。"
				continue
			}
			values[f.Name] = str
		}
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return values, nil
}

// coerceInt は文字列またはJSON数値を整数へ変換する。
func coerceInt(value any) (int, error) {
	switch v := value.(type) {
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	case float64:
		n := int(v)
		if float64(n) != v {
			return 0, fmt.Errorf("not an integer: %v", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}
}
