package i18n

import "sync/atomic"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return withDetail("型が不正です", "期待値", data["expected"])
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_key":
			return withDetail("未知のキーです", "キー", data["key"])
		case "duplicate_key":
			return withDetail("キーが重複しています", "キー", data["key"])
		case "invalid_enum":
			return withDetail("列挙値が不正です", "候補", data["expected"])
		case "invalid_format":
			return withDetail("形式が不正です", "形式", data["format"])
		case "overflow":
			return withDetail("値が範囲外です", "期待値", data["expected"])
		case "discriminator_missing":
			return "判別子がありません"
		case "discriminator_unknown":
			return withDetail("未知の要素型です", "型", data["tag"])
		case "dropped_element":
			return "配列要素を破棄しました"
		case "parse_error":
			return "解析エラー"
		case "truncated":
			return "打ち切られました"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return withDetail("invalid type", "expected", data["expected"])
		case "required":
			return "required property missing"
		case "unknown_key":
			return withDetail("unknown key", "key", data["key"])
		case "duplicate_key":
			return withDetail("duplicate key", "key", data["key"])
		case "invalid_enum":
			return withDetail("unrecognized enum value", "expected one of", data["expected"])
		case "invalid_format":
			return withDetail("invalid format", "format", data["format"])
		case "overflow":
			return withDetail("value out of range", "expected", data["expected"])
		case "discriminator_missing":
			return "discriminator missing"
		case "discriminator_unknown":
			return withDetail("unknown element type", "type", data["tag"])
		case "dropped_element":
			return "array element dropped"
		case "parse_error":
			return "parse error"
		case "truncated":
			return "truncated"
		}
	}
	return code
}

func withDetail(msg, label, detail string) string {
	if detail == "" {
		return msg
	}
	return msg + " (" + label + ": " + detail + ")"
}

var currentTranslator atomic.Value

func init() { currentTranslator.Store(translatorBox{dictTranslator{lang: "en"}}) }

// translatorBox keeps the stored concrete type stable for atomic.Value.
type translatorBox struct{ Translator }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator.Store(translatorBox{dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	currentTranslator.Store(translatorBox{tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Load().(translatorBox).Message(code, data)
}
