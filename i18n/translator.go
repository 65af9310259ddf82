package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "type").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			msg = "型が不正です"
		case "required":
			msg = "必須プロパティが不足しています"
		case "unknown_key":
			msg = "未知のキーです"
		case "invalid_enum":
			msg = "列挙値に含まれていません"
		case "union_no_match":
			msg = "どの候補の型にも一致しません"
		case "duplicate_key":
			msg = "キーが重複しています"
		case "parse_error":
			msg = "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			msg = "invalid type"
		case "required":
			msg = "required property missing"
		case "unknown_key":
			msg = "unknown key"
		case "invalid_enum":
			msg = "value is not a member of the enumeration"
		case "union_no_match":
			msg = "value matches no union alternative"
		case "duplicate_key":
			msg = "duplicate key"
		case "parse_error":
			msg = "parse error"
		}
	}
	if msg == "" {
		return code
	}
	if exp := data["expected"]; exp != "" {
		msg += " (expected " + exp + ")"
	}
	return strings.TrimSpace(msg)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
