package i18n

import "strings"

type Language string

const (
	Uzbek   Language = "uz"
	Russian Language = "ru"
	English Language = "en"

	Default = Uzbek
)

// Supported lists the display languages in fallback order.
var Supported = []Language{Uzbek, Russian, English}

// Parse accepts a language code in any case. The second result is false for
// codes outside Supported.
func Parse(code string) (Language, bool) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	for _, l := range Supported {
		if l == lang {
			return l, true
		}
	}
	return Default, false
}

// Text is one string carried in all three display languages.
type Text struct {
	Uz string `json:"uz"`
	Ru string `json:"ru"`
	En string `json:"en"`
}

func (t Text) In(lang Language) string {
	switch lang {
	case Russian:
		return t.Ru
	case English:
		return t.En
	default:
		return t.Uz
	}
}

// Get returns the text in lang, or the first non-empty translation in
// Supported order when that one is missing.
func (t Text) Get(lang Language) string {
	if s := t.In(lang); s != "" {
		return s
	}
	for _, l := range Supported {
		if s := t.In(l); s != "" {
			return s
		}
	}
	return ""
}

func (t Text) Complete() bool {
	return strings.TrimSpace(t.Uz) != "" && strings.TrimSpace(t.Ru) != "" && strings.TrimSpace(t.En) != ""
}

func (t Text) IsZero() bool {
	return t.Uz == "" && t.Ru == "" && t.En == ""
}
