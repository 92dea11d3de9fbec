package domain

import (
	"fmt"
	"strings"
)

// Language identifies a natural-language dictionary used to score candidate plaintexts.
type Language string

const (
	LanguagePortuguese Language = "portuguese"
	LanguageEnglish    Language = "english"
)

var DefaultLanguages = []Language{LanguagePortuguese, LanguageEnglish}

var SupportedLanguages = map[Language]bool{
	LanguagePortuguese: true,
	LanguageEnglish:    true,
}

var languageAliases = map[string]Language{
	"pt":         LanguagePortuguese,
	"pt-br":      LanguagePortuguese,
	"portuguese": LanguagePortuguese,
	"en":         LanguageEnglish,
	"english":    LanguageEnglish,
}

// ParseLanguage accepts full names and ISO-ish short codes ("pt", "en").
func ParseLanguage(s string) (Language, error) {
	l, ok := languageAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unsupported language: %s", s)
	}
	return l, nil
}
