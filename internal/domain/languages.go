package domain

import "sort"

type Language struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var SupportedLanguages = map[string]string{
	"ar":    "Arabic",
	"cs":    "Czech",
	"cs-cz": "Czech (CZ)",
	"de":    "German",
	"de-de": "German (DE)",
	"en":    "English",
	"en-us": "English (US)",
	"es":    "Spanish",
	"es-es": "Spanish (ES)",
	"fa":    "Persian",
	"fr":    "French",
	"fr-fr": "French (FR)",
	"it":    "Italian",
	"it-it": "Italian (IT)",
	"lb":    "Luxembourgish",
	"nl":    "Dutch",
	"ru":    "Russian",
	"ru-ru": "Russian (RU)",
	"sv":    "Swedish",
	"sv-se": "Swedish (SE)",
	"sw":    "Swahili",
}

func IsLanguageSupported(code string) bool {
	_, ok := SupportedLanguages[code]
	return ok
}

// LanguageCodes returns the supported codes in sorted order.
func LanguageCodes() []string {
	codes := make([]string, 0, len(SupportedLanguages))
	for code := range SupportedLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
