package phoneme

import (
	"context"
	"strings"

	"github.com/neurlang/goruut/lib"
	"github.com/neurlang/goruut/models/requests"

	"github.com/willwade/PiperPhonemizeAPI/internal/domain"
)

// goruut names languages rather than tagging them with BCP-47 codes.
var goruutLanguages = map[string]string{
	"ar":    "Arabic",
	"cs":    "Czech",
	"cs-cz": "Czech",
	"de":    "German",
	"de-de": "German",
	"en":    "English",
	"en-us": "EnglishAmerican",
	"es":    "Spanish",
	"es-es": "Spanish",
	"fa":    "Farsi",
	"fr":    "French",
	"fr-fr": "French",
	"it":    "Italian",
	"it-it": "Italian",
	"lb":    "Luxembourgish",
	"nl":    "Dutch",
	"ru":    "Russian",
	"ru-ru": "Russian",
	"sv":    "Swedish",
	"sv-se": "Swedish",
	"sw":    "Swahili",
}

// GoruutConverter implements the NotationConverter interface with the
// pure-Go goruut phonemizer, for hosts without the espeak-ng binary.
// IPA comes from goruut's own tables applied to the source text.
type GoruutConverter struct {
	p *lib.Phonemizer
}

func NewGoruutConverter() *GoruutConverter {
	return &GoruutConverter{p: lib.NewPhonemizer(nil)}
}

func (g GoruutConverter) IPA(ctx context.Context, p domain.Phonemes) (string, error) {
	language, ok := goruutLanguages[p.Language]
	if !ok {
		return "", domain.ErrUnsupportedLanguage
	}
	resp := g.p.Sentence(requests.PhonemizeSentence{
		Language: language,
		Sentence: p.Text,
	})

	var result strings.Builder
	for i, word := range resp.Words {
		if i > 0 {
			result.WriteString(" ")
		}
		result.WriteString(word.Phonetic)
	}
	return result.String(), nil
}

func (g GoruutConverter) SAMPA(p domain.Phonemes) (string, error) {
	return sampaFromESpeak(p.ESpeakASCII), nil
}
