package domain

import (
	"context"
	"errors"
)

type PhonemeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type PhonemeResponse struct {
	IPA         string `json:"ipa"`
	SAMPA       string `json:"sampa"`
	ESpeakASCII string `json:"espeak_ascii"`
	Note        string `json:"note,omitempty"`
}

// Phonemes carries the engine output together with the request context
// that produced it, so converters can work from either representation.
type Phonemes struct {
	Text        string
	Language    string
	ESpeakASCII string
}

var (
	ErrUnsupportedLanguage = errors.New("language is not supported")
	ErrEngineUnavailable   = errors.New("phonemization engine is not available")
)

// PhonemeEngine converts text in a supported language to eSpeak ASCII
// phoneme symbols.
type PhonemeEngine interface {
	Phonemize(ctx context.Context, text, language string) (string, error)
}

// NotationConverter turns phonemized input into IPA and SAMPA notation.
type NotationConverter interface {
	IPA(ctx context.Context, p Phonemes) (string, error)
	SAMPA(p Phonemes) (string, error)
}
