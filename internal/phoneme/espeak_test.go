package phoneme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/willwade/PiperPhonemizeAPI/internal/domain"
)

func TestESpeakEngineUnsupportedLanguage(t *testing.T) {
	engine := &ESpeakEngine{path: "/usr/bin/espeak-ng"}
	_, err := engine.Phonemize(context.Background(), "hello", "xx-yy")
	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}

func TestESpeakEngineMissingBinary(t *testing.T) {
	engine := &ESpeakEngine{}
	_, err := engine.Phonemize(context.Background(), "hello", "en-us")
	assert.ErrorIs(t, err, domain.ErrEngineUnavailable)
}

func TestESpeakConverterMissingBinary(t *testing.T) {
	c := NewESpeakConverter(&ESpeakEngine{})
	_, err := c.IPA(context.Background(), domain.Phonemes{
		Language:    "en-us",
		ESpeakASCII: "h@l'oU",
	})
	assert.ErrorIs(t, err, domain.ErrEngineUnavailable)
}

func TestESpeakConverterUnsupportedLanguage(t *testing.T) {
	c := NewESpeakConverter(&ESpeakEngine{path: "/usr/bin/espeak-ng"})
	_, err := c.IPA(context.Background(), domain.Phonemes{
		Language:    "xx-yy",
		ESpeakASCII: "h@l'oU",
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}
