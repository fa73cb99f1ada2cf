package phoneme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/willwade/PiperPhonemizeAPI/internal/domain"
)

func TestSampaFromESpeak(t *testing.T) {
	tests := []struct {
		name   string
		espeak string
		want   string
	}{
		{"primary stress", "h@l'oU w3:ld", `h@l"oU w3:ld`},
		{"secondary stress", ",Int@n'&S@n@l", `%Int@n"&S@n@l`},
		{"no stress", "ma", "ma"},
		{"length marker kept", "w3:ld", "w3:ld"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sampaFromESpeak(tt.espeak))
		})
	}
}

func TestESpeakVoicesCoverSupportedLanguages(t *testing.T) {
	for _, code := range domain.LanguageCodes() {
		assert.Contains(t, espeakVoices, code)
	}
}

func TestGoruutLanguagesCoverSupportedLanguages(t *testing.T) {
	for _, code := range domain.LanguageCodes() {
		assert.Contains(t, goruutLanguages, code)
	}
}

func TestRegionalVariantsShareBaseVoice(t *testing.T) {
	assert.Equal(t, "de", espeakVoices["de-de"])
	assert.Equal(t, "cs", espeakVoices["cs-cz"])
	assert.Equal(t, "en-us", espeakVoices["en-us"])
}

func TestESpeakConverterSAMPA(t *testing.T) {
	c := NewESpeakConverter(&ESpeakEngine{})
	got, err := c.SAMPA(domain.Phonemes{ESpeakASCII: "h@l'oU"})
	assert.NoError(t, err)
	assert.Equal(t, `h@l"oU`, got)
}
