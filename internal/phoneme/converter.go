package phoneme

import (
	"context"
	"strings"

	"github.com/willwade/PiperPhonemizeAPI/internal/domain"
)

// ESpeakConverter implements the NotationConverter interface on top of
// eSpeak's own pronunciation tables: the ASCII mnemonics are fed back
// through the binary in [[...]] phoneme-input form to obtain IPA.
type ESpeakConverter struct {
	engine *ESpeakEngine
}

// NewESpeakConverter creates a converter sharing the engine's resolved
// binary.
func NewESpeakConverter(engine *ESpeakEngine) *ESpeakConverter {
	return &ESpeakConverter{engine: engine}
}

func (c ESpeakConverter) IPA(ctx context.Context, p domain.Phonemes) (string, error) {
	voice, ok := espeakVoices[p.Language]
	if !ok {
		return "", domain.ErrUnsupportedLanguage
	}
	if c.engine.path == "" {
		return "", domain.ErrEngineUnavailable
	}
	return c.engine.run(ctx, "-q", "--ipa", "-v", voice, "--", "[["+p.ESpeakASCII+"]]")
}

func (c ESpeakConverter) SAMPA(p domain.Phonemes) (string, error) {
	return sampaFromESpeak(p.ESpeakASCII), nil
}

// eSpeak's mnemonics derive from the Kirshenbaum alphabet, which shares
// its segment symbols with SAMPA; only the stress markers differ.
var sampaReplacer = strings.NewReplacer(
	"'", `"`, // primary stress
	",", "%", // secondary stress
)

func sampaFromESpeak(espeakASCII string) string {
	return sampaReplacer.Replace(espeakASCII)
}
