package phoneme

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/willwade/PiperPhonemizeAPI/internal/domain"
)

const espeakBinary = "espeak-ng"

// Map supported language codes to eSpeak voices. eSpeak ships a single
// voice per language for most of the set, so regional variants fall
// back to the base voice except en-us which eSpeak carries directly.
var espeakVoices = map[string]string{
	"ar":    "ar",
	"cs":    "cs",
	"cs-cz": "cs",
	"de":    "de",
	"de-de": "de",
	"en":    "en",
	"en-us": "en-us",
	"es":    "es",
	"es-es": "es",
	"fa":    "fa",
	"fr":    "fr",
	"fr-fr": "fr",
	"it":    "it",
	"it-it": "it",
	"lb":    "lb",
	"nl":    "nl",
	"ru":    "ru",
	"ru-ru": "ru",
	"sv":    "sv",
	"sv-se": "sv",
	"sw":    "sw",
}

// ESpeakEngine implements the PhonemeEngine interface by invoking the
// espeak-ng binary once per request.
type ESpeakEngine struct {
	path string
}

// NewESpeakEngine creates a new instance of ESpeakEngine. The binary is
// resolved once; a missing binary surfaces as ErrEngineUnavailable on use.
func NewESpeakEngine() *ESpeakEngine {
	path, err := exec.LookPath(espeakBinary)
	if err != nil {
		return &ESpeakEngine{}
	}
	return &ESpeakEngine{path: path}
}

func (e ESpeakEngine) Phonemize(ctx context.Context, text, language string) (string, error) {
	voice, ok := espeakVoices[language]
	if !ok {
		return "", domain.ErrUnsupportedLanguage
	}
	if e.path == "" {
		return "", domain.ErrEngineUnavailable
	}
	return e.run(ctx, "-q", "-x", "-v", voice, "--", text)
}

func (e ESpeakEngine) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, e.path, args...)
	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s failed: %s - %w", espeakBinary, stderr.String(), err)
	}
	// espeak prints one line per clause, join them into one string
	return strings.Join(strings.Fields(out.String()), " "), nil
}
