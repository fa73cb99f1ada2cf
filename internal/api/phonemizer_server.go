package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/willwade/PiperPhonemizeAPI/internal/config"
	"github.com/willwade/PiperPhonemizeAPI/internal/domain"
)

const sampaNote = "SAMPA is derived from eSpeak's Kirshenbaum-style notation; stress markers are translated"

type PhonemizerServer struct {
	logger      slog.Logger
	engine      domain.PhonemeEngine
	converter   domain.NotationConverter
	transcriber domain.Transcriber
	cfg         config.Config
}

func NewPhonemizerServer(
	engine domain.PhonemeEngine,
	converter domain.NotationConverter,
	transcriber domain.Transcriber,
	logger slog.Logger,
	cfg config.Config) *PhonemizerServer {
	return &PhonemizerServer{
		engine:      engine,
		converter:   converter,
		transcriber: transcriber,
		logger:      logger,
		cfg:         cfg,
	}
}

func (p PhonemizerServer) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Welcome to Phonemizer API",
		"health":  "/health",
		"endpoints": map[string]any{
			"phonemize": map[string]string{
				"path":        "/phonemize",
				"method":      "POST",
				"description": "Convert text to phonemes",
			},
			"languages": map[string]string{
				"path":        "/languages",
				"method":      "GET",
				"description": "List supported languages",
			},
			"ipa-to-text": map[string]string{
				"path":        "/ipa-to-text",
				"method":      "POST",
				"description": "Convert IPA to text",
			},
		},
	})
}

func (p PhonemizerServer) Phonemize(c echo.Context) error {
	var req domain.PhonemeRequest
	err := c.Bind(&req)
	if err != nil {
		p.logger.Error("phonemize - failed to convert", slog.Any("err", err.Error()))
		return c.String(http.StatusBadRequest, "invalid input")
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return c.String(http.StatusBadRequest, "text cannot be empty")
	}
	if !domain.IsLanguageSupported(req.Language) {
		msg := fmt.Sprintf("language %q not supported. Available languages: %s",
			req.Language, strings.Join(domain.LanguageCodes(), ", "))
		return c.String(http.StatusBadRequest, msg)
	}

	ctx := c.Request().Context()
	espeakASCII, err := p.engine.Phonemize(ctx, req.Text, req.Language)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedLanguage) {
			return c.String(http.StatusBadRequest, err.Error())
		}
		p.logger.Error("failed to phonemize", slog.Any("err", err.Error()))
		return c.String(http.StatusInternalServerError, "error during phonemization")
	}

	phonemes := domain.Phonemes{
		Text:        req.Text,
		Language:    req.Language,
		ESpeakASCII: espeakASCII,
	}
	ipa, err := p.converter.IPA(ctx, phonemes)
	if err != nil {
		p.logger.Error("failed to convert to IPA", slog.Any("err", err.Error()))
		return c.String(http.StatusInternalServerError, "error during phonemization")
	}
	sampa, err := p.converter.SAMPA(phonemes)
	if err != nil {
		p.logger.Error("failed to convert to SAMPA", slog.Any("err", err.Error()))
		return c.String(http.StatusInternalServerError, "error during phonemization")
	}

	return c.JSON(http.StatusOK, domain.PhonemeResponse{
		IPA:         ipa,
		SAMPA:       sampa,
		ESpeakASCII: espeakASCII,
		Note:        sampaNote,
	})
}

func (p PhonemizerServer) Languages(c echo.Context) error {
	languages := make([]domain.Language, 0, len(domain.SupportedLanguages))
	for _, code := range domain.LanguageCodes() {
		languages = append(languages, domain.Language{
			Code:        code,
			Name:        domain.SupportedLanguages[code],
			Description: fmt.Sprintf("Language code: %s", code),
		})
	}
	return c.JSON(http.StatusOK, map[string][]domain.Language{"languages": languages})
}

func (p PhonemizerServer) IPAToText(c echo.Context) error {
	var req domain.IPAToTextRequest
	err := c.Bind(&req)
	if err != nil {
		p.logger.Error("ipa-to-text - failed to convert", slog.Any("err", err.Error()))
		return c.String(http.StatusBadRequest, "invalid input")
	}
	ipa := strings.TrimSpace(strings.Trim(strings.TrimSpace(req.IPA), "/"))
	if ipa == "" {
		return c.String(http.StatusBadRequest, "IPA text cannot be empty")
	}
	result, err := p.transcriber.IPAToText(c.Request().Context(), ipa)
	if err != nil {
		if errors.Is(err, domain.ErrTranscriberNotConfigured) {
			return c.String(http.StatusServiceUnavailable, "transcription backend not configured")
		}
		p.logger.Error("failed to transcribe IPA", slog.Any("err", err.Error()))
		return c.String(http.StatusInternalServerError, "error converting IPA to text")
	}
	return c.JSON(http.StatusOK, result)
}

func (p PhonemizerServer) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// DebugConfig reports which configuration values are set, without
// echoing the values themselves.
func (p PhonemizerServer) DebugConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"converter":        p.cfg.Converter,
		"openai_key_set":   p.cfg.OpenAIAPIKey != "",
		"openai_model_set": p.cfg.OpenAIModel != "",
		"openai_model":     p.cfg.OpenAIModel,
	})
}
