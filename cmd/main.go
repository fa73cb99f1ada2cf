package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/willwade/PiperPhonemizeAPI/internal/api"
	"github.com/willwade/PiperPhonemizeAPI/internal/config"
	"github.com/willwade/PiperPhonemizeAPI/internal/domain"
	"github.com/willwade/PiperPhonemizeAPI/internal/phoneme"
	"github.com/willwade/PiperPhonemizeAPI/internal/transcriber"
)

func main() {
	e := echo.New()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("err", err))
		os.Exit(1)
	}

	engine := phoneme.NewESpeakEngine()
	var converter domain.NotationConverter
	switch cfg.Converter {
	case config.ConverterGoruut:
		converter = phoneme.NewGoruutConverter()
	default:
		converter = phoneme.NewESpeakConverter(engine)
	}
	ipaTranscriber := transcriber.NewOpenAITranscriber(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	server := api.NewPhonemizerServer(engine, converter, ipaTranscriber, *logger, cfg)

	e.Use(
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     []string{"*"},
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
			AllowCredentials: true,
		}),
	)
	e.GET("/", server.Index)
	e.POST("/phonemize", server.Phonemize)
	e.GET("/languages", server.Languages)
	e.POST("/ipa-to-text", server.IPAToText)
	e.GET("/health", server.Health)
	e.GET("/debug/config", server.DebugConfig)

	slog.Error("server has failed", slog.Any("err", e.Start(cfg.ListenAddr)))
}
