package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	ConverterESpeak = "espeak"
	ConverterGoruut = "goruut"
)

type Config struct {
	ListenAddr    string `env:"LISTEN_ADDR" envDefault:":8080"`
	Converter     string `env:"PHONEME_CONVERTER" envDefault:"espeak"`
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.Converter != ConverterESpeak && cfg.Converter != ConverterGoruut {
		return Config{}, fmt.Errorf("unknown converter %q", cfg.Converter)
	}
	return cfg, nil
}
