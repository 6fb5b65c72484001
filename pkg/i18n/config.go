package i18n

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config describes how the process-wide translator is built.
type Config struct {
	Language           string `env:"VALIDATION_LANGUAGE" envDefault:"en"`
	FallbackLanguage   string `env:"VALIDATION_FALLBACK_LANGUAGE" envDefault:"en"`
	TranslationsPath   string `env:"VALIDATION_TRANSLATIONS_PATH"`
	TranslationsFormat string `env:"VALIDATION_TRANSLATIONS_FORMAT" envDefault:"yaml"`
	LogMissing         bool   `env:"VALIDATION_LOG_MISSING" envDefault:"false"`
}

var dotenvLoaded sync.Once

// LoadConfig reads Config from the environment. A .env file in the working
// directory is loaded once beforehand if present.
func LoadConfig() (Config, error) {
	dotenvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// NewFromConfig builds a Translator from the shipped tables, overlaid with
// the files in cfg.TranslationsPath when set.
func NewFromConfig(ctx context.Context, cfg Config, options ...Option) (*Translator, error) {
	adapters := ChainAdapter{BuiltinAdapter()}
	if cfg.TranslationsPath != "" {
		parser := NewParserForFile("." + cfg.TranslationsFormat)
		if parser == nil {
			return nil, fmt.Errorf("%w: unsupported translations format %q", ErrParsingConfig, cfg.TranslationsFormat)
		}
		adapters = append(adapters, NewDirectoryAdapter(parser, cfg.TranslationsPath))
	}

	opts := []Option{
		WithDefaultLanguage(cfg.FallbackLanguage),
		WithLanguage(cfg.Language),
		WithMissingTranslationsLogging(cfg.LogMissing),
	}
	return NewTranslator(ctx, adapters, append(opts, options...)...)
}

// Setup loads the configuration from the environment and installs the
// resulting translator as the process-wide default.
func Setup(ctx context.Context, options ...Option) (*Translator, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	t, err := NewFromConfig(ctx, cfg, options...)
	if err != nil {
		return nil, err
	}

	SetDefault(t)
	return t, nil
}
