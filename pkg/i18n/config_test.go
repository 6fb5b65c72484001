package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
)

func TestLoadConfig(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		cfg, err := i18n.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, "en", cfg.FallbackLanguage)
		assert.Equal(t, "yaml", cfg.TranslationsFormat)
		assert.Empty(t, cfg.TranslationsPath)
		assert.False(t, cfg.LogMissing)
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("VALIDATION_LANGUAGE", "pt-BR")
		t.Setenv("VALIDATION_TRANSLATIONS_PATH", "/tmp/translations")
		t.Setenv("VALIDATION_LOG_MISSING", "true")

		cfg, err := i18n.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "pt-BR", cfg.Language)
		assert.Equal(t, "/tmp/translations", cfg.TranslationsPath)
		assert.True(t, cfg.LogMissing)
	})

	t.Run("returns error for invalid values", func(t *testing.T) {
		t.Setenv("VALIDATION_LOG_MISSING", "maybe")

		_, err := i18n.LoadConfig()
		require.ErrorIs(t, err, i18n.ErrParsingConfig)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Run("overlays translations directory on built-in tables", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"),
			[]byte("en:\n  validation:\n    email: \"Check the e-mail in {PropertyName}.\"\n"), 0o600))

		translator, err := i18n.NewFromConfig(context.Background(), i18n.Config{
			Language:           "en",
			FallbackLanguage:   "en",
			TranslationsPath:   dir,
			TranslationsFormat: "yaml",
		})
		require.NoError(t, err)

		params := map[string]string{"PropertyName": "email"}
		assert.Equal(t, "Check the e-mail in email.", translator.Translate("validation.email", params, ""))
		assert.Equal(t, "'email' must not be empty.", translator.Translate("validation.not_empty", params, ""))
	})

	t.Run("activates configured language", func(t *testing.T) {
		translator, err := i18n.NewFromConfig(context.Background(), i18n.Config{Language: "pt-BR", FallbackLanguage: "en"})
		require.NoError(t, err)
		assert.Equal(t, "pt-BR", translator.Language())
	})

	t.Run("rejects unsupported format", func(t *testing.T) {
		_, err := i18n.NewFromConfig(context.Background(), i18n.Config{TranslationsPath: t.TempDir(), TranslationsFormat: "toml"})
		require.ErrorIs(t, err, i18n.ErrParsingConfig)
	})
}

func TestSetup(t *testing.T) {
	t.Cleanup(func() { i18n.SetDefault(nil) })
	t.Setenv("VALIDATION_LANGUAGE", "pt-BR")

	translator, err := i18n.Setup(context.Background())
	require.NoError(t, err)

	assert.Same(t, translator, i18n.Default())
	assert.Equal(t, "pt-BR", i18n.Default().Language())
}
