package i18n_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{
		Data: map[string]map[string]any{
			"en": {
				"validation": map[string]any{
					"min":       "'{PropertyName}' must be at least {MinValue}.",
					"not_empty": "'{PropertyName}' must not be empty.",
					"only_en":   "Only in English",
				},
				"greeting": "Hello, {Name}!",
			},
			"pt-BR": {
				"validation": map[string]any{
					"not_empty": "'{PropertyName}' não pode ser vazio.",
				},
			},
		},
	}

	translator, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	require.NotNil(t, translator)
	return translator
}

func TestNewTranslator(t *testing.T) {
	t.Run("returns error for nil adapter", func(t *testing.T) {
		translator, err := i18n.NewTranslator(context.Background(), nil)
		require.ErrorIs(t, err, i18n.ErrNilAdapter)
		assert.Nil(t, translator)
	})

	t.Run("returns error for empty language code", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"": {"a": "b"}}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		require.ErrorIs(t, err, i18n.ErrEmptyLanguageCode)
	})

	t.Run("returns error for nil language map", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"en": nil}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		require.ErrorIs(t, err, i18n.ErrInvalidTranslationMap)
	})

	t.Run("accepts empty adapter", func(t *testing.T) {
		translator, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Empty(t, translator.SupportedLanguages())
		assert.Equal(t, "some.code", translator.Translate("some.code", nil, ""))
	})

	t.Run("normalizes language tags", func(t *testing.T) {
		translator := newTestTranslator(t)
		assert.Equal(t, []string{"en", "pt-BR"}, translator.SupportedLanguages())
	})

	t.Run("starts with configured language", func(t *testing.T) {
		translator := newTestTranslator(t, i18n.WithLanguage("pt_br"))
		assert.Equal(t, "pt-BR", translator.Language())
	})

	t.Run("ignores unsupported initial language", func(t *testing.T) {
		translator := newTestTranslator(t, i18n.WithLanguage("de"))
		assert.Equal(t, "en", translator.Language())
	})
}

func TestTranslator_Translate(t *testing.T) {
	translator := newTestTranslator(t)

	t.Run("renders template with parameters", func(t *testing.T) {
		msg := translator.Translate("validation.min", map[string]string{
			"PropertyName": "age",
			"MinValue":     "18",
		}, "")
		assert.Equal(t, "'age' must be at least 18.", msg)
	})

	t.Run("leaves unknown placeholders verbatim", func(t *testing.T) {
		msg := translator.Translate("validation.min", map[string]string{"PropertyName": "age"}, "")
		assert.Equal(t, "'age' must be at least {MinValue}.", msg)
	})

	t.Run("returns code for unknown code", func(t *testing.T) {
		assert.Equal(t, "validation.unknown", translator.Translate("validation.unknown", nil, ""))
	})

	t.Run("default message wins over table", func(t *testing.T) {
		msg := translator.Translate("validation.min", map[string]string{"PropertyName": "age"}, "Too young")
		assert.Equal(t, "Too young", msg)
	})

	t.Run("default message placeholders are rendered", func(t *testing.T) {
		msg := translator.Translate("validation.min", map[string]string{"PropertyName": "age"}, "{PropertyName} is invalid")
		assert.Equal(t, "age is invalid", msg)
	})

	t.Run("substituted values are not rendered again", func(t *testing.T) {
		msg := translator.Translate("greeting", map[string]string{"Name": "{Name}"}, "")
		assert.Equal(t, "Hello, {Name}!", msg)
	})
}

func TestTranslator_Languages(t *testing.T) {
	t.Run("translates in the active language", func(t *testing.T) {
		translator := newTestTranslator(t)
		require.NoError(t, translator.SetLanguage("pt-BR"))

		msg := translator.Translate("validation.not_empty", map[string]string{"PropertyName": "nome"}, "")
		assert.Equal(t, "'nome' não pode ser vazio.", msg)
	})

	t.Run("falls back to default language", func(t *testing.T) {
		translator := newTestTranslator(t)
		require.NoError(t, translator.SetLanguage("pt-BR"))

		assert.Equal(t, "Only in English", translator.Translate("validation.only_en", nil, ""))
	})

	t.Run("resolves base language", func(t *testing.T) {
		translator := newTestTranslator(t)
		require.NoError(t, translator.SetLanguage("en-GB"))
		assert.Equal(t, "en", translator.Language())
	})

	t.Run("rejects unsupported language", func(t *testing.T) {
		translator := newTestTranslator(t)
		err := translator.SetLanguage("ja")
		require.ErrorIs(t, err, i18n.ErrLanguageNotSupported)
		assert.Equal(t, "en", translator.Language())
	})

	t.Run("translates for explicit language", func(t *testing.T) {
		translator := newTestTranslator(t)
		msg := translator.TranslateFor("pt-BR", "validation.not_empty", map[string]string{"PropertyName": "nome"}, "")
		assert.Equal(t, "'nome' não pode ser vazio.", msg)
		assert.Equal(t, "en", translator.Language())
	})

	t.Run("matches preferred languages", func(t *testing.T) {
		translator := newTestTranslator(t)
		assert.Equal(t, "pt-BR", translator.Match("pt-BR", "en"))
		assert.Equal(t, "en", translator.Match("en-US"))
		assert.Equal(t, "en", translator.Match())
	})
}

func TestTranslator_ReplaceAndMerge(t *testing.T) {
	t.Run("merge overrides single codes", func(t *testing.T) {
		translator := newTestTranslator(t)
		translator.Merge("en", i18n.Table{"validation.not_empty": "{PropertyName} is required"})

		assert.Equal(t, "name is required",
			translator.Translate("validation.not_empty", map[string]string{"PropertyName": "name"}, ""))
		assert.True(t, translator.HasTranslation("en", "validation.min"))
	})

	t.Run("replace drops codes that are not provided", func(t *testing.T) {
		translator := newTestTranslator(t)
		translator.Replace("", i18n.Table{"validation.not_empty": "required"})

		assert.Equal(t, "required", translator.Translate("validation.not_empty", nil, ""))
		assert.False(t, translator.HasTranslation("en", "validation.min"))
	})

	t.Run("replace does not keep a reference to the caller map", func(t *testing.T) {
		translator := newTestTranslator(t)
		table := i18n.Table{"greeting": "Hi"}
		translator.Replace("en", table)
		table["greeting"] = "changed"

		assert.Equal(t, "Hi", translator.Translate("greeting", nil, ""))
	})

	t.Run("merge adds a new language", func(t *testing.T) {
		translator := newTestTranslator(t)
		translator.Merge("es", i18n.Table{"greeting": "Hola, {Name}!"})

		require.NoError(t, translator.SetLanguage("es"))
		assert.Equal(t, "Hola, Ana!", translator.Translate("greeting", map[string]string{"Name": "Ana"}, ""))
	})

	t.Run("rendered messages are not changed by later swaps", func(t *testing.T) {
		translator := newTestTranslator(t)
		before := translator.Translate("greeting", map[string]string{"Name": "Ana"}, "")
		translator.Replace("en", i18n.Table{"greeting": "Bye"})

		assert.Equal(t, "Hello, Ana!", before)
	})
}

func TestTranslator_MissingTranslationLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	translator := newTestTranslator(t, i18n.WithLogger(logger), i18n.WithMissingTranslationsLogging(true))

	translator.Translate("validation.unknown", nil, "")

	assert.Contains(t, buf.String(), "Translation not found")
	assert.Contains(t, buf.String(), "validation.unknown")
}

func TestTranslator_ExportJSON(t *testing.T) {
	translator := newTestTranslator(t)

	t.Run("exports flattened table", func(t *testing.T) {
		out, err := translator.ExportJSON("pt-BR")
		require.NoError(t, err)
		assert.JSONEq(t, `{"validation.not_empty":"'{PropertyName}' não pode ser vazio."}`, out)
	})

	t.Run("returns error for unsupported language", func(t *testing.T) {
		_, err := translator.ExportJSON("de")
		require.ErrorIs(t, err, i18n.ErrLanguageNotSupported)
	})
}

func TestTranslator_ConcurrentAccess(t *testing.T) {
	translator := newTestTranslator(t, i18n.WithNoLogging())

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				translator.Merge("en", i18n.Table{"greeting": "Hi, {Name}!"})
				return
			}
			msg := translator.Translate("greeting", map[string]string{"Name": "Ana"}, "")
			assert.Contains(t, []string{"Hello, Ana!", "Hi, Ana!"}, msg)
		}(i)
	}
	wg.Wait()
}
