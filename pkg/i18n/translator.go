package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// Table maps a translation code to a message template.
type Table map[string]string

// Translator renders messages for error codes from per-language tables.
// It is safe for concurrent use; table and language swaps are guarded by a lock.
type Translator struct {
	tables         map[string]Table
	defaultLang    string
	initialLang    string
	lang           string
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		tables:         make(map[string]Table),
		defaultLang:    DefaultLanguage,
		missingLogMode: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	for lang, tree := range translations {
		lang = NormalizeLanguage(lang)
		table, ok := t.tables[lang]
		if !ok {
			table = make(Table)
			t.tables[lang] = table
		}
		flatten("", tree, table)
	}

	t.lang = t.defaultLang
	if t.initialLang != "" {
		if lang, ok := t.resolveLanguage(t.initialLang); ok {
			t.lang = lang
		} else {
			t.logger.WarnContext(ctx, "Initial language not supported, using default",
				"lang", t.initialLang, "default", t.defaultLang)
		}
	}

	t.logger.InfoContext(ctx, "Translations loaded", "languages", t.supportedLanguages(), "active", t.lang)
	return t, nil
}

// validateTranslations checks if the translations map has a valid structure.
func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("No translations provided")
		return nil
	}

	for lang, translations := range trans {
		if strings.TrimSpace(lang) == "" {
			return ErrEmptyLanguageCode
		}
		if translations == nil {
			return fmt.Errorf("%w: nil translations for language %s", ErrInvalidTranslationMap, lang)
		}
	}
	return nil
}

// flatten walks a nested translation tree and stores every leaf under its
// dot-separated path, e.g. {"validation": {"email": "..."}} -> "validation.email".
func flatten(prefix string, tree map[string]any, into Table) {
	for key, val := range tree {
		code := key
		if prefix != "" {
			code = prefix + "." + key
		}

		switch v := val.(type) {
		case map[string]any:
			flatten(code, v, into)
		case map[any]any:
			converted := make(map[string]any, len(v))
			for k, inner := range v {
				if ks, ok := k.(string); ok {
					converted[ks] = inner
				}
			}
			flatten(code, converted, into)
		case string:
			into[code] = v
		case nil:
			continue
		default:
			into[code] = cast.ToString(v)
		}
	}
}

// supportedLanguages returns a list of language codes that have translations available.
func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.tables))
	for lang := range t.tables {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns a list of language codes that have translations available.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// Language returns the active language.
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// resolveLanguage finds the table for lang, trying the exact tag first and
// then its base language ("pt-BR" -> "pt").
func (t *Translator) resolveLanguage(lang string) (string, bool) {
	lang = NormalizeLanguage(lang)
	if _, ok := t.tables[lang]; ok {
		return lang, true
	}
	if base := baseLanguage(lang); base != "" {
		if _, ok := t.tables[base]; ok {
			return base, true
		}
	}
	return "", false
}

// SetLanguage switches the active language. The previous language stays
// active when lang has no table.
func (t *Translator) SetLanguage(lang string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	resolved, ok := t.resolveLanguage(lang)
	if !ok {
		return fmt.Errorf("%w: %s", ErrLanguageNotSupported, lang)
	}
	t.lang = resolved
	return nil
}

// Match returns the supported language that best fits the given preference
// list, or the default language when nothing matches.
func (t *Translator) Match(preferred ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return matchLanguage(t.supportedLanguages(), preferred, t.defaultLang)
}

// HasTranslation checks if a translation exists for the given language and code.
func (t *Translator) HasTranslation(lang, code string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.lookup(lang, code)
	return ok
}

func (t *Translator) lookup(lang, code string) (string, bool) {
	resolved, ok := t.resolveLanguage(lang)
	if !ok {
		return "", false
	}
	tmpl, ok := t.tables[resolved][code]
	return tmpl, ok
}

// Replace swaps the whole table of a language. An empty lang targets the
// default language.
func (t *Translator) Replace(lang string, table Table) {
	t.mu.Lock()
	defer t.mu.Unlock()

	lang = t.targetLanguage(lang)
	replacement := make(Table, len(table))
	maps.Copy(replacement, table)
	t.tables[lang] = replacement
}

// Merge overlays entries onto the table of a language, keeping codes that
// are not mentioned. An empty lang targets the default language.
func (t *Translator) Merge(lang string, table Table) {
	t.mu.Lock()
	defer t.mu.Unlock()

	lang = t.targetLanguage(lang)
	existing, ok := t.tables[lang]
	if !ok {
		existing = make(Table, len(table))
		t.tables[lang] = existing
	}
	maps.Copy(existing, table)
}

func (t *Translator) targetLanguage(lang string) string {
	if lang = NormalizeLanguage(lang); lang == "" {
		return t.defaultLang
	}
	return lang
}

// Regex to find named parameters in the form {Name}
var paramRegex = regexp.MustCompile(`\{([A-Za-z0-9_.]+)\}`)

// render performs substitution of named placeholders in the form "{Name}"
// using the provided map. Unknown placeholders are kept verbatim.
func render(tmpl string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[1 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}

// Translate renders the message for code in the active language.
//
// A non-empty defaultMessage always wins over the tables. Otherwise the code
// is looked up in the active language, then in the default language. When
// neither has it, the code itself is returned.
//
// Example:
//
//	// With translation "validation.min": "'{PropertyName}' must be at least {MinValue}."
//	msg := translator.Translate("validation.min", map[string]string{
//		"PropertyName": "age",
//		"MinValue":     "18",
//	}, "")
//	// Returns: "'age' must be at least 18."
func (t *Translator) Translate(code string, params map[string]string, defaultMessage string) string {
	if defaultMessage != "" {
		return render(defaultMessage, params)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.translate(t.lang, code, params)
}

// TranslateFor works like Translate but uses lang instead of the active language.
func (t *Translator) TranslateFor(lang, code string, params map[string]string, defaultMessage string) string {
	if defaultMessage != "" {
		return render(defaultMessage, params)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.translate(lang, code, params)
}

func (t *Translator) translate(lang, code string, params map[string]string) string {
	if tmpl, ok := t.lookup(lang, code); ok {
		return render(tmpl, params)
	}

	if lang != t.defaultLang {
		if tmpl, ok := t.lookup(t.defaultLang, code); ok {
			if t.missingLogMode {
				t.logger.Warn("Translation not found, using default language", "lang", lang, "code", code)
			}
			return render(tmpl, params)
		}
	}

	if t.missingLogMode {
		t.logger.Warn("Translation not found", "lang", lang, "code", code)
	}
	return code
}

// ExportJSON returns all translations for a language as a JSON string
// Useful for client-side rendering of the same messages.
func (t *Translator) ExportJSON(lang string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	resolved, ok := t.resolveLanguage(lang)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLanguageNotSupported, lang)
	}

	bytes, err := json.Marshal(t.tables[resolved])
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}

	return string(bytes), nil
}
