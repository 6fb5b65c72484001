package i18n

import (
	"context"
	"embed"
	"errors"
	"sync"
)

//go:embed translations/*.yaml
var builtinFS embed.FS

const builtinDir = "translations"

var (
	defaultMu         sync.RWMutex
	defaultTranslator *Translator
	defaultOnce       sync.Once
)

// BuiltinAdapter returns the adapter for the message tables shipped with the package.
func BuiltinAdapter() TranslationAdapter {
	return NewFSAdapter(NewYAMLParser(), builtinFS, builtinDir)
}

// NewBuiltin creates a Translator backed by the shipped tables.
func NewBuiltin(ctx context.Context, options ...Option) (*Translator, error) {
	t, err := NewTranslator(ctx, BuiltinAdapter(), options...)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadBuiltins, err)
	}
	return t, nil
}

// Default returns the process-wide translator. It is created from the
// shipped tables on first use.
func Default() *Translator {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		defer defaultMu.Unlock()
		if defaultTranslator != nil {
			return
		}
		t, err := NewBuiltin(context.Background())
		if err != nil {
			// The tables are compiled into the binary; failing here is a build defect.
			panic(err)
		}
		defaultTranslator = t
	})

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultTranslator
}

// SetDefault installs t as the process-wide translator. Passing nil restores
// the shipped tables. Messages already produced are not affected.
func SetDefault(t *Translator) {
	if t == nil {
		builtin, err := NewBuiltin(context.Background())
		if err != nil {
			panic(err)
		}
		t = builtin
	}

	defaultOnce.Do(func() {})
	defaultMu.Lock()
	defaultTranslator = t
	defaultMu.Unlock()
}

// Translate renders code with the process-wide translator.
func Translate(code string, params map[string]string, defaultMessage string) string {
	return Default().Translate(code, params, defaultMessage)
}

// SetLanguage switches the active language of the process-wide translator.
func SetLanguage(lang string) error {
	return Default().SetLanguage(lang)
}

// Replace swaps a language table of the process-wide translator.
func Replace(lang string, table Table) {
	Default().Replace(lang, table)
}

// Merge overlays entries onto a language table of the process-wide translator.
func Merge(lang string, table Table) {
	Default().Merge(lang, table)
}
