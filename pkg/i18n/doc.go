// Package i18n renders validation messages from error codes using
// per-language template tables.
//
// Templates use named placeholders in the form `{Name}`; every placeholder
// with a matching parameter is substituted and unknown placeholders are left
// as they are. A code missing from the active language falls back to the
// default language and finally to the code itself, so a message is always
// produced.
//
// # Architecture
//
// The Translator holds one flat code -> template table per language. Tables
// are loaded through a TranslationAdapter: MapAdapter for in-memory data,
// FileAdapter and DirectoryAdapter for the file system, FSAdapter for an
// fs.FS (the built-in tables are embedded this way) and ChainAdapter to
// layer several sources. Nested documents are flattened into dotted codes, so
//
//	en:
//	  validation:
//	    email: "'{PropertyName}' is not a valid email address."
//
// provides the code "validation.email". YAML and JSON parsers are included.
//
// Language tags are normalised with golang.org/x/text/language; "pt_br" and
// "pt-BR" address the same table, and "pt-BR" falls back to "pt".
//
// # Process-wide translator
//
// Default returns a translator built from the shipped English and Brazilian
// Portuguese tables. SetDefault, SetLanguage, Replace and Merge change it for
// every subsequent message; messages already rendered keep their text.
//
//	i18n.Merge("en", i18n.Table{
//		"validation.email": "Please enter a valid e-mail for {PropertyName}.",
//	})
//
//	msg := i18n.Translate("validation.email", map[string]string{"PropertyName": "email"}, "")
//
// # Configuration
//
// Setup reads VALIDATION_LANGUAGE, VALIDATION_FALLBACK_LANGUAGE,
// VALIDATION_TRANSLATIONS_PATH, VALIDATION_TRANSLATIONS_FORMAT and
// VALIDATION_LOG_MISSING (optionally from a .env file) and installs the
// resulting translator as the default.
//
// # Error Handling
//
// Loading errors wrap package sentinels, e.g.:
//
//	if errors.Is(err, i18n.ErrLanguageNotSupported) {
//	    // fallback logic
//	}
package i18n
