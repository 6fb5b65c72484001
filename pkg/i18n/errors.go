package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding implementation details.
// Context cancellation errors are separated to allow proper error handling in timeouts.
var (
	// Translator
	ErrNilAdapter            = errors.New("translation adapter is nil")
	ErrLanguageNotSupported  = errors.New("language not supported")
	ErrEmptyLanguageCode     = errors.New("empty language code found")
	ErrFailedToMarshalJSON   = errors.New("failed to marshal translations to JSON")
	ErrFailedToLoadBuiltins  = errors.New("failed to load built-in translations")
	ErrInvalidTranslationMap = errors.New("invalid translations map")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")

	// Directory operations
	ErrFailedToAccessDirectory          = errors.New("failed to access directory")
	ErrLoadingDirectoryCancelled        = errors.New("loading from directory cancelled")
	ErrFailedToReadDirectory            = errors.New("failed to read directory")
	ErrContextCancelledDuringProcessing = errors.New("context canceled while processing directory")

	// fs.FS operations
	ErrLoadingTranslationsCancelled = errors.New("loading translations canceled before starting")
	ErrFailedToReadFSDirectory      = errors.New("failed to read directory from filesystem")

	// Configuration
	ErrParsingConfig = errors.New("failed to parse environment variables into i18n config")
)
