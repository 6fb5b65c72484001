package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
)

// TranslationAdapter interface defines how translations are loaded.
// The outer map is keyed by language, the inner map holds (possibly nested) codes.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the translation source
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads translations from a single file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter instance
// Returns nil if parser is nil or path is empty
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil || a.parser == nil {
		return nil, fmt.Errorf("parser is nil")
	}
	if a.path == "" {
		return nil, fmt.Errorf("file path is empty")
	}

	content, err := readWithContext(ctx, func() ([]byte, error) { return os.ReadFile(a.path) })
	if err != nil {
		return nil, err
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("translation file '%s' is empty", a.path)
	}

	translations, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	if translations == nil {
		return nil, fmt.Errorf("parser returned nil translations for file '%s'", a.path)
	}

	return translations, nil
}

// DirectoryAdapter loads every file with a supported extension from a directory.
type DirectoryAdapter struct {
	parser Parser
	path   string
}

// NewDirectoryAdapter creates a new DirectoryAdapter instance
// Returns nil if parser is nil or path is empty
func NewDirectoryAdapter(parser Parser, path string) *DirectoryAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &DirectoryAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil || a.parser == nil {
		return nil, fmt.Errorf("parser is nil")
	}
	if a.path == "" {
		return nil, fmt.Errorf("directory path is empty")
	}

	fileInfo, err := os.Stat(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path '%s' is not a directory", a.path)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
	}

	entries, err := os.ReadDir(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	allTranslations := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() || !supportsFile(a.parser, entry.Name()) {
			continue
		}

		if ctx.Err() != nil {
			return nil, errors.Join(ErrContextCancelledDuringProcessing, ctx.Err())
		}

		filePath := filepath.Join(a.path, entry.Name())
		content, err := readWithContext(ctx, func() ([]byte, error) { return os.ReadFile(filePath) })
		if err != nil {
			return nil, err
		}

		// A broken file should not take down the whole set of languages.
		if err := mergeFile(ctx, a.parser, filePath, content, allTranslations); err != nil {
			slog.WarnContext(ctx, "Skipping translation file", "path", filePath, "error", err)
		}
	}

	if len(allTranslations) == 0 {
		return nil, fmt.Errorf("no valid translation files found in directory '%s'", a.path)
	}

	return allTranslations, nil
}

// FSAdapter loads translations from a directory inside an fs.FS,
// typically an embed.FS compiled into the binary.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates a new FSAdapter instance
// Returns nil if parser or fsys is nil, or dir is empty
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the TranslationAdapter interface
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFSDirectory, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no files found in directory '%s'", a.dir)
	}

	allTranslations := make(map[string]map[string]any)
	validFileProcessed := false

	for _, entry := range entries {
		if entry.IsDir() || !supportsFile(a.parser, entry.Name()) {
			continue
		}

		// fs.FS paths are always slash-separated
		filePath := path.Join(a.dir, entry.Name())
		content, err := readWithContext(ctx, func() ([]byte, error) { return fs.ReadFile(a.fsys, filePath) })
		if err != nil {
			return nil, err
		}

		if err := mergeFile(ctx, a.parser, filePath, content, allTranslations); err != nil {
			slog.WarnContext(ctx, "Skipping translation file", "path", filePath, "error", err)
			continue
		}
		validFileProcessed = true
	}

	if !validFileProcessed {
		return nil, fmt.Errorf("no valid translation files found in directory '%s'", a.dir)
	}

	return allTranslations, nil
}

// ChainAdapter loads several adapters in order; later adapters override
// codes of earlier ones. Nil adapters are skipped.
type ChainAdapter []TranslationAdapter

// Load implements the TranslationAdapter interface
func (c ChainAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any)
	for _, adapter := range c {
		if adapter == nil {
			continue
		}
		translations, err := adapter.Load(ctx)
		if err != nil {
			return nil, err
		}
		mergeTrees(result, translations)
	}
	return result, nil
}

// readWithContext runs a blocking read while honouring cancellation.
func readWithContext(ctx context.Context, read func() ([]byte, error)) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = read()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	return content, nil
}

func supportsFile(parser Parser, name string) bool {
	ext := filepath.Ext(name)
	return ext != "" && parser.SupportsFileExtension(ext)
}

// mergeFile parses one file and merges its languages into the result map.
func mergeFile(ctx context.Context, parser Parser, filePath string, content []byte, into map[string]map[string]any) error {
	if len(content) == 0 {
		return fmt.Errorf("translation file '%s' is empty", filePath)
	}

	fileTranslations, err := parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseFile, err)
	}
	if fileTranslations == nil {
		return fmt.Errorf("parser returned nil translations for file '%s'", filePath)
	}

	mergeTrees(into, fileTranslations)
	return nil
}

// mergeTrees deep-merges language trees so that two files may each
// contribute codes under the same nested section.
func mergeTrees(dst, src map[string]map[string]any) {
	for lang, tree := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any)
		}
		mergeNested(dst[lang], tree)
	}
}

func mergeNested(dst, src map[string]any) {
	for key, val := range src {
		srcMap, srcIsMap := val.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeNested(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			copied := make(map[string]any, len(srcMap))
			mergeNested(copied, srcMap)
			dst[key] = copied
			continue
		}
		dst[key] = val
	}
}
