package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"slices"
)

// Adapter loads raw catalog data: language -> section ("rules", "custom") -> entries.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalog data from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the Adapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single catalog file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a FileAdapter. A nil parser is chosen from the file extension.
// Returns nil if path is empty or no parser fits.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if path == "" {
		return nil
	}
	if parser == nil {
		parser = NewParserForFile(path)
	}
	if parser == nil {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the Adapter interface
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	data, err := a.parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrFailedToParseFile, a.path, err)
	}
	return data, nil
}

// FSAdapter loads every supported catalog file found at the top level of dir in fsys.
// Files are read in name order; later files override earlier ones per entry.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates an FSAdapter. With a nil parser each file is parsed according to
// its extension and files with unknown extensions are skipped.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// NewDirectoryAdapter creates an adapter for a directory on the local file system.
func NewDirectoryAdapter(parser Parser, dir string) *FSAdapter {
	if dir == "" {
		return nil
	}
	return NewFSAdapter(parser, os.DirFS(dir), ".")
}

// Load implements the Adapter interface
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	result := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		parser := a.parser
		if parser == nil {
			parser = NewParserForFile(entry.Name())
		} else if !parser.SupportsFileExtension(path.Ext(entry.Name())) {
			parser = nil
		}
		if parser == nil {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		data, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrFailedToParseFile, name, err)
		}
		mergeInto(result, data)
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoCatalogFiles, a.dir)
	}
	return result, nil
}

// ChainAdapter merges several adapters in order; later adapters override earlier entries.
type ChainAdapter []Adapter

// Load implements the Adapter interface
func (c ChainAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any)
	for _, a := range c {
		if a == nil {
			continue
		}
		data, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		mergeInto(result, data)
	}
	return result, nil
}

// mergeInto copies src into dst two levels deep so that sections of the same language
// coming from different sources are combined rather than replaced.
func mergeInto(dst, src map[string]map[string]any) {
	for _, lang := range slices.Sorted(maps.Keys(src)) {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any)
		}
		for section, val := range src[lang] {
			incoming, ok := val.(map[string]any)
			existing, ok2 := dst[lang][section].(map[string]any)
			if !ok || !ok2 {
				if ok {
					val = maps.Clone(incoming)
				}
				dst[lang][section] = val
				continue
			}
			maps.Copy(existing, incoming)
		}
	}
}
