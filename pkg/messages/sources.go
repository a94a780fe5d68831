package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// BundleSource loads locale-keyed message bundles from some backing
// store.
type BundleSource interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapSource serves bundles from an in-memory map. Useful for tests and
// for modules that declare their messages in code.
type MapSource struct {
	Data map[string]map[string]any
}

// Load implements the BundleSource interface.
func (s *MapSource) Load(_ context.Context) (map[string]map[string]any, error) {
	if s.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return s.Data, nil
}

// FileSource loads a single bundle file with an explicit parser.
type FileSource struct {
	parser Parser
	path   string
}

// NewFileSource creates a FileSource. Returns nil if parser is nil or
// path is empty.
func NewFileSource(parser Parser, path string) *FileSource {
	if parser == nil || path == "" {
		return nil
	}
	return &FileSource{parser: parser, path: path}
}

// Load implements the BundleSource interface.
func (s *FileSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading bundle %s: %w", s.path, err)
	}
	return s.parser.Parse(ctx, content)
}

// FSSource walks a filesystem and loads every bundle file a parser
// supports, merging locales across files. Works with embed.FS so
// modules can ship their bundles inside the binary.
type FSSource struct {
	fsys    fs.FS
	root    string
	parsers []Parser
}

// NewFSSource creates an FSSource over fsys starting at root ("." for
// the whole tree). With no explicit parsers, YAML and JSON are used.
func NewFSSource(fsys fs.FS, root string, parsers ...Parser) *FSSource {
	if fsys == nil {
		return nil
	}
	if root == "" {
		root = "."
	}
	if len(parsers) == 0 {
		parsers = []Parser{NewYAMLParser(), NewJSONParser()}
	}
	return &FSSource{fsys: fsys, root: root, parsers: parsers}
}

// Load implements the BundleSource interface.
func (s *FSSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	merged := make(map[string]map[string]any)

	err := fs.WalkDir(s.fsys, s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(ErrLoadCancelled, ctxErr)
		}
		if d.IsDir() {
			return nil
		}

		parser := s.parserFor(filepath.Ext(path))
		if parser == nil {
			return nil
		}

		content, err := fs.ReadFile(s.fsys, path)
		if err != nil {
			return fmt.Errorf("reading bundle %s: %w", path, err)
		}

		bundles, err := parser.Parse(ctx, content)
		if err != nil {
			return fmt.Errorf("parsing bundle %s: %w", path, err)
		}
		mergeBundles(merged, bundles)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *FSSource) parserFor(ext string) Parser {
	for _, p := range s.parsers {
		if p.SupportsExtension(ext) {
			return p
		}
	}
	return nil
}

// mergeBundles merges src into dst. Later files win on key conflicts
// within a locale; nested maps are merged recursively.
func mergeBundles(dst map[string]map[string]any, src map[string]map[string]any) {
	for locale, bundle := range src {
		if existing, ok := dst[locale]; ok {
			mergeMaps(existing, bundle)
		} else {
			dst[locale] = bundle
		}
	}
}

func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeMaps(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
}
