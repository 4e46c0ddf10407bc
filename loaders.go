package intl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader produces a partial message tree for a locale. Loaders registered
// for the same locale are merged in registration order.
type Loader interface {
	Load(ctx context.Context, locale string) (Tree, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface.
// Registering the same function value twice for a locale queues it once.
type LoaderFunc func(ctx context.Context, locale string) (Tree, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load(ctx context.Context, locale string) (Tree, error) {
	return fn(ctx, locale)
}

// staticLoader serves a fixed tree. It is a pointer type so registering the
// same StaticLoader twice is deduplicated.
type staticLoader struct {
	tree Tree
}

// StaticLoader returns a Loader that serves tree unchanged. Generated
// dictionaries register themselves through it.
func StaticLoader(tree Tree) Loader {
	return &staticLoader{tree: tree}
}

func (l *staticLoader) Load(context.Context, string) (Tree, error) {
	return l.tree, nil
}

// FileLoader reads message trees from JSON, YAML or TOML files on disk.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load(ctx context.Context, locale string) (Tree, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("intl: no loader paths configured")
	}

	parts := make([]Tree, 0, len(l.paths))
	for _, path := range l.paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("intl: read %s: %w", path, err)
		}
		tree, err := DecodeTree(path, data)
		if err != nil {
			return nil, err
		}
		parts = append(parts, tree)
	}
	return mergeTrees(parts...), nil
}

// FSLoader reads message trees from an fs.FS, for example an embed.FS.
// Each pattern is expanded with fs.Glob and may contain a {locale}
// placeholder.
type FSLoader struct {
	fsys     fs.FS
	patterns []string
}

func NewFSLoader(fsys fs.FS, patterns ...string) *FSLoader {
	return &FSLoader{fsys: fsys, patterns: append([]string(nil), patterns...)}
}

func (l *FSLoader) Load(ctx context.Context, locale string) (Tree, error) {
	if l == nil || l.fsys == nil {
		return nil, errors.New("intl: no filesystem configured")
	}

	var parts []Tree
	for _, pattern := range l.patterns {
		pattern = strings.ReplaceAll(pattern, "{locale}", locale)
		matches, err := fs.Glob(l.fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("intl: glob %s: %w", pattern, err)
		}
		for _, path := range matches {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			data, err := fs.ReadFile(l.fsys, path)
			if err != nil {
				return nil, fmt.Errorf("intl: read %s: %w", path, err)
			}
			tree, err := DecodeTree(path, data)
			if err != nil {
				return nil, err
			}
			parts = append(parts, tree)
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("intl: no files matched for %s", locale)
	}
	return mergeTrees(parts...), nil
}

// DecodeTree decodes a message tree, choosing the format from the file
// extension (.json, .yaml, .yml, .toml).
func DecodeTree(path string, data []byte) (Tree, error) {
	var raw map[string]any

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("intl: decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("intl: decode %s: yaml parse error: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("intl: decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("intl: decode %s: unsupported extension %s", path, ext)
	}

	return normalizeTree(raw), nil
}

// normalizeTree converts decoder specific nested maps into Tree values.
func normalizeTree(raw map[string]any) Tree {
	out := make(Tree, len(raw))
	for key, value := range raw {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalizeTree(v)
	case Tree:
		return normalizeTree(v)
	case map[any]any:
		tree := make(Tree, len(v))
		for key, item := range v {
			tree[fmt.Sprint(key)] = normalizeValue(item)
		}
		return tree
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}

// mergeTrees shallow merges trees, later keys win.
func mergeTrees(trees ...Tree) Tree {
	out := make(Tree)
	for _, tree := range trees {
		for key, value := range tree {
			out[key] = value
		}
	}
	return out
}
