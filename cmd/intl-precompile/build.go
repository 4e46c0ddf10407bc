package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	intl "github.com/goliatone/go-intl"
	"github.com/goliatone/go-intl/compiler"
)

const indexFile = "index.go"

var dictionaryExts = map[string]bool{".json": true, ".yaml": true, ".yml": true, ".toml": true}

func newBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Compile every locale dictionary in src into out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			res, err := Build(ctx, configFrom(ctx), loggerFrom(ctx))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "compiled %d messages in %d locales into %s\n",
				res.Messages, len(res.Locales), res.Out)
			return err
		},
	}
}

// BuildResult summarizes a build run.
type BuildResult struct {
	Out      string
	Locales  []string
	Files    []string
	Messages int
}

// Build compiles each dictionary found in cfg.Src and writes the generated
// files to cfg.Out.
func Build(ctx context.Context, cfg *Config, logger *slog.Logger) (*BuildResult, error) {
	sources, err := discoverDictionaries(cfg.Src)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no dictionaries found in %s", cfg.Src)
	}

	if err := os.MkdirAll(cfg.Out, 0o750); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var opts []compiler.Option
	if cfg.Strict {
		opts = append(opts, compiler.WithStrict())
	}

	res := &BuildResult{Out: cfg.Out}
	entries := make([]compiler.RegistryEntry, 0, len(sources))

	for _, locale := range sortedLocales(sources) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := sources[locale]

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		tree, err := intl.DecodeTree(path, data)
		if err != nil {
			return nil, err
		}

		file, err := compiler.CompileFile(compiler.FileInput{
			Package:       cfg.Package,
			Locale:        locale,
			RuntimeImport: cfg.RuntimeImport,
			Messages:      tree,
			Options:       opts,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		target := filepath.Join(cfg.Out, localeFileName(locale))
		if err := os.WriteFile(target, file.Source, 0o600); err != nil {
			return nil, fmt.Errorf("write %s: %w", target, err)
		}
		logger.Debug("compiled locale",
			"locale", locale,
			"source", path,
			"target", target,
			"messages", file.Messages,
			"helpers", len(file.Helpers),
		)

		entries = append(entries, compiler.RegistryEntry{Locale: locale, Var: file.Var})
		res.Locales = append(res.Locales, locale)
		res.Files = append(res.Files, target)
		res.Messages += file.Messages
	}

	index, err := compiler.RenderRegistry(compiler.RegistryInput{
		Package:       cfg.Package,
		RuntimeImport: cfg.RuntimeImport,
		Entries:       entries,
	})
	if err != nil {
		return nil, err
	}
	target := filepath.Join(cfg.Out, indexFile)
	if err := os.WriteFile(target, index, 0o600); err != nil {
		return nil, fmt.Errorf("write %s: %w", target, err)
	}
	res.Files = append(res.Files, target)
	logger.Info("build complete", "locales", len(res.Locales), "messages", res.Messages, "out", cfg.Out)

	return res, nil
}

// discoverDictionaries maps each locale in dir to its dictionary file. The
// locale is the file name without its extension.
func discoverDictionaries(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	sources := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !dictionaryExts[ext] {
			continue
		}
		locale := strings.ReplaceAll(strings.TrimSuffix(name, filepath.Ext(name)), "_", "-")
		if locale == "" {
			continue
		}
		if prev, dup := sources[locale]; dup {
			return nil, fmt.Errorf("locale %s defined by both %s and %s", locale, filepath.Base(prev), name)
		}
		sources[locale] = filepath.Join(dir, name)
	}
	return sources, nil
}

func sortedLocales(sources map[string]string) []string {
	locales := make([]string, 0, len(sources))
	for locale := range sources {
		locales = append(locales, locale)
	}
	intl.SortLocales(locales)
	return locales
}

// localeFileName keeps letters, digits and dashes so the name never picks
// up a _GOOS or _test suffix.
func localeFileName(locale string) string {
	var b strings.Builder
	for _, r := range locale {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	name := b.String()
	if name == "index" {
		name = "index-locale"
	}
	return name + ".go"
}
