package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/goliatone/go-intl/compiler"
)

const (
	envPrefix      = "INTL_"
	defaultConfig  = "intl.yaml"
	defaultPackage = "messages"
)

// Config drives a precompile run.
type Config struct {
	Src           string `koanf:"src"`
	Out           string `koanf:"out"`
	Package       string `koanf:"package"`
	RuntimeImport string `koanf:"runtime_import"`
	Strict        bool   `koanf:"strict"`
	Verbose       bool   `koanf:"verbose"`
}

// LoadConfig layers defaults, the config file, INTL_ environment variables
// and explicitly set flags, in increasing order of precedence. A .env file
// in the working directory is loaded first when present.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"src":            "locales",
		"out":            "messages",
		"package":        defaultPackage,
		"runtime_import": compiler.DefaultRuntimeImport,
		"strict":         false,
		"verbose":        false,
	}, "."), nil); err != nil {
		return nil, "", fmt.Errorf("load defaults: %w", err)
	}

	used := cfgFile
	if used == "" {
		if _, err := os.Stat(defaultConfig); err == nil {
			used = defaultConfig
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("read config file %s: %w", used, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, "", fmt.Errorf("load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, used, nil
}

// Validate reports missing required settings.
func (c *Config) Validate() error {
	switch {
	case c.Src == "":
		return errors.New("config: src is required")
	case c.Out == "":
		return errors.New("config: out is required")
	case c.Package == "":
		return errors.New("config: package is required")
	}
	return nil
}
