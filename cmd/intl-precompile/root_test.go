package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "intl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("src: from-file\nout: out-file\npackage: filepkg\n"), 0o600))
	t.Setenv("INTL_PACKAGE", "envpkg")

	cmd := NewRootCmd()
	flags := cmd.PersistentFlags()
	require.NoError(t, flags.Parse([]string{"--out", "out-flag", "--strict"}))

	cfg, used, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, cfgPath, used)
	assert.Equal(t, "from-file", cfg.Src)
	assert.Equal(t, "envpkg", cfg.Package)
	assert.Equal(t, "out-flag", cfg.Out)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "github.com/goliatone/go-intl", cfg.RuntimeImport)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, used, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, "locales", cfg.Src)
	assert.Equal(t, "messages", cfg.Out)
	assert.Equal(t, defaultPackage, cfg.Package)
	assert.False(t, cfg.Strict)
}

func TestConfigValidate(t *testing.T) {
	err := (&Config{Src: "a", Out: "b"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package")
}

func TestRootBuildCommand(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "en.json"), []byte(enDictionary), 0o600))

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"build", "--src", src, "--out", out, "--package", "i18nmsg"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "compiled 2 messages in 1 locales")

	data, err := os.ReadFile(filepath.Join(out, "en.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package i18nmsg")
}

func TestRootLocalesCommand(t *testing.T) {
	src := t.TempDir()
	for _, name := range []string{"en-US.json", "en.json", "es.toml"} {
		require.NoError(t, os.WriteFile(filepath.Join(src, name), []byte(""), 0o600))
	}

	var stdout bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"locales", "--src", src})

	require.NoError(t, cmd.Execute())
	lines := bytes.Split(bytes.TrimSpace(stdout.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.True(t, bytes.HasPrefix(lines[0], []byte("en\t")))
	assert.True(t, bytes.HasPrefix(lines[1], []byte("es\t")))
	assert.True(t, bytes.HasPrefix(lines[2], []byte("en-US\t")))
}

func TestVersionCommand(t *testing.T) {
	var stdout bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "intl-precompile "+Version+"\n", stdout.String())
}
