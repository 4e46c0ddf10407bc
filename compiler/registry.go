package compiler

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"

	intl "github.com/goliatone/go-intl"
)

// RegistryEntry names the dictionary variable of one compiled locale.
type RegistryEntry struct {
	Locale string
	Var    string
}

// RegistryInput describes the index file tying compiled locales together.
type RegistryInput struct {
	Package       string
	RuntimeImport string
	Entries       []RegistryEntry
}

// RenderRegistry renders the index file exposing AvailableLocales and
// RegisterAll. Locales are listed by number of segments, then by name.
func RenderRegistry(in RegistryInput) ([]byte, error) {
	if in.Package == "" {
		return nil, fmt.Errorf("compiler: package name is required")
	}
	if in.RuntimeImport == "" {
		in.RuntimeImport = DefaultRuntimeImport
	}

	vars := make(map[string]string, len(in.Entries))
	locales := make([]string, 0, len(in.Entries))
	for _, entry := range in.Entries {
		if _, dup := vars[entry.Locale]; dup {
			return nil, fmt.Errorf("compiler: duplicate locale %q", entry.Locale)
		}
		name := entry.Var
		if name == "" {
			name = VarName(entry.Locale)
		}
		vars[entry.Locale] = name
		locales = append(locales, entry.Locale)
	}
	intl.SortLocales(locales)

	var src bytes.Buffer
	src.WriteString(generatedHeader)
	fmt.Fprintf(&src, "package %s\n\n", in.Package)
	fmt.Fprintf(&src, "import %s %s\n\n", runtimeName, strconv.Quote(in.RuntimeImport))

	src.WriteString("// AvailableLocales lists the compiled locales, least specific first.\n")
	src.WriteString("var AvailableLocales = []string{")
	for i, locale := range locales {
		if i > 0 {
			src.WriteString(", ")
		}
		src.WriteString(strconv.Quote(locale))
	}
	src.WriteString("}\n\n")

	src.WriteString("var loaders = map[string]intl.Loader{\n")
	for _, locale := range locales {
		fmt.Fprintf(&src, "%s: intl.StaticLoader(%s),\n", strconv.Quote(locale), vars[locale])
	}
	src.WriteString("}\n\n")

	src.WriteString(`// RegisterAll registers every compiled locale on rt, or on the default
// runtime when rt is nil.
func RegisterAll(rt *intl.Runtime) {
	if rt == nil {
		rt = intl.Default()
	}
	for _, locale := range AvailableLocales {
		rt.Register(locale, loaders[locale])
	}
}
`)

	formatted, err := format.Source(src.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compiler: format registry: %w", err)
	}
	return formatted, nil
}
