package compiler

import (
	"regexp"
	"strconv"
	"strings"

	intl "github.com/goliatone/go-intl"
)

var exactKeyPattern = regexp.MustCompile(`^=(\d+)`)

// Key is a normalized select or plural case key.
type Key struct {
	numeric bool
	number  float64
	symbol  string
}

// NumericKey returns the key of an exact =N case.
func NumericKey(n float64) Key { return Key{numeric: true, number: n} }

// SymbolKey returns a symbolic key.
func SymbolKey(s string) Key { return Key{symbol: s} }

func (k Key) IsNumeric() bool { return k.numeric }

// String renders the runtime dispatch key: "3" for =3, the symbol otherwise.
func (k Key) String() string {
	if k.numeric {
		return strconv.FormatFloat(k.number, 'f', -1, 64)
	}
	return k.symbol
}

func exactKey(raw string) (Key, bool) {
	match := exactKeyPattern.FindStringSubmatch(raw)
	if match == nil {
		return Key{}, false
	}
	n, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return Key{}, false
	}
	return NumericKey(n), true
}

// NormalizeSelectKey maps "=N" to a numeric key and keeps every other key verbatim.
func NormalizeSelectKey(raw string) Key {
	raw = strings.TrimSpace(raw)
	if key, ok := exactKey(raw); ok {
		return key
	}
	return SymbolKey(raw)
}

// NormalizePluralKey maps "=N" to a numeric key and CLDR categories to their
// abbreviations. Unknown keys pass through unchanged and report false.
func NormalizePluralKey(raw string) (Key, bool) {
	raw = strings.TrimSpace(raw)
	if key, ok := exactKey(raw); ok {
		return key, true
	}
	if abbr, ok := intl.Abbreviate(raw); ok {
		return SymbolKey(abbr), true
	}
	return SymbolKey(raw), false
}
