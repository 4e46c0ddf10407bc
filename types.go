package intl

// Tree is a nested message dictionary for a single locale. Leaves are either
// plain strings or MessageFunc values, interior nodes are Tree or
// map[string]any values.
type Tree map[string]any

// Dictionary maps locale identifiers to their message trees.
type Dictionary map[string]Tree

// MessageFunc is a compiled message. Arguments are positional and follow the
// sorted order of the message parameter names.
type MessageFunc func(args ...any) string

// Values carries named message arguments for FormatMessage.
type Values map[string]any

// Options are the dispatch cases of a select or plural expression, keyed by
// exact numeric keys ("3"), plural abbreviations ("o") or raw select keys.
type Options map[string]string

// FormatOptions describe a number, date or time format, using the option
// names of ECMA-402 (style, currency, month, hour12 ...).
type FormatOptions map[string]any

type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// PluralAbbreviation maps CLDR plural categories to the one letter keys used
// by compiled plural options.
var PluralAbbreviation = map[PluralCategory]string{
	PluralZero:  "z",
	PluralOne:   "o",
	PluralTwo:   "t",
	PluralFew:   "f",
	PluralMany:  "m",
	PluralOther: "h",
}

// Abbreviate returns the dispatch key for a plural category name.
func Abbreviate(category string) (string, bool) {
	abbr, ok := PluralAbbreviation[PluralCategory(category)]
	return abbr, ok
}

// State is the observable snapshot delivered to subscribers.
type State struct {
	Locale  string
	Locales []string
	Loading bool
}

func isTree(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case Tree:
		return t, true
	case map[string]any:
		return t, true
	}
	return nil, false
}
