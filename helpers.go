package intl

import (
	"fmt"
	"math"
)

// Interpolate renders an argument value: numeric zero is "0", nil, false
// and the empty string render empty, everything else uses Display.
func (r *Runtime) Interpolate(v any) string {
	return interpolate(v)
}

func interpolate(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if !x {
			return ""
		}
	case float64:
		if math.IsNaN(x) {
			return ""
		}
	}
	return Display(v)
}

// Select returns the case keyed by v, then the "other" case, then "".
func (r *Runtime) Select(v any, opts Options) string {
	if out, ok := opts[dispatchKey(v)]; ok {
		return out
	}
	if out, ok := opts[string(PluralOther)]; ok {
		return out
	}
	return ""
}

// Plural returns the case whose exact numeric key equals v, then the case of
// the plural category of v in the current locale, then "".
func (r *Runtime) Plural(v any, opts Options) string {
	return r.plural(v, 0, opts, r.PluralCategoryOf)
}

// OffsetPlural matches exact keys against v but categorizes v - offset.
func (r *Runtime) OffsetPlural(v any, offset float64, opts Options) string {
	return r.plural(v, offset, opts, r.PluralCategoryOf)
}

// Ordinal is Plural with ordinal rules (1st, 2nd, 3rd ...).
func (r *Runtime) Ordinal(v any, opts Options) string {
	return r.plural(v, 0, opts, r.OrdinalCategoryOf)
}

// OffsetOrdinal matches exact keys against v and picks the ordinal category
// of v - offset.
func (r *Runtime) OffsetOrdinal(v any, offset float64, opts Options) string {
	return r.plural(v, offset, opts, r.OrdinalCategoryOf)
}

func (r *Runtime) plural(v any, offset float64, opts Options, categorize func(string, float64) PluralCategory) string {
	if out, ok := opts[dispatchKey(v)]; ok {
		return out
	}
	n, ok := toFloat(v)
	if !ok {
		n = math.NaN()
	}
	abbr := PluralAbbreviation[categorize(r.Locale(), n-offset)]
	if out, ok := opts[abbr]; ok {
		return out
	}
	return ""
}

// Number formats v with a named style or inline FormatOptions in the
// current locale. It panics with ErrNoLocale when no locale is set.
func (r *Runtime) Number(v any, style any) string {
	out, err := r.FormatNumber(r.mustLocale(), v, style)
	if err != nil {
		r.log().Debug("number format failed", "error", err)
	}
	return out
}

// Date formats v as a date in the current locale. It panics with
// ErrNoLocale when no locale is set.
func (r *Runtime) Date(v any, style any) string {
	out, err := r.FormatDate(r.mustLocale(), v, style)
	if err != nil {
		r.log().Debug("date format failed", "error", err)
	}
	return out
}

// Time formats v as a time of day in the current locale. It panics with
// ErrNoLocale when no locale is set.
func (r *Runtime) Time(v any, style any) string {
	out, err := r.FormatTime(r.mustLocale(), v, style)
	if err != nil {
		r.log().Debug("time format failed", "error", err)
	}
	return out
}

func (r *Runtime) mustLocale() string {
	locale := r.Locale()
	if locale == "" {
		panic(fmt.Errorf("%w: set a locale before formatting", ErrNoLocale))
	}
	return locale
}

// Package level helpers bound to the default runtime. Generated message code
// calls these.

func Interpolate(v any) string { return interpolate(v) }

func Number(v any, style any) string { return Default().Number(v, style) }

func Date(v any, style any) string { return Default().Date(v, style) }

func Time(v any, style any) string { return Default().Time(v, style) }

func Select(v any, opts Options) string { return Default().Select(v, opts) }

func Plural(v any, opts Options) string { return Default().Plural(v, opts) }

func OffsetPlural(v any, offset float64, opts Options) string {
	return Default().OffsetPlural(v, offset, opts)
}

func Ordinal(v any, opts Options) string { return Default().Ordinal(v, opts) }

func OffsetOrdinal(v any, offset float64, opts Options) string {
	return Default().OffsetOrdinal(v, offset, opts)
}
