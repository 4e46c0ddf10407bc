package intl

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// pluralCache keeps one parsed plural matcher per locale.
type pluralCache struct {
	mu   sync.Mutex
	tags map[string]pluralMatcher
}

type pluralMatcher struct {
	tag   language.Tag
	valid bool
}

func (c *pluralCache) matcher(locale string) pluralMatcher {
	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.tags[locale]; ok {
		return m
	}
	if c.tags == nil {
		c.tags = make(map[string]pluralMatcher)
	}
	tag, err := language.Parse(locale)
	m := pluralMatcher{tag: tag, valid: err == nil && locale != ""}
	c.tags[locale] = m
	return m
}

var pluralForms = map[plural.Form]PluralCategory{
	plural.Other: PluralOther,
	plural.Zero:  PluralZero,
	plural.One:   PluralOne,
	plural.Two:   PluralTwo,
	plural.Few:   PluralFew,
	plural.Many:  PluralMany,
}

// PluralCategoryOf returns the cardinal plural category of n in locale.
func (r *Runtime) PluralCategoryOf(locale string, n float64) PluralCategory {
	return r.category(plural.Cardinal, locale, n)
}

// OrdinalCategoryOf returns the ordinal plural category of n in locale.
func (r *Runtime) OrdinalCategoryOf(locale string, n float64) PluralCategory {
	return r.category(plural.Ordinal, locale, n)
}

func (r *Runtime) category(rules *plural.Rules, locale string, n float64) PluralCategory {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return PluralOther
	}
	m := r.plurals.matcher(locale)
	if !m.valid {
		return PluralOther
	}
	i, v, w, f, t := pluralOperands(n)
	if category, ok := pluralForms[rules.MatchPlural(m.tag, i, v, w, f, t)]; ok {
		return category
	}
	return PluralOther
}

// pluralOperands derives the CLDR operands of n from its shortest decimal
// representation: integer digits i, visible fraction digit count v (w
// without trailing zeros) and the fraction digits f (t without trailing
// zeros).
func pluralOperands(n float64) (i, v, w, f, t int) {
	s := strconv.FormatFloat(math.Abs(n), 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	if len(intPart) > 18 {
		intPart = intPart[len(intPart)-18:]
	}
	i, _ = strconv.Atoi(intPart)

	if len(frac) > 18 {
		frac = frac[:18]
	}
	v = len(frac)
	if v > 0 {
		f, _ = strconv.Atoi(frac)
	}
	trimmed := strings.TrimRight(frac, "0")
	w = len(trimmed)
	if w > 0 {
		t, _ = strconv.Atoi(trimmed)
	}
	return i, v, w, f, t
}
