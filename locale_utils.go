package intl

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// subLocales returns locale followed by every prefix obtained by stripping
// trailing "-" segments: "en-US-x" => ["en-US-x", "en-US", "en"].
func subLocales(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}

	parts := strings.Split(locale, "-")
	chain := make([]string, 0, len(parts))
	for i := len(parts); i > 0; i-- {
		chain = append(chain, strings.Join(parts[:i], "-"))
	}
	return chain
}

// PossibleLocales returns the fallback chain for locale, most specific first.
func PossibleLocales(locale string) []string {
	return subLocales(locale)
}

func appendUnique(chain []string, seen map[string]struct{}, locales ...string) []string {
	for _, locale := range locales {
		locale = normalizeLocale(locale)
		if locale == "" {
			continue
		}
		if _, exists := seen[locale]; exists {
			continue
		}
		seen[locale] = struct{}{}
		chain = append(chain, locale)
	}
	return chain
}

// cldrParentChain walks CLDR parents (es-AR => es-419 => es) as reported by
// x/text. Unparseable locales yield no parents.
func cldrParentChain(locale string) []string {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil
	}

	var chain []string
	seen := map[string]struct{}{locale: {}}
	for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
		value := parent.String()
		if value == "" || value == "und" {
			break
		}
		if _, exists := seen[value]; exists {
			break
		}
		seen[value] = struct{}{}
		chain = append(chain, value)
	}
	return chain
}

func segmentCount(locale string) int {
	return strings.Count(locale, "-") + 1
}

// SortLocales orders locales by number of segments, then by name.
func SortLocales(locales []string) {
	sort.SliceStable(locales, func(i, j int) bool {
		si, sj := segmentCount(locales[i]), segmentCount(locales[j])
		if si != sj {
			return si < sj
		}
		return locales[i] < locales[j]
	})
}
