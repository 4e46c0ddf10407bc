package intl

import "sync"

// FallbackResolver contributes extra fallback locales for a locale. They are
// appended after the prefix chain returned by PossibleLocales.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// FallbackResolverFunc adapts a function to FallbackResolver.
type FallbackResolverFunc func(locale string) []string

func (f FallbackResolverFunc) Resolve(locale string) []string {
	return f(locale)
}

// StaticFallbackResolver serves fixed fallbacks per locale.
type StaticFallbackResolver struct {
	mu        sync.RWMutex
	fallbacks map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{fallbacks: make(map[string][]string)}
}

// Set replaces the fallbacks of locale.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fallbacks == nil {
		s.fallbacks = make(map[string][]string)
	}
	s.fallbacks[normalizeLocale(locale)] = append([]string(nil), fallbacks...)
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.fallbacks[normalizeLocale(locale)]...)
}

// CLDRFallbackResolver follows CLDR parent locales, so es-AR also falls
// back to es-419 before es.
type CLDRFallbackResolver struct{}

func (CLDRFallbackResolver) Resolve(locale string) []string {
	return cldrParentChain(normalizeLocale(locale))
}

// chain builds the full lookup chain for locale: its prefixes, resolver
// fallbacks and finally the configured fallback locale with its prefixes.
func (r *Runtime) chain(locale string) []string {
	seen := make(map[string]struct{}, 4)
	out := appendUnique(nil, seen, subLocales(locale)...)
	if len(out) == 0 {
		return nil
	}

	r.mu.RLock()
	resolver := r.resolver
	fallback := r.fallbackLocale
	r.mu.RUnlock()

	if resolver != nil {
		for _, extra := range resolver.Resolve(locale) {
			out = appendUnique(out, seen, subLocales(extra)...)
		}
	}
	if fallback != "" {
		out = appendUnique(out, seen, subLocales(fallback)...)
	}
	return out
}
