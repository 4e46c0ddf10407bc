package intl

import (
	"sort"
	"strings"
)

// AddMessages shallow merges partials into the tree of locale. Later keys
// win. The locale entry is created when missing.
func (r *Runtime) AddMessages(locale string, partials ...Tree) {
	locale = normalizeLocale(locale)
	if locale == "" {
		return
	}

	r.mu.Lock()
	r.mergeLocked(locale, partials...)
	r.mu.Unlock()

	r.notify()
}

// mergeLocked replaces the locale tree with a merged copy so trees handed out
// earlier are never mutated.
func (r *Runtime) mergeLocked(locale string, partials ...Tree) {
	current := r.dictionary[locale]
	merged := make(Tree, len(current))
	for key, value := range current {
		merged[key] = value
	}
	for _, partial := range partials {
		for key, value := range partial {
			merged[key] = value
		}
	}
	r.dictionary[locale] = merged
}

// Message looks id up in the tree of locale only. A direct key match wins,
// otherwise id is walked as a dot separated path and the first value that is
// not a tree is returned.
func (r *Runtime) Message(locale, id string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return messageFromTree(r.dictionary[normalizeLocale(locale)], id)
}

func messageFromTree(tree Tree, id string) (any, bool) {
	if tree == nil {
		return nil, false
	}
	if value, ok := tree[id]; ok {
		return value, true
	}

	var node map[string]any = tree
	for _, part := range strings.Split(id, ".") {
		value, ok := node[part]
		if !ok {
			return nil, false
		}
		next, isNode := isTree(value)
		if !isNode {
			return value, true
		}
		node = next
	}
	return nil, false
}

// HasLocale reports whether locale has a dictionary entry, loaded or pending.
func (r *Runtime) HasLocale(locale string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.dictionary[normalizeLocale(locale)]
	return ok
}

// Locales returns the known locales in sorted order.
func (r *Runtime) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.localesLocked()
}

func (r *Runtime) localesLocked() []string {
	if len(r.dictionary) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.dictionary))
	for locale := range r.dictionary {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// ClosestAvailableLocale returns the first locale of the chain of locale that
// has a dictionary entry, or "".
func (r *Runtime) ClosestAvailableLocale(locale string) string {
	for _, candidate := range r.chain(locale) {
		if r.HasLocale(candidate) {
			return candidate
		}
	}
	return ""
}

// Dictionary returns a snapshot of every locale tree.
func (r *Runtime) Dictionary() Dictionary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(Dictionary, len(r.dictionary))
	for locale, tree := range r.dictionary {
		out[locale] = tree
	}
	return out
}

// Lookup resolves id along the fallback chain of locale and returns the
// first match.
func (r *Runtime) Lookup(id, locale string) (any, bool) {
	if locale == "" {
		return nil, false
	}
	for _, candidate := range r.chain(locale) {
		if value, ok := r.Message(candidate, id); ok && value != nil {
			return value, true
		}
	}
	return nil, false
}
