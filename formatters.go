package intl

import (
	"strings"
)

var defaultNumberFormats = map[string]FormatOptions{
	"scientific":   {"notation": "scientific"},
	"engineering":  {"notation": "engineering"},
	"compactLong":  {"notation": "compact", "compactDisplay": "long"},
	"compactShort": {"notation": "compact", "compactDisplay": "short"},
	"percent":      {"style": "percent"},
	"integer":      {"maximumFractionDigits": 0},
}

var defaultDateFormats = map[string]FormatOptions{
	"short":  {"month": "numeric", "day": "numeric", "year": "2-digit"},
	"medium": {"month": "short", "day": "numeric", "year": "numeric"},
	"long":   {"month": "long", "day": "numeric", "year": "numeric"},
	"full":   {"weekday": "long", "month": "long", "day": "numeric", "year": "numeric"},
}

var defaultTimeFormats = map[string]FormatOptions{
	"short":  {"hour": "numeric", "minute": "numeric"},
	"medium": {"hour": "numeric", "minute": "numeric", "second": "numeric"},
	"long":   {"hour": "numeric", "minute": "numeric", "second": "numeric", "timeZoneName": "short"},
	"full":   {"hour": "numeric", "minute": "numeric", "second": "numeric", "timeZoneName": "short"},
}

// formatTables holds the custom presets. They are consulted before the
// built in ones.
type formatTables struct {
	number map[string]FormatOptions
	date   map[string]FormatOptions
	time   map[string]FormatOptions
}

func defaultFormatTables() formatTables {
	return formatTables{}
}

func cloneFormats(formats map[string]FormatOptions) map[string]FormatOptions {
	if len(formats) == 0 {
		return nil
	}
	out := make(map[string]FormatOptions, len(formats))
	for name, opts := range formats {
		clone := make(FormatOptions, len(opts))
		for key, value := range opts {
			clone[key] = value
		}
		out[name] = clone
	}
	return out
}

// SetCustomNumberFormats replaces the custom number presets.
func (r *Runtime) SetCustomNumberFormats(formats map[string]FormatOptions) {
	r.mu.Lock()
	r.formats.number = cloneFormats(formats)
	r.mu.Unlock()
}

// SetCustomDateFormats replaces the custom date presets.
func (r *Runtime) SetCustomDateFormats(formats map[string]FormatOptions) {
	r.mu.Lock()
	r.formats.date = cloneFormats(formats)
	r.mu.Unlock()
}

// SetCustomTimeFormats replaces the custom time presets.
func (r *Runtime) SetCustomTimeFormats(formats map[string]FormatOptions) {
	r.mu.Lock()
	r.formats.time = cloneFormats(formats)
	r.mu.Unlock()
}

// resolveFormat turns a style (preset name, inline options or nil) into
// options. Unknown names and nil fall back to the "short" preset, which
// may itself be absent.
func resolveFormat(defaults, custom map[string]FormatOptions, style any) FormatOptions {
	named := func(name string) FormatOptions {
		if opts, ok := custom[name]; ok {
			return opts
		}
		return defaults[name]
	}

	var opts FormatOptions
	switch s := style.(type) {
	case string:
		if name := strings.TrimSpace(s); name != "" {
			opts = named(name)
		}
	case FormatOptions:
		opts = s
	case map[string]any:
		opts = FormatOptions(s)
	case Tree:
		opts = FormatOptions(s)
	}
	if opts == nil {
		opts = named("short")
	}
	return opts
}

func (r *Runtime) resolveLocale(locale string) (string, error) {
	locale = normalizeLocale(locale)
	if locale == "" {
		locale = r.Locale()
	}
	if locale == "" {
		return "", ErrNoLocale
	}
	return locale, nil
}

// NumberFormatter returns a formatter for locale (the current locale when
// empty) and style.
func (r *Runtime) NumberFormatter(locale string, style any) (*NumberFormatter, error) {
	locale, err := r.resolveLocale(locale)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	opts := resolveFormat(defaultNumberFormats, r.formats.number, style)
	r.mu.RUnlock()
	return newNumberFormatter(locale, opts), nil
}

// DateFormatter returns a date formatter for locale (the current locale when
// empty) and style.
func (r *Runtime) DateFormatter(locale string, style any) (*DateTimeFormatter, error) {
	locale, err := r.resolveLocale(locale)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	opts := resolveFormat(defaultDateFormats, r.formats.date, style)
	r.mu.RUnlock()
	return newDateTimeFormatter(locale, opts)
}

// TimeFormatter returns a time formatter for locale (the current locale when
// empty) and style.
func (r *Runtime) TimeFormatter(locale string, style any) (*DateTimeFormatter, error) {
	locale, err := r.resolveLocale(locale)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	opts := resolveFormat(defaultTimeFormats, r.formats.time, style)
	r.mu.RUnlock()
	return newDateTimeFormatter(locale, opts)
}

// option readers accept values decoded from message skeletons, where
// everything but numbers arrives as a string.

func optString(opts FormatOptions, key string) string {
	value, ok := opts[key]
	if !ok || value == nil {
		return ""
	}
	return strings.TrimSpace(Display(value))
}

func optInt(opts FormatOptions, key string) (int, bool) {
	value, ok := opts[key]
	if !ok {
		return 0, false
	}
	f, ok := toFloat(value)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func optBool(opts FormatOptions, key string) (bool, bool) {
	switch v := opts[key].(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "always", "auto":
			return true, true
		case "false", "never":
			return false, true
		}
	}
	return false, false
}
