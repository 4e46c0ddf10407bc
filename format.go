package intl

import (
	"errors"
	"fmt"
	"sort"
)

// MessageOptions configure FormatMessage.
type MessageOptions struct {
	// ID is used when FormatMessage is called with an empty id.
	ID string
	// Locale overrides the locale passed to FormatMessage.
	Locale string
	// Default is returned when no message is found. The id is returned when
	// Default is empty.
	Default string
	Values  Values
}

// FormatMessage looks id up along the fallback chain of the locale and
// evaluates it. Values are bound to the compiled message positionally in
// the sorted order of their names. Missing messages yield the default
// value or the id, never an error.
func (r *Runtime) FormatMessage(locale, id string, opts MessageOptions) (out string, err error) {
	if id == "" {
		id = opts.ID
	}
	if opts.Locale != "" {
		locale = opts.Locale
	}
	locale, err = r.resolveLocale(locale)
	if err != nil {
		return "", err
	}

	message, ok := r.Lookup(id, locale)
	if !ok {
		return fallbackMessage(id, opts), nil
	}

	switch m := message.(type) {
	case string:
		return m, nil
	case MessageFunc:
		return callMessage(m, opts.Values)
	case func(...any) string:
		return callMessage(m, opts.Values)
	}
	return fallbackMessage(id, opts), nil
}

func fallbackMessage(id string, opts MessageOptions) string {
	if opts.Default != "" {
		return opts.Default
	}
	return id
}

// callMessage evaluates fn, turning a helper ErrNoLocale panic into an error.
func callMessage(fn func(...any) string, values Values) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if recErr, ok := rec.(error); ok && errors.Is(recErr, ErrNoLocale) {
				out, err = "", recErr
				return
			}
			panic(rec)
		}
	}()
	return fn(SortedArgs(values)...), nil
}

// SortedArgs returns the values ordered by name, the positional order
// compiled messages expect.
func SortedArgs(values Values) []any {
	if len(values) == 0 {
		return nil
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]any, len(names))
	for i, name := range names {
		args[i] = values[name]
	}
	return args
}

// JSON returns the raw dictionary value for id, subtrees included, or the id
// itself when nothing matches. The current locale is used when locale is
// empty.
func (r *Runtime) JSON(id, locale string) any {
	if locale == "" {
		locale = r.Locale()
	}
	if value, ok := r.Lookup(id, locale); ok {
		return value
	}
	return id
}

// FormatNumber formats v in locale (the current locale when empty).
func (r *Runtime) FormatNumber(locale string, v any, style any) (string, error) {
	f, err := r.NumberFormatter(locale, style)
	if err != nil {
		return "", err
	}
	return f.Format(v), nil
}

// FormatDate formats v as a date in locale (the current locale when empty).
func (r *Runtime) FormatDate(locale string, v any, style any) (string, error) {
	f, err := r.DateFormatter(locale, style)
	if err != nil {
		return "", err
	}
	return formatDateTimeValue(f, v)
}

// FormatTime formats v as a time of day in locale (the current locale when
// empty).
func (r *Runtime) FormatTime(locale string, v any, style any) (string, error) {
	f, err := r.TimeFormatter(locale, style)
	if err != nil {
		return "", err
	}
	return formatDateTimeValue(f, v)
}

func formatDateTimeValue(f *DateTimeFormatter, v any) (string, error) {
	t, err := toTime(v)
	if err != nil {
		return "", fmt.Errorf("intl: format %s: %w", f.Locale(), err)
	}
	return f.Format(t), nil
}

func FormatMessage(locale, id string, opts MessageOptions) (string, error) {
	return Default().FormatMessage(locale, id, opts)
}

func JSON(id, locale string) any { return Default().JSON(id, locale) }

func FormatNumber(locale string, v any, style any) (string, error) {
	return Default().FormatNumber(locale, v, style)
}

func FormatDate(locale string, v any, style any) (string, error) {
	return Default().FormatDate(locale, v, style)
}

func FormatTime(locale string, v any, style any) (string, error) {
	return Default().FormatTime(locale, v, style)
}
