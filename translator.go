package intl

import "fmt"

// Translator resolves a string for a given locale and message key.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

var _ Translator = (*Runtime)(nil)

// Translate formats key in locale like FormatMessage but reports
// ErrMissingTranslation instead of echoing the key. args are either a single
// Values (or map[string]any) or alternating name/value pairs.
func (r *Runtime) Translate(locale, key string, args ...any) (string, error) {
	locale, err := r.resolveLocale(locale)
	if err != nil {
		return "", err
	}
	if _, ok := r.Lookup(key, locale); !ok {
		return "", ErrMissingTranslation
	}
	values, err := valuesFromArgs(args)
	if err != nil {
		return "", err
	}
	return r.FormatMessage(locale, key, MessageOptions{Values: values})
}

func valuesFromArgs(args []any) (Values, error) {
	if len(args) == 0 {
		return nil, nil
	}
	if len(args) == 1 {
		switch v := args[0].(type) {
		case Values:
			return v, nil
		case map[string]any:
			return Values(v), nil
		}
	}
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("intl: odd number of message arguments: %d", len(args))
	}
	values := make(Values, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		name, ok := args[i].(string)
		if !ok {
			return nil, fmt.Errorf("intl: argument name %v is %T, not string", args[i], args[i])
		}
		values[name] = args[i+1]
	}
	return values, nil
}

// Formatter is a message formatter bound to one locale.
type Formatter struct {
	rt     *Runtime
	locale string
}

// Formatter returns a Formatter bound to the current locale.
func (r *Runtime) Formatter() Formatter {
	return Formatter{rt: r, locale: r.Locale()}
}

// FormatterFor returns a Formatter bound to locale.
func (r *Runtime) FormatterFor(locale string) Formatter {
	return Formatter{rt: r, locale: normalizeLocale(locale)}
}

func (f Formatter) Locale() string { return f.locale }

func (f Formatter) Message(id string, opts MessageOptions) (string, error) {
	return f.rt.FormatMessage(f.locale, id, opts)
}

func (f Formatter) Number(v any, style any) (string, error) {
	return f.rt.FormatNumber(f.locale, v, style)
}

func (f Formatter) Date(v any, style any) (string, error) {
	return f.rt.FormatDate(f.locale, v, style)
}

func (f Formatter) Time(v any, style any) (string, error) {
	return f.rt.FormatTime(f.locale, v, style)
}

func (f Formatter) JSON(id string) any {
	return f.rt.JSON(id, f.locale)
}
