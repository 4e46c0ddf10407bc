package intl

import (
	"errors"
	"fmt"
)

// ErrMissingTranslation indicates that no translation was found for locale/key.
var ErrMissingTranslation = errors.New("intl: missing translation")

// ErrNoLocale is returned when formatting is requested before any locale was set.
var ErrNoLocale = errors.New("intl: no locale set")

// ErrInvalidDate is returned when a value cannot be read as a point in time.
var ErrInvalidDate = errors.New("intl: invalid date")

// LoadError wraps a loader failure with the locale it was registered for.
type LoadError struct {
	Locale string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("intl: load %s: %v", e.Locale, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
