package compiler

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedElement is returned for element kinds with no compiled form (tags).
	ErrUnsupportedElement = errors.New("compiler: unsupported element")
	// ErrMalformedElement marks element trees violating their shape.
	ErrMalformedElement = errors.New("compiler: malformed element")
	// ErrPoundOutsidePlural is reported in strict mode for # outside a plural.
	ErrPoundOutsidePlural = errors.New("compiler: # outside of a plural")
	// ErrUnknownPluralKey is reported in strict mode for plural keys that are
	// neither =N nor a CLDR category.
	ErrUnknownPluralKey = errors.New("compiler: unknown plural key")
	// ErrDuplicateKey is reported in strict mode for cases sharing a dispatch
	// key, such as =1 and 1 in a select.
	ErrDuplicateKey = errors.New("compiler: duplicate case key")
)

// MessageError ties a compile failure to the dictionary path of the message.
type MessageError struct {
	Path string
	Err  error
}

func (e *MessageError) Error() string {
	return fmt.Sprintf("compiler: %s: %v", e.Path, e.Err)
}

func (e *MessageError) Unwrap() error {
	return e.Err
}
