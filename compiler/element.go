package compiler

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	intl "github.com/goliatone/go-intl"
)

// Element is a node of a parsed ICU message. The set of implementations is
// closed.
type Element interface {
	element()
}

type (
	// Literal is plain text.
	Literal struct{ Value string }
	// Argument is a {name} placeholder.
	Argument struct{ Value string }
	// Number is {name, number[, style]}.
	Number struct {
		Value string
		Style Style
	}
	// Date is {name, date[, style]}.
	Date struct {
		Value string
		Style Style
	}
	// Time is {name, time[, style]}.
	Time struct {
		Value string
		Style Style
	}
	// Select is {name, select, key {...} ...}.
	Select struct {
		Value   string
		Options []Branch
	}
	// Plural is {name, plural, ...} or, with Ordinal set, {name, selectordinal, ...}.
	Plural struct {
		Value   string
		Offset  float64
		Ordinal bool
		Options []Branch
	}
	// Pound is # inside a plural case.
	Pound struct{}
	// Tag is <name>children</name>.
	Tag struct {
		Value    string
		Children []Element
	}
)

func (Literal) element()  {}
func (Argument) element() {}
func (Number) element()   {}
func (Date) element()     {}
func (Time) element()     {}
func (Select) element()   {}
func (Plural) element()   {}
func (Pound) element()    {}
func (Tag) element()      {}

// Branch is one case of a select or plural.
type Branch struct {
	Key   string
	Value []Element
}

// Style is the optional style of a number, date or time element: nil, a
// StyleName or a Skeleton.
type Style interface {
	style()
}

// StyleName is a named style such as "percent" or "short".
type StyleName string

// Skeleton carries parsed formatting options, e.g. {"scale": 100}.
type Skeleton struct {
	Options map[string]any
}

func (StyleName) style() {}
func (Skeleton) style()  {}

// Parser turns an ICU message string into elements.
type Parser interface {
	Parse(locale, message string) ([]Element, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(locale, message string) ([]Element, error)

func (f ParserFunc) Parse(locale, message string) ([]Element, error) {
	return f(locale, message)
}

// Element type codes of the formatjs message AST.
const (
	typeLiteral = iota
	typeArgument
	typeNumber
	typeDate
	typeTime
	typeSelect
	typePlural
	typePound
	typeTag
)

// Elements is an element sequence decodable from the formatjs JSON AST.
type Elements []Element

func (e *Elements) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	elements, err := DecodeElements(raw)
	if err != nil {
		return err
	}
	*e = elements
	return nil
}

// DecodeElements decodes the formatjs message AST from a generically decoded
// value (JSON, YAML or TOML). A string decodes to a single literal. Option
// keys are sorted; generic maps do not keep source order.
func DecodeElements(v any) ([]Element, error) {
	switch t := v.(type) {
	case string:
		return []Element{Literal{Value: t}}, nil
	case []any:
		out := make([]Element, 0, len(t))
		for i, item := range t {
			el, err := decodeElement(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out = append(out, el)
		}
		return out, nil
	case nil:
		return nil, nil
	}
	if _, ok := asMap(v); ok {
		el, err := decodeElement(v)
		if err != nil {
			return nil, err
		}
		return []Element{el}, nil
	}
	return nil, fmt.Errorf("%w: element sequence is %T", ErrMalformedElement, v)
}

// IsElementNode reports whether v looks like an encoded element (an object
// with a numeric type field).
func IsElementNode(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	_, ok = intl.ToFloat(m["type"])
	return ok
}

func decodeElement(v any) (Element, error) {
	m, ok := asMap(v)
	if !ok {
		return nil, fmt.Errorf("%w: element is %T", ErrMalformedElement, v)
	}
	code, ok := intl.ToFloat(m["type"])
	if !ok {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedElement)
	}

	switch int(code) {
	case typeLiteral:
		value, err := stringField(m, "value", true)
		return Literal{Value: value}, err
	case typeArgument:
		value, err := stringField(m, "value", false)
		return Argument{Value: value}, err
	case typeNumber, typeDate, typeTime:
		value, err := stringField(m, "value", false)
		if err != nil {
			return nil, err
		}
		style, err := decodeStyle(m["style"])
		if err != nil {
			return nil, err
		}
		switch int(code) {
		case typeNumber:
			return Number{Value: value, Style: style}, nil
		case typeDate:
			return Date{Value: value, Style: style}, nil
		default:
			return Time{Value: value, Style: style}, nil
		}
	case typeSelect:
		value, err := stringField(m, "value", false)
		if err != nil {
			return nil, err
		}
		options, err := decodeOptions(m["options"])
		return Select{Value: value, Options: options}, err
	case typePlural:
		value, err := stringField(m, "value", false)
		if err != nil {
			return nil, err
		}
		options, err := decodeOptions(m["options"])
		if err != nil {
			return nil, err
		}
		offset, _ := intl.ToFloat(m["offset"])
		ordinal := false
		if kind, ok := m["pluralType"].(string); ok {
			ordinal = kind == "ordinal"
		}
		return Plural{Value: value, Offset: offset, Ordinal: ordinal, Options: options}, nil
	case typePound:
		return Pound{}, nil
	case typeTag:
		value, _ := m["value"].(string)
		children, err := DecodeElements(m["children"])
		return Tag{Value: value, Children: children}, err
	}
	return nil, fmt.Errorf("%w: unknown type %v", ErrMalformedElement, code)
}

func stringField(m map[string]any, key string, allowEmpty bool) (string, error) {
	value, ok := m[key].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, not string", ErrMalformedElement, key, m[key])
	}
	if !allowEmpty && strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: empty %s", ErrMalformedElement, key)
	}
	return value, nil
}

func decodeStyle(v any) (Style, error) {
	switch s := v.(type) {
	case nil:
		return nil, nil
	case string:
		if s == "" {
			return nil, nil
		}
		return StyleName(s), nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil, fmt.Errorf("%w: style is %T", ErrMalformedElement, v)
	}
	parsed, _ := asMap(m["parsedOptions"])
	options := make(map[string]any, len(parsed))
	for key, value := range parsed {
		options[key] = value
	}
	return Skeleton{Options: options}, nil
}

func decodeOptions(v any) ([]Branch, error) {
	m, ok := asMap(v)
	if !ok {
		return nil, fmt.Errorf("%w: options is %T", ErrMalformedElement, v)
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	options := make([]Branch, 0, len(keys))
	for _, key := range keys {
		raw := m[key]
		if wrapper, ok := asMap(raw); ok {
			raw = wrapper["value"]
		}
		value, err := DecodeElements(raw)
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", key, err)
		}
		options = append(options, Branch{Key: key, Value: value})
	}
	return options, nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case intl.Tree:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for key, value := range m {
			out[fmt.Sprint(key)] = value
		}
		return out, true
	}
	return nil, false
}
