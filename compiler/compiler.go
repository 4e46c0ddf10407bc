package compiler

import (
	"fmt"
	"sort"
	"strings"

	intl "github.com/goliatone/go-intl"
)

// Option configures compilation.
type Option func(*config)

type config struct {
	strict bool
}

// WithStrict rejects # outside of a plural and plural keys that are neither
// =N nor a CLDR category. Both are accepted silently by default.
func WithStrict() Option {
	return func(c *config) { c.strict = true }
}

// Message is a compiled message.
type Message struct {
	// Params are the parameter names in sorted order, the positional order
	// of the compiled function.
	Params []string
	Body   Expr
	// Helpers are the runtime helpers Body calls, sorted.
	Helpers []Helper
}

// IsConstant reports whether the message takes no parameters.
func (m *Message) IsConstant() bool {
	return len(m.Params) == 0
}

// Constant returns the text of a constant message.
func (m *Message) Constant() (string, bool) {
	if !m.IsConstant() {
		return "", false
	}
	return evaluator{}.str(m.Body), true
}

// Bind returns the message as a function evaluated against h.
func (m *Message) Bind(h Helpers) intl.MessageFunc {
	if text, ok := m.Constant(); ok {
		return func(...any) string { return text }
	}
	return func(args ...any) string {
		env := make(map[string]any, len(m.Params))
		for i, name := range m.Params {
			env[name] = intl.Arg(args, i)
		}
		return evaluator{h: h, env: env}.str(m.Body)
	}
}

// Func binds the message to the default runtime.
func (m *Message) Func() intl.MessageFunc {
	return m.Bind(defaultHelpers{})
}

// Compile turns an element tree into a Message.
func Compile(tree []Element, opts ...Option) (*Message, error) {
	c := &compileContext{
		helpers: make(map[Helper]struct{}),
		params:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c.cfg)
		}
	}

	body, err := c.sequence(tree)
	if err != nil {
		return nil, err
	}

	msg := &Message{Body: body}
	for name := range c.params {
		msg.Params = append(msg.Params, name)
	}
	sort.Strings(msg.Params)
	for helper := range c.helpers {
		msg.Helpers = append(msg.Helpers, helper)
	}
	sortHelpers(msg.Helpers)
	return msg, nil
}

func sortHelpers(helpers []Helper) {
	sort.Slice(helpers, func(i, j int) bool { return helpers[i] < helpers[j] })
}

// compileContext is threaded through one compilation.
type compileContext struct {
	cfg     config
	plurals []Plural
	helpers map[Helper]struct{}
	params  map[string]struct{}
}

func (c *compileContext) param(name string) (Param, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: argument name must be a non-empty string", ErrMalformedElement)
	}
	c.params[name] = struct{}{}
	return Param(name), nil
}

func (c *compileContext) call(helper Helper, args ...Expr) Call {
	c.helpers[helper] = struct{}{}
	return Call{Helper: helper, Args: args}
}

// sequence compiles an element sequence in string context.
func (c *compileContext) sequence(tree []Element) (Expr, error) {
	if len(tree) == 0 {
		return Text(""), nil
	}
	if len(tree) == 1 {
		if _, isPound := tree[0].(Pound); !isPound {
			return c.element(tree[0])
		}
	}

	parts := make(Template, 0, len(tree))
	for _, el := range tree {
		if _, isPound := el.(Pound); isPound {
			value, ok, err := c.pound()
			if err != nil {
				return nil, err
			}
			if ok {
				parts = append(parts, value)
			}
			continue
		}
		expr, err := c.element(el)
		if err != nil {
			return nil, err
		}
		parts = append(parts, expr)
	}
	if len(parts) == 0 {
		return Text(""), nil
	}
	return parts, nil
}

func (c *compileContext) element(el Element) (Expr, error) {
	switch e := el.(type) {
	case Literal:
		return Text(e.Value), nil
	case Argument:
		p, err := c.param(e.Value)
		if err != nil {
			return nil, err
		}
		return c.call(HelperInterpolate, p), nil
	case Number:
		return c.format(HelperNumber, e.Value, e.Style)
	case Date:
		return c.format(HelperDate, e.Value, e.Style)
	case Time:
		return c.format(HelperTime, e.Value, e.Style)
	case Select:
		return c.selectCall(e)
	case Plural:
		return c.pluralCall(e)
	case Pound:
		value, ok, err := c.pound()
		if err != nil || !ok {
			return Text(""), err
		}
		return Template{value}, nil
	case Tag:
		return nil, fmt.Errorf("%w: tag <%s>", ErrUnsupportedElement, e.Value)
	case nil:
		return nil, fmt.Errorf("%w: nil element", ErrMalformedElement)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedElement, el)
}

// pound resolves # to the innermost plural value, offset adjusted.
func (c *compileContext) pound() (Expr, bool, error) {
	if len(c.plurals) == 0 {
		if c.cfg.strict {
			return nil, false, ErrPoundOutsidePlural
		}
		return nil, false, nil
	}
	plural := c.plurals[len(c.plurals)-1]
	p, err := c.param(plural.Value)
	if err != nil {
		return nil, false, err
	}
	if plural.Offset != 0 {
		return Arith{Param: string(p), Op: '-', Operand: plural.Offset}, true, nil
	}
	return p, true, nil
}

func (c *compileContext) format(helper Helper, name string, style Style) (Expr, error) {
	p, err := c.param(name)
	if err != nil {
		return nil, err
	}
	var value Expr = p

	switch s := style.(type) {
	case nil:
		return c.call(helper, value), nil
	case StyleName:
		if s == "" {
			return c.call(helper, value), nil
		}
		return c.call(helper, value, Text(s)), nil
	case Skeleton:
		options := make(map[string]any, len(s.Options))
		for key, v := range s.Options {
			options[key] = v
		}
		if helper == HelperNumber {
			if raw, ok := options["scale"]; ok {
				if scale, isNum := intl.ToFloat(raw); isNum && scale != 0 {
					value = Arith{Param: string(p), Op: '/', Operand: scale}
				}
				delete(options, "scale")
			}
		}
		if len(options) == 0 {
			return c.call(helper, value), nil
		}
		return c.call(helper, value, bundle(options)), nil
	}
	return nil, fmt.Errorf("%w: style %T", ErrMalformedElement, style)
}

// bundle keeps numbers as numbers and renders everything else as strings.
func bundle(options map[string]any) Bundle {
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Bundle, 0, len(names))
	for _, name := range names {
		var value any
		switch v := options[name].(type) {
		case string:
			value = v
		default:
			if n, ok := intl.ToFloat(v); ok {
				value = n
			} else {
				value = intl.Display(v)
			}
		}
		out = append(out, BundleEntry{Name: name, Value: value})
	}
	return out
}

func (c *compileContext) selectCall(e Select) (Expr, error) {
	p, err := c.param(e.Value)
	if err != nil {
		return nil, err
	}
	cases := make(Cases, 0, len(e.Options))
	for _, opt := range e.Options {
		value, err := c.sequence(opt.Value)
		if err != nil {
			return nil, err
		}
		cases, err = c.addCase(cases, Case{Key: NormalizeSelectKey(opt.Key), Value: value}, opt.Key)
		if err != nil {
			return nil, err
		}
	}
	return c.call(HelperSelect, p, cases), nil
}

func (c *compileContext) pluralCall(e Plural) (Expr, error) {
	p, err := c.param(e.Value)
	if err != nil {
		return nil, err
	}

	c.plurals = append(c.plurals, e)
	cases := make(Cases, 0, len(e.Options))
	for _, opt := range e.Options {
		key, known := NormalizePluralKey(opt.Key)
		if !known && c.cfg.strict {
			c.plurals = c.plurals[:len(c.plurals)-1]
			return nil, fmt.Errorf("%w: %q", ErrUnknownPluralKey, opt.Key)
		}
		value, err := c.sequence(opt.Value)
		if err != nil {
			c.plurals = c.plurals[:len(c.plurals)-1]
			return nil, err
		}
		cases, err = c.addCase(cases, Case{Key: key, Value: value}, opt.Key)
		if err != nil {
			c.plurals = c.plurals[:len(c.plurals)-1]
			return nil, err
		}
	}
	c.plurals = c.plurals[:len(c.plurals)-1]

	switch {
	case e.Ordinal && e.Offset != 0:
		return c.call(HelperOffsetOrdinal, p, Num(e.Offset), cases), nil
	case e.Ordinal:
		return c.call(HelperOrdinal, p, cases), nil
	case e.Offset != 0:
		return c.call(HelperOffsetPlural, p, Num(e.Offset), cases), nil
	}
	return c.call(HelperPlural, p, cases), nil
}

// addCase appends next, or replaces the value of an earlier case with the
// same dispatch key so the last one wins. Strict mode rejects the duplicate.
func (c *compileContext) addCase(cases Cases, next Case, raw string) (Cases, error) {
	key := next.Key.String()
	for i := range cases {
		if cases[i].Key.String() != key {
			continue
		}
		if c.cfg.strict {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, raw)
		}
		cases[i].Value = next.Value
		return cases, nil
	}
	return append(cases, next), nil
}
