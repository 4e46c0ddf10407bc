package compiler

import (
	intl "github.com/goliatone/go-intl"
)

// Helpers is the helper runtime a bound message evaluates against.
// *intl.Runtime implements it.
type Helpers interface {
	Interpolate(v any) string
	Number(v any, style any) string
	Date(v any, style any) string
	Time(v any, style any) string
	Select(v any, opts intl.Options) string
	Plural(v any, opts intl.Options) string
	OffsetPlural(v any, offset float64, opts intl.Options) string
	Ordinal(v any, opts intl.Options) string
	OffsetOrdinal(v any, offset float64, opts intl.Options) string
}

var _ Helpers = (*intl.Runtime)(nil)

// defaultHelpers resolves the default runtime on every call.
type defaultHelpers struct{}

func (defaultHelpers) Interpolate(v any) string       { return intl.Interpolate(v) }
func (defaultHelpers) Number(v any, style any) string { return intl.Number(v, style) }
func (defaultHelpers) Date(v any, style any) string   { return intl.Date(v, style) }
func (defaultHelpers) Time(v any, style any) string   { return intl.Time(v, style) }
func (defaultHelpers) Select(v any, opts intl.Options) string {
	return intl.Select(v, opts)
}
func (defaultHelpers) Plural(v any, opts intl.Options) string {
	return intl.Plural(v, opts)
}
func (defaultHelpers) OffsetPlural(v any, offset float64, opts intl.Options) string {
	return intl.OffsetPlural(v, offset, opts)
}
func (defaultHelpers) Ordinal(v any, opts intl.Options) string {
	return intl.Ordinal(v, opts)
}
func (defaultHelpers) OffsetOrdinal(v any, offset float64, opts intl.Options) string {
	return intl.OffsetOrdinal(v, offset, opts)
}

type evaluator struct {
	h   Helpers
	env map[string]any
}

func (e evaluator) str(x Expr) string {
	switch v := x.(type) {
	case Text:
		return string(v)
	case Param, Arith:
		return intl.Display(e.value(v))
	case Template:
		var out string
		for _, part := range v {
			out += e.str(part)
		}
		return out
	case Call:
		return e.call(v)
	}
	return ""
}

func (e evaluator) value(x Expr) any {
	switch v := x.(type) {
	case Param:
		return e.env[string(v)]
	case Arith:
		if v.Op == '/' {
			return intl.Scale(e.env[v.Param], v.Operand)
		}
		return intl.Offset(e.env[v.Param], v.Operand)
	case Num:
		return float64(v)
	case Text:
		return string(v)
	case Bundle:
		opts := make(intl.FormatOptions, len(v))
		for _, entry := range v {
			opts[entry.Name] = entry.Value
		}
		return opts
	case Cases:
		return e.options(v)
	}
	return e.str(x)
}

func (e evaluator) options(cases Cases) intl.Options {
	opts := make(intl.Options, len(cases))
	for _, c := range cases {
		opts[c.Key.String()] = e.str(c.Value)
	}
	return opts
}

func (e evaluator) arg(args []Expr, i int) any {
	if i >= len(args) {
		return nil
	}
	return e.value(args[i])
}

func (e evaluator) cases(args []Expr, i int) intl.Options {
	if i >= len(args) {
		return nil
	}
	if cases, ok := args[i].(Cases); ok {
		return e.options(cases)
	}
	return nil
}

func (e evaluator) call(c Call) string {
	if e.h == nil {
		return ""
	}
	switch c.Helper {
	case HelperInterpolate:
		return e.h.Interpolate(e.arg(c.Args, 0))
	case HelperNumber:
		return e.h.Number(e.arg(c.Args, 0), e.arg(c.Args, 1))
	case HelperDate:
		return e.h.Date(e.arg(c.Args, 0), e.arg(c.Args, 1))
	case HelperTime:
		return e.h.Time(e.arg(c.Args, 0), e.arg(c.Args, 1))
	case HelperSelect:
		return e.h.Select(e.arg(c.Args, 0), e.cases(c.Args, 1))
	case HelperPlural:
		return e.h.Plural(e.arg(c.Args, 0), e.cases(c.Args, 1))
	case HelperOffsetPlural:
		offset, _ := intl.ToFloat(e.arg(c.Args, 1))
		return e.h.OffsetPlural(e.arg(c.Args, 0), offset, e.cases(c.Args, 2))
	case HelperOrdinal:
		return e.h.Ordinal(e.arg(c.Args, 0), e.cases(c.Args, 1))
	case HelperOffsetOrdinal:
		offset, _ := intl.ToFloat(e.arg(c.Args, 1))
		return e.h.OffsetOrdinal(e.arg(c.Args, 0), offset, e.cases(c.Args, 2))
	}
	return ""
}
