package compiler

import (
	"fmt"
	"go/token"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// runtimeName is the package name generated code uses for the runtime.
const runtimeName = "intl"

// emitter renders compiled messages as Go expressions.
type emitter struct {
	usesRuntime bool
	idents      map[string]string
}

func (g *emitter) rt(name string) string {
	g.usesRuntime = true
	return runtimeName + "." + name
}

// message renders m as a string literal or a func(args ...any) string literal.
func (g *emitter) message(m *Message) string {
	if text, ok := m.Constant(); ok {
		return strconv.Quote(text)
	}

	taken := map[string]bool{"args": true, "nil": true, runtimeName: true}
	g.idents = make(map[string]string, len(m.Params))
	names := make([]string, len(m.Params))
	values := make([]string, len(m.Params))
	for i, param := range m.Params {
		ident := goIdent(param, taken)
		g.idents[param] = ident
		names[i] = ident
		values[i] = fmt.Sprintf("%s(args, %d)", g.rt("Arg"), i)
	}

	var b strings.Builder
	b.WriteString("func(args ...any) string {\n")
	fmt.Fprintf(&b, "%s := %s\n", strings.Join(names, ", "), strings.Join(values, ", "))
	fmt.Fprintf(&b, "return %s\n", g.str(m.Body))
	b.WriteString("}")
	return b.String()
}

func (g *emitter) str(x Expr) string {
	switch v := x.(type) {
	case Text:
		return strconv.Quote(string(v))
	case Param, Arith:
		return g.rt("Display") + "(" + g.value(v) + ")"
	case Template:
		if len(v) == 0 {
			return `""`
		}
		parts := make([]string, len(v))
		for i, part := range v {
			parts[i] = g.str(part)
		}
		return strings.Join(parts, " + ")
	case Call:
		return g.call(v)
	}
	return `""`
}

func (g *emitter) value(x Expr) string {
	switch v := x.(type) {
	case Param:
		return g.ident(string(v))
	case Arith:
		fn := "Offset"
		if v.Op == '/' {
			fn = "Scale"
		}
		return fmt.Sprintf("%s(%s, %s)", g.rt(fn), g.ident(v.Param), formatNum(v.Operand))
	case Num:
		return formatNum(float64(v))
	case Text:
		return strconv.Quote(string(v))
	case Bundle:
		entries := make([]string, len(v))
		for i, entry := range v {
			var value string
			switch ev := entry.Value.(type) {
			case float64:
				value = formatNum(ev)
			default:
				value = strconv.Quote(fmt.Sprint(ev))
			}
			entries[i] = strconv.Quote(entry.Name) + ": " + value
		}
		return g.rt("FormatOptions") + "{" + strings.Join(entries, ", ") + "}"
	case Cases:
		entries := make([]string, len(v))
		for i, c := range v {
			entries[i] = strconv.Quote(c.Key.String()) + ": " + g.str(c.Value)
		}
		return g.rt("Options") + "{" + strings.Join(entries, ", ") + "}"
	}
	return g.str(x)
}

func (g *emitter) call(c Call) string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = g.value(arg)
	}
	switch c.Helper {
	case HelperNumber, HelperDate, HelperTime:
		if len(args) == 1 {
			args = append(args, "nil")
		}
	}
	return g.rt(string(c.Helper)) + "(" + strings.Join(args, ", ") + ")"
}

func (g *emitter) ident(param string) string {
	if ident, ok := g.idents[param]; ok {
		return ident
	}
	return "nil"
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// goIdent turns a message parameter name into a Go identifier unique within taken.
func goIdent(name string, taken map[string]bool) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	ident := b.String()
	if ident == "" || ident == "_" {
		ident = "arg"
	}
	if token.IsKeyword(ident) || taken[ident] {
		ident += "_"
	}
	for base, n := ident, 2; taken[ident]; n++ {
		ident = base + strconv.Itoa(n)
	}
	taken[ident] = true
	return ident
}

// sortedKeys returns the keys of m in order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
