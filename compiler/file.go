package compiler

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"unicode"

	intl "github.com/goliatone/go-intl"
)

// DefaultRuntimeImport is the import path generated code uses for the runtime.
const DefaultRuntimeImport = "github.com/goliatone/go-intl"

// generatedHeader marks generated files for Go tooling.
const generatedHeader = "// Code generated by intl-precompile. DO NOT EDIT.\n\n"

// FileInput describes one locale dictionary to compile into Go source.
//
// Messages is a nested map. Leaves are element sequences ([]Element,
// Elements), encoded formatjs AST values or strings. Strings go through
// Parser when one is set and are literal text otherwise.
type FileInput struct {
	Package       string
	Var           string
	Locale        string
	RuntimeImport string
	Messages      map[string]any
	Parser        Parser
	Options       []Option
}

// File is a compiled dictionary.
type File struct {
	Locale   string
	Var      string
	Source   []byte
	Helpers  []Helper
	Messages int
}

// node is a compiled dictionary tree.
type node struct {
	children map[string]*node
	msg      *Message
}

type sourceCompiler struct {
	locale string
	parser Parser
	opts   []Option
	count  int
}

func (s *sourceCompiler) tree(src map[string]any, prefix string) (*node, error) {
	out := &node{children: make(map[string]*node, len(src))}
	for _, key := range sortedKeys(src) {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		child, err := s.leaf(src[key], path)
		if err != nil {
			return nil, err
		}
		out.children[key] = child
	}
	return out, nil
}

func (s *sourceCompiler) leaf(v any, path string) (*node, error) {
	var elements []Element
	var err error

	switch t := v.(type) {
	case []Element:
		elements = t
	case Elements:
		elements = t
	case string:
		if s.parser != nil {
			elements, err = s.parser.Parse(s.locale, t)
		} else {
			elements = []Element{Literal{Value: t}}
		}
	case []any:
		elements, err = DecodeElements(t)
	default:
		if m, ok := asMap(v); ok {
			if IsElementNode(m) {
				elements, err = DecodeElements(m)
			} else {
				return s.tree(m, path)
			}
		} else {
			elements = []Element{Literal{Value: intl.Display(v)}}
		}
	}
	if err != nil {
		return nil, &MessageError{Path: path, Err: err}
	}

	msg, err := Compile(elements, s.opts...)
	if err != nil {
		return nil, &MessageError{Path: path, Err: err}
	}
	s.count++
	return &node{msg: msg}, nil
}

func (n *node) helpers() []Helper {
	seen := make(map[Helper]struct{})
	n.walk(func(m *Message) {
		for _, helper := range m.Helpers {
			seen[helper] = struct{}{}
		}
	})
	out := make([]Helper, 0, len(seen))
	for helper := range seen {
		out = append(out, helper)
	}
	sortHelpers(out)
	return out
}

func (n *node) walk(fn func(*Message)) {
	if n.msg != nil {
		fn(n.msg)
		return
	}
	for _, key := range sortedKeys(n.children) {
		n.children[key].walk(fn)
	}
}

// CompileFile compiles a locale dictionary into a formatted Go source file.
// The runtime package is imported once, and only when a message calls a
// helper.
func CompileFile(in FileInput) (*File, error) {
	if in.Package == "" {
		return nil, fmt.Errorf("compiler: package name is required")
	}
	if in.Var == "" {
		in.Var = VarName(in.Locale)
	}
	if in.RuntimeImport == "" {
		in.RuntimeImport = DefaultRuntimeImport
	}

	sc := &sourceCompiler{locale: in.Locale, parser: in.Parser, opts: in.Options}
	root, err := sc.tree(in.Messages, "")
	if err != nil {
		return nil, err
	}

	g := &emitter{}
	var body bytes.Buffer
	fmt.Fprintf(&body, "// %s holds the compiled %q messages.\n", in.Var, in.Locale)
	fmt.Fprintf(&body, "var %s = %s\n", in.Var, g.tree(root))

	var src bytes.Buffer
	src.WriteString(generatedHeader)
	fmt.Fprintf(&src, "package %s\n\n", in.Package)
	if g.usesRuntime {
		fmt.Fprintf(&src, "import %s %s\n\n", runtimeName, strconv.Quote(in.RuntimeImport))
	}
	src.Write(body.Bytes())

	formatted, err := format.Source(src.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compiler: format %s: %w", in.Locale, err)
	}

	return &File{
		Locale:   in.Locale,
		Var:      in.Var,
		Source:   formatted,
		Helpers:  root.helpers(),
		Messages: sc.count,
	}, nil
}

func (g *emitter) tree(n *node) string {
	var b strings.Builder
	b.WriteString("map[string]any{\n")
	for _, key := range sortedKeys(n.children) {
		child := n.children[key]
		b.WriteString(strconv.Quote(key))
		b.WriteString(": ")
		if child.msg != nil {
			b.WriteString(g.message(child.msg))
		} else {
			b.WriteString(g.tree(child))
		}
		b.WriteString(",\n")
	}
	b.WriteString("}")
	return b.String()
}

// CompileTree compiles a dictionary in memory, binding every message to h.
// Constant messages become strings. A nil h binds the default runtime.
func CompileTree(src map[string]any, locale string, parser Parser, h Helpers, opts ...Option) (intl.Tree, error) {
	if h == nil {
		h = defaultHelpers{}
	}
	sc := &sourceCompiler{locale: locale, parser: parser, opts: opts}
	root, err := sc.tree(src, "")
	if err != nil {
		return nil, err
	}
	return root.bind(h), nil
}

func (n *node) bind(h Helpers) intl.Tree {
	out := make(intl.Tree, len(n.children))
	for key, child := range n.children {
		switch {
		case child.msg == nil:
			out[key] = child.bind(h)
		default:
			if text, ok := child.msg.Constant(); ok {
				out[key] = text
			} else {
				out[key] = child.msg.Bind(h)
			}
		}
	}
	return out
}

// VarName derives the dictionary variable name of a locale: "en-US" => "messagesEnUS".
func VarName(locale string) string {
	var b strings.Builder
	b.WriteString("messages")
	upper := true
	for _, r := range locale {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
