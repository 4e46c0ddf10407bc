package compiler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intl "github.com/goliatone/go-intl"
	"github.com/goliatone/go-intl/compiler"
)

func runtimeFor(t *testing.T, locale string) *intl.Runtime {
	t.Helper()
	rt, err := intl.New()
	require.NoError(t, err)
	require.NoError(t, rt.SetLocale(t.Context(), locale))
	return rt
}

func compile(t *testing.T, tree []compiler.Element, opts ...compiler.Option) *compiler.Message {
	t.Helper()
	msg, err := compiler.Compile(tree, opts...)
	require.NoError(t, err)
	return msg
}

func TestCompileConstant(t *testing.T) {
	msg := compile(t, []compiler.Element{compiler.Literal{Value: "Simple string"}})

	assert.True(t, msg.IsConstant())
	text, ok := msg.Constant()
	require.True(t, ok)
	assert.Equal(t, "Simple string", text)
	assert.Empty(t, msg.Helpers)
	assert.Equal(t, compiler.Text("Simple string"), msg.Body)
}

func TestCompileEmpty(t *testing.T) {
	msg := compile(t, nil)
	text, ok := msg.Constant()
	require.True(t, ok)
	assert.Equal(t, "", text)
}

func TestCompileInterpolation(t *testing.T) {
	msg := compile(t, []compiler.Element{
		compiler.Literal{Value: "Hello, "},
		compiler.Argument{Value: "name"},
		compiler.Literal{Value: "!"},
	})

	assert.Equal(t, []string{"name"}, msg.Params)
	assert.Equal(t, []compiler.Helper{compiler.HelperInterpolate}, msg.Helpers)

	fn := msg.Bind(runtimeFor(t, "en"))
	assert.Equal(t, "Hello, Ada!", fn("Ada"))
	assert.Equal(t, "Hello, !", fn())
	assert.Equal(t, "Hello, 0!", fn(0))
}

func TestCompileParamsSorted(t *testing.T) {
	msg := compile(t, []compiler.Element{
		compiler.Argument{Value: "b"},
		compiler.Literal{Value: "-"},
		compiler.Argument{Value: "a"},
		compiler.Argument{Value: "b"},
	})
	assert.Equal(t, []string{"a", "b"}, msg.Params)

	fn := msg.Bind(runtimeFor(t, "en"))
	assert.Equal(t, "B-AB", fn("A", "B"))
}

func TestCompilePluralWithPound(t *testing.T) {
	msg := compile(t, []compiler.Element{
		compiler.Literal{Value: "You have "},
		compiler.Plural{Value: "count", Options: []compiler.Branch{
			{Key: "one", Value: []compiler.Element{compiler.Pound{}, compiler.Literal{Value: " message"}}},
			{Key: "other", Value: []compiler.Element{compiler.Pound{}, compiler.Literal{Value: " messages"}}},
		}},
	})

	assert.Equal(t, []string{"count"}, msg.Params)
	assert.Equal(t, []compiler.Helper{compiler.HelperPlural}, msg.Helpers)

	fn := msg.Bind(runtimeFor(t, "en"))
	assert.Equal(t, "You have 1 message", fn(1))
	assert.Equal(t, "You have 5 messages", fn(5))
	assert.Equal(t, "You have 1.5 messages", fn(1.5))
}

func TestCompileExactKeyPrecedence(t *testing.T) {
	msg := compile(t, []compiler.Element{
		compiler.Plural{Value: "n", Options: []compiler.Branch{
			{Key: "=1", Value: []compiler.Element{compiler.Literal{Value: "exactly one"}}},
			{Key: "one", Value: []compiler.Element{compiler.Literal{Value: "one"}}},
			{Key: "other", Value: []compiler.Element{compiler.Literal{Value: "other"}}},
		}},
	})

	fn := msg.Bind(runtimeFor(t, "en"))
	assert.Equal(t, "exactly one", fn(1))
	assert.Equal(t, "other", fn(2))
}

func TestCompileOffsetPlural(t *testing.T) {
	msg := compile(t, []compiler.Element{
		compiler.Plural{Value: "guests", Offset: 1, Options: []compiler.Branch{
			{Key: "=0", Value: []compiler.Element{compiler.Literal{Value: "nobody"}}},
			{Key: "=1", Value: []compiler.Element{compiler.Literal{Value: "just you"}}},
			{Key: "one", Value: []compiler.Element{compiler.Literal{Value: "you and # other"}}},
			{Key: "other", Value: []compiler.Element{
				compiler.Literal{Value: "you and "}, compiler.Pound{}, compiler.Literal{Value: " others"},
			}},
		}},
	})
	assert.Equal(t, []compiler.Helper{compiler.HelperOffsetPlural}, msg.Helpers)

	fn := msg.Bind(runtimeFor(t, "en"))
	assert.Equal(t, "nobody", fn(0))
	assert.Equal(t, "just you", fn(1))
	assert.Equal(t, "you and # other", fn(2))
	assert.Equal(t, "you and 4 others", fn(5))
}

func TestCompileOrdinal(t *testing.T) {
	msg := compile(t, []compiler.Element{
		compiler.Plural{Value: "place", Ordinal: true, Options: []compiler.Branch{
			{Key: "one", Value: []compiler.Element{compiler.Pound{}, compiler.Literal{Value: "st"}}},
			{Key: "two", Value: []compiler.Element{compiler.Pound{}, compiler.Literal{Value: "nd"}}},
			{Key: "few", Value: []compiler.Element{compiler.Pound{}, compiler.Literal{Value: "rd"}}},
			{Key: "other", Value: []compiler.Element{compiler.Pound{}, compiler.Literal{Value: "th"}}},
		}},
	})
	assert.Equal(t, []compiler.Helper{compiler.HelperOrdinal}, msg.Helpers)

	fn := msg.Bind(runtimeFor(t, "en"))
	assert.Equal(t, "1st", fn(1))
	assert.Equal(t, "22nd", fn(22))
	assert.Equal(t, "13th", fn(13))
}

func TestCompileOffsetOrdinal(t *testing.T) {
	runnerUp := func(suffix string) []compiler.Element {
		return []compiler.Element{compiler.Pound{}, compiler.Literal{Value: suffix + " runner-up"}}
	}
	msg := compile(t, []compiler.Element{
		compiler.Plural{Value: "place", Ordinal: true, Offset: 1, Options: []compiler.Branch{
			{Key: "=1", Value: []compiler.Element{compiler.Literal{Value: "winner"}}},
			{Key: "one", Value: runnerUp("st")},
			{Key: "two", Value: runnerUp("nd")},
			{Key: "few", Value: runnerUp("rd")},
			{Key: "other", Value: runnerUp("th")},
		}},
	})
	assert.Equal(t, []compiler.Helper{compiler.HelperOffsetOrdinal}, msg.Helpers)

	call := msg.Body.(compiler.Call)
	assert.Equal(t, compiler.Param("place"), call.Args[0])
	assert.Equal(t, compiler.Num(1), call.Args[1])

	fn := msg.Bind(runtimeFor(t, "en"))
	assert.Equal(t, "winner", fn(1))
	assert.Equal(t, "1st runner-up", fn(2))
	assert.Equal(t, "3rd runner-up", fn(4))
	assert.Equal(t, "11th runner-up", fn(12))
}

func TestCompileDuplicateCaseKeys(t *testing.T) {
	sel := []compiler.Element{compiler.Select{Value: "v", Options: []compiler.Branch{
		{Key: "=1", Value: []compiler.Element{compiler.Literal{Value: "exact"}}},
		{Key: "1", Value: []compiler.Element{compiler.Literal{Value: "sym"}}},
		{Key: "other", Value: []compiler.Element{compiler.Literal{Value: "o"}}},
	}}}
	msg := compile(t, sel)
	call := msg.Body.(compiler.Call)
	cases := call.Args[1].(compiler.Cases)
	require.Len(t, cases, 2)
	assert.Equal(t, "1", cases[0].Key.String())
	assert.Equal(t, compiler.Text("sym"), cases[0].Value)
	assert.Equal(t, "sym", msg.Bind(runtimeFor(t, "en"))(1))

	plural := []compiler.Element{compiler.Plural{Value: "n", Options: []compiler.Branch{
		{Key: "other", Value: []compiler.Element{compiler.Literal{Value: "many"}}},
		{Key: "h", Value: []compiler.Element{compiler.Literal{Value: "raw h"}}},
	}}}
	msg = compile(t, plural)
	assert.Len(t, msg.Body.(compiler.Call).Args[1].(compiler.Cases), 1)
	assert.Equal(t, "raw h", msg.Bind(runtimeFor(t, "en"))(5))

	_, err := compiler.Compile(sel, compiler.WithStrict())
	require.ErrorIs(t, err, compiler.ErrDuplicateKey)

	exact := []compiler.Element{compiler.Plural{Value: "n", Options: []compiler.Branch{
		{Key: "=2", Value: []compiler.Element{compiler.Literal{Value: "a"}}},
		{Key: "=2", Value: []compiler.Element{compiler.Literal{Value: "b"}}},
		{Key: "other", Value: []compiler.Element{compiler.Literal{Value: "c"}}},
	}}}
	_, err = compiler.Compile(exact, compiler.WithStrict())
	require.ErrorIs(t, err, compiler.ErrDuplicateKey)
}

func TestCompileSelect(t *testing.T) {
	msg := compile(t, []compiler.Element{
		compiler.Select{Value: "gender", Options: []compiler.Branch{
			{Key: "female", Value: []compiler.Element{compiler.Literal{Value: "She"}}},
			{Key: "male", Value: []compiler.Element{compiler.Literal{Value: "He"}}},
			{Key: "other", Value: []compiler.Element{compiler.Literal{Value: "They"}}},
		}},
		compiler.Literal{Value: " replied"},
	})

	fn := msg.Bind(runtimeFor(t, "en"))
	assert.Equal(t, "She replied", fn("female"))
	assert.Equal(t, "They replied", fn("robot"))
	assert.Equal(t, "They replied", fn())
}

func TestCompileNestedPlural(t *testing.T) {
	msg := compile(t, []compiler.Element{
		compiler.Select{Value: "who", Options: []compiler.Branch{
			{Key: "me", Value: []compiler.Element{
				compiler.Plural{Value: "n", Options: []compiler.Branch{
					{Key: "one", Value: []compiler.Element{compiler.Literal{Value: "I have "}, compiler.Pound{}, compiler.Literal{Value: " cat"}}},
					{Key: "other", Value: []compiler.Element{compiler.Literal{Value: "I have "}, compiler.Pound{}, compiler.Literal{Value: " cats"}}},
				}},
			}},
			{Key: "other", Value: []compiler.Element{compiler.Argument{Value: "who"}}},
		}},
	})
	assert.Equal(t, []string{"n", "who"}, msg.Params)

	fn := msg.Bind(runtimeFor(t, "en"))
	assert.Equal(t, "I have 3 cats", fn(3, "me"))
	assert.Equal(t, "I have 1 cat", fn(1, "me"))
	assert.Equal(t, "you", fn(3, "you"))
}

func TestCompileFormatters(t *testing.T) {
	msg := compile(t, []compiler.Element{
		compiler.Number{Value: "n", Style: compiler.StyleName("percent")},
		compiler.Literal{Value: " | "},
		compiler.Date{Value: "d", Style: compiler.StyleName("long")},
		compiler.Literal{Value: " | "},
		compiler.Time{Value: "d"},
	})
	assert.Equal(t, []string{"d", "n"}, msg.Params)
	assert.Equal(t, []compiler.Helper{compiler.HelperDate, compiler.HelperNumber, compiler.HelperTime}, msg.Helpers)

	when := time.Date(2025, time.October, 7, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "25% | October 7, 2025 | 2:30 PM", msg.Bind(runtimeFor(t, "en"))(when, 0.25))
	assert.Contains(t, msg.Bind(runtimeFor(t, "es"))(when, 0.25), " | 7 de octubre de 2025 | 14:30")
}

func TestCompileScaleSkeleton(t *testing.T) {
	msg := compile(t, []compiler.Element{
		compiler.Number{Value: "ratio", Style: compiler.Skeleton{Options: map[string]any{"scale": 100.0}}},
	})
	call, ok := msg.Body.(compiler.Call)
	require.True(t, ok)
	assert.Equal(t, compiler.Arith{Param: "ratio", Op: '/', Operand: 100}, call.Args[0])
	require.Len(t, call.Args, 1)

	assert.Equal(t, "0.5", msg.Bind(runtimeFor(t, "en"))(50))
}

func TestCompileSkeletonOptionsBundle(t *testing.T) {
	msg := compile(t, []compiler.Element{
		compiler.Number{Value: "n", Style: compiler.Skeleton{Options: map[string]any{
			"minimumFractionDigits": 2,
			"useGrouping":           false,
		}}},
	})
	call := msg.Body.(compiler.Call)
	require.Len(t, call.Args, 2)
	assert.Equal(t, compiler.Bundle{
		{Name: "minimumFractionDigits", Value: 2.0},
		{Name: "useGrouping", Value: "false"},
	}, call.Args[1])

	assert.Equal(t, "1234.50", msg.Bind(runtimeFor(t, "en"))(1234.5))
}

func TestCompileTagUnsupported(t *testing.T) {
	_, err := compiler.Compile([]compiler.Element{
		compiler.Tag{Value: "b", Children: []compiler.Element{compiler.Literal{Value: "bold"}}},
	})
	require.ErrorIs(t, err, compiler.ErrUnsupportedElement)
}

func TestCompileMalformed(t *testing.T) {
	_, err := compiler.Compile([]compiler.Element{compiler.Argument{Value: " "}})
	require.ErrorIs(t, err, compiler.ErrMalformedElement)

	_, err = compiler.Compile([]compiler.Element{nil})
	require.ErrorIs(t, err, compiler.ErrMalformedElement)
}

func TestCompileStrict(t *testing.T) {
	pound := []compiler.Element{compiler.Literal{Value: "a"}, compiler.Pound{}}

	msg := compile(t, pound)
	text, _ := msg.Constant()
	assert.Equal(t, "a", text)

	_, err := compiler.Compile(pound, compiler.WithStrict())
	require.ErrorIs(t, err, compiler.ErrPoundOutsidePlural)

	unknown := []compiler.Element{compiler.Plural{Value: "n", Options: []compiler.Branch{
		{Key: "lots", Value: []compiler.Element{compiler.Literal{Value: "x"}}},
	}}}
	_, err = compiler.Compile(unknown)
	require.NoError(t, err)
	_, err = compiler.Compile(unknown, compiler.WithStrict())
	require.ErrorIs(t, err, compiler.ErrUnknownPluralKey)
}

func TestMessageFuncUsesDefaultRuntime(t *testing.T) {
	prev := intl.Default()
	t.Cleanup(func() { intl.SetDefault(prev) })
	intl.SetDefault(runtimeFor(t, "en"))

	msg := compile(t, []compiler.Element{compiler.Plural{Value: "n", Options: []compiler.Branch{
		{Key: "one", Value: []compiler.Element{compiler.Literal{Value: "one"}}},
		{Key: "other", Value: []compiler.Element{compiler.Literal{Value: "other"}}},
	}}})
	assert.Equal(t, "one", msg.Func()(1))
}
