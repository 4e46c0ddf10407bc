package compiler_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	intl "github.com/goliatone/go-intl"
	"github.com/goliatone/go-intl/compiler"
)

const pluralAST = `[
  {"type": 0, "value": "You have "},
  {"type": 6, "value": "count", "offset": 0, "pluralType": "cardinal", "options": {
    "other": {"value": [{"type": 7}, {"type": 0, "value": " messages"}]},
    "one": {"value": [{"type": 7}, {"type": 0, "value": " message"}]}
  }}
]`

func TestElementsUnmarshalJSON(t *testing.T) {
	var elements compiler.Elements
	require.NoError(t, json.Unmarshal([]byte(pluralAST), &elements))

	assert.Equal(t, compiler.Elements{
		compiler.Literal{Value: "You have "},
		compiler.Plural{Value: "count", Options: []compiler.Branch{
			{Key: "one", Value: []compiler.Element{compiler.Pound{}, compiler.Literal{Value: " message"}}},
			{Key: "other", Value: []compiler.Element{compiler.Pound{}, compiler.Literal{Value: " messages"}}},
		}},
	}, elements)
}

func TestDecodeElementsAllTypes(t *testing.T) {
	raw := []any{
		map[string]any{"type": 1, "value": "name"},
		map[string]any{"type": 2, "value": "n", "style": "percent"},
		map[string]any{"type": 2, "value": "r", "style": map[string]any{
			"type": 1, "tokens": []any{}, "parsedOptions": map[string]any{"scale": 100},
		}},
		map[string]any{"type": 3, "value": "d", "style": "short"},
		map[string]any{"type": 4, "value": "d"},
		map[string]any{"type": 5, "value": "g", "options": map[string]any{
			"other": map[string]any{"value": []any{}},
		}},
		map[string]any{"type": 6, "value": "p", "offset": 1, "pluralType": "ordinal", "options": map[string]any{
			"=0": map[string]any{"value": "none"},
		}},
		map[string]any{"type": 8, "value": "b", "children": []any{map[string]any{"type": 0, "value": "x"}}},
	}

	elements, err := compiler.DecodeElements(raw)
	require.NoError(t, err)
	assert.Equal(t, []compiler.Element{
		compiler.Argument{Value: "name"},
		compiler.Number{Value: "n", Style: compiler.StyleName("percent")},
		compiler.Number{Value: "r", Style: compiler.Skeleton{Options: map[string]any{"scale": 100}}},
		compiler.Date{Value: "d", Style: compiler.StyleName("short")},
		compiler.Time{Value: "d"},
		compiler.Select{Value: "g", Options: []compiler.Branch{{Key: "other", Value: []compiler.Element{}}}},
		compiler.Plural{Value: "p", Offset: 1, Ordinal: true, Options: []compiler.Branch{
			{Key: "=0", Value: []compiler.Element{compiler.Literal{Value: "none"}}},
		}},
		compiler.Tag{Value: "b", Children: []compiler.Element{compiler.Literal{Value: "x"}}},
	}, elements)
}

func TestDecodeElementsFromYAML(t *testing.T) {
	var raw any
	require.NoError(t, yaml.Unmarshal([]byte(`
- type: 0
  value: "Hi "
- type: 1
  value: name
`), &raw))

	elements, err := compiler.DecodeElements(raw)
	require.NoError(t, err)
	assert.Equal(t, []compiler.Element{
		compiler.Literal{Value: "Hi "},
		compiler.Argument{Value: "name"},
	}, elements)
}

func TestDecodeElementsErrors(t *testing.T) {
	for name, raw := range map[string]any{
		"unknown type":    []any{map[string]any{"type": 42}},
		"missing type":    []any{map[string]any{"value": "x"}},
		"not an object":   []any{3},
		"empty argument":  []any{map[string]any{"type": 1, "value": ""}},
		"bad options":     []any{map[string]any{"type": 5, "value": "g", "options": "x"}},
		"bad sequence":    42,
		"bad style":       []any{map[string]any{"type": 2, "value": "n", "style": 7}},
		"non string name": []any{map[string]any{"type": 1, "value": 1}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := compiler.DecodeElements(raw)
			require.ErrorIs(t, err, compiler.ErrMalformedElement)
		})
	}
}

func TestIsElementNode(t *testing.T) {
	assert.True(t, compiler.IsElementNode(map[string]any{"type": json.Number("0"), "value": "x"}))
	assert.True(t, compiler.IsElementNode(intl.Tree{"type": 1, "value": "x"}))
	assert.False(t, compiler.IsElementNode(map[string]any{"title": "x"}))
	assert.False(t, compiler.IsElementNode("x"))
}
