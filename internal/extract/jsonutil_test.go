package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		found bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"surrounded by prose", "Sure, here you go:\n{\"a\":1}\nHope that helps!", `{"a":1}`, true},
		{"spans nested braces", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`, true},
		{"no braces", "nothing to see here", "", false},
		{"only opening brace", "broken {", "", false},
		{"closing before opening", "} backwards {", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := firstJSONObject(tt.in)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeModelJSON_BraceRegion(t *testing.T) {
	var v map[string]interface{}
	ok := decodeModelJSON("The result is:\n{\"page_type\":\"Pharmacy\"}\nDone.", &v)
	require.True(t, ok)
	assert.Equal(t, "Pharmacy", v["page_type"])
}

func TestDecodeModelJSON_VerbatimNonObject(t *testing.T) {
	// No brace-delimited object, but the raw text is valid JSON on its own.
	var v []interface{}
	ok := decodeModelJSON(`[1,2,3]`, &v)
	require.True(t, ok)
	assert.Len(t, v, 3)
}

func TestDecodeModelJSON_PlainProse(t *testing.T) {
	var v map[string]interface{}
	ok := decodeModelJSON("I could not find any line items on this page.", &v)
	assert.False(t, ok)
}
