package pumpfun

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractListNormalizesEnvelopes(t *testing.T) {
	payload := `[{"mint": "a"}, {"mint": "b"}]`

	tests := []struct {
		name string
		body string
	}{
		{"bare array", payload},
		{"data envelope", `{"data": ` + payload + `}`},
		{"items envelope", `{"items": ` + payload + `}`},
		{"tokens envelope", `{"tokens": ` + payload + `}`},
		{"trades envelope", `{"trades": ` + payload + `}`},
		{"replies envelope", `{"replies": ` + payload + `}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokens []Token
			require.NoError(t, json.Unmarshal(extractList([]byte(tt.body)), &tokens))
			require.Len(t, tokens, 2)
			assert.Equal(t, "a", tokens[0].Mint)
			assert.Equal(t, "b", tokens[1].Mint)
		})
	}
}

func TestExtractListMalformedYieldsEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"whitespace", `   `},
		{"invalid json", `{"data": [}`},
		{"truncated array", `[{"mint": "a"`},
		{"unknown envelope key", `{"results": [{"mint": "a"}]}`},
		{"scalar", `42`},
		{"string", `"nope"`},
		{"null", `null`},
		{"envelope with non-array value", `{"data": {"mint": "a"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := []Token{}
			err := json.Unmarshal(extractList([]byte(tt.body)), &tokens)
			require.NoError(t, err)
			assert.Empty(t, tokens)
		})
	}
}

func TestExtractListPrefersDataKey(t *testing.T) {
	body := `{"items": [{"mint": "from-items"}], "data": [{"mint": "from-data"}]}`

	var tokens []Token
	require.NoError(t, json.Unmarshal(extractList([]byte(body)), &tokens))
	require.Len(t, tokens, 1)
	assert.Equal(t, "from-data", tokens[0].Mint)
}

func TestNumericUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `1.5`, 1.5},
		{"integer", `42`, 42},
		{"numeric string", `"0.00001234"`, 0.00001234},
		{"empty string", `""`, 0},
		{"garbage string", `"abc"`, 0},
		{"null", `null`, 0},
		{"object", `{"x": 1}`, 0},
		{"bool", `true`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Numeric
			require.NoError(t, json.Unmarshal([]byte(tt.in), &n))
			assert.Equal(t, tt.want, n.Float64())
		})
	}
}

func TestNumericInsideRecord(t *testing.T) {
	body := `{"mint": "m", "price": "0.5", "total_supply": 1000000000}`

	var token Token
	require.NoError(t, json.Unmarshal([]byte(body), &token))
	assert.Equal(t, 0.5, token.Price.Float64())
	assert.Equal(t, 1e9, token.TotalSupply.Float64())
}
