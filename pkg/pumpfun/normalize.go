package pumpfun

import (
	"bytes"
	"encoding/json"
)

// listKeys are the envelope keys the API uses interchangeably to wrap list
// results, in lookup order.
var listKeys = []string{"data", "items", "tokens", "trades", "replies", "balances", "coins"}

var emptyList = json.RawMessage("[]")

// extractList returns the JSON array contained in body, whether the body is a
// bare array or an object wrapping one under a known envelope key. Anything
// else, including malformed JSON, yields an empty array.
func extractList(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return emptyList
	}

	switch trimmed[0] {
	case '[':
		if json.Valid(trimmed) {
			return trimmed
		}
	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return emptyList
		}
		for _, key := range listKeys {
			raw, ok := envelope[key]
			if !ok {
				continue
			}
			inner := bytes.TrimSpace(raw)
			if len(inner) > 0 && inner[0] == '[' {
				return inner
			}
		}
	}

	return emptyList
}
