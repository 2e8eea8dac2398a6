package handlers

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// emptyObject stands in for an absent body
var emptyObject = json.RawMessage(`{}`)

// BodyResult is the outcome of parsing a request body as JSON. Exactly one
// of Value and Invalid is meaningful.
type BodyResult struct {
	Value   json.RawMessage
	Invalid bool
}

// ParseJSONBody validates body as a single UTF-8 JSON value. An absent body
// parses as an empty object.
func ParseJSONBody(body []byte) BodyResult {
	if len(body) == 0 {
		return BodyResult{Value: emptyObject}
	}
	trimmed := bytes.TrimSpace(body)
	// json.Valid lets invalid UTF-8 through inside strings
	if len(trimmed) == 0 || !utf8.Valid(trimmed) || !json.Valid(trimmed) {
		return BodyResult{Invalid: true}
	}
	return BodyResult{Value: json.RawMessage(trimmed)}
}
