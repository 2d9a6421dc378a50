package validation

import (
	"bytes"
	"encoding/json"
)

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

// presentButNull reports a field sent as an explicit null, which no payload accepts.
func presentButNull(raw map[string]json.RawMessage, field string) bool {
	return hasJSONField(raw, field) && isJSONNull(raw[field])
}
