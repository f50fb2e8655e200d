package middleware

import (
	"encoding/json"
	"testing"
)

// jsonField returns the raw JSON of one top-level field of body.
func jsonField(t *testing.T, body []byte, field string) string {
	t.Helper()
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("response is not a JSON object: %v: %s", err, body)
	}
	raw, ok := m[field]
	if !ok {
		t.Fatalf("field %q missing from %s", field, body)
	}
	return string(raw)
}
