package webseer

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// decodeResult validates that raw is a JSON object with a required string
// field "result" and returns that field. Any other shape is an invalid
// response even when the HTTP status was 2xx.
func decodeResult(raw []byte) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", invalidResponse(raw)
	}

	field, ok := fields["result"]
	if !ok || bytes.Equal(bytes.TrimSpace(field), []byte("null")) {
		return "", invalidResponse(raw)
	}

	var result string
	if err := json.Unmarshal(field, &result); err != nil {
		return "", invalidResponse(raw)
	}
	return result, nil
}

func invalidResponse(raw []byte) *APIError {
	return &APIError{Kind: KindInvalidResponse, StatusCode: http.StatusInternalServerError, Raw: raw}
}
