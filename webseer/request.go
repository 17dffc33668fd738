package webseer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of an error response is kept for diagnostics.
const maxErrorBody = 1 << 20 // 1 MiB

// do performs exactly one POST attempt against path and returns the raw
// response body for validation. Failures are mapped to *APIError: ctx firing
// first (deadline or caller cancellation) yields KindTimeout, any other
// transport failure KindNetwork, and a non-2xx status its kind per mapStatus.
// There are no retries at any layer.
func (c *Client) do(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &APIError{Kind: KindTimeout, StatusCode: http.StatusGatewayTimeout}
		}
		return nil, &APIError{Kind: KindNetwork, StatusCode: 0, Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, mapStatus(resp.StatusCode, extractDetail(raw, resp.Status), raw)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &APIError{Kind: KindTimeout, StatusCode: http.StatusGatewayTimeout}
		}
		return nil, &APIError{Kind: KindNetwork, StatusCode: 0, Detail: err.Error()}
	}
	return raw, nil
}

// extractDetail pulls the server explanation out of an error body. It tries
// the documented {"detail"} and {"message"} fields, then falls back to the
// body text and finally the status line.
func extractDetail(raw []byte, statusLine string) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Detail != "" {
			return body.Detail
		}
		if body.Message != "" {
			return body.Message
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return statusLine
}
