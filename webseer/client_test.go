package webseer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{WithBaseURL(server.URL)}, opts...)
	client, err := NewClient("test-key", zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func writeResult(w http.ResponseWriter, result string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"result": result})
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		wantErr bool
	}{
		{name: "valid key", apiKey: "test-key"},
		{name: "empty key", apiKey: "", wantErr: true},
		{name: "whitespace key", apiKey: " \t\n ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.apiKey, zerolog.Nop())
			if tt.wantErr {
				require.Error(t, err)
				apiErr, ok := AsAPIError(err)
				require.True(t, ok)
				assert.Equal(t, KindAuthentication, apiErr.Kind)
				assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultBaseURL, client.baseURL)
			assert.Equal(t, DefaultTimeout, client.timeout)
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("trailing slash stripped", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithBaseURL("https://example.test/"))
		require.NoError(t, err)
		assert.Equal(t, "https://example.test", client.baseURL)
	})

	t.Run("key trimmed", func(t *testing.T) {
		client, err := NewClient("  test-key  ", logger)
		require.NoError(t, err)
		assert.Equal(t, "test-key", client.apiKey)
	})

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.timeout)
	})

	t.Run("non-positive timeout ignored", func(t *testing.T) {
		client, err := NewClient("test-key", logger, WithTimeout(-1))
		require.NoError(t, err)
		assert.Equal(t, DefaultTimeout, client.timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{}
		client, err := NewClient("test-key", logger, WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Same(t, custom, client.httpClient)
	})
}

func TestFetch_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/fetch", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body := decodeBody(t, r)
		assert.Equal(t, "https://example.test/page", body["url"])
		assert.Equal(t, "summarize this", body["prompt"])

		writeResult(w, "a concise summary")
	})

	result, err := client.Fetch(context.Background(), "https://example.test/page", "summarize this")
	require.NoError(t, err)
	assert.Equal(t, "a concise summary", result)
}

func TestFetch_EmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, "")
	})

	result, err := client.Fetch(context.Background(), "https://example.test", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "", result)
}

func TestSearch_BodyEncoding(t *testing.T) {
	tests := []struct {
		name string
		opts *SearchOptions
		want map[string]any
	}{
		{
			name: "nil options",
			opts: nil,
			want: map[string]any{"query": "golang"},
		},
		{
			name: "empty filters omitted",
			opts: &SearchOptions{AllowedDomains: []string{}, BlockedDomains: []string{}},
			want: map[string]any{"query": "golang"},
		},
		{
			name: "blocked domains in order",
			opts: &SearchOptions{BlockedDomains: []string{"b.test", "a.test", "c.test"}},
			want: map[string]any{
				"query":           "golang",
				"blocked_domains": []any{"b.test", "a.test", "c.test"},
			},
		},
		{
			name: "both filters",
			opts: &SearchOptions{
				AllowedDomains: []string{"go.dev"},
				BlockedDomains: []string{"spam.test"},
			},
			want: map[string]any{
				"query":           "golang",
				"allowed_domains": []any{"go.dev"},
				"blocked_domains": []any{"spam.test"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]any
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/search", r.URL.Path)
				got = decodeBody(t, r)
				writeResult(w, "ok")
			})

			_, err := client.Search(context.Background(), "golang", tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearch_RoundTrip(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, "Go 1.24 is the latest release")
	})

	result, err := client.Search(context.Background(), "latest Go release", nil)
	require.NoError(t, err)
	assert.Equal(t, "Go 1.24 is the latest release", result)
}

func TestSearch_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		writeResult(w, "too late")
	}, WithTimeout(100*time.Millisecond))

	start := time.Now()
	_, err := client.Search(context.Background(), "slow", nil)
	elapsed := time.Since(start)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok, "expected APIError, got %v", err)
	assert.Equal(t, KindTimeout, apiErr.Kind)
	assert.Equal(t, http.StatusGatewayTimeout, apiErr.StatusCode)
	assert.Empty(t, apiErr.Detail)
	assert.Less(t, elapsed, 400*time.Millisecond, "timeout should fire well before the server responds")
}

func TestSearch_CallerCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
		writeResult(w, "too late")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, "aborted", nil)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok, "expected APIError, got %v", err)
	assert.Equal(t, KindTimeout, apiErr.Kind)
	assert.Equal(t, http.StatusGatewayTimeout, apiErr.StatusCode)
}

func TestSearch_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewClient("test-key", zerolog.Nop(), WithBaseURL(url))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "unreachable", nil)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok, "expected APIError, got %v", err)
	assert.Equal(t, KindNetwork, apiErr.Kind)
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Detail)
}

func TestFetch_InvalidResponseShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"unexpected": "shape"}`))
	})

	_, err := client.Fetch(context.Background(), "https://example.test", "prompt")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok, "expected APIError, got %v", err)
	assert.Equal(t, KindInvalidResponse, apiErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestServerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   Kind
		wantDetail string
	}{
		{
			name:       "401 with detail",
			status:     http.StatusUnauthorized,
			body:       `{"detail": "key revoked"}`,
			wantKind:   KindAuthentication,
			wantDetail: "key revoked",
		},
		{
			name:       "402",
			status:     http.StatusPaymentRequired,
			body:       `{"detail": "balance exhausted"}`,
			wantKind:   KindInsufficientCredits,
			wantDetail: "balance exhausted",
		},
		{
			name:       "403",
			status:     http.StatusForbidden,
			body:       `{"message": "account suspended"}`,
			wantKind:   KindInactiveAccount,
			wantDetail: "account suspended",
		},
		{
			name:       "404",
			status:     http.StatusNotFound,
			body:       `{"detail": "no such endpoint"}`,
			wantKind:   KindNotFound,
			wantDetail: "no such endpoint",
		},
		{
			name:       "504 from server",
			status:     http.StatusGatewayTimeout,
			body:       `{"detail": "upstream timed out"}`,
			wantKind:   KindTimeout,
			wantDetail: "upstream timed out",
		},
		{
			name:       "400",
			status:     http.StatusBadRequest,
			body:       `{"detail": "url is not absolute"}`,
			wantKind:   KindValidation,
			wantDetail: "url is not absolute",
		},
		{
			name:       "other status",
			status:     http.StatusTeapot,
			body:       "short and stout",
			wantKind:   KindAPI,
			wantDetail: "short and stout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Search(context.Background(), "query", nil)
			apiErr, ok := AsAPIError(err)
			require.True(t, ok, "expected APIError, got %v", err)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.Equal(t, tt.body, string(apiErr.Raw))
		})
	}
}

func TestClientUsableAfterFailure(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"detail": "broke"}`))
			return
		}
		writeResult(w, "recovered")
	})

	_, err := client.Search(context.Background(), "first", nil)
	require.Error(t, err)

	result, err := client.Search(context.Background(), "second", nil)
	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
}

func TestRawVariants(t *testing.T) {
	t.Run("raw fetch passes selectors through", func(t *testing.T) {
		var got map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/raw_fetch", r.URL.Path)
			got = decodeBody(t, r)
			writeResult(w, "raw content")
		})

		off := false
		result, err := client.RawFetch(context.Background(), "https://example.test", "prompt", &RawOptions{
			Format:       FormatMarkdown,
			UseSafeguard: &off,
		})
		require.NoError(t, err)
		assert.Equal(t, "raw content", result)
		assert.Equal(t, map[string]any{
			"url":           "https://example.test",
			"prompt":        "prompt",
			"format":        "markdown",
			"use_safeguard": false,
		}, got)
	})

	t.Run("raw fetch omits unset selectors", func(t *testing.T) {
		var got map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			got = decodeBody(t, r)
			writeResult(w, "raw content")
		})

		_, err := client.RawFetch(context.Background(), "https://example.test", "prompt", nil)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"url":    "https://example.test",
			"prompt": "prompt",
		}, got)
	})

	t.Run("raw search", func(t *testing.T) {
		var got map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/raw_search", r.URL.Path)
			got = decodeBody(t, r)
			writeResult(w, "raw answer")
		})

		_, err := client.RawSearch(context.Background(), "golang", &RawSearchOptions{
			BlockedDomains: []string{"spam.test"},
			Format:         FormatText,
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"query":           "golang",
			"blocked_domains": []any{"spam.test"},
			"format":          "text",
		}, got)
	})

	t.Run("extract", func(t *testing.T) {
		var got map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/extract", r.URL.Path)
			got = decodeBody(t, r)
			writeResult(w, "# Page")
		})

		result, err := client.Extract(context.Background(), "https://example.test", &ExtractOptions{Format: FormatMarkdown})
		require.NoError(t, err)
		assert.Equal(t, "# Page", result)
		assert.Equal(t, map[string]any{
			"url":    "https://example.test",
			"format": "markdown",
		}, got)
	})
}
