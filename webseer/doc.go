// Package webseer provides a client for the Webseer web search and fetch API.
//
// The client wraps the HTTP API with typed operations, a per-request timeout,
// and a structured error taxonomy. Every operation performs exactly one
// request attempt; there are no retries, no caching, and no shared mutable
// state, so one client serves any number of concurrent calls.
//
// # Features
//
//   - Search the web for an AI-written answer, with domain filters
//   - Fetch a page and run a prompt against its content
//   - Raw and extract variants with output-format selection
//   - Batch search with bounded concurrency
//   - Context-aware operations for graceful cancellation
//
// # Usage
//
//	client, err := webseer.NewClient(apiKey, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	answer, err := client.Search(ctx, "latest Go release", nil)
//	if err != nil {
//	    var apiErr *webseer.APIError
//	    if errors.As(err, &apiErr) && apiErr.Timeout() {
//	        // Handle timeout
//	    }
//	}
package webseer
