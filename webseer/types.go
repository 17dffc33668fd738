package webseer

// Format selects the output representation for the raw and extract operations.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatText     Format = "text"
)

// SearchOptions holds optional parameters for Search.
type SearchOptions struct {
	// AllowedDomains restricts results to these domains. An empty slice is
	// treated the same as unset and omitted from the request.
	AllowedDomains []string
	// BlockedDomains excludes these domains from results.
	BlockedDomains []string
}

// RawOptions holds optional parameters for RawFetch.
type RawOptions struct {
	// Format selects the output representation.
	Format Format
	// UseSafeguard toggles the server-side content safeguard. Nil leaves the
	// server default in place.
	UseSafeguard *bool
}

// RawSearchOptions holds optional parameters for RawSearch.
type RawSearchOptions struct {
	AllowedDomains []string
	BlockedDomains []string
	Format         Format
	UseSafeguard   *bool
}

// ExtractOptions holds optional parameters for Extract.
type ExtractOptions struct {
	Format       Format
	UseSafeguard *bool
}

// SearchResult pairs one query from a batch with its outcome.
type SearchResult struct {
	Query  string
	Result string
	Err    error
}

// Request bodies. Optional fields carry omitempty so unset or empty values
// never reach the wire.

type fetchRequest struct {
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
}

type searchRequest struct {
	Query          string   `json:"query"`
	AllowedDomains []string `json:"allowed_domains,omitempty"`
	BlockedDomains []string `json:"blocked_domains,omitempty"`
}

type rawFetchRequest struct {
	URL          string `json:"url"`
	Prompt       string `json:"prompt"`
	Format       string `json:"format,omitempty"`
	UseSafeguard *bool  `json:"use_safeguard,omitempty"`
}

type rawSearchRequest struct {
	Query          string   `json:"query"`
	AllowedDomains []string `json:"allowed_domains,omitempty"`
	BlockedDomains []string `json:"blocked_domains,omitempty"`
	Format         string   `json:"format,omitempty"`
	UseSafeguard   *bool    `json:"use_safeguard,omitempty"`
}

type extractRequest struct {
	URL          string `json:"url"`
	Format       string `json:"format,omitempty"`
	UseSafeguard *bool  `json:"use_safeguard,omitempty"`
}

// errorBody models the documented error payload. The API sends either field.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}
