package webseer

import "encoding/json"

// ToolDefinition describes one client operation as an agent-framework tool.
// It is static descriptive data; wiring the tool into a framework and
// dispatching calls is up to the integration.
type ToolDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// ToolDefinitions returns descriptors for the search and fetch operations.
func ToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        "webseer_search",
			Description: "Search the web and return an AI-written answer grounded in current results.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"query": {"type": "string", "description": "The search query."},
					"allowed_domains": {"type": "array", "items": {"type": "string"}, "description": "Restrict results to these domains."},
					"blocked_domains": {"type": "array", "items": {"type": "string"}, "description": "Exclude these domains from results."}
				},
				"required": ["query"]
			}`),
		},
		{
			Name:        "webseer_fetch",
			Description: "Fetch a web page and answer a prompt about its content.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"url": {"type": "string", "description": "The page to fetch."},
					"prompt": {"type": "string", "description": "What to answer about the page."}
				},
				"required": ["url", "prompt"]
			}`),
		},
	}
}
