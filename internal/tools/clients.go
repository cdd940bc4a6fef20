package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wealthdesk/advisor-agent/internal/advisor"
	"github.com/wealthdesk/advisor-agent/pkg/log"
)

// ClientLookupTool exposes the fixed client dataset to the model
type ClientLookupTool struct{}

// ClientLookupArgs represents the arguments for a client lookup
type ClientLookupArgs struct {
	City       string `json:"city,omitempty"`
	ClientName string `json:"client_name,omitempty"`
}

func NewClientLookupTool() *ClientLookupTool {
	return &ClientLookupTool{}
}

func (t *ClientLookupTool) Name() string {
	return "lookup_clients"
}

func (t *ClientLookupTool) Description() string {
	return `Look up advisory clients by city or by exact client name.
Returns a JSON array of client records including age, profession, affiliation,
TIAA membership, invested assets, days since last contact, and advisory notes.
When asked about the clients in a city, share only names and ages; include the
full record only when asked about a specific client.`
}

func (t *ClientLookupTool) Parameters() json.RawMessage {
	schema := `{
		"type": "object",
		"properties": {
			"city": {
				"type": "string",
				"description": "City to list clients for (e.g., 'Boston')"
			},
			"client_name": {
				"type": "string",
				"description": "Full name of a specific client to look up"
			}
		}
	}`
	return json.RawMessage(schema)
}

func (t *ClientLookupTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	var lookupArgs ClientLookupArgs
	if err := json.Unmarshal(args, &lookupArgs); err != nil {
		// Malformed arguments degrade to an empty result set.
		log.Warn("tools: lookup_clients got malformed arguments: %v", err)
		return ToolResult{Content: "[]"}, nil
	}

	clients := advisor.LookupClients(lookupArgs.City, lookupArgs.ClientName)

	payload, err := json.MarshalIndent(clients, "", "  ")
	if err != nil {
		return ToolResult{
			Content: fmt.Sprintf("Failed to encode client records: %v", err),
			IsError: true,
		}, nil
	}

	return ToolResult{Content: string(payload)}, nil
}
