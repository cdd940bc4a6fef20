package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wealthdesk/advisor-agent/internal/advisor"
	"github.com/wealthdesk/advisor-agent/pkg/log"
)

// FundLookupTool exposes the fixed fund catalog to the model
type FundLookupTool struct{}

func NewFundLookupTool() *FundLookupTool {
	return &FundLookupTool{}
}

func (t *FundLookupTool) Name() string {
	return "lookup_funds"
}

func (t *FundLookupTool) Description() string {
	return `Retrieve investment funds matching the given criteria.
All criteria are optional and combined with AND: risk level, minimum
Morningstar rating, maximum expense ratio, and maximum minimum-investment
amount. Returns a JSON array of fund records; an empty array means no fund
matched.`
}

func (t *FundLookupTool) Parameters() json.RawMessage {
	schema := `{
		"type": "object",
		"properties": {
			"risk_level": {
				"type": "string",
				"enum": ["Low", "Moderate", "High"],
				"description": "Exact fund risk level"
			},
			"min_rating": {
				"type": "integer",
				"minimum": 1,
				"maximum": 5,
				"description": "Minimum Morningstar rating (1-5)"
			},
			"max_expense_ratio": {
				"type": "number",
				"description": "Maximum annual expense ratio in percent (e.g., 0.9)"
			},
			"max_investment": {
				"type": "integer",
				"description": "Maximum acceptable minimum-investment amount in dollars"
			}
		}
	}`
	return json.RawMessage(schema)
}

func (t *FundLookupTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	var criteria advisor.FundCriteria
	if err := json.Unmarshal(args, &criteria); err != nil {
		// Malformed arguments degrade to an empty result set.
		log.Warn("tools: lookup_funds got malformed arguments: %v", err)
		return ToolResult{Content: "[]"}, nil
	}

	funds := advisor.LookupFunds(criteria)

	payload, err := json.MarshalIndent(funds, "", "  ")
	if err != nil {
		return ToolResult{
			Content: fmt.Sprintf("Failed to encode fund records: %v", err),
			IsError: true,
		}, nil
	}

	return ToolResult{Content: string(payload)}, nil
}
