package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthdesk/advisor-agent/internal/advisor"
)

func TestClientLookup_Boston(t *testing.T) {
	t.Parallel()

	tool := NewClientLookupTool()
	result, err := tool.Execute(context.Background(), json.RawMessage(`{"city":"Boston"}`))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var clients []advisor.Client
	require.NoError(t, json.Unmarshal([]byte(result.Content), &clients))
	require.Len(t, clients, 5)
	assert.Equal(t, "Lawrence Summers", clients[0].Name)
}

func TestClientLookup_MalformedArgsDegradeToEmpty(t *testing.T) {
	t.Parallel()

	tool := NewClientLookupTool()
	result, err := tool.Execute(context.Background(), json.RawMessage(`{"city": 42`))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "[]", result.Content)
}

func TestClientLookup_NoFilterIsEmptyArray(t *testing.T) {
	t.Parallel()

	tool := NewClientLookupTool()
	result, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	require.NoError(t, err)

	var clients []advisor.Client
	require.NoError(t, json.Unmarshal([]byte(result.Content), &clients))
	assert.Empty(t, clients)
}

func TestFundLookup_Criteria(t *testing.T) {
	t.Parallel()

	tool := NewFundLookupTool()
	result, err := tool.Execute(context.Background(), json.RawMessage(`{"risk_level":"High","max_expense_ratio":1.0}`))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var funds []advisor.Fund
	require.NoError(t, json.Unmarshal([]byte(result.Content), &funds))
	require.Len(t, funds, 1)
	assert.Equal(t, "EMBFX", funds[0].Ticker)
}

func TestFundLookup_MalformedArgsDegradeToEmpty(t *testing.T) {
	t.Parallel()

	tool := NewFundLookupTool()
	result, err := tool.Execute(context.Background(), json.RawMessage(`{"min_rating":"five"}`))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "[]", result.Content)
}

func TestWeatherStub(t *testing.T) {
	t.Parallel()

	tool := NewWeatherTool()

	result, err := tool.Execute(context.Background(), json.RawMessage(`{"city":"Boston"}`))
	require.NoError(t, err)
	assert.Contains(t, result.Content, "Boston")

	result, err = tool.Execute(context.Background(), json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Contains(t, result.Content, "unavailable")
}
