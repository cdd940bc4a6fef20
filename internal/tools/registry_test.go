package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTool struct {
	name   string
	result ToolResult
	err    error
}

func (t stubTool) Name() string        { return t.name }
func (t stubTool) Description() string { return "stub" }
func (t stubTool) Parameters() json.RawMessage {
	return json.RawMessage(`{"type":"object","properties":{}}`)
}
func (t stubTool) Execute(context.Context, json.RawMessage) (ToolResult, error) {
	return t.result, t.err
}

func TestRegistry_RegisterAndList(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	require.NoError(t, registry.Register(stubTool{name: "beta"}))
	require.NoError(t, registry.Register(stubTool{name: "alpha"}))

	assert.Equal(t, 2, registry.Count())
	assert.Equal(t, []string{"alpha", "beta"}, registry.List())

	err := registry.Register(stubTool{name: "alpha"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	require.Error(t, registry.Register(stubTool{name: ""}))
}

func TestRegistry_ToOpenAIFormat(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	require.NoError(t, registry.Register(NewClientLookupTool()))
	require.NoError(t, registry.Register(NewFundLookupTool()))

	defs := registry.ToOpenAIFormat()
	require.Len(t, defs, 2)
	for _, def := range defs {
		assert.Equal(t, "function", def.Type)
		assert.NotEmpty(t, def.Function.Name)
		assert.NotEmpty(t, def.Function.Description)
		assert.True(t, json.Valid(def.Function.Parameters))
	}
}

func TestDispatch_UnknownToolKeepsLoopAlive(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	result := registry.Dispatch(context.Background(), "no_such_tool", json.RawMessage(`{}`))

	assert.True(t, result.IsError)
	assert.Equal(t, unknownToolReply, result.Content)
}

func TestDispatch_ExecutesRegisteredTool(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	require.NoError(t, registry.Register(stubTool{name: "echo", result: ToolResult{Content: "ok"}}))

	result := registry.Dispatch(context.Background(), "echo", json.RawMessage(`{}`))
	assert.False(t, result.IsError)
	assert.Equal(t, "ok", result.Content)
}

func TestDispatch_ToolErrorBecomesResult(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	require.NoError(t, registry.Register(stubTool{name: "broken", err: assert.AnError}))

	result := registry.Dispatch(context.Background(), "broken", json.RawMessage(`{}`))
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content, "Tool execution error")
}
