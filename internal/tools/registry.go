package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/wealthdesk/advisor-agent/internal/llm"
	"github.com/wealthdesk/advisor-agent/pkg/log"
)

// unknownToolReply is the neutral fallback handed to the model when it
// requests a name outside the catalog. It keeps the loop alive instead of
// aborting the request.
const unknownToolReply = "I'm sorry, I couldn't process that request."

// Registry manages available tools for the agent. The catalog offered to the
// model and the dispatch table are the same structure, so a name the model
// was shown always has a handler.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry
// Returns an error if a tool with the same name already exists
func (r *Registry) Register(tool Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Name()
	if name == "" {
		return fmt.Errorf("tool name must not be empty")
	}
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %q already registered", name)
	}

	r.tools[name] = tool
	return nil
}

// Get retrieves a tool by name
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	return tool, exists
}

// List returns all registered tool names, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered tools
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// ToOpenAIFormat converts all registered tools to OpenAI tool definition format
func (r *Registry) ToOpenAIFormat() []llm.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	definitions := make([]llm.ToolDefinition, 0, len(names))
	for _, name := range names {
		tool := r.tools[name]
		definitions = append(definitions, llm.ToolDefinition{
			Type: "function",
			Function: llm.Function{
				Name:        tool.Name(),
				Description: tool.Description(),
				Parameters:  tool.Parameters(),
			},
		})
	}
	return definitions
}

// Dispatch looks up the named tool and executes it. Unknown names and tool
// errors are returned as error-flagged results, never as Go errors, so the
// caller can feed them back to the model and keep the loop alive.
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) ToolResult {
	tool, exists := r.Get(name)
	if !exists {
		log.Warn("tools: dispatch of unknown tool %q", name)
		return ToolResult{Content: unknownToolReply, IsError: true}
	}

	result, err := tool.Execute(ctx, args)
	if err != nil {
		log.Error("tools: %s execution failed: %v", name, err)
		return ToolResult{Content: fmt.Sprintf("Tool execution error: %v", err), IsError: true}
	}
	return result
}
