package agent

import "errors"

// ErrMaxIterations is returned when the tool-calling loop exhausts its
// round-trip budget without the model producing a final answer.
var ErrMaxIterations = errors.New("max iterations reached without a final answer")

// ErrEmptyMessage is returned for blank user input before any model call.
var ErrEmptyMessage = errors.New("user message is empty")

// Request represents one user turn handed to the advisor
type Request struct {
	// SessionID identifies the caller's conversation.
	// Empty means "start a new session"; the id used is echoed in the Result.
	SessionID string

	// UserMessage is the user's message
	UserMessage string

	// MaxIterations overrides the configured round-trip ceiling when > 0
	MaxIterations int
}

// Result represents the outcome of one advisor turn
type Result struct {
	// Content is the final text response from the model
	Content string

	// SessionID is the session the turn was recorded under
	SessionID string

	// ToolCalls records every tool call dispatched during this turn
	ToolCalls []ToolCallRecord

	// Iterations is the number of model round-trips used
	Iterations int
}

// ToolCallRecord records a single tool call and its result
type ToolCallRecord struct {
	// ToolName is the name of the tool that was called
	ToolName string

	// Arguments is the JSON arguments passed to the tool
	Arguments string

	// Result is the output from the tool
	Result string

	// IsError indicates if the tool execution resulted in an error
	IsError bool
}
