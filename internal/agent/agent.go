package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/wealthdesk/advisor-agent/internal/llm"
	"github.com/wealthdesk/advisor-agent/internal/session"
	"github.com/wealthdesk/advisor-agent/internal/tools"
	"github.com/wealthdesk/advisor-agent/pkg/log"
)

// Advisor drives the tool-calling loop for one user turn at a time: send the
// session transcript plus the tool catalog to the model, dispatch any
// requested tool calls, feed the results back, and repeat until the model
// answers in plain text or the round-trip budget runs out.
type Advisor struct {
	client        *llm.Client
	registry      *tools.Registry
	sessions      *session.Store
	maxIterations int
}

// NewAdvisor creates an advisor agent.
// maxIterations <= 0 falls back to 10.
func NewAdvisor(client *llm.Client, registry *tools.Registry, sessions *session.Store, maxIterations int) *Advisor {
	if maxIterations <= 0 {
		maxIterations = 10
	}
	return &Advisor{
		client:        client,
		registry:      registry,
		sessions:      sessions,
		maxIterations: maxIterations,
	}
}

// Chat processes one user turn against the caller's session.
//
// The session's system turn is upserted first so updated context takes effect
// every turn, then the user turn is appended. Every tool call the model
// requests is answered with exactly one tool turn, in the order received,
// before the model is invoked again.
//
// Returns ErrEmptyMessage for blank input and ErrMaxIterations when the
// round-trip budget is exhausted without a final answer.
func (a *Advisor) Chat(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.UserMessage) == "" {
		return nil, ErrEmptyMessage
	}

	sess, sessionID := a.sessions.GetOrCreate(req.SessionID)

	// Hold the session for the whole turn. A concurrent request on the same
	// id must not slip its turns between an assistant turn and the tool
	// turns answering it; the upstream API rejects such transcripts.
	sess.LockTurn()
	defer sess.UnlockTurn()

	sess.SetSystem(buildSystemPrompt(req.UserMessage))
	sess.Append(llm.Message{Role: "user", Content: req.UserMessage})

	// Session-scoped tools (email drafting) reach the session through ctx.
	ctx = tools.WithSession(ctx, sess)

	result := &Result{
		SessionID: sessionID,
		ToolCalls: make([]ToolCallRecord, 0),
	}

	toolDefs := a.registry.ToOpenAIFormat()
	maxIterations := a.maxIterations
	if req.MaxIterations > 0 {
		maxIterations = req.MaxIterations
	}

	for i := 0; i < maxIterations; i++ {
		result.Iterations++

		resp, err := a.client.ChatCompletionWithTools(ctx, sess.Snapshot(), toolDefs, nil)
		if err != nil {
			return nil, fmt.Errorf("LLM call failed at iteration %d: %w", i+1, err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no choices in response at iteration %d", i+1)
		}

		assistantMsg := resp.Choices[0].Message

		// No tool calls means the model produced the final answer.
		if len(assistantMsg.ToolCalls) == 0 {
			sess.Append(assistantMsg)
			result.Content = assistantMsg.Content
			return result, nil
		}

		// Record the assistant turn, then answer every requested call in
		// order before the next model invocation. The upstream API rejects
		// transcripts with unanswered tool calls.
		sess.Append(assistantMsg)
		for _, toolCall := range assistantMsg.ToolCalls {
			record := a.dispatch(ctx, toolCall)
			result.ToolCalls = append(result.ToolCalls, record)

			sess.Append(llm.Message{
				Role:       "tool",
				Content:    record.Result,
				ToolCallID: toolCall.ID,
			})

			log.Info("agent: tool %s executed (session %s, error=%v)", toolCall.Function.Name, sessionID, record.IsError)
		}
	}

	return nil, fmt.Errorf("%w (budget %d, session %s)", ErrMaxIterations, maxIterations, sessionID)
}

// Reset clears the session with the given id.
func (a *Advisor) Reset(sessionID string) bool {
	return a.sessions.Reset(sessionID)
}

func (a *Advisor) dispatch(ctx context.Context, toolCall llm.ToolCall) ToolCallRecord {
	toolResult := a.registry.Dispatch(ctx, toolCall.Function.Name, []byte(toolCall.Function.Arguments))
	return ToolCallRecord{
		ToolName:  toolCall.Function.Name,
		Arguments: toolCall.Function.Arguments,
		Result:    toolResult.Content,
		IsError:   toolResult.IsError,
	}
}
