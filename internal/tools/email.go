package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wealthdesk/advisor-agent/internal/session"
	"github.com/wealthdesk/advisor-agent/pkg/log"
)

// EmailSender is the transport used by the confirm step.
// Failures come back as descriptive strings, not errors.
type EmailSender interface {
	Send(recipient, subject, body string) string
}

// DraftEmailTool prepares an email without sending it. The draft is stored on
// the caller's session under a fresh id; only a later confirm_send_email with
// that id actually transmits. This makes user confirmation structural instead
// of relying on the model obeying prompt instructions.
type DraftEmailTool struct{}

// DraftEmailArgs represents the arguments for drafting an email
type DraftEmailArgs struct {
	RecipientEmail string `json:"recipient_email"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
}

func NewDraftEmailTool() *DraftEmailTool {
	return &DraftEmailTool{}
}

func (t *DraftEmailTool) Name() string {
	return "draft_email"
}

func (t *DraftEmailTool) Description() string {
	return `Prepare an email draft for a client. Nothing is sent yet.
Returns the rendered draft and a draft_id. Present the draft to the user,
incorporate any edits by drafting again, and only after the user explicitly
confirms call confirm_send_email with the draft_id.`
}

func (t *DraftEmailTool) Parameters() json.RawMessage {
	schema := `{
		"type": "object",
		"properties": {
			"recipient_email": {
				"type": "string",
				"description": "Email address of the recipient"
			},
			"subject": {
				"type": "string",
				"description": "Subject line of the email"
			},
			"body": {
				"type": "string",
				"description": "Plain-text body of the email"
			}
		},
		"required": ["recipient_email", "subject", "body"]
	}`
	return json.RawMessage(schema)
}

func (t *DraftEmailTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	sess, ok := SessionFrom(ctx)
	if !ok {
		return ToolResult{Content: "No active session; the draft cannot be stored.", IsError: true}, nil
	}

	var draftArgs DraftEmailArgs
	if err := json.Unmarshal(args, &draftArgs); err != nil {
		return ToolResult{Content: fmt.Sprintf("Failed to parse draft arguments: %v", err), IsError: true}, nil
	}
	if draftArgs.RecipientEmail == "" || draftArgs.Subject == "" || draftArgs.Body == "" {
		return ToolResult{Content: "A draft needs recipient_email, subject, and body.", IsError: true}, nil
	}

	draft := session.EmailDraft{
		ID:        uuid.NewString(),
		Recipient: draftArgs.RecipientEmail,
		Subject:   draftArgs.Subject,
		Body:      draftArgs.Body,
		CreatedAt: time.Now(),
	}
	sess.PutDraft(draft)
	log.Info("tools: draft %s prepared for %s", draft.ID, draft.Recipient)

	content := fmt.Sprintf(
		"Here's a draft of the email:\n\nTo: %s\nSubject: %s\n\n%s\n\ndraft_id: %s\nShow this draft to the user and ask whether to send it. Send only after explicit confirmation, using confirm_send_email with the draft_id.",
		draft.Recipient, draft.Subject, draft.Body, draft.ID,
	)
	return ToolResult{Content: content}, nil
}

// ConfirmSendEmailTool transmits a previously drafted email. It only honors
// draft ids issued by draft_email on the same session, and each id exactly
// once.
type ConfirmSendEmailTool struct {
	sender EmailSender
}

// ConfirmSendArgs represents the arguments for confirming a send
type ConfirmSendArgs struct {
	DraftID string `json:"draft_id"`
}

func NewConfirmSendEmailTool(sender EmailSender) *ConfirmSendEmailTool {
	return &ConfirmSendEmailTool{sender: sender}
}

func (t *ConfirmSendEmailTool) Name() string {
	return "confirm_send_email"
}

func (t *ConfirmSendEmailTool) Description() string {
	return `Send an email draft previously created with draft_email.
Call this only after the user has explicitly confirmed the draft. The
draft_id must come from the draft_email result; unknown or already-sent ids
are rejected.`
}

func (t *ConfirmSendEmailTool) Parameters() json.RawMessage {
	schema := `{
		"type": "object",
		"properties": {
			"draft_id": {
				"type": "string",
				"description": "Id of the confirmed draft, as returned by draft_email"
			}
		},
		"required": ["draft_id"]
	}`
	return json.RawMessage(schema)
}

func (t *ConfirmSendEmailTool) Execute(ctx context.Context, args json.RawMessage) (ToolResult, error) {
	sess, ok := SessionFrom(ctx)
	if !ok {
		return ToolResult{Content: "No active session; there is no draft to send.", IsError: true}, nil
	}

	var confirmArgs ConfirmSendArgs
	if err := json.Unmarshal(args, &confirmArgs); err != nil || confirmArgs.DraftID == "" {
		return ToolResult{Content: "confirm_send_email needs the draft_id returned by draft_email.", IsError: true}, nil
	}

	draft, ok := sess.TakeDraft(confirmArgs.DraftID)
	if !ok {
		return ToolResult{
			Content: fmt.Sprintf("No pending draft with id %s. Create one with draft_email and get the user's confirmation first.", confirmArgs.DraftID),
			IsError: true,
		}, nil
	}

	result := t.sender.Send(draft.Recipient, draft.Subject, draft.Body)
	return ToolResult{Content: result}, nil
}
