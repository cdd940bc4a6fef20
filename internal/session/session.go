package session

import (
	"sync"
	"time"

	"github.com/wealthdesk/advisor-agent/internal/llm"
)

// EmailDraft is an email prepared by the draft_email tool, waiting for an
// explicit confirm_send_email with its id.
type EmailDraft struct {
	ID        string    `json:"id"`
	Recipient string    `json:"recipient_email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Session holds the conversation state for one caller: the ordered transcript
// and any pending email drafts. All methods are safe for concurrent use; two
// requests racing on the same session id must not corrupt the transcript.
//
// Individual methods guard their own state with mu. Callers that record a
// multi-message exchange (an assistant turn plus the tool turns answering it)
// must additionally hold the turn lock for the whole exchange, otherwise a
// concurrent request can interleave its own turns between an assistant turn
// and its tool answers.
type Session struct {
	ID string

	mu        sync.Mutex
	messages  []llm.Message
	drafts    map[string]EmailDraft
	createdAt time.Time
	updatedAt time.Time

	turnMu sync.Mutex
}

func newSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		messages:  make([]llm.Message, 0),
		drafts:    make(map[string]EmailDraft),
		createdAt: now,
		updatedAt: now,
	}
}

// LockTurn blocks until the caller owns the session for a full turn.
// Every tool call requested by an assistant turn must be answered before the
// next turn starts, so turns cannot interleave.
func (s *Session) LockTurn() {
	s.turnMu.Lock()
}

// UnlockTurn releases the turn lock taken by LockTurn.
func (s *Session) UnlockTurn() {
	s.turnMu.Unlock()
}

// SetSystem upserts the system turn at the head of the transcript. If the
// transcript is empty or does not start with a system turn, one is inserted;
// otherwise its content is overwritten so updated context takes effect on
// every run.
func (s *Session) SetSystem(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.messages) > 0 && s.messages[0].Role == "system" {
		s.messages[0].Content = content
	} else {
		s.messages = append([]llm.Message{{Role: "system", Content: content}}, s.messages...)
	}
	s.updatedAt = time.Now()
}

// Append adds turns to the end of the transcript.
func (s *Session) Append(msgs ...llm.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, msgs...)
	s.updatedAt = time.Now()
}

// Snapshot returns a copy of the transcript.
func (s *Session) Snapshot() []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]llm.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// MessageCount returns the number of turns in the transcript.
func (s *Session) MessageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// PutDraft stores a pending email draft on the session.
func (s *Session) PutDraft(draft EmailDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[draft.ID] = draft
	s.updatedAt = time.Now()
}

// TakeDraft removes and returns the draft with the given id.
// A draft can be taken exactly once; a second confirm for the same id fails.
func (s *Session) TakeDraft(id string) (EmailDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[id]
	if ok {
		delete(s.drafts, id)
		s.updatedAt = time.Now()
	}
	return draft, ok
}

// DraftCount returns the number of pending drafts.
func (s *Session) DraftCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

// Reset clears the transcript and all pending drafts but keeps the id.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = make([]llm.Message, 0)
	s.drafts = make(map[string]EmailDraft)
	s.updatedAt = time.Now()
}

// LastActive returns the time of the last mutation.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}
