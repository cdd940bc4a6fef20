package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthdesk/advisor-agent/internal/llm"
)

func TestGetOrCreate_GeneratesAndEchoesID(t *testing.T) {
	t.Parallel()

	store := NewStore()

	s, id := store.GetOrCreate("")
	require.NotNil(t, s)
	require.NotEmpty(t, id)
	assert.Equal(t, id, s.ID)

	again, sameID := store.GetOrCreate(id)
	assert.Same(t, s, again)
	assert.Equal(t, id, sameID)
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()

	store := NewStore()
	a, _ := store.GetOrCreate("caller-a")
	b, _ := store.GetOrCreate("caller-b")

	a.Append(llm.Message{Role: "user", Content: "hello from a"})

	assert.Equal(t, 1, a.MessageCount())
	assert.Equal(t, 0, b.MessageCount())
}

func TestSetSystem_Upserts(t *testing.T) {
	t.Parallel()

	store := NewStore()
	s, _ := store.GetOrCreate("caller")

	s.Append(llm.Message{Role: "user", Content: "hi"})
	s.SetSystem("first context")

	msgs := s.Snapshot()
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, "first context", msgs[0].Content)
	assert.Equal(t, "user", msgs[1].Role)

	// A second call overwrites in place instead of inserting.
	s.SetSystem("updated context")
	msgs = s.Snapshot()
	require.Len(t, msgs, 2)
	assert.Equal(t, "updated context", msgs[0].Content)
}

func TestDrafts_TakeOnce(t *testing.T) {
	t.Parallel()

	store := NewStore()
	s, _ := store.GetOrCreate("caller")

	s.PutDraft(EmailDraft{ID: "d1", Recipient: "c@example.com", Subject: "s", Body: "b"})
	require.Equal(t, 1, s.DraftCount())

	draft, ok := s.TakeDraft("d1")
	require.True(t, ok)
	assert.Equal(t, "c@example.com", draft.Recipient)

	_, ok = s.TakeDraft("d1")
	assert.False(t, ok, "a draft must be consumable exactly once")
}

func TestReset(t *testing.T) {
	t.Parallel()

	store := NewStore()
	s, id := store.GetOrCreate("caller")
	s.Append(llm.Message{Role: "user", Content: "hi"})
	s.PutDraft(EmailDraft{ID: "d1"})

	require.True(t, store.Reset(id))
	assert.Equal(t, 0, s.MessageCount())
	assert.Equal(t, 0, s.DraftCount())

	assert.False(t, store.Reset("no-such-session"))
}

func TestPruneExpired(t *testing.T) {
	t.Parallel()

	store := NewStore()
	stale, _ := store.GetOrCreate("stale")
	store.GetOrCreate("fresh")

	// Backdate the stale session past the TTL.
	stale.mu.Lock()
	stale.updatedAt = time.Now().Add(-2 * time.Hour)
	stale.mu.Unlock()

	removed := store.PruneExpired(time.Hour)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Count())

	_, ok := store.Get("stale")
	assert.False(t, ok)
	_, ok = store.Get("fresh")
	assert.True(t, ok)
}
