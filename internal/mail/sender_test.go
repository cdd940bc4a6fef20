package mail

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthdesk/advisor-agent/pkg/log"
)

func TestSend_MissingCredentials(t *testing.T) {
	t.Parallel()

	// Host that would fail instantly if dialed; missing credentials must be
	// reported before any connection attempt.
	sender := NewSender(Config{Host: "invalid.host.example", Port: 1})

	result := sender.Send("client@example.com", "Quarterly review", "Hello")
	assert.Contains(t, result, "credentials are missing")
}

func TestSend_MissingRecipient(t *testing.T) {
	t.Parallel()

	sender := NewSender(Config{Host: "invalid.host.example", Port: 1, User: "u@example.com", Password: "pw"})

	result := sender.Send("   ", "Subject", "Body")
	assert.Contains(t, result, "no recipient")
}

func TestSend_ConnectionFailure(t *testing.T) {
	t.Parallel()

	// Reserved TEST-NET address, nothing listens there.
	sender := NewSender(Config{Host: "192.0.2.1", Port: 19, User: "u@example.com", Password: "pw"})

	result := sender.Send("client@example.com", "Subject", "Body")
	assert.Contains(t, result, "SMTP connection error")
}

func TestNewSender_Defaults(t *testing.T) {
	t.Parallel()

	sender := NewSender(Config{User: "u@example.com", Password: "pw"})
	assert.Equal(t, "smtp.gmail.com:465", sender.Addr())
}

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	msg := string(buildMessage("from@example.com", "to@example.com", "Hi\r\nBcc: evil@example.com", "body text"))

	require.True(t, strings.HasPrefix(msg, "From: from@example.com\r\n"))
	assert.Contains(t, msg, "To: to@example.com\r\n")
	// The injected CRLF is flattened, so no Bcc header line exists.
	assert.NotContains(t, msg, "\r\nBcc:")
	assert.True(t, strings.HasSuffix(msg, "\r\nbody text\r\n"))
}

func TestSend_AuditTrail(t *testing.T) {
	t.Parallel()

	auditPath := filepath.Join(t.TempDir(), "mail_audit.log")
	audit, err := log.NewFileLogger(auditPath, log.LevelInfo)
	require.NoError(t, err)

	sender := NewSender(Config{Host: "invalid.host.example", Port: 1})
	sender.SetAuditLog(audit.Logger)

	sender.Send("client@example.com", "Quarterly review", "Hello")
	require.NoError(t, audit.Close())

	entries, err := os.ReadFile(auditPath)
	require.NoError(t, err)
	assert.Contains(t, string(entries), "to=client@example.com")
	assert.Contains(t, string(entries), "credentials are missing")
}

func TestFromHeader_SenderName(t *testing.T) {
	t.Parallel()

	plain := NewSender(Config{User: "u@example.com", Password: "pw"})
	assert.Equal(t, "u@example.com", plain.fromHeader())

	named := NewSender(Config{User: "u@example.com", Password: "pw", SenderName: "Advisory Desk"})
	assert.Equal(t, "Advisory Desk <u@example.com>", named.fromHeader())
}
