package mail

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/wealthdesk/advisor-agent/pkg/log"
)

// Config holds the configuration for the SMTP sender
//
// Environment Variables (read by internal/config):
// - SMTP_HOST: Mail relay host (default: smtp.gmail.com)
// - SMTP_PORT: Mail relay port, implicit TLS (default: 465)
// - SMTP_USER: Account and From address
// - SMTP_PASSWORD: Account password or app password
// - SMTP_SENDER_NAME: Optional display name for the From header
// - MAIL_AUDIT_LOG: Optional path of the outbound mail audit log
type Config struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	User       string `json:"user"`
	Password   string `json:"-"`
	SenderName string `json:"sender_name"`
	AuditLog   string `json:"audit_log"`
}

// Sender transmits single plain-text messages over an implicit-TLS SMTP
// session. It fails closed: every failure mode yields a descriptive result
// string rather than an error, so callers can hand the outcome straight back
// to the model as a tool result.
type Sender struct {
	config Config
	audit  *log.Logger
}

func NewSender(config Config) *Sender {
	if config.Host == "" {
		config.Host = "smtp.gmail.com"
	}
	if config.Port == 0 {
		config.Port = 465
	}
	return &Sender{config: config}
}

// SetAuditLog routes an audit line for every send attempt to the given
// logger, typically a log.FileLogger opened at startup.
func (s *Sender) SetAuditLog(audit *log.Logger) {
	s.audit = audit
}

// Send transmits one plain-text message and returns a human-readable result.
// Missing credentials are reported before any network connection is made.
// Every attempt and its outcome lands in the audit log when one is set.
func (s *Sender) Send(recipient, subject, body string) string {
	result := s.send(recipient, subject, body)
	if s.audit != nil {
		s.audit.Info("mail: to=%s subject=%q result=%q", recipient, subject, result)
	}
	return result
}

func (s *Sender) send(recipient, subject, body string) string {
	if s.config.User == "" || s.config.Password == "" {
		return "Error: mail credentials are missing. Please check your .env file."
	}
	if strings.TrimSpace(recipient) == "" {
		return "Error: no recipient address was provided."
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	message := buildMessage(s.fromHeader(), recipient, subject, body)

	if err := s.transmit(addr, recipient, message); err != nil {
		return err.Error()
	}

	result := fmt.Sprintf("Email sent successfully to %s from %s", recipient, s.config.User)
	log.Info("mail: sent to %s", recipient)
	return result
}

// transmit runs one SMTP session: TLS dial, auth, single message, quit.
func (s *Sender) transmit(addr, recipient string, message []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.config.Host})
	if err != nil {
		return fmt.Errorf("SMTP connection error: could not reach %s: %v", addr, err)
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("SMTP error occurred: %v", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)
	if err := client.Auth(auth); err != nil {
		return errors.New("SMTP authentication failed. Please check your mail credentials and ensure you're using the correct app password.")
	}

	if err := client.Mail(s.config.User); err != nil {
		return fmt.Errorf("SMTP error occurred: %v", err)
	}
	if err := client.Rcpt(recipient); err != nil {
		return fmt.Errorf("SMTP error occurred: %v", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("SMTP error occurred: %v", err)
	}
	if _, err := w.Write(message); err != nil {
		w.Close()
		return fmt.Errorf("SMTP error occurred: %v", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("SMTP error occurred: %v", err)
	}

	return client.Quit()
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + sanitizeHeader(subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

// fromHeader renders the From header value, with the optional display name.
func (s *Sender) fromHeader() string {
	if s.config.SenderName == "" {
		return s.config.User
	}
	return fmt.Sprintf("%s <%s>", sanitizeHeader(s.config.SenderName), s.config.User)
}

// sanitizeHeader strips CRLF so tool-supplied subjects cannot inject headers.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// Addr is exported for logging and tests.
func (s *Sender) Addr() string {
	return net.JoinHostPort(s.config.Host, fmt.Sprint(s.config.Port))
}
