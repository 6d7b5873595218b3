package smtp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecipients(t *testing.T) {
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, ParseRecipients(" a@x.com, ,b@x.com ,"))
	assert.Empty(t, ParseRecipients(" , "))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("MAIL_SERVER", "smtp.example.com")
	t.Setenv("MAIL_USERNAME", "bot@example.com")
	t.Setenv("MAIL_PASSWORD", "secret")
	t.Setenv("MAIL_PORT", "")
	t.Setenv("MAIL_USE_TLS", "")
	t.Setenv("MAIL_DEFAULT_SENDER", "")

	cfg := LoadConfig()

	assert.Equal(t, "smtp.example.com", cfg.Host)
	assert.Equal(t, 587, cfg.Port)
	assert.True(t, cfg.UseTLS)
	assert.Equal(t, "bot@example.com", cfg.DefaultSender)
	assert.Equal(t, "smtp.example.com:587", cfg.Addr())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("MAIL_SERVER", "mail.example.com")
	t.Setenv("MAIL_PORT", "2525")
	t.Setenv("MAIL_USE_TLS", "false")
	t.Setenv("MAIL_USERNAME", "bot@example.com")
	t.Setenv("MAIL_DEFAULT_SENDER", "noreply@example.com")
	t.Setenv("CONTACT_RECIPIENTS", "sales@example.com, support@example.com")

	cfg := LoadConfig()

	assert.Equal(t, 2525, cfg.Port)
	assert.False(t, cfg.UseTLS)
	assert.Equal(t, "noreply@example.com", cfg.DefaultSender)
	assert.Equal(t, []string{"sales@example.com", "support@example.com"}, cfg.Recipients)
}

func TestMessageBytes(t *testing.T) {
	msg := Message{
		From:    "noreply@example.com",
		To:      []string{"hr@example.com", "ops@example.com"},
		ReplyTo: "jane@client.org",
		Subject: "New Contact Form: Hello\r\nBcc: evil@x.com",
		Body:    "line one\nline two",
	}

	raw := string(msg.Bytes(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))

	assert.Contains(t, raw, "From: <noreply@example.com>\r\n")
	assert.Contains(t, raw, "To: <hr@example.com>, <ops@example.com>\r\n")
	assert.Contains(t, raw, "Reply-To: <jane@client.org>\r\n")
	assert.Contains(t, raw, "Subject: New Contact Form: Hello  Bcc: evil@x.com\r\n")
	assert.NotContains(t, raw, "\r\nBcc:")
	assert.True(t, strings.HasSuffix(raw, "\r\n\r\nline one\r\nline two\r\n"))
}

func TestSend_NoRecipients(t *testing.T) {
	mailer := New(Config{Host: "127.0.0.1", Port: 1})

	err := mailer.Send(context.Background(), Message{From: "a@b.c"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recipients")
}
