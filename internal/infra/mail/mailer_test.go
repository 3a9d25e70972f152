package mail

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"txtchange/config"
	"txtchange/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	raw := string(BuildMessage("noreply@txtchange.app", &service.MailMessage{
		To:      []string{"seller@example.edu"},
		Bcc:     []string{"support@example.edu"},
		ReplyTo: "buyer@example.edu",
		Subject: "txtChange: Interest in Book Calculus",
		Body:    "line one\nline two",
	}))

	assert.Contains(t, raw, "From: noreply@txtchange.app\r\n")
	assert.Contains(t, raw, "To: seller@example.edu\r\n")
	assert.Contains(t, raw, "Reply-To: buyer@example.edu\r\n")
	assert.Contains(t, raw, "Subject: txtChange: Interest in Book Calculus\r\n")
	assert.Contains(t, raw, "\r\n\r\nline one\r\nline two\r\n")
	assert.NotContains(t, raw, "support@example.edu")
}

func TestNewMailer_LogsWhenSMTPDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	mailer := NewMailer(Params{Config: &config.Config{}, Logger: logger})
	_, ok := mailer.(*logMailer)
	require.True(t, ok)

	require.NoError(t, mailer.Send(context.Background(), &service.MailMessage{
		To:      []string{"seller@example.edu"},
		Subject: "hello",
	}))
	assert.Contains(t, buf.String(), "hello")
}

func TestSMTPMailer_RejectsEmptyRecipients(t *testing.T) {
	mailer := NewMailer(Params{
		Config: &config.Config{Mail: &config.MailConfig{Host: "localhost", Port: 2525, MessagesPerSecond: 100}},
		Logger: slog.Default(),
	})

	err := mailer.Send(context.Background(), &service.MailMessage{Subject: "x"})
	assert.Error(t, err)
}
