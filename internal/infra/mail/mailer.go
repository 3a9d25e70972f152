// Package mail delivers outbound email over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"txtchange/config"
	"txtchange/internal/domain/service"
	"txtchange/internal/errors"

	"go.uber.org/fx"
	"go.uber.org/ratelimit"
)

const (
	implicitTLSPort          = 465
	defaultMessagesPerSecond = 2
	dialTimeout              = 10 * time.Second
)

// Params holds the dependencies of the mailer.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer returns an SMTP mailer, or a logging mailer when no relay is configured.
func NewMailer(params Params) service.Mailer {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Host == "" {
		params.Logger.Info("SMTP not configured, mail will be logged only")

		return &logMailer{logger: params.Logger}
	}

	perSecond := cfg.MessagesPerSecond
	if perSecond <= 0 {
		perSecond = defaultMessagesPerSecond
	}

	return &smtpMailer{
		cfg:     *cfg,
		limiter: ratelimit.New(perSecond),
		logger:  params.Logger,
	}
}

type smtpMailer struct {
	cfg     config.MailConfig
	limiter ratelimit.Limiter
	logger  *slog.Logger
}

// Send delivers msg, waiting for the relay's rate budget first.
func (m *smtpMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	recipients := append(append([]string(nil), msg.To...), msg.Bcc...)
	if len(recipients) == 0 {
		return errors.New("mail has no recipients")
	}

	m.limiter.Take()
	if err := ctx.Err(); err != nil {
		return err
	}

	client, err := m.dial(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if m.cfg.Username != "" {
		if err := client.Auth(smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)); err != nil {
			return errors.Wrap(err, "smtp auth")
		}
	}
	if err := client.Mail(m.cfg.From); err != nil {
		return errors.Wrap(err, "smtp mail from")
	}
	for _, rcpt := range recipients {
		if err := client.Rcpt(rcpt); err != nil {
			return errors.Wrapf(err, "smtp rcpt to %s", rcpt)
		}
	}

	wc, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp data")
	}
	if _, err := wc.Write(BuildMessage(m.cfg.From, msg)); err != nil {
		return errors.Wrap(err, "smtp write")
	}
	if err := wc.Close(); err != nil {
		return errors.Wrap(err, "smtp close")
	}

	m.logger.InfoContext(ctx, "Mail sent",
		slog.String("subject", msg.Subject),
		slog.Int("recipients", len(recipients)),
	)

	return errors.WithStack(client.Quit())
}

func (m *smtpMailer) dial(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	dialer := &net.Dialer{Timeout: dialTimeout}
	tlsConfig := &tls.Config{ServerName: m.cfg.Host, MinVersion: tls.VersionTLS12}

	if m.cfg.Port == implicitTLSPort {
		conn, err := (&tls.Dialer{NetDialer: dialer, Config: tlsConfig}).DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, errors.Wrap(err, "smtp dial")
		}
		client, err := smtp.NewClient(conn, m.cfg.Host)
		if err != nil {
			conn.Close()

			return nil, errors.Wrap(err, "smtp client")
		}

		return client, nil
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "smtp dial")
	}
	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "smtp client")
	}
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(tlsConfig); err != nil {
			client.Close()

			return nil, errors.Wrap(err, "smtp starttls")
		}
	}

	return client, nil
}

// BuildMessage renders msg as an RFC 5322 plain text message. Bcc recipients
// are left out of the headers.
func BuildMessage(from string, msg *service.MailMessage) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	b.WriteString("\r\n")

	return []byte(b.String())
}

// logMailer writes messages to the log instead of sending them.
type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	m.logger.InfoContext(ctx, "Mail not sent, SMTP disabled",
		slog.Any("to", msg.To),
		slog.Any("bcc", msg.Bcc),
		slog.String("replyTo", msg.ReplyTo),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	)

	return nil
}
